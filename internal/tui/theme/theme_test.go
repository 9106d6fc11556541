package theme

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/require"
)

func TestInterpolateColor(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		pos  float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0, "#000000"},
		{"end", "#000000", "#ffffff", 1, "#ffffff"},
		{"middle", "#000000", "#fefefe", 0.5, "#7f7f7f"},
		{"clamped low", "#102030", "#ffffff", -1, "#102030"},
		{"clamped high", "#000000", "#102030", 2, "#102030"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, InterpolateColor(tt.a, tt.b, tt.pos))
		})
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	require.Equal(t, [3]uint8{0xcb, 0xa6, 0xf7}, [3]uint8{r, g, b})

	r, g, b = ParseHexColor("bad")
	require.Zero(t, r+g+b)
}

func TestApplyGradient(t *testing.T) {
	require.Empty(t, ApplyGradient("", "#000000", "#ffffff"))

	out := ApplyGradient("AB C", "#000000", "#ffffff")
	require.Equal(t, 4, lipgloss.Width(out))
	require.Contains(t, out, "A")
	require.Contains(t, out, "C")
}

func TestGradientBar(t *testing.T) {
	require.Empty(t, GradientBar(0, 0, "#000000", "#ffffff"))
	bar := GradientBar(12, 3, "#000000", "#ffffff")
	require.Equal(t, 12, lipgloss.Width(bar))
	require.Equal(t, 12, strings.Count(bar, "█"))
}

func TestCurrent(t *testing.T) {
	th := Current()
	require.Equal(t, "catppuccin-mocha", th.Name)
	require.NotEmpty(t, th.BorderDefault)
	require.NotNil(t, th.S())
	require.Same(t, th.S(), th.S(), "styles are built once")

	SetCurrent(nil)
	require.Same(t, th, Current())
}
