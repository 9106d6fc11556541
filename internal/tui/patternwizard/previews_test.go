package patternwizard

import (
	"strings"
	"testing"

	"github.com/mark3labs/atelier/internal/generation"
	"github.com/stretchr/testify/require"
)

func TestSilhouetteFor(t *testing.T) {
	tests := []struct {
		garment string
		want    silhouette
	}{
		{"Dress", silhouetteDress},
		{"T-Shirt", silhouetteTop},
		{"Jacket", silhouetteTop},
		{"Jean", silhouetteBottom},
		{"Trouser", silhouetteBottom},
		{"Shawl", silhouetteWrap},
		{"Kimono", silhouetteDress},
	}
	for _, tt := range tests {
		t.Run(tt.garment, func(t *testing.T) {
			require.Equal(t, tt.want, silhouetteFor(tt.garment))
		})
	}
}

func TestPreview_EveryView(t *testing.T) {
	for _, g := range []string{"Dress", "Tank", "Jean", "Shawl"} {
		seen := map[string]bool{}
		for _, v := range generation.Views {
			art := preview(g, v)
			require.NotEmpty(t, art, "%s %s", g, v)
			require.False(t, strings.HasPrefix(art, "\n"))
			seen[art] = true
		}
		require.GreaterOrEqual(t, len(seen), 3, "%s views should differ", g)
	}
}

func TestMirrorArt(t *testing.T) {
	require.Equal(t, "\\_  ", mirrorArt("  _/")+"  ")
	require.Equal(t, "[x)", mirrorArt("(x]"))

	art := preview("Dress", generation.ViewLeft)
	right := preview("Dress", generation.ViewRight)
	require.Equal(t, strings.Count(art, "\n"), strings.Count(right, "\n"))
	for _, l := range strings.Split(right, "\n") {
		require.Equal(t, strings.TrimRight(l, " "), l, "no trailing padding")
	}
}
