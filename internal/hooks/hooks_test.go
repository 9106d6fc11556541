package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testVars() Variables {
	return Variables{
		Session:     "sess-1",
		Project:     "Gala Gown",
		Garment:     "Dress",
		Description: "Deep red silk evening gown",
		Fabrics:     []string{"Italian Silk Charmeuse"},
		Notions:     []string{"Invisible Zipper", "Silk Thread"},
		CartURL:     "https://www.moodfabrics.com",
	}
}

func TestExecuteAllPiped(t *testing.T) {
	ctx := context.Background()
	workDir := t.TempDir()
	vars := testVars()

	tests := []struct {
		name     string
		hooks    []*HookConfig
		expected string
	}{
		{
			name:     "no hooks",
			hooks:    []*HookConfig{},
			expected: "",
		},
		{
			name: "single hook with pipe_output true",
			hooks: []*HookConfig{
				{Command: "echo 'piped'", Timeout: 5, PipeOutput: true},
			},
			expected: "piped\n",
		},
		{
			name: "single hook with pipe_output false",
			hooks: []*HookConfig{
				{Command: "echo 'not piped'", Timeout: 5, PipeOutput: false},
			},
			expected: "",
		},
		{
			name: "multiple hooks mixed pipe_output",
			hooks: []*HookConfig{
				{Command: "echo 'first piped'", Timeout: 5, PipeOutput: true},
				{Command: "echo 'not piped'", Timeout: 5, PipeOutput: false},
				{Command: "echo 'second piped'", Timeout: 5, PipeOutput: true},
			},
			expected: "first piped\n\nsecond piped\n",
		},
		{
			name: "variables expanded",
			hooks: []*HookConfig{
				{Command: "echo '{{slug}} {{count}} {{garment}}'", Timeout: 5, PipeOutput: true},
			},
			expected: "gala-gown 3 Dress\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := ExecuteAllPiped(ctx, tt.hooks, workDir, vars)
			require.NoError(t, err)
			require.Equal(t, tt.expected, output)
		})
	}
}

func TestExecuteAllPiped_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hooks := []*HookConfig{
		{Command: "echo 'test'", Timeout: 5, PipeOutput: true},
	}

	_, err := ExecuteAllPiped(ctx, hooks, t.TempDir(), testVars())
	require.Error(t, err)
}

func TestExecute_FailureDegrades(t *testing.T) {
	out, err := Execute(context.Background(), &HookConfig{Command: "echo oops >&2; exit 3"}, t.TempDir(), testVars())
	require.NoError(t, err)
	require.Contains(t, out, "[Hook command failed")
	require.Contains(t, out, "oops")
}

func TestExecute_Timeout(t *testing.T) {
	out, err := Execute(context.Background(), &HookConfig{Command: "echo partial; sleep 5", Timeout: 1}, t.TempDir(), testVars())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "[Hook timed out after 1s]"), out)
}

func TestExecute_NilOrEmpty(t *testing.T) {
	out, err := Execute(context.Background(), nil, t.TempDir(), testVars())
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = Execute(context.Background(), &HookConfig{}, t.TempDir(), testVars())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestExpandVariables(t *testing.T) {
	got := expandVariables("{{session}}|{{project}}|{{description}}|{{fabrics}}|{{notions}}|{{cart_url}}", testVars())
	require.Equal(t, "sess-1|Gala Gown|Deep red silk evening gown|Italian Silk Charmeuse|Invisible Zipper, Silk Thread|https://www.moodfabrics.com", got)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Nil(t, cfg, "missing file is not an error")

	content := `version: 1
hooks:
  add_to_cart:
    - command: "echo {{count}}"
      pipe_output: true
  back_to_studio:
    - command: "true"
      timeout: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err = LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.Len(t, cfg.Lookup(AddToCart), 1)
	require.Equal(t, 2, cfg.Lookup(BackToStudio)[0].Timeout)
	require.Empty(t, cfg.Lookup(PrintPattern))
	require.Empty(t, cfg.Lookup("unknown"))

	out, err := cfg.Run(context.Background(), AddToCart, dir, testVars())
	require.NoError(t, err)
	require.Equal(t, "3\n", out)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: [nope"), 0644))

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestNilConfigRun(t *testing.T) {
	var cfg *Config
	for _, name := range Names {
		out, err := cfg.Run(context.Background(), name, t.TempDir(), testVars())
		require.NoError(t, err)
		require.Empty(t, out)
	}
}
