package hooks

// Config is the top-level configuration for hooks loaded from .atelier.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig binds each external trigger point to zero or more commands.
type HooksConfig struct {
	BackToStudio      []*HookConfig `yaml:"back_to_studio"`
	Regenerate        []*HookConfig `yaml:"regenerate"`
	EditPrompt        []*HookConfig `yaml:"edit_prompt"`
	AddToCart         []*HookConfig `yaml:"add_to_cart"`
	DownloadPattern   []*HookConfig `yaml:"download_pattern"`
	PrintPattern      []*HookConfig `yaml:"print_pattern"`
	ViewMyPatterns    []*HookConfig `yaml:"view_my_patterns"`
	ListOnMarketplace []*HookConfig `yaml:"list_on_marketplace"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command    string `yaml:"command"`
	Timeout    int    `yaml:"timeout"`     // seconds, default 30
	PipeOutput bool   `yaml:"pipe_output"` // show output in the UI
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30

// Trigger point names as they appear in the hooks file.
const (
	BackToStudio      = "back_to_studio"
	Regenerate        = "regenerate"
	EditPrompt        = "edit_prompt"
	AddToCart         = "add_to_cart"
	DownloadPattern   = "download_pattern"
	PrintPattern      = "print_pattern"
	ViewMyPatterns    = "view_my_patterns"
	ListOnMarketplace = "list_on_marketplace"
)

// Names lists every trigger point.
var Names = []string{
	BackToStudio,
	Regenerate,
	EditPrompt,
	AddToCart,
	DownloadPattern,
	PrintPattern,
	ViewMyPatterns,
	ListOnMarketplace,
}

// Lookup returns the hooks bound to name. A nil config has none.
func (c *Config) Lookup(name string) []*HookConfig {
	if c == nil {
		return nil
	}
	switch name {
	case BackToStudio:
		return c.Hooks.BackToStudio
	case Regenerate:
		return c.Hooks.Regenerate
	case EditPrompt:
		return c.Hooks.EditPrompt
	case AddToCart:
		return c.Hooks.AddToCart
	case DownloadPattern:
		return c.Hooks.DownloadPattern
	case PrintPattern:
		return c.Hooks.PrintPattern
	case ViewMyPatterns:
		return c.Hooks.ViewMyPatterns
	case ListOnMarketplace:
		return c.Hooks.ListOnMarketplace
	}
	return nil
}
