package olirtf

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	width    int
	ansi     bool
	fragment bool
}

// WithWidth sets the wrap width of text output. Zero disables wrapping.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}

// WithANSI enables ANSI underline in text output.
func WithANSI(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.ansi = enabled
	}
}

// WithoutDocument omits the RTF preamble and closing brace so only the
// paragraph groups are written.
func WithoutDocument() RenderOption {
	return func(cfg *renderConfig) {
		cfg.fragment = true
	}
}

func resolveConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
