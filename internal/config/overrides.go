package config

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user
// config default.
type Overrides struct {
	// Backend overrides the window system backend
	Backend string

	// Injector overrides the input-injection tool
	Injector string
}

// ApplyOverrides applies CLI flag overrides to the loaded config. CLI
// flags take precedence over config file values.
func ApplyOverrides(overrides Overrides, cfg *UserConfig) {
	if cfg == nil {
		return
	}
	if overrides.Backend != "" {
		cfg.Dispatch.Backend = overrides.Backend
	}
	if overrides.Injector != "" {
		cfg.Dispatch.Injector = overrides.Injector
	}
}
