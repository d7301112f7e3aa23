// Package config loads and validates the user configuration from the
// XDG config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
	"github.com/Gaurav-Gosain/ctxkey/internal/classify"
)

// configFile is the path under the XDG config directory.
const configFile = "ctxkey/config.toml"

// Dispatch operations with a configurable chord per action.
const (
	OpCopy  = "copy"
	OpPaste = "paste"
)

// UserConfig represents the user's custom configuration.
type UserConfig struct {
	Dispatch DispatchConfig `toml:"dispatch"`
	Rules    []RuleConfig   `toml:"rules"`
	Chords   ChordsConfig   `toml:"chords"`
}

// DispatchConfig holds backend and rule-table settings.
type DispatchConfig struct {
	Backend             string `toml:"backend"`               // Window system backend: auto, niri, hyprland, sway, x11, darwin
	Injector            string `toml:"injector"`              // Injection tool: auto, wtype, ydotool, xdotool, osascript
	ReplaceDefaultRules bool   `toml:"replace_default_rules"` // Drop the compiled-in terminal rules instead of appending to user rules
}

// RuleConfig is one classification rule. Rules are evaluated in file
// order, first match wins.
type RuleConfig struct {
	Pattern string `toml:"pattern"` // Case-sensitive substring matched against the app identifier
	Action  string `toml:"action"`  // terminal or default
}

// ChordsConfig binds each action to its per-operation chords.
type ChordsConfig struct {
	Terminal OperationChords `toml:"terminal"`
	Default  OperationChords `toml:"default"`
}

// OperationChords holds the chord strings for one action.
type OperationChords struct {
	Copy  string `toml:"copy"`
	Paste string `toml:"paste"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Dispatch: DispatchConfig{
			Backend:  "auto",
			Injector: "auto",
		},
		Chords: ChordsConfig{
			Terminal: OperationChords{
				Copy:  "ctrl+shift+c",
				Paste: "ctrl+shift+v",
			},
			Default: OperationChords{
				Copy:  "ctrl+c",
				Paste: "ctrl+v",
			},
		},
	}
}

// EffectiveRules returns the rule table for this config: user rules in
// file order, followed by the compiled-in defaults unless
// replace_default_rules is set. Prepending keeps first-match-wins
// semantics in the user's favor.
func (cfg *UserConfig) EffectiveRules() []classify.Rule {
	rules := make([]classify.Rule, 0, len(cfg.Rules))
	for _, r := range cfg.Rules {
		rules = append(rules, classify.Rule{
			Pattern: r.Pattern,
			Action:  classify.Action(r.Action),
		})
	}
	if !cfg.Dispatch.ReplaceDefaultRules {
		rules = append(rules, classify.DefaultRules()...)
	}
	return rules
}

// ChordFor resolves the configured chord for an (action, operation)
// pair.
func (cfg *UserConfig) ChordFor(action classify.Action, op string) (chord.Chord, error) {
	var chords OperationChords
	switch action {
	case classify.ActionTerminal:
		chords = cfg.Chords.Terminal
	case classify.ActionDefault:
		chords = cfg.Chords.Default
	default:
		return chord.Chord{}, fmt.Errorf("unknown action %q", action)
	}

	var spec string
	switch op {
	case OpCopy:
		spec = chords.Copy
	case OpPaste:
		spec = chords.Paste
	default:
		return chord.Chord{}, fmt.Errorf("unknown operation %q", op)
	}

	c, err := chord.Parse(spec)
	if err != nil {
		return chord.Chord{}, fmt.Errorf("chord for %s/%s: %w", action, op, err)
	}
	return c, nil
}

// LoadUserConfig loads the user configuration from the XDG config
// directory, creating a default config file on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads and validates a config file at an explicit path
// (the --config flag).
func LoadConfigFile(configPath string) (*UserConfig, error) {
	// #nosec G304 - configPath is from XDG search or the --config flag, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	fillMissing(&cfg, DefaultConfig())

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, issue := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", issue.Field, issue.Key, issue.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and retry", len(validation.Errors))
	}
	for _, warn := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", warn.Field, warn.Key, warn.Message)
	}

	return &cfg, nil
}

// fillMissing fills in any missing settings with defaults.
func fillMissing(cfg, defaultCfg *UserConfig) {
	if cfg.Dispatch.Backend == "" {
		cfg.Dispatch.Backend = defaultCfg.Dispatch.Backend
	}
	if cfg.Dispatch.Injector == "" {
		cfg.Dispatch.Injector = defaultCfg.Dispatch.Injector
	}
	fillMissingChords(&cfg.Chords.Terminal, defaultCfg.Chords.Terminal)
	fillMissingChords(&cfg.Chords.Default, defaultCfg.Chords.Default)
}

func fillMissingChords(target *OperationChords, defaults OperationChords) {
	if target.Copy == "" {
		target.Copy = defaults.Copy
	}
	if target.Paste == "" {
		target.Paste = defaults.Paste
	}
}

// createDefaultConfig creates a default config file in the user's config
// directory.
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# ctxkey Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# For the effective rule table, run: ctxkey rules list\n\n")
	sb.WriteString("# backend:  window system to query (auto, niri, hyprland, sway, x11, darwin)\n")
	sb.WriteString("# injector: input-injection tool (auto, wtype, ydotool, xdotool, osascript)\n")
	sb.WriteString("#\n")
	sb.WriteString("# Classification rules are [[rules]] entries with a case-sensitive\n")
	sb.WriteString("# substring pattern and an action (terminal or default). Rules are\n")
	sb.WriteString("# evaluated in file order ahead of the compiled-in terminal list;\n")
	sb.WriteString("# the first match wins. Set replace_default_rules = true under\n")
	sb.WriteString("# [dispatch] to drop the compiled-in list entirely.\n")
	sb.WriteString("#\n")
	sb.WriteString("# Example:\n")
	sb.WriteString("#   [[rules]]\n")
	sb.WriteString("#   pattern = \"emacs\"\n")
	sb.WriteString("#   action = \"terminal\"\n\n")
	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// ResetToDefaults overwrites the config file with the default
// configuration and returns its path.
func ResetToDefaults() (string, error) {
	if _, err := createDefaultConfig(); err != nil {
		return "", err
	}
	return xdg.ConfigFile(configFile)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configFile)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configFile)
	}
	return path, nil
}
