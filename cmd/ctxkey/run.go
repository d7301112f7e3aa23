package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/ctxkey/internal/classify"
	"github.com/Gaurav-Gosain/ctxkey/internal/config"
	"github.com/Gaurav-Gosain/ctxkey/internal/dispatch"
	"github.com/Gaurav-Gosain/ctxkey/internal/inject"
	"github.com/Gaurav-Gosain/ctxkey/internal/wm"
)

// newLogger builds the CLI logger. Dispatch runs from compositor
// keybindings where stdout is not a terminal, so output stays on stderr
// and is quiet unless --debug is set.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if debugMode {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// loadConfig loads the effective configuration with CLI flag overrides
// applied. A broken default config degrades to compiled-in defaults; an
// explicit --config path that fails to load is an error.
func loadConfig(logger *log.Logger) (*config.UserConfig, error) {
	var cfg *config.UserConfig
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg, err = config.LoadUserConfig()
		if err != nil {
			logger.Warn("failed to load config, using defaults", "err", err)
			cfg = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		Backend:  backendName,
		Injector: injectorName,
	}, cfg)
	return cfg, nil
}

// newResolver builds the window system resolver. Backend detection
// failure is the recoverable QueryFailure class: the dispatcher runs
// with a nil resolver and takes the default action.
func newResolver(cfg *config.UserConfig, logger *log.Logger) wm.Resolver {
	resolver, err := wm.New(cfg.Dispatch.Backend)
	if err != nil {
		logger.Warn("window system backend unavailable", "err", err)
		return nil
	}
	return resolver
}

func runDispatch(op string) error {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	opts := dispatch.Options{
		Resolver: newResolver(cfg, logger),
		Config:   cfg,
		Logger:   logger,
		DryRun:   dryRun,
	}

	if !dryRun {
		injector, err := inject.New(cfg.Dispatch.Injector)
		if err != nil {
			return err
		}
		opts.Injector = injector
	}

	return dispatch.New(opts).Run(context.Background(), op)
}

func runResolve(asJSON bool) error {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	d := dispatch.New(dispatch.Options{
		Resolver: newResolver(cfg, logger),
		Config:   cfg,
		Logger:   logger,
	})
	res := d.Resolve(context.Background())

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Printf("Backend: %s\n", orNone(res.Backend))
	if res.Window == nil {
		fmt.Println("Window:  (none focused)")
	} else {
		fmt.Printf("App:     %s\n", orNone(res.Window.App))
		if res.Window.Title != "" {
			fmt.Printf("Title:   %s\n", res.Window.Title)
		}
		if res.Window.PID > 0 {
			fmt.Printf("PID:     %d\n", res.Window.PID)
		}
	}
	fmt.Printf("Action:  %s\n", res.Action)
	printChords(cfg, res.Action)
	return nil
}

func printChords(cfg *config.UserConfig, action classify.Action) {
	if c, err := cfg.ChordFor(action, config.OpCopy); err == nil {
		fmt.Printf("Copy:    %s\n", c)
	}
	if c, err := cfg.ChordFor(action, config.OpPaste); err == nil {
		fmt.Printf("Paste:   %s\n", c)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// tableStyles returns the header and cell styling for list output,
// dropping color when stdout is not a terminal.
func tableStyles() (lipgloss.Style, lipgloss.Style) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return lipgloss.NewStyle(), lipgloss.NewStyle()
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return header, cell
}

func listRules() error {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	userRules := len(cfg.Rules)
	headerStyle, cellStyle := tableStyles()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "PATTERN", "ACTION", "SOURCE")

	for i, r := range cfg.EffectiveRules() {
		source := "built-in"
		if i < userRules {
			source = "config"
		}
		t.Row(fmt.Sprintf("%d", i+1), r.Pattern, string(r.Action), source)
	}

	fmt.Println(t)
	fmt.Println("Rules are evaluated top to bottom; the first match wins.")
	fmt.Println("Unmatched and absent identifiers fall through to the default action.")
	return nil
}

func checkRule(appID string) error {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rules := cfg.EffectiveRules()
	action := classify.Classify(appID, rules)

	fmt.Printf("App:     %s\n", appID)
	fmt.Printf("Action:  %s\n", action)
	if pattern := matchedPattern(appID, rules); pattern != "" {
		fmt.Printf("Rule:    %s\n", pattern)
	} else {
		fmt.Println("Rule:    (none matched, default action)")
	}
	printChords(cfg, action)
	return nil
}

// matchedPattern re-runs the scan to report which rule decided the
// classification.
func matchedPattern(appID string, rules []classify.Rule) string {
	for _, r := range rules {
		if r.Pattern != "" && strings.Contains(appID, r.Pattern) {
			return r.Pattern
		}
	}
	return ""
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config in the user's editor, creating the
// default config first if it doesn't exist yet.
func editConfigFile() error {
	if _, err := config.LoadUserConfig(); err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found: set $EDITOR or install vim, vi, nano, or emacs")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, editor := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(editor); err == nil {
			return editor
		}
	}
	return ""
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	written, err := config.ResetToDefaults()
	if err != nil {
		return err
	}
	fmt.Printf("Configuration reset: %s\n", written)
	return nil
}

// doctorTools maps each external tool to its role in the dispatch path.
var doctorTools = []struct {
	tool string
	role string
}{
	{"niri", "query (niri)"},
	{"hyprctl", "query (hyprland)"},
	{"swaymsg", "query (sway)"},
	{"xdotool", "query + inject (x11)"},
	{"osascript", "query + inject (darwin)"},
	{"wtype", "inject (wayland)"},
	{"ydotool", "inject (wayland fallback)"},
}

func runDoctor() error {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	if resolver, err := wm.New(cfg.Dispatch.Backend); err != nil {
		fmt.Printf("Backend:  (unavailable: %v)\n", err)
	} else {
		fmt.Printf("Backend:  %s\n", resolver.Name())
	}

	if injector, err := inject.New(cfg.Dispatch.Injector); err != nil {
		fmt.Printf("Injector: (unavailable: %v)\n", err)
	} else {
		fmt.Printf("Injector: %s\n", injector.Name())
	}

	if path, err := config.GetConfigPath(); err == nil {
		fmt.Printf("Config:   %s\n", path)
	}
	fmt.Println()

	headerStyle, cellStyle := tableStyles()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("TOOL", "ROLE", "STATUS")

	for _, entry := range doctorTools {
		status := "missing"
		if path, err := exec.LookPath(entry.tool); err == nil {
			status = path
		}
		t.Row(entry.tool, entry.role, status)
	}

	fmt.Println(t)
	return nil
}
