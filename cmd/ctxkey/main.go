// Package main implements ctxkey, a context-aware key-chord dispatcher.
// ctxkey queries the window system for the focused window, classifies
// its application identifier against an ordered rule table, and injects
// the key-chord bound to that classification. It is meant to be bound to
// compositor keybindings so one shortcut does the right copy/paste in
// terminals and regular applications alike.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/ctxkey/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode    bool
	dryRun       bool
	backendName  string
	injectorName string
	configPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ctxkey",
		Short: "Context-aware key-chord dispatcher",
		Long: `ctxkey - context-aware key-chord dispatcher

Queries the focused window, classifies it against an ordered rule table
and injects the key-chord bound to the classification: terminals get
ctrl+shift+c / ctrl+shift+v, everything else gets ctrl+c / ctrl+v.

Bind it to a compositor shortcut, e.g. for niri:

  Mod+C { spawn "ctxkey" "copy"; }
  Mod+V { spawn "ctxkey" "paste"; }`,
		Example: `  # Send the copy chord appropriate for the focused window
  ctxkey copy

  # Same for paste, forcing the sway backend
  ctxkey paste --backend sway

  # Show what would be sent without injecting anything
  ctxkey copy --dry-run

  # Inspect the focused window and its classification
  ctxkey resolve --json

  # Show the effective rule table
  ctxkey rules list

  # Check the environment for query and injection tools
  ctxkey doctor`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the chord instead of injecting it")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Window system backend: auto, niri, hyprland, sway, x11, darwin (default: from config or auto)")
	rootCmd.PersistentFlags().StringVar(&injectorName, "injector", "", "Input-injection tool: auto, wtype, ydotool, xdotool, osascript (default: from config or auto)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: XDG config directory)")

	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Dispatch the copy chord for the focused window",
		Long: `Dispatch the copy chord for the focused window.

Terminals receive ctrl+shift+c, everything else ctrl+c. When the focused
window cannot be determined the default chord is sent; the command only
fails when the chord cannot be injected at all.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDispatch(config.OpCopy)
		},
	}

	pasteCmd := &cobra.Command{
		Use:   "paste",
		Short: "Dispatch the paste chord for the focused window",
		Long: `Dispatch the paste chord for the focused window.

Terminals receive ctrl+shift+v, everything else ctrl+v.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDispatch(config.OpPaste)
		},
	}

	var resolveJSON bool
	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the focused window and its classification",
		Long: `Print the focused window's identity and the action it classifies to.

Use --json for machine-readable output that can be used for scripting.`,
		Example: `  # Inspect the focused window
  ctxkey resolve

  # Use with jq to get the classified action
  ctxkey resolve --json | jq -r '.action'`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runResolve(resolveJSON)
		},
	}
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Output as JSON")

	rulesCmd := &cobra.Command{
		Use:     "rules",
		Aliases: []string{"r"},
		Short:   "View the classification rule table",
		Long:    `View and inspect the effective classification rule table`,
	}

	rulesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List the effective rules",
		Long: `Display the effective rule table in evaluation order.

User rules from the config file come first, followed by the compiled-in
terminal patterns. The first matching rule wins.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listRules()
		},
	}

	rulesCheckCmd := &cobra.Command{
		Use:   "check <app-id>",
		Short: "Classify an application identifier offline",
		Example: `  ctxkey rules check org.wezfurlong.wezterm
  ctxkey rules check firefox`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return checkRule(args[0])
		},
	}

	rulesCmd.AddCommand(rulesListCmd, rulesCheckCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ctxkey configuration",
		Long:  `Manage the ctxkey configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the ctxkey configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the ctxkey configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for required tools",
		Long: `Report the detected window system backend, the detected injection
tool, and which query/injection tools are present on PATH.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDoctor()
		},
	}

	rootCmd.AddCommand(copyCmd, pasteCmd, resolveCmd)
	rootCmd.AddCommand(rulesCmd, configCmd, doctorCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
