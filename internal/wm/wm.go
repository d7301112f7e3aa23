// Package wm resolves the identity of the currently focused window.
//
// Each supported window system gets its own Resolver backed by that
// system's query tool (niri msg, hyprctl, swaymsg, xdotool, osascript).
// Backends shell out and parse the tool's output; the command runner is
// injectable so parsing is tested without executing anything.
package wm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// QueryTimeout bounds a single focused-window query. A hung compositor
// must not block the dispatch path.
const QueryTimeout = 2 * time.Second

// Window is a snapshot of the focused window's identity. App may be
// empty when the compositor cannot report an identifier.
type Window struct {
	App   string `json:"app"`
	Title string `json:"title,omitempty"`
	PID   int    `json:"pid,omitempty"`
}

// Resolver queries the window system for the focused window.
//
// Focused returns (nil, nil) when no window is focused: that is a
// legitimate state, not an error. A non-nil error means the query tool
// failed or produced unparseable output.
type Resolver interface {
	Name() string
	Focused(ctx context.Context) (*Window, error)
}

// runFunc executes a query tool and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand is the production runFunc.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%s is not installed: %w", name, err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %s", name, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
