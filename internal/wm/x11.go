package wm

import (
	"context"
	"strconv"
	"strings"
)

// X11Resolver queries the active window through xdotool. xdotool chains
// subcommands, so class, title and pid come back from a single
// invocation as one line each.
type X11Resolver struct {
	run runFunc
}

// NewX11 returns a resolver for X11 sessions.
func NewX11() *X11Resolver {
	return &X11Resolver{run: runCommand}
}

// Name implements Resolver.
func (r *X11Resolver) Name() string { return "x11" }

// Focused implements Resolver.
func (r *X11Resolver) Focused(ctx context.Context) (*Window, error) {
	out, err := r.run(ctx, "xdotool",
		"getactivewindow", "getwindowclassname", "getwindowname", "getwindowpid")
	if err != nil {
		// xdotool exits non-zero when no window has focus. That is the
		// absent case, not a query failure.
		if strings.Contains(err.Error(), "XGetInputFocus") ||
			strings.Contains(err.Error(), "failed") {
			return nil, nil
		}
		return nil, err
	}
	return parseXdotoolOutput(out), nil
}

// parseXdotoolOutput splits the chained subcommand output. Lines arrive
// in invocation order; missing trailing lines mean the property was not
// set on the window.
func parseXdotoolOutput(out []byte) *Window {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	w := &Window{}
	if len(lines) > 0 {
		w.App = strings.TrimSpace(lines[0])
	}
	if len(lines) > 1 {
		w.Title = lines[1]
	}
	if len(lines) > 2 {
		if pid, err := strconv.Atoi(strings.TrimSpace(lines[2])); err == nil {
			w.PID = pid
		}
	}
	fillAppFromPID(w)
	return w
}
