package wm

import (
	"context"
	"strings"
)

// frontmostScript asks System Events for the frontmost application
// process and its front window title, separated by a newline. The title
// lookup is wrapped in a try block because some processes expose no
// windows to the accessibility API.
const frontmostScript = `
tell application "System Events"
	set frontApp to first application process whose frontmost is true
	set appName to name of frontApp
	set unixID to unix id of frontApp
	set windowTitle to ""
	try
		tell frontApp
			set windowTitle to name of front window
		end tell
	end try
	return appName & "\n" & unixID & "\n" & windowTitle
end tell
`

// DarwinResolver queries the frontmost application on macOS via
// osascript.
type DarwinResolver struct {
	run runFunc
}

// NewDarwin returns a resolver for macOS.
func NewDarwin() *DarwinResolver {
	return &DarwinResolver{run: runCommand}
}

// Name implements Resolver.
func (r *DarwinResolver) Name() string { return "darwin" }

// Focused implements Resolver.
func (r *DarwinResolver) Focused(ctx context.Context) (*Window, error) {
	out, err := r.run(ctx, "osascript", "-e", frontmostScript)
	if err != nil {
		return nil, err
	}
	return parseOsascriptOutput(out), nil
}

func parseOsascriptOutput(out []byte) *Window {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}
	w := &Window{App: strings.TrimSpace(lines[0])}
	if len(lines) > 1 {
		w.PID = atoiSafe(strings.TrimSpace(lines[1]))
	}
	if len(lines) > 2 {
		w.Title = lines[2]
	}
	return w
}
