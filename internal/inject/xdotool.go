package inject

import (
	"context"
	"strings"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
)

// XdotoolInjector synthesizes chords on X11 via "xdotool key".
type XdotoolInjector struct {
	run runFunc
}

// Name implements Injector.
func (i *XdotoolInjector) Name() string { return InjectorXdotool }

// Press implements Injector.
func (i *XdotoolInjector) Press(ctx context.Context, c chord.Chord) error {
	return i.run(ctx, "xdotool", buildXdotoolArgs(c)...)
}

// buildXdotoolArgs renders a chord in xdotool's native combo syntax.
// --clearmodifiers keeps whatever the user is physically holding from
// leaking into the synthesized event.
func buildXdotoolArgs(c chord.Chord) []string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Super {
		parts = append(parts, "super")
	}
	parts = append(parts, keysym(c.Key))
	return []string{"key", "--clearmodifiers", strings.Join(parts, "+")}
}
