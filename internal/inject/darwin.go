package inject

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
)

// DarwinInjector synthesizes chords on macOS through System Events.
type DarwinInjector struct {
	run runFunc
}

// Name implements Injector.
func (i *DarwinInjector) Name() string { return InjectorDarwin }

// Press implements Injector.
func (i *DarwinInjector) Press(ctx context.Context, c chord.Chord) error {
	script, err := buildKeystrokeScript(c)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return i.run(ctx, "osascript", "-e", script)
}

// keyCodesDarwin maps special keys to macOS virtual key codes, used when
// AppleScript's "keystroke" cannot express the key as a character.
var keyCodesDarwin = map[string]int{
	"enter":     36,
	"tab":       48,
	"space":     49,
	"escape":    53,
	"backspace": 51,
	"delete":    117,
	"left":      123,
	"right":     124,
	"down":      125,
	"up":        126,
	"home":      115,
	"end":       119,
	"pageup":    116,
	"pagedown":  121,
}

// buildKeystrokeScript renders a chord as a System Events one-liner.
// Single characters use "keystroke"; special keys use "key code".
func buildKeystrokeScript(c chord.Chord) (string, error) {
	var using []string
	if c.Ctrl {
		using = append(using, "control down")
	}
	if c.Alt {
		using = append(using, "option down")
	}
	if c.Shift {
		using = append(using, "shift down")
	}
	if c.Super {
		using = append(using, "command down")
	}

	var stroke string
	if len(c.Key) == 1 {
		stroke = fmt.Sprintf("keystroke %q", c.Key)
	} else {
		code, ok := keyCodesDarwin[c.Key]
		if !ok {
			return "", fmt.Errorf("no macOS key code for key %q", c.Key)
		}
		stroke = fmt.Sprintf("key code %d", code)
	}

	if len(using) > 0 {
		stroke += " using {" + strings.Join(using, ", ") + "}"
	}
	return `tell application "System Events" to ` + stroke, nil
}
