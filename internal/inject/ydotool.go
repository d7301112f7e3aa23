package inject

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
)

// YdotoolInjector synthesizes chords through the ydotool daemon. Unlike
// the other backends ydotool speaks raw linux input event codes, so the
// chord is lowered to keycode:state pairs.
type YdotoolInjector struct {
	run runFunc
}

// Name implements Injector.
func (i *YdotoolInjector) Name() string { return InjectorYdotool }

// Press implements Injector.
func (i *YdotoolInjector) Press(ctx context.Context, c chord.Chord) error {
	args, err := buildYdotoolArgs(c)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return i.run(ctx, "ydotool", args...)
}

// Modifier keycodes from linux/input-event-codes.h.
const (
	codeLeftCtrl  = 29
	codeLeftShift = 42
	codeLeftAlt   = 56
	codeLeftMeta  = 125
)

// keycodes maps chord key names to linux input event codes.
var keycodes = map[string]int{
	"a": 30, "b": 48, "c": 46, "d": 32, "e": 18, "f": 33, "g": 34,
	"h": 35, "i": 23, "j": 36, "k": 37, "l": 38, "m": 50, "n": 49,
	"o": 24, "p": 25, "q": 16, "r": 19, "s": 31, "t": 20, "u": 22,
	"v": 47, "w": 17, "x": 45, "y": 21, "z": 44,
	"1": 2, "2": 3, "3": 4, "4": 5, "5": 6, "6": 7, "7": 8, "8": 9,
	"9": 10, "0": 11,
	"enter": 28, "escape": 1, "space": 57, "tab": 15, "backspace": 14,
	"delete": 111, "insert": 110,
	"up": 103, "down": 108, "left": 105, "right": 106,
	"home": 102, "end": 107, "pageup": 104, "pagedown": 109,
}

// buildYdotoolArgs lowers a chord to "ydotool key" keycode:state pairs:
// modifiers down, key down, key up, modifiers up in reverse order.
func buildYdotoolArgs(c chord.Chord) ([]string, error) {
	code, ok := keycodes[c.Key]
	if !ok {
		return nil, fmt.Errorf("no input event code for key %q", c.Key)
	}

	var mods []int
	if c.Ctrl {
		mods = append(mods, codeLeftCtrl)
	}
	if c.Alt {
		mods = append(mods, codeLeftAlt)
	}
	if c.Shift {
		mods = append(mods, codeLeftShift)
	}
	if c.Super {
		mods = append(mods, codeLeftMeta)
	}

	args := []string{"key"}
	for _, m := range mods {
		args = append(args, keyEvent(m, 1))
	}
	args = append(args, keyEvent(code, 1), keyEvent(code, 0))
	for idx := len(mods) - 1; idx >= 0; idx-- {
		args = append(args, keyEvent(mods[idx], 0))
	}
	return args, nil
}

func keyEvent(code, state int) string {
	return strconv.Itoa(code) + ":" + strconv.Itoa(state)
}
