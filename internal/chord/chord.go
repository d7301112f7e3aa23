// Package chord models key-chords: a set of modifiers plus a single base
// key, parsed from the "ctrl+shift+c" notation used in config files and
// rendered per injection backend.
package chord

import (
	"fmt"
	"strings"
)

// Chord is a simultaneous combination of modifier keys and one base key.
type Chord struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Super bool
	Key   string
}

// specialKeys are multi-character key names accepted by Parse. The values
// are the canonical spellings understood by the injection backends.
var specialKeys = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"space":     "space",
	"tab":       "tab",
	"escape":    "escape",
	"esc":       "escape",
	"backspace": "backspace",
	"delete":    "delete",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pageup":    "pageup",
	"pagedown":  "pagedown",
	"insert":    "insert",
}

// Parse converts a "ctrl+shift+c" style string into a Chord. Modifier
// names are case-insensitive; "opt" and "option" are aliases for alt,
// "cmd", "meta" and "win" for super. Exactly one non-modifier key is
// required.
func Parse(s string) (Chord, error) {
	var c Chord
	if strings.TrimSpace(s) == "" {
		return c, fmt.Errorf("empty key chord")
	}

	parts := strings.Split(s, "+")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Chord{}, fmt.Errorf("malformed key chord %q", s)
		}
		switch strings.ToLower(part) {
		case "ctrl", "control":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt", "opt", "option":
			c.Alt = true
		case "super", "cmd", "meta", "win":
			c.Super = true
		default:
			if c.Key != "" {
				return Chord{}, fmt.Errorf("key chord %q has multiple base keys (%q and %q)", s, c.Key, part)
			}
			if len(part) == 1 {
				c.Key = strings.ToLower(part)
				continue
			}
			canonical, ok := specialKeys[strings.ToLower(part)]
			if !ok {
				return Chord{}, fmt.Errorf("unknown key %q in chord %q", part, s)
			}
			c.Key = canonical
		}
	}

	if c.Key == "" {
		return Chord{}, fmt.Errorf("key chord %q has no base key", s)
	}
	return c, nil
}

// MustParse is Parse for compiled-in chord tables. It panics on error, so
// it must only be used with literal inputs.
func MustParse(s string) Chord {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the chord in canonical ctrl+alt+shift+super+key order.
func (c Chord) String() string {
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
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}
