package inject

import (
	"context"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
)

// WtypeInjector synthesizes chords on Wayland via wtype's virtual
// keyboard protocol.
type WtypeInjector struct {
	run runFunc
}

// Name implements Injector.
func (i *WtypeInjector) Name() string { return InjectorWtype }

// Press implements Injector.
func (i *WtypeInjector) Press(ctx context.Context, c chord.Chord) error {
	return i.run(ctx, "wtype", buildWtypeArgs(c)...)
}

// buildWtypeArgs renders a chord as wtype arguments: -M presses a
// modifier, -k taps the key, -m releases. Modifiers are released in
// reverse press order.
func buildWtypeArgs(c chord.Chord) []string {
	mods := wtypeModifiers(c)
	args := make([]string, 0, len(mods)*4+2)
	for _, m := range mods {
		args = append(args, "-M", m)
	}
	args = append(args, "-k", keysym(c.Key))
	for idx := len(mods) - 1; idx >= 0; idx-- {
		args = append(args, "-m", mods[idx])
	}
	return args
}

func wtypeModifiers(c chord.Chord) []string {
	var mods []string
	if c.Ctrl {
		mods = append(mods, "ctrl")
	}
	if c.Alt {
		mods = append(mods, "alt")
	}
	if c.Shift {
		mods = append(mods, "shift")
	}
	if c.Super {
		mods = append(mods, "logo")
	}
	return mods
}
