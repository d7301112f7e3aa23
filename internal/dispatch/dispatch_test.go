package dispatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
	"github.com/Gaurav-Gosain/ctxkey/internal/classify"
	"github.com/Gaurav-Gosain/ctxkey/internal/config"
	"github.com/Gaurav-Gosain/ctxkey/internal/inject"
	"github.com/Gaurav-Gosain/ctxkey/internal/wm"
)

type fakeResolver struct {
	win *wm.Window
	err error
}

func (r *fakeResolver) Name() string { return "fake" }

func (r *fakeResolver) Focused(context.Context) (*wm.Window, error) {
	return r.win, r.err
}

type fakeInjector struct {
	pressed []chord.Chord
	err     error
}

func (i *fakeInjector) Name() string { return "fake" }

func (i *fakeInjector) Press(_ context.Context, c chord.Chord) error {
	i.pressed = append(i.pressed, c)
	return i.err
}

func TestRunInjectsTerminalChord(t *testing.T) {
	inj := &fakeInjector{}
	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "org.wezfurlong.wezterm"}},
		Injector: inj,
	})

	if err := d.Run(context.Background(), config.OpCopy); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := chord.MustParse("ctrl+shift+c")
	if len(inj.pressed) != 1 || inj.pressed[0] != want {
		t.Errorf("pressed = %+v, want [%+v]", inj.pressed, want)
	}
}

func TestRunInjectsDefaultChord(t *testing.T) {
	inj := &fakeInjector{}
	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "firefox"}},
		Injector: inj,
	})

	if err := d.Run(context.Background(), config.OpPaste); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := chord.MustParse("ctrl+v")
	if len(inj.pressed) != 1 || inj.pressed[0] != want {
		t.Errorf("pressed = %+v, want [%+v]", inj.pressed, want)
	}
}

func TestRunAbsentFocusDegradesToDefault(t *testing.T) {
	inj := &fakeInjector{}
	d := New(Options{
		Resolver: &fakeResolver{win: nil},
		Injector: inj,
	})

	if err := d.Run(context.Background(), config.OpCopy); err != nil {
		t.Fatalf("absent focus must not fail: %v", err)
	}
	want := chord.MustParse("ctrl+c")
	if len(inj.pressed) != 1 || inj.pressed[0] != want {
		t.Errorf("pressed = %+v, want [%+v]", inj.pressed, want)
	}
}

func TestRunQueryFailureDegradesToDefault(t *testing.T) {
	inj := &fakeInjector{}
	d := New(Options{
		Resolver: &fakeResolver{err: fmt.Errorf("niri is not installed")},
		Injector: inj,
	})

	if err := d.Run(context.Background(), config.OpCopy); err != nil {
		t.Fatalf("query failure must be recovered: %v", err)
	}
	want := chord.MustParse("ctrl+c")
	if len(inj.pressed) != 1 || inj.pressed[0] != want {
		t.Errorf("pressed = %+v, want [%+v]", inj.pressed, want)
	}
}

func TestRunNilResolverDegradesToDefault(t *testing.T) {
	inj := &fakeInjector{}
	d := New(Options{Injector: inj})

	if err := d.Run(context.Background(), config.OpPaste); err != nil {
		t.Fatalf("missing backend must be recovered: %v", err)
	}
	want := chord.MustParse("ctrl+v")
	if len(inj.pressed) != 1 || inj.pressed[0] != want {
		t.Errorf("pressed = %+v, want [%+v]", inj.pressed, want)
	}
}

func TestRunInjectionFailureIsFatal(t *testing.T) {
	inj := &fakeInjector{err: fmt.Errorf("%w: wtype is not installed", inject.ErrUnavailable)}
	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "kitty"}},
		Injector: inj,
	})

	err := d.Run(context.Background(), config.OpCopy)
	if !errors.Is(err, inject.ErrUnavailable) {
		t.Errorf("Run error = %v, want ErrUnavailable", err)
	}
}

func TestRunDryRunPrintsChord(t *testing.T) {
	var out bytes.Buffer
	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "kitty"}},
		DryRun:   true,
		Out:      &out,
	})

	if err := d.Run(context.Background(), config.OpCopy); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if got := out.String(); got != "ctrl+shift+c\n" {
		t.Errorf("dry run output = %q, want %q", got, "ctrl+shift+c\n")
	}
}

func TestRunUnknownOperation(t *testing.T) {
	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "kitty"}},
		Injector: &fakeInjector{},
	})
	if err := d.Run(context.Background(), "cut"); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestResolveReportsClassification(t *testing.T) {
	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "foot", Title: "~", PID: 12}},
	})

	res := d.Resolve(context.Background())
	if res.Backend != "fake" {
		t.Errorf("backend = %q, want fake", res.Backend)
	}
	if res.Window == nil || res.Window.App != "foot" {
		t.Errorf("window = %+v, want foot", res.Window)
	}
	if res.Action != classify.ActionTerminal {
		t.Errorf("action = %q, want terminal", res.Action)
	}
}

func TestResolveUsesConfiguredRules(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Rules = []config.RuleConfig{{Pattern: "emacs", Action: "terminal"}}

	d := New(Options{
		Resolver: &fakeResolver{win: &wm.Window{App: "emacs"}},
		Config:   cfg,
	})

	if res := d.Resolve(context.Background()); res.Action != classify.ActionTerminal {
		t.Errorf("user rule not applied, action = %q", res.Action)
	}
}
