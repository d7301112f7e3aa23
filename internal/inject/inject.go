// Package inject synthesizes key-chords through the platform
// input-injection tool: wtype (Wayland), ydotool (Wayland fallback),
// xdotool (X11) or osascript (macOS).
//
// Injection is the only fatal failure class in the dispatch path, so
// tool errors are wrapped with ErrUnavailable for the caller's exit-code
// decision. Argv construction is kept in pure functions per backend.
package inject

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/Gaurav-Gosain/ctxkey/internal/chord"
)

// ErrUnavailable marks an injection facility that cannot be reached:
// the tool is missing or refused the synthesis request.
var ErrUnavailable = errors.New("input injection unavailable")

// PressTimeout bounds a single injection call.
const PressTimeout = 2 * time.Second

// Injector synthesizes a key-chord as a single input event.
type Injector interface {
	Name() string
	Press(ctx context.Context, c chord.Chord) error
}

// Injector names accepted by New and the --injector flag.
const (
	InjectorAuto    = "auto"
	InjectorWtype   = "wtype"
	InjectorYdotool = "ydotool"
	InjectorXdotool = "xdotool"
	InjectorDarwin  = "osascript"
)

// Injectors lists the selectable injector names.
func Injectors() []string {
	return []string{InjectorWtype, InjectorYdotool, InjectorXdotool, InjectorDarwin}
}

// New returns the injector for an explicitly named tool, or the
// auto-detected one for "auto" / "".
func New(name string) (Injector, error) {
	switch name {
	case "", InjectorAuto:
		return Detect()
	case InjectorWtype:
		return &WtypeInjector{run: runTool}, nil
	case InjectorYdotool:
		return &YdotoolInjector{run: runTool}, nil
	case InjectorXdotool:
		return &XdotoolInjector{run: runTool}, nil
	case InjectorDarwin:
		return &DarwinInjector{run: runTool}, nil
	default:
		return nil, fmt.Errorf("unknown injector %q (available: auto, %s)",
			name, strings.Join(Injectors(), ", "))
	}
}

// Detect picks an injector from the session environment and the tools
// actually present on PATH.
func Detect() (Injector, error) {
	return detect(runtime.GOOS, os.Getenv, exec.LookPath)
}

func detect(goos string, getenv func(string) string, lookPath func(string) (string, error)) (Injector, error) {
	if goos == "darwin" {
		return &DarwinInjector{run: runTool}, nil
	}
	if getenv("WAYLAND_DISPLAY") != "" {
		if _, err := lookPath("wtype"); err == nil {
			return &WtypeInjector{run: runTool}, nil
		}
		if _, err := lookPath("ydotool"); err == nil {
			return &YdotoolInjector{run: runTool}, nil
		}
		return nil, fmt.Errorf("%w: neither wtype nor ydotool found on PATH", ErrUnavailable)
	}
	if getenv("DISPLAY") != "" {
		if _, err := lookPath("xdotool"); err == nil {
			return &XdotoolInjector{run: runTool}, nil
		}
		return nil, fmt.Errorf("%w: xdotool not found on PATH", ErrUnavailable)
	}
	return nil, fmt.Errorf("%w: no graphical session detected", ErrUnavailable)
}

// runFunc executes an injection tool.
type runFunc func(ctx context.Context, name string, args ...string) error

// runTool is the production runFunc. All failures are wrapped with
// ErrUnavailable: if the tool cannot run, the chord was not delivered.
func runTool(ctx context.Context, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, PressTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s is not installed", ErrUnavailable, name)
		}
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s: %s", ErrUnavailable, name, msg)
		}
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}
	return nil
}

// keysyms maps canonical special key names to X keysym names, shared by
// the wtype and xdotool backends.
var keysyms = map[string]string{
	"enter":     "Return",
	"space":     "space",
	"tab":       "Tab",
	"escape":    "Escape",
	"backspace": "BackSpace",
	"delete":    "Delete",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "Page_Up",
	"pagedown":  "Page_Down",
	"insert":    "Insert",
}

func keysym(key string) string {
	if s, ok := keysyms[key]; ok {
		return s
	}
	return key
}
