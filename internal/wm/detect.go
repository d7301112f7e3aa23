package wm

import (
	"fmt"
	"os"
	"runtime"
)

// Backend names accepted by New and the --backend flag.
const (
	BackendAuto     = "auto"
	BackendNiri     = "niri"
	BackendHyprland = "hyprland"
	BackendSway     = "sway"
	BackendX11      = "x11"
	BackendDarwin   = "darwin"
)

// Backends lists the selectable backend names in detection order.
func Backends() []string {
	return []string{BackendNiri, BackendHyprland, BackendSway, BackendX11, BackendDarwin}
}

// New returns the resolver for an explicitly named backend, or the
// auto-detected one for "auto" / "".
func New(name string) (Resolver, error) {
	switch name {
	case "", BackendAuto:
		return Detect()
	case BackendNiri:
		return NewNiri(), nil
	case BackendHyprland:
		return NewHyprland(), nil
	case BackendSway:
		return NewSway(), nil
	case BackendX11:
		return NewX11(), nil
	case BackendDarwin:
		return NewDarwin(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (available: auto, %s, %s, %s, %s, %s)",
			name, BackendNiri, BackendHyprland, BackendSway, BackendX11, BackendDarwin)
	}
}

// Detect picks a resolver from the session environment. Compositor
// sockets are checked before the generic display variables because a
// nested X server sets DISPLAY under Wayland too.
func Detect() (Resolver, error) {
	return detect(runtime.GOOS, os.Getenv)
}

func detect(goos string, getenv func(string) string) (Resolver, error) {
	if goos == "darwin" {
		return NewDarwin(), nil
	}
	switch {
	case getenv("NIRI_SOCKET") != "":
		return NewNiri(), nil
	case getenv("HYPRLAND_INSTANCE_SIGNATURE") != "":
		return NewHyprland(), nil
	case getenv("SWAYSOCK") != "":
		return NewSway(), nil
	case getenv("WAYLAND_DISPLAY") != "":
		return nil, fmt.Errorf("unsupported wayland compositor: no focused-window query available")
	case getenv("DISPLAY") != "":
		return NewX11(), nil
	}
	return nil, fmt.Errorf("no graphical session detected")
}
