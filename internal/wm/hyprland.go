package wm

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// HyprlandResolver queries Hyprland via "hyprctl -j activewindow".
type HyprlandResolver struct {
	run runFunc
}

// NewHyprland returns a resolver for the Hyprland compositor.
func NewHyprland() *HyprlandResolver {
	return &HyprlandResolver{run: runCommand}
}

// Name implements Resolver.
func (r *HyprlandResolver) Name() string { return "hyprland" }

// Focused implements Resolver.
func (r *HyprlandResolver) Focused(ctx context.Context) (*Window, error) {
	out, err := r.run(ctx, "hyprctl", "-j", "activewindow")
	if err != nil {
		return nil, err
	}
	return parseHyprlandWindow(out)
}

// parseHyprlandWindow parses the activewindow reply. With no focused
// window hyprctl prints an empty object (older versions print nothing).
func parseHyprlandWindow(out []byte) (*Window, error) {
	if len(out) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(out) {
		return nil, fmt.Errorf("hyprctl: invalid JSON reply")
	}
	doc := gjson.ParseBytes(out)
	if !doc.IsObject() {
		return nil, fmt.Errorf("hyprctl: unexpected reply %q", doc.Raw)
	}
	cls := doc.Get("class")
	if !cls.Exists() {
		return nil, nil
	}
	w := &Window{
		App:   cls.String(),
		Title: doc.Get("title").String(),
		PID:   int(doc.Get("pid").Int()),
	}
	fillAppFromPID(w)
	return w, nil
}
