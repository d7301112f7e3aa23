package wm

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// SwayResolver queries sway (or any i3-IPC compositor exposing swaymsg)
// via "swaymsg -t get_tree" and walks the layout tree for the focused
// node.
type SwayResolver struct {
	run runFunc
}

// NewSway returns a resolver for the sway compositor.
func NewSway() *SwayResolver {
	return &SwayResolver{run: runCommand}
}

// Name implements Resolver.
func (r *SwayResolver) Name() string { return "sway" }

// Focused implements Resolver.
func (r *SwayResolver) Focused(ctx context.Context) (*Window, error) {
	out, err := r.run(ctx, "swaymsg", "-t", "get_tree")
	if err != nil {
		return nil, err
	}
	return parseSwayTree(out)
}

// parseSwayTree finds the focused node in the layout tree. Native
// wayland clients carry app_id; XWayland clients carry
// window_properties.class instead.
func parseSwayTree(out []byte) (*Window, error) {
	if !gjson.ValidBytes(out) {
		return nil, fmt.Errorf("swaymsg: invalid JSON reply")
	}
	node := findFocusedNode(gjson.ParseBytes(out))
	if node == nil {
		return nil, nil
	}
	app := node.Get("app_id").String()
	if app == "" {
		app = node.Get("window_properties.class").String()
	}
	w := &Window{
		App:   app,
		Title: node.Get("name").String(),
		PID:   int(node.Get("pid").Int()),
	}
	fillAppFromPID(w)
	return w, nil
}

func findFocusedNode(node gjson.Result) *gjson.Result {
	// Containers (workspaces, splits) are also marked focused; only leaf
	// nodes represent application windows.
	if node.Get("focused").Bool() && len(node.Get("nodes").Array()) == 0 {
		if node.Get("type").String() != "workspace" {
			return &node
		}
	}
	for _, key := range []string{"nodes", "floating_nodes"} {
		for _, child := range node.Get(key).Array() {
			if found := findFocusedNode(child); found != nil {
				return found
			}
		}
	}
	return nil
}
