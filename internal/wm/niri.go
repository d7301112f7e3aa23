package wm

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// NiriResolver queries niri via "niri msg --json focused-window".
type NiriResolver struct {
	run runFunc
}

// NewNiri returns a resolver for the niri compositor.
func NewNiri() *NiriResolver {
	return &NiriResolver{run: runCommand}
}

// Name implements Resolver.
func (r *NiriResolver) Name() string { return "niri" }

// Focused implements Resolver.
func (r *NiriResolver) Focused(ctx context.Context) (*Window, error) {
	out, err := r.run(ctx, "niri", "msg", "--json", "focused-window")
	if err != nil {
		return nil, err
	}
	return parseNiriWindow(out)
}

// parseNiriWindow parses the focused-window reply. niri prints the JSON
// literal "null" when no window is focused.
func parseNiriWindow(out []byte) (*Window, error) {
	if !gjson.ValidBytes(out) {
		return nil, fmt.Errorf("niri: invalid JSON reply")
	}
	doc := gjson.ParseBytes(out)
	if doc.Type == gjson.Null {
		return nil, nil
	}
	if !doc.IsObject() {
		return nil, fmt.Errorf("niri: unexpected reply %q", doc.Raw)
	}
	return &Window{
		App:   doc.Get("app_id").String(),
		Title: doc.Get("title").String(),
		PID:   int(doc.Get("pid").Int()),
	}, nil
}
