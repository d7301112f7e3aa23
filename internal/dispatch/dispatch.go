// Package dispatch implements the context-aware dispatch pipeline:
// resolve the focused window, classify it, and inject the chord bound to
// the classification.
//
// Failure semantics follow the "always send some chord" requirement:
// focus and query failures degrade to the default action, and only
// injection failure is surfaced to the caller.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/ctxkey/internal/classify"
	"github.com/Gaurav-Gosain/ctxkey/internal/config"
	"github.com/Gaurav-Gosain/ctxkey/internal/inject"
	"github.com/Gaurav-Gosain/ctxkey/internal/wm"
)

// Options configures a Dispatcher.
type Options struct {
	Resolver wm.Resolver     // nil when backend detection failed; treated as absent focus
	Injector inject.Injector // required unless DryRun
	Config   *config.UserConfig
	Logger   *log.Logger
	DryRun   bool      // print the chord instead of injecting it
	Out      io.Writer // dry-run output, defaults to stdout
}

// Dispatcher runs one dispatch per invocation. It holds no state across
// runs; every Run is a pure function of the focus snapshot and the rule
// table.
type Dispatcher struct {
	resolver wm.Resolver
	injector inject.Injector
	cfg      *config.UserConfig
	logger   *log.Logger
	dryRun   bool
	out      io.Writer
}

// New creates a Dispatcher.
func New(opts Options) *Dispatcher {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Dispatcher{
		resolver: opts.Resolver,
		injector: opts.Injector,
		cfg:      cfg,
		logger:   logger,
		dryRun:   opts.DryRun,
		out:      out,
	}
}

// Resolution is the outcome of resolving and classifying the focus
// snapshot, before injection.
type Resolution struct {
	Backend string          `json:"backend,omitempty"`
	Window  *wm.Window      `json:"window"` // nil when no window is focused
	Action  classify.Action `json:"action"`
}

// Resolve queries the focused window and classifies it. Query failures
// are logged and degrade to an absent window; the returned Resolution is
// always usable.
func (d *Dispatcher) Resolve(ctx context.Context) Resolution {
	res := Resolution{Action: classify.ActionDefault}
	if d.resolver == nil {
		d.logger.Warn("no window system backend available, using default action")
		return res
	}
	res.Backend = d.resolver.Name()

	win, err := d.resolver.Focused(ctx)
	if err != nil {
		d.logger.Warn("focused-window query failed, using default action", "backend", res.Backend, "err", err)
		return res
	}
	if win == nil {
		d.logger.Debug("no focused window", "backend", res.Backend)
		return res
	}

	res.Window = win
	res.Action = classify.Classify(win.App, d.cfg.EffectiveRules())
	d.logger.Debug("classified focused window", "app", win.App, "action", res.Action)
	return res
}

// Run performs one dispatch of the given operation (config.OpCopy or
// config.OpPaste). It returns an error only when the chord could not be
// delivered; the degraded default-action path is a success.
func (d *Dispatcher) Run(ctx context.Context, op string) error {
	res := d.Resolve(ctx)

	c, err := d.cfg.ChordFor(res.Action, op)
	if err != nil {
		return err
	}

	if d.dryRun {
		fmt.Fprintln(d.out, c.String())
		return nil
	}
	if d.injector == nil {
		return fmt.Errorf("%w: no injector configured", inject.ErrUnavailable)
	}

	d.logger.Debug("injecting chord", "chord", c.String(), "injector", d.injector.Name())
	if err := d.injector.Press(ctx, c); err != nil {
		return fmt.Errorf("dispatch %s: %w", op, err)
	}
	return nil
}
