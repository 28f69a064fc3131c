// Package automation sequences window location, focus, control resolution
// and activation into a single bounded, audited invocation.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mj1618/uipilot/internal/config"
	"github.com/mj1618/uipilot/internal/importlist"
	"github.com/mj1618/uipilot/internal/logging"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
	"github.com/spf13/afero"
)

// Mode selects how far the pipeline runs.
type Mode string

const (
	// ModeFull locates, focuses, resolves and activates.
	ModeFull Mode = "full"
	// ModeFocusOnly stops after focusing.
	ModeFocusOnly Mode = "focus_only"
	// ModeLocateOnly makes a single locate poll.
	ModeLocateOnly Mode = "locate_only"

	modeImport = "import"
)

// Status tokens printed by check_running.
const (
	TokenRunning    = "RUNNING"
	TokenNotRunning = "NOT_RUNNING"
)

// RunningToken returns the status token for a check_running result.
func RunningToken(running bool) string {
	if running {
		return TokenRunning
	}
	return TokenNotRunning
}

// Request describes one invocation.
type Request struct {
	Mode   Mode
	Target model.Target
	// Polls overrides the locate budget. Zero selects the configured budget
	// for the mode.
	Polls int
}

// Orchestrator runs invocations against one platform provider. It holds no
// state between runs; concurrent runs against the same target window must be
// serialized by the caller.
type Orchestrator struct {
	provider *platform.Provider
	caps     platform.Capabilities
	cfg      config.Config
	clock    Clock
	log      *slog.Logger
	fs       afero.Fs
	newID    func() string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option { return func(o *Orchestrator) { o.clock = c } }

// WithLogger replaces the default component logger.
func WithLogger(l *slog.Logger) Option { return func(o *Orchestrator) { o.log = l } }

// WithFS replaces the filesystem used for the import list.
func WithFS(fs afero.Fs) Option { return func(o *Orchestrator) { o.fs = fs } }

// WithIDFunc replaces the run ID generator.
func WithIDFunc(f func() string) Option { return func(o *Orchestrator) { o.newID = f } }

// New returns an Orchestrator for the provider's resolved capabilities.
func New(p *platform.Provider, cfg config.Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		provider: p,
		caps:     p.Capabilities,
		cfg:      cfg,
		clock:    RealClock(),
		log:      logging.New("automation"),
		fs:       afero.NewOsFs(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Capabilities returns the capability descriptor the orchestrator runs with.
func (o *Orchestrator) Capabilities() platform.Capabilities { return o.caps }

// invocation accumulates the result of one run.
type invocation struct {
	res   model.InvocationResult
	trail *Trail
}

func (o *Orchestrator) begin(mode, target string) *invocation {
	inv := &invocation{
		res: model.InvocationResult{
			RunID:  o.newID(),
			Mode:   mode,
			Target: target,
			States: []model.State{},
		},
		trail: NewTrail(o.clock),
	}
	o.log.Debug("invocation started", "run_id", inv.res.RunID, "mode", mode, "target", target)
	return inv
}

func (inv *invocation) enter(s model.State) {
	inv.res.State = s
	inv.res.States = append(inv.res.States, s)
}

func (inv *invocation) fail(err error) {
	inv.res.Success = false
	if err != nil {
		inv.res.Error = err.Error()
	}
	inv.enter(model.StateFailed)
}

func (inv *invocation) succeed() {
	inv.res.Success = true
	inv.enter(model.StateSucceeded)
}

func (o *Orchestrator) finish(inv *invocation) model.InvocationResult {
	inv.res.Attempts = inv.trail.Records()
	if inv.res.Attempts == nil {
		inv.res.Attempts = []model.AttemptRecord{}
	}
	inv.res.Elapsed = inv.trail.Elapsed()
	o.log.Info("invocation finished",
		"run_id", inv.res.RunID, "state", inv.res.State, "success", inv.res.Success,
		"attempts", len(inv.res.Attempts), "elapsed", inv.res.Elapsed)
	return inv.res
}

// Run executes one invocation and returns its result. It never panics on
// backend failure; every problem is reflected in the returned trail.
func (o *Orchestrator) Run(ctx context.Context, req Request) model.InvocationResult {
	inv := o.begin(string(req.Mode), req.Target.Name)
	o.pipeline(ctx, req, inv)
	return o.finish(inv)
}

// CheckRunning makes a single locate poll.
func (o *Orchestrator) CheckRunning(ctx context.Context) (bool, model.InvocationResult) {
	res := o.Run(ctx, Request{Mode: ModeLocateOnly})
	return res.Success, res
}

// ImportVideos validates a JSON array of paths, writes the existing ones to
// the import list file, then runs the full pipeline against the import
// control. Invalid input fails before any window is searched.
func (o *Orchestrator) ImportVideos(ctx context.Context, pathsJSON string) model.InvocationResult {
	target := o.cfg.Targets.Import
	inv := o.begin(modeImport, target.Name)

	paths, err := importlist.Parse(pathsJSON)
	if err != nil {
		e := newError(KindInvalidInput, "parse_paths", err)
		inv.trail.Failure(model.StageImport, "parse_paths", e)
		inv.fail(e)
		return o.finish(inv)
	}
	inv.trail.Success(model.StageImport, "parse_paths", "%d paths", len(paths))

	valid, missing := importlist.Validate(o.fs, paths)
	for _, p := range missing {
		o.log.Warn("skipping missing file", "path", p)
	}
	if len(valid) == 0 {
		e := newError(KindInvalidInput, "validate_paths", fmt.Errorf("none of %d paths exists", len(paths)))
		inv.trail.Failure(model.StageImport, "validate_paths", e)
		inv.fail(e)
		return o.finish(inv)
	}
	if len(missing) > 0 {
		inv.trail.Success(model.StageImport, "validate_paths", "kept %d of %d; missing: %s", len(valid), len(paths), strings.Join(missing, ", "))
	} else {
		inv.trail.Success(model.StageImport, "validate_paths", "kept %d of %d", len(valid), len(paths))
	}

	file := o.cfg.Import.ListFile
	if err := importlist.Write(o.fs, file, valid); err != nil {
		e := newError(KindActionFailed, "write_list", err)
		inv.trail.Failure(model.StageImport, "write_list", e)
		inv.fail(e)
		return o.finish(inv)
	}
	inv.trail.Success(model.StageImport, "write_list", "%d paths written to %s", len(valid), file)
	o.log.Info("import list written", "file", file, "paths", len(valid))

	o.pipeline(ctx, Request{Mode: ModeFull, Target: target}, inv)
	return o.finish(inv)
}

// pipeline walks the state machine:
// searching -> found -> focusing -> verified|unverified -> resolving ->
// resolved|not_resolved -> acting -> succeeded|failed.
func (o *Orchestrator) pipeline(ctx context.Context, req Request, inv *invocation) {
	p := o.provider
	cfg := o.cfg

	polls := req.Polls
	if polls == 0 {
		switch req.Mode {
		case ModeLocateOnly:
			polls = 1
		case ModeFocusOnly:
			polls = cfg.Window.FocusOnlyAttempts
		default:
			polls = cfg.Window.MaxAttempts
		}
	}

	inv.enter(model.StateSearching)
	locator := NewLocator(p.Windows, o.clock, inv.trail, o.log.With("stage", model.StageLocate))
	w, err := locator.Locate(ctx, cfg.Window.Signatures, polls, cfg.Window.PollInterval)
	if err != nil {
		inv.fail(err)
		return
	}
	inv.res.Window = &w
	inv.enter(model.StateFound)
	if req.Mode == ModeLocateOnly {
		inv.succeed()
		return
	}

	inv.enter(model.StateFocusing)
	var attacher platform.InputAttacher
	if o.caps.InputAttach {
		attacher = p.Attacher
	}
	focus := NewFocusCoordinator(p.Windows, attacher, o.clock, inv.trail, o.log.With("stage", model.StageFocus),
		cfg.Focus.Backoff, cfg.Focus.StepDelay)
	status := focus.BringToFront(ctx, w, cfg.Focus.MaxAttempts)
	inv.res.Focus = status
	if status == model.FocusVerified {
		inv.enter(model.StateVerified)
	} else {
		inv.enter(model.StateUnverified)
	}
	if err := ctx.Err(); err != nil {
		inv.fail(cancelled("focus", err))
		return
	}
	if req.Mode == ModeFocusOnly {
		inv.succeed()
		return
	}

	inv.enter(model.StateResolving)
	var (
		controls platform.ControlTree
		inputter platform.Inputter
	)
	if o.caps.Controls {
		controls = p.Controls
	}
	if o.caps.Input {
		inputter = p.Inputter
	}
	resolver := NewResolver(p.Windows, controls, inputter, inv.trail, o.log.With("stage", model.StageResolve))
	c, err := resolver.Resolve(ctx, w, req.Target)
	if err != nil {
		inv.enter(model.StateNotResolved)
		inv.fail(err)
		return
	}
	inv.res.Control = &c
	inv.enter(model.StateResolved)

	inv.enter(model.StateActing)
	exec := NewExecutor(controls, inputter, o.clock, inv.trail, o.log.With("stage", model.StageAct), cfg.Action.SettleDelay)
	if err := exec.Activate(ctx, c); err != nil {
		inv.fail(err)
		return
	}
	inv.succeed()
}
