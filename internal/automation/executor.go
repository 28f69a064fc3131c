package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
)

// Executor activates a resolved candidate and waits for the UI to settle.
type Executor struct {
	controls platform.ControlTree
	inputter platform.Inputter
	clock    Clock
	trail    *Trail
	log      *slog.Logger
	settle   time.Duration
}

// NewExecutor returns an Executor.
func NewExecutor(controls platform.ControlTree, inputter platform.Inputter, clock Clock, trail *Trail, log *slog.Logger, settle time.Duration) *Executor {
	return &Executor{controls: controls, inputter: inputter, clock: clock, trail: trail, log: log, settle: settle}
}

// Activate invokes a real control natively or clicks a coordinate candidate,
// then waits the settle delay. It appends exactly one record.
func (e *Executor) Activate(ctx context.Context, c model.ControlCandidate) error {
	method := "pointer_click"
	if c.HasBounds() {
		method = "native_invoke"
	}
	e.log.Info("activating control", "name", c.Name, "method", method, "x", c.Point.X, "y", c.Point.Y)

	if err := e.perform(c); err != nil {
		ae := newError(KindActionFailed, method, err)
		e.log.Warn("activation failed", "error", err)
		e.trail.Failure(model.StageAct, method, ae)
		return ae
	}
	if err := e.clock.Sleep(ctx, e.settle); err != nil {
		ce := cancelled(method, fmt.Errorf("activated, settle interrupted: %w", err))
		e.trail.Failure(model.StageAct, method, ce)
		return ce
	}
	e.trail.Success(model.StageAct, method, "%q activated at (%d,%d)", c.Name, c.Point.X, c.Point.Y)
	return nil
}

func (e *Executor) perform(c model.ControlCandidate) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()

	if c.HasBounds() {
		if e.controls == nil {
			return errors.New("backend cannot invoke controls")
		}
		return e.controls.Invoke(*c.Control)
	}
	if e.inputter == nil {
		return errors.New("backend has no pointer input")
	}
	if err := e.inputter.MoveMouse(c.Point.X, c.Point.Y); err != nil {
		return fmt.Errorf("move pointer: %w", err)
	}
	if err := e.inputter.Click(c.Point.X, c.Point.Y, platform.MouseLeft, 1); err != nil {
		return fmt.Errorf("click: %w", err)
	}
	return nil
}
