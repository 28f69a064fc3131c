package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform"
)

var (
	errNoControlTree = errors.New("backend does not expose a control tree")
	errEmptyTarget   = errors.New("target name is empty")
)

// Resolver finds the control to activate using a fixed chain of strategies,
// from exact button match down to clicking fractional window coordinates.
type Resolver struct {
	windows  platform.WindowSystem
	controls platform.ControlTree
	inputter platform.Inputter
	trail    *Trail
	log      *slog.Logger
}

// NewResolver returns a Resolver. controls and inputter may be nil when the
// backend lacks them; the strategies that need them then fail with a reason.
func NewResolver(windows platform.WindowSystem, controls platform.ControlTree, inputter platform.Inputter, trail *Trail, log *slog.Logger) *Resolver {
	return &Resolver{windows: windows, controls: controls, inputter: inputter, trail: trail, log: log}
}

// Resolve runs every strategy in order until one yields a candidate. Each
// strategy tried appends exactly one record.
func (r *Resolver) Resolve(ctx context.Context, w model.Window, target model.Target) (model.ControlCandidate, error) {
	r.log.Info("resolving control", "target", target.Name)

	root, treeErr := r.tree(w.Handle)
	if treeErr != nil {
		r.log.Debug("control tree unavailable", "error", treeErr)
	} else {
		r.log.Debug("control tree read", "controls", root.Count())
	}

	for _, s := range model.Strategies {
		if err := ctx.Err(); err != nil {
			e := cancelled("resolve", err)
			r.trail.Failure(model.StageResolve, s.String(), e)
			return model.ControlCandidate{}, e
		}

		var (
			c   model.ControlCandidate
			err error
		)
		switch s {
		case model.StrategyExactMatch:
			c, err = withTree(root, treeErr, target.Name, exactMatch)
		case model.StrategySubstringScan:
			c, err = withTree(root, treeErr, target.Name, substringScan)
		case model.StrategyTextParentInference:
			c, err = withTree(root, treeErr, target.Name, textParent)
		case model.StrategyProportionalFallback:
			c, err = r.proportional(w, target.Fallback)
		}
		if err != nil {
			r.log.Debug("strategy failed", "strategy", s, "error", err)
			r.trail.Failure(model.StageResolve, s.String(), newError(KindElementNotFound, s.String(), err))
			continue
		}

		c.Strategy = s
		if c.Name == "" {
			c.Name = target.Name
		}
		r.log.Info("control resolved", "strategy", s, "x", c.Point.X, "y", c.Point.Y)
		r.trail.Success(model.StageResolve, s.String(), "%q at (%d,%d)", c.Name, c.Point.X, c.Point.Y)
		return c, nil
	}

	msg := fmt.Sprintf("no strategy matched %q", target.Name)
	if root != nil && len(root.Children) > 0 {
		msg += "; children: " + childSummary(root, maxSummaryChildren)
	}
	return model.ControlCandidate{}, newError(KindElementNotFound, "resolve", errors.New(msg))
}

const maxSummaryChildren = 20

// childSummary lists the names and types of root's immediate children.
func childSummary(root *model.Control, limit int) string {
	parts := make([]string, 0, min(len(root.Children), limit)+1)
	for i, c := range root.Children {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... %d more", len(root.Children)-limit))
			break
		}
		parts = append(parts, fmt.Sprintf("%q (%s)", c.Name, c.Type))
	}
	return strings.Join(parts, ", ")
}

func (r *Resolver) tree(h model.Handle) (*model.Control, error) {
	if r.controls == nil {
		return nil, errNoControlTree
	}
	root, err := r.controls.Controls(h)
	if err != nil {
		return nil, fmt.Errorf("read control tree: %w", err)
	}
	return &root, nil
}

type treeStrategy func(root *model.Control, name string) (*model.Control, bool)

func withTree(root *model.Control, treeErr error, name string, find treeStrategy) (model.ControlCandidate, error) {
	if treeErr != nil {
		return model.ControlCandidate{}, treeErr
	}
	if name == "" {
		return model.ControlCandidate{}, errEmptyTarget
	}
	el, ok := find(root, name)
	if !ok {
		return model.ControlCandidate{}, fmt.Errorf("no match for %q among %d controls", name, root.Count())
	}
	return candidateFor(el), nil
}

func candidateFor(el *model.Control) model.ControlCandidate {
	cp := *el
	return model.ControlCandidate{
		Name:    el.Name,
		Type:    el.Type,
		Bounds:  el.Bounds,
		Point:   el.Bounds.Center(),
		Control: &cp,
	}
}

// exactMatch finds any descendant button named exactly name.
func exactMatch(root *model.Control, name string) (*model.Control, bool) {
	var found *model.Control
	root.Walk(func(el, _ *model.Control) bool {
		if el.Type == model.ControlButton && el.Name == name {
			found = el
			return false
		}
		return true
	})
	return found, found != nil
}

// substringScan checks only the window's immediate children.
func substringScan(root *model.Control, name string) (*model.Control, bool) {
	for i := range root.Children {
		c := &root.Children[i]
		if c.Type == model.ControlButton && strings.Contains(c.Name, name) {
			return c, true
		}
	}
	return nil, false
}

// textParent finds a text control named exactly name and returns its parent,
// for UIs that draw buttons as a styled container around a label.
func textParent(root *model.Control, name string) (*model.Control, bool) {
	var found *model.Control
	root.Walk(func(el, parent *model.Control) bool {
		if el.Type == model.ControlText && el.Name == name && parent != root {
			found = parent
			return false
		}
		return true
	})
	return found, found != nil
}

// proportional returns the first configured fractional point of the window
// rectangle that lies on screen.
func (r *Resolver) proportional(w model.Window, fractions []model.Fraction) (model.ControlCandidate, error) {
	if len(fractions) == 0 {
		return model.ControlCandidate{}, errors.New("no fallback points configured")
	}
	if r.inputter == nil {
		return model.ControlCandidate{}, errors.New("backend has no pointer input")
	}

	rect, err := r.windows.Bounds(w.Handle)
	if err != nil {
		r.log.Debug("window bounds re-read failed, using located bounds", "error", err)
		rect = w.Bounds
	}
	if rect.Empty() {
		return model.ControlCandidate{}, fmt.Errorf("window rectangle is empty: %dx%d", rect.Width, rect.Height)
	}
	screen, err := r.inputter.Screen()
	if err != nil {
		return model.ControlCandidate{}, fmt.Errorf("read screen bounds: %w", err)
	}

	for _, f := range fractions {
		p := rect.PointAt(f.X, f.Y)
		if screen.Contains(p) {
			return model.ControlCandidate{Type: model.ControlOther, Point: p}, nil
		}
		r.log.Debug("fallback point off screen", "fx", f.X, "fy", f.Y, "x", p.X, "y", p.Y)
	}
	return model.ControlCandidate{}, fmt.Errorf("none of %d fallback points is on screen", len(fractions))
}
