package automation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mj1618/uipilot/internal/config"
	"github.com/mj1618/uipilot/internal/logging"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform/fake"
)

func resolveWith(t *testing.T, b *fake.Backend, target model.Target) (model.ControlCandidate, error, []model.AttemptRecord) {
	t.Helper()
	tr, _ := newTrail()
	r := NewResolver(b, b, b, tr, logging.Discard())
	c, err := r.Resolve(context.Background(), jianying, target)
	return c, err, tr.Records()
}

var startTarget = model.Target{Name: "开始创作", Fallback: config.DefaultStartFallback}

func TestResolve_ExactMatch(t *testing.T) {
	b := fake.New(jianying)
	b.Trees[jianying.Handle] = startTree()

	c, err, recs := resolveWith(t, b, startTarget)
	if err != nil {
		t.Fatal(err)
	}
	if c.Strategy != model.StrategyExactMatch || !c.HasBounds() {
		t.Errorf("candidate = %+v", c)
	}
	if c.Point != (model.Point{X: 460, Y: 220}) {
		t.Errorf("point = %+v, want button centre", c.Point)
	}
	if diff := cmp.Diff([]string{"resolve/exact_match/success"}, methods(recs)); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_SubstringScanImmediateChildren(t *testing.T) {
	b := fake.New(jianying)
	b.Trees[jianying.Handle] = model.Control{Children: []model.Control{
		{Name: "panel", Children: []model.Control{
			{Name: "开始创作 nested", Type: model.ControlButton},
		}},
		{Name: "+ 开始创作", Type: model.ControlButton, Bounds: model.Rect{X: 10, Y: 10, Width: 20, Height: 20}},
	}}

	c, err, recs := resolveWith(t, b, startTarget)
	if err != nil {
		t.Fatal(err)
	}
	if c.Strategy != model.StrategySubstringScan || c.Name != "+ 开始创作" {
		t.Errorf("candidate = %+v", c)
	}
	want := []string{"resolve/exact_match/failure", "resolve/substring_scan/success"}
	if diff := cmp.Diff(want, methods(recs)); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_TextParentInference(t *testing.T) {
	b := fake.New(jianying)
	b.Trees[jianying.Handle] = model.Control{Children: []model.Control{
		{Name: "开始创作", Type: model.ControlText},
		{Name: "card", Class: "QWidget", Bounds: model.Rect{X: 300, Y: 200, Width: 200, Height: 100}, Children: []model.Control{
			{Name: "icon"},
			{Name: "开始创作", Class: "QLabel", Type: model.ControlText},
		}},
	}}

	c, err, recs := resolveWith(t, b, startTarget)
	if err != nil {
		t.Fatal(err)
	}
	if c.Strategy != model.StrategyTextParentInference || c.Name != "card" {
		t.Errorf("candidate = %+v, want parent card (root is never a proxy)", c)
	}
	if c.Point != (model.Point{X: 400, Y: 250}) {
		t.Errorf("point = %+v", c.Point)
	}
	want := []string{"resolve/exact_match/failure", "resolve/substring_scan/failure", "resolve/text_parent_inference/success"}
	if diff := cmp.Diff(want, methods(recs)); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_OnlyFallbackMatches(t *testing.T) {
	b := fake.New(jianying)

	c, err, recs := resolveWith(t, b, startTarget)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"resolve/exact_match/failure",
		"resolve/substring_scan/failure",
		"resolve/text_parent_inference/failure",
		"resolve/proportional_fallback/success",
	}
	if diff := cmp.Diff(want, methods(recs)); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
	if c.HasBounds() {
		t.Error("fallback candidate must not have bounds")
	}
	// 100 + 800*0.5, 100 + 600*0.25
	if c.Point != (model.Point{X: 500, Y: 250}) {
		t.Errorf("point = %+v", c.Point)
	}
	if c.Strategy.Confidence() >= model.StrategyExactMatch.Confidence() {
		t.Error("fallback must rank below exact match")
	}
}

func TestResolve_FallbackSkipsOffScreenPoints(t *testing.T) {
	b := fake.New(jianying)
	b.ScreenRect = model.Rect{Width: 1920, Height: 300}
	target := model.Target{Name: "x", Fallback: []model.Fraction{{X: 0.5, Y: 0.9}, {X: 0.5, Y: 0.2}}}

	c, err, _ := resolveWith(t, b, target)
	if err != nil {
		t.Fatal(err)
	}
	if c.Point != (model.Point{X: 500, Y: 220}) {
		t.Errorf("point = %+v, want second fraction", c.Point)
	}
}

func TestResolve_FallbackFailures(t *testing.T) {
	tests := []struct {
		name   string
		window model.Window
		target model.Target
		screen model.Rect
		want   string
	}{
		{"no fractions", jianying, model.Target{Name: "x"}, model.Rect{Width: 1920, Height: 1080}, "no fallback points"},
		{"empty rect", model.Window{Handle: 1, Title: "剪映"}, startTarget, model.Rect{Width: 1920, Height: 1080}, "rectangle is empty"},
		{"off screen", model.Window{Handle: 1, Title: "剪映", Bounds: model.Rect{X: 3000, Y: 0, Width: 800, Height: 600}}, startTarget, model.Rect{Width: 1920, Height: 1080}, "on screen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fake.New(tt.window)
			b.ScreenRect = tt.screen
			_, err, recs := resolveWith(t, b, tt.target)
			if !errors.Is(err, ErrElementNotFound) {
				t.Fatalf("err = %v, want ErrElementNotFound", err)
			}
			if len(recs) != 4 {
				t.Fatalf("records = %d, want 4", len(recs))
			}
			if !strings.Contains(recs[3].Message, tt.want) {
				t.Errorf("fallback message = %q, want it to mention %q", recs[3].Message, tt.want)
			}
		})
	}
}

func TestResolve_FailureListsChildren(t *testing.T) {
	b := fake.New(jianying)
	b.Trees[jianying.Handle] = startTree()

	_, err, _ := resolveWith(t, b, model.Target{Name: "导出"})
	if !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("err = %v, want ErrElementNotFound", err)
	}
	want := `children: "toolbar" (other), "home" (other)`
	if !strings.Contains(err.Error(), want) {
		t.Errorf("err = %q, want it to contain %q", err, want)
	}
}

func TestChildSummary_Limit(t *testing.T) {
	root := &model.Control{}
	for i := 0; i < 23; i++ {
		root.Children = append(root.Children, model.Control{Name: fmt.Sprintf("c%d", i), Type: model.ControlButton})
	}
	got := childSummary(root, 20)
	if !strings.HasPrefix(got, `"c0" (button), "c1" (button)`) {
		t.Errorf("summary = %q", got)
	}
	if !strings.HasSuffix(got, `"c19" (button), ... 3 more`) {
		t.Errorf("summary = %q, want it truncated after 20 children", got)
	}
}

func TestResolve_WithoutControlTree(t *testing.T) {
	b := fake.New(jianying)
	tr, _ := newTrail()
	r := NewResolver(b, nil, b, tr, logging.Discard())

	c, err := r.Resolve(context.Background(), jianying, startTarget)
	if err != nil {
		t.Fatal(err)
	}
	if c.Strategy != model.StrategyProportionalFallback {
		t.Errorf("strategy = %s", c.Strategy)
	}
	recs := tr.Records()
	for _, r := range recs[:3] {
		if !strings.Contains(r.Message, "control tree") {
			t.Errorf("record %s message = %q, want reason", r.Method, r.Message)
		}
	}
}

func TestResolve_TreeReadError(t *testing.T) {
	b := fake.New(jianying)
	b.TreeErr = errors.New("UIA timeout")
	_, _, recs := resolveWith(t, b, model.Target{Name: "x"})
	if len(recs) != 4 {
		t.Fatalf("records = %d, want 4", len(recs))
	}
	if !strings.Contains(recs[0].Message, "UIA timeout") {
		t.Errorf("message = %q", recs[0].Message)
	}
}
