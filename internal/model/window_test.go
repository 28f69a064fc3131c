package model

import "testing"

func TestRect_PointAt(t *testing.T) {
	r := Rect{X: 100, Y: 50, Width: 800, Height: 600}
	tests := []struct {
		fx, fy float64
		want   Point
	}{
		{0.5, 0.25, Point{500, 200}},
		{0.5, 0.33, Point{500, 248}},
		{0.5, 0.20, Point{500, 170}},
		{0.5, 0.50, Point{500, 350}},
		{0, 0, Point{100, 50}},
		{1, 1, Point{900, 650}},
	}
	for _, tt := range tests {
		if got := r.PointAt(tt.fx, tt.fy); got != tt.want {
			t.Errorf("PointAt(%v, %v) = %+v, want %+v", tt.fx, tt.fy, got, tt.want)
		}
	}
}

func TestRect_EmptyAndContains(t *testing.T) {
	if !(Rect{Width: 0, Height: 10}).Empty() {
		t.Error("zero width rect should be empty")
	}
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 rect should not be empty")
	}
	screen := Rect{Width: 1920, Height: 1080}
	if !screen.Contains(Point{1920, 1080}) {
		t.Error("bottom-right corner should be contained")
	}
	if screen.Contains(Point{-1, 10}) {
		t.Error("negative x should not be contained")
	}
	if got := (Rect{X: 10, Y: 10, Width: 20, Height: 40}).Center(); got != (Point{20, 30}) {
		t.Errorf("Center() = %+v", got)
	}
}

func TestControl_WalkOrderAndParents(t *testing.T) {
	root := Control{
		Name: "window",
		Children: []Control{
			{Name: "a", Children: []Control{{Name: "a1"}}},
			{Name: "b"},
		},
	}
	var names, parents []string
	root.Walk(func(el, parent *Control) bool {
		names = append(names, el.Name)
		parents = append(parents, parent.Name)
		return true
	})
	wantNames := []string{"a", "a1", "b"}
	wantParents := []string{"window", "a", "window"}
	for i := range wantNames {
		if names[i] != wantNames[i] || parents[i] != wantParents[i] {
			t.Fatalf("walk[%d] = %s/%s, want %s/%s", i, names[i], parents[i], wantNames[i], wantParents[i])
		}
	}
	if root.Count() != 3 {
		t.Errorf("Count() = %d, want 3", root.Count())
	}
}

func TestStrategy_ConfidenceDecreases(t *testing.T) {
	for i := 1; i < len(Strategies); i++ {
		if Strategies[i].Confidence() >= Strategies[i-1].Confidence() {
			t.Errorf("%s should have lower confidence than %s", Strategies[i], Strategies[i-1])
		}
	}
}
