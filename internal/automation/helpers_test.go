package automation

import (
	"testing"

	"github.com/mj1618/uipilot/internal/config"
	"github.com/mj1618/uipilot/internal/logging"
	"github.com/mj1618/uipilot/internal/model"
	"github.com/mj1618/uipilot/internal/platform/fake"
	"github.com/spf13/afero"
)

var jianying = model.Window{
	Handle: 1,
	Title:  "剪映专业版",
	Class:  "Qt5QWindowIcon",
	PID:    4242,
	Bounds: model.Rect{X: 100, Y: 100, Width: 800, Height: 600},
}

// startTree is a window whose start button is a real Qt button nested in a
// panel.
func startTree() model.Control {
	return model.Control{
		Handle: jianying.Handle,
		Name:   jianying.Title,
		Children: []model.Control{
			{Name: "toolbar", Type: model.ControlOther, Children: []model.Control{
				{Name: "设置", Class: "QToolButton", Type: model.ControlButton},
			}},
			{Name: "home", Type: model.ControlOther, Children: []model.Control{
				{Name: "开始创作", Class: "QPushButton", Type: model.ControlButton,
					Bounds: model.Rect{X: 400, Y: 200, Width: 120, Height: 40}},
			}},
		},
	}
}

type harness struct {
	backend *fake.Backend
	clock   *fake.Clock
	fs      afero.Fs
	cfg     config.Config
	orch    *Orchestrator
}

func newHarness(t *testing.T, b *fake.Backend, mutate ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Import.ListFile = "/tmp/jianying_import_files.txt"
	for _, m := range mutate {
		m(&cfg)
	}
	h := &harness{backend: b, clock: fake.NewClock(), fs: afero.NewMemMapFs(), cfg: cfg}
	h.orch = New(b.Provider(), cfg,
		WithClock(h.clock),
		WithLogger(logging.Discard()),
		WithFS(h.fs),
		WithIDFunc(func() string { return "run-1" }),
	)
	return h
}

func methods(records []model.AttemptRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = string(r.Stage) + "/" + r.Method + "/" + string(r.Outcome)
	}
	return out
}

func newTrail() (*Trail, *fake.Clock) {
	c := fake.NewClock()
	return NewTrail(c), c
}
