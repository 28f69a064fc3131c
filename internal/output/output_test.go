package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/uipilot/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleResult() Result {
	return Result{model.InvocationResult{
		RunID:   "0b6f3c7e",
		Mode:    "full",
		Target:  "开始创作",
		Success: true,
		State:   model.StateSucceeded,
		States:  []model.State{model.StateSearching, model.StateFound, model.StateSucceeded},
		Focus:   model.FocusVerified,
		Window:  &model.Window{Handle: 0x1a2b, Title: "剪映专业版", Class: "Qt5QWindowIcon", Bounds: model.Rect{X: 0, Y: 0, Width: 1280, Height: 800}},
		Control: &model.ControlCandidate{Name: "开始创作", Type: model.ControlButton, Point: model.Point{X: 640, Y: 200}, Strategy: model.StrategyExactMatch},
		Attempts: []model.AttemptRecord{
			{Stage: model.StageLocate, Method: "poll", Outcome: model.OutcomeFailure, Kind: "window_not_found", Message: "poll 1: no match"},
			{Stage: model.StageLocate, Method: "poll", Outcome: model.OutcomeSuccess, Message: "poll 2", Offset: time.Second},
		},
		Elapsed: 2500 * time.Millisecond,
	}}
}

func withFormat(t *testing.T, f Format, pretty bool) {
	t.Helper()
	oldF, oldP := OutputFormat, PrettyOutput
	OutputFormat, PrettyOutput = f, pretty
	t.Cleanup(func() { OutputFormat, PrettyOutput = oldF, oldP })
}

func TestPrint_YAMLToStdout(t *testing.T) {
	withFormat(t, FormatYAML, false)

	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := Print(sampleResult())
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	out := buf.String()

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if m["run_id"] != "0b6f3c7e" || m["state"] != "succeeded" {
		t.Errorf("decoded = %v", m)
	}
	attempts, ok := m["attempts"].([]interface{})
	if !ok || len(attempts) != 2 {
		t.Errorf("attempts = %v", m["attempts"])
	}
	if !strings.Contains(out, "strategy: exact_match") {
		t.Errorf("strategy should be encoded by name:\n%s", out)
	}
}

func TestFprint_JSONCompactAndPretty(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		withFormat(t, FormatJSON, pretty)
		var buf bytes.Buffer
		if err := Fprint(&buf, sampleResult()); err != nil {
			t.Fatal(err)
		}
		lines := strings.Count(buf.String(), "\n")
		if pretty && lines <= 1 {
			t.Errorf("pretty JSON should be multi-line")
		}
		if !pretty && lines != 1 {
			t.Errorf("compact JSON should be one line, got %d", lines)
		}
		var m map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if m["target"] != "开始创作" {
			t.Errorf("target = %v (HTML escaping must be off)", m["target"])
		}
		if _, ok := m["InvocationResult"]; ok {
			t.Error("embedded result must be flattened")
		}
	}
}

func TestFprint_TextTrail(t *testing.T) {
	withFormat(t, FormatText, false)
	var buf bytes.Buffer
	if err := Fprint(&buf, sampleResult()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"run 0b6f3c7e  mode=full  target=开始创作",
		`window: "剪映专业版" class=Qt5QWindowIcon handle=0x1a2b bounds=1280x800+0+0`,
		"FAIL",
		`control: "开始创作" via exact_match at (640,200)`,
		"states: searching -> found -> succeeded",
		"result: succeeded in 2.5s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "error:") {
		t.Error("no error line for a successful run")
	}
}

func TestFprint_TextFallsBackToYAML(t *testing.T) {
	withFormat(t, FormatText, false)
	var buf bytes.Buffer
	if err := Fprint(&buf, map[string]string{"status": "RUNNING"}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "status: RUNNING" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWindowList_Text(t *testing.T) {
	l := WindowList{Windows: []WindowEntry{
		{Window: model.Window{Handle: 0x10, PID: 42, Class: "Qt5QWindowIcon", Title: "剪映专业版"}, Matches: "title=剪映"},
		{Window: model.Window{Handle: 0x11, PID: 7, Class: "Notepad", Title: "notes.txt"}},
	}}
	var buf bytes.Buffer
	if err := l.RenderText(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "HANDLE") || !strings.Contains(lines[1], "title=剪映") {
		t.Errorf("unexpected table:\n%s", buf.String())
	}
}

func TestWindowEntry_YAMLInline(t *testing.T) {
	data, err := yaml.Marshal(WindowEntry{Window: model.Window{Handle: 1, Title: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["title"] != "x" {
		t.Errorf("window fields should be inlined: %v", m)
	}
	if _, ok := m["matches"]; ok {
		t.Error("empty matches should be omitted")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json", "text"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}
