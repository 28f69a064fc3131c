package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mj1618/uipilot/internal/model"
)

// TextRenderer is implemented by results with a human-readable form.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// Result wraps an invocation result for printing.
type Result struct {
	model.InvocationResult `yaml:",inline"`
}

// RenderText writes the audit trail as an aligned table followed by the
// outcome.
func (r Result) RenderText(w io.Writer) error {
	res := r.InvocationResult
	fmt.Fprintf(w, "run %s  mode=%s", res.RunID, res.Mode)
	if res.Target != "" {
		fmt.Fprintf(w, "  target=%s", res.Target)
	}
	fmt.Fprintln(w)
	if res.Window != nil {
		fmt.Fprintf(w, "window: %q class=%s handle=%#x bounds=%s\n",
			res.Window.Title, res.Window.Class, uint64(res.Window.Handle), rect(res.Window.Bounds))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, a := range res.Attempts {
		mark := "ok"
		if !a.OK() {
			mark = "FAIL"
		}
		fmt.Fprintf(tw, "  +%s\t%s\t%s\t%s\t%s\n", offset(a.Offset), a.Stage, a.Method, mark, a.Message)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.Control != nil {
		fmt.Fprintf(w, "control: %q via %s at (%d,%d)\n", res.Control.Name, res.Control.Strategy, res.Control.Point.X, res.Control.Point.Y)
	}
	if res.Focus != "" {
		fmt.Fprintf(w, "focus: %s\n", res.Focus)
	}
	states := make([]string, len(res.States))
	for i, s := range res.States {
		states[i] = string(s)
	}
	fmt.Fprintf(w, "states: %s\n", strings.Join(states, " -> "))
	fmt.Fprintf(w, "result: %s in %s\n", res.State, offset(res.Elapsed))
	if res.Error != "" {
		fmt.Fprintf(w, "error: %s\n", res.Error)
	}
	return nil
}

// WindowEntry is one row of the list command.
type WindowEntry struct {
	model.Window `yaml:",inline"`
	Matches      string `yaml:"matches,omitempty" json:"matches,omitempty"`
}

// WindowList is the output of the list command.
type WindowList struct {
	Windows []WindowEntry `yaml:"windows" json:"windows"`
}

func (l WindowList) RenderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HANDLE\tPID\tCLASS\tTITLE\tMATCHES")
	for _, e := range l.Windows {
		fmt.Fprintf(tw, "%#x\t%d\t%s\t%s\t%s\n", uint64(e.Handle), e.PID, e.Class, e.Title, e.Matches)
	}
	return tw.Flush()
}

func rect(r model.Rect) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

func offset(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
