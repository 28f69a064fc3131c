package automation

import (
	"fmt"
	"time"

	"github.com/mj1618/uipilot/internal/model"
)

// Trail is the ordered audit trail of one invocation. Records are appended in
// execution order and never removed.
type Trail struct {
	clock   Clock
	start   time.Time
	records []model.AttemptRecord
}

// NewTrail starts a trail whose offsets are measured from now.
func NewTrail(clock Clock) *Trail {
	return &Trail{clock: clock, start: clock.Now()}
}

// Success appends a successful attempt.
func (t *Trail) Success(stage model.Stage, method, format string, args ...any) {
	t.append(model.AttemptRecord{
		Stage:   stage,
		Method:  method,
		Outcome: model.OutcomeSuccess,
		Message: fmt.Sprintf(format, args...),
	})
}

// Failure appends a failed attempt classified by err.
func (t *Trail) Failure(stage model.Stage, method string, err error) {
	r := model.AttemptRecord{
		Stage:   stage,
		Method:  method,
		Outcome: model.OutcomeFailure,
		Kind:    string(KindOf(err)),
	}
	if err != nil {
		r.Message = err.Error()
	}
	t.append(r)
}

func (t *Trail) append(r model.AttemptRecord) {
	r.Offset = t.clock.Now().Sub(t.start)
	t.records = append(t.records, r)
}

// Records returns a copy of the trail.
func (t *Trail) Records() []model.AttemptRecord {
	return append([]model.AttemptRecord(nil), t.records...)
}

// Len returns the number of records.
func (t *Trail) Len() int { return len(t.records) }

// Elapsed returns the time since the trail started.
func (t *Trail) Elapsed() time.Duration { return t.clock.Now().Sub(t.start) }
