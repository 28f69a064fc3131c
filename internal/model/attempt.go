package model

import "time"

// Stage names the pipeline stage an attempt belongs to.
type Stage string

const (
	StageLocate  Stage = "locate"
	StageFocus   Stage = "focus"
	StageResolve Stage = "resolve"
	StageAct     Stage = "act"
	StageImport  Stage = "import"
)

// Outcome is the result of a single attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// AttemptRecord is one entry in the audit trail of an invocation.
type AttemptRecord struct {
	Stage   Stage         `yaml:"stage"             json:"stage"`
	Method  string        `yaml:"method"            json:"method"`
	Outcome Outcome       `yaml:"outcome"           json:"outcome"`
	Kind    string        `yaml:"kind,omitempty"    json:"kind,omitempty"`
	Message string        `yaml:"message,omitempty" json:"message,omitempty"`
	Offset  time.Duration `yaml:"offset"            json:"offset"`
}

// OK reports whether the attempt succeeded.
func (a AttemptRecord) OK() bool {
	return a.Outcome == OutcomeSuccess
}

// FilterStage returns the records belonging to stage, preserving order.
func FilterStage(records []AttemptRecord, stage Stage) []AttemptRecord {
	var out []AttemptRecord
	for _, r := range records {
		if r.Stage == stage {
			out = append(out, r)
		}
	}
	return out
}
