package model

import "time"

// State is a node of the orchestration state machine.
type State string

const (
	StateSearching   State = "searching"
	StateFound       State = "found"
	StateFocusing    State = "focusing"
	StateVerified    State = "verified"
	StateUnverified  State = "unverified"
	StateResolving   State = "resolving"
	StateResolved    State = "resolved"
	StateNotResolved State = "not_resolved"
	StateActing      State = "acting"
	StateSucceeded   State = "succeeded"
	StateFailed      State = "failed"
)

// Terminal reports whether s ends an invocation.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// FocusStatus is the outcome of bringing a window to the foreground.
type FocusStatus string

const (
	FocusVerified   FocusStatus = "verified"
	FocusUnverified FocusStatus = "unverified"
)

// InvocationResult is the terminal value of one orchestrated run.
type InvocationResult struct {
	RunID    string            `yaml:"run_id"            json:"run_id"`
	Mode     string            `yaml:"mode"              json:"mode"`
	Target   string            `yaml:"target,omitempty"  json:"target,omitempty"`
	Success  bool              `yaml:"success"           json:"success"`
	State    State             `yaml:"state"             json:"state"`
	States   []State           `yaml:"states"            json:"states"`
	Focus    FocusStatus       `yaml:"focus,omitempty"   json:"focus,omitempty"`
	Window   *Window           `yaml:"window,omitempty"  json:"window,omitempty"`
	Control  *ControlCandidate `yaml:"control,omitempty" json:"control,omitempty"`
	Error    string            `yaml:"error,omitempty"   json:"error,omitempty"`
	Attempts []AttemptRecord   `yaml:"attempts"          json:"attempts"`
	Elapsed  time.Duration     `yaml:"elapsed"           json:"elapsed"`
}
