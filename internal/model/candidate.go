package model

import "fmt"

// Strategy identifies which resolution strategy produced a candidate.
// Strategies are ordered by decreasing confidence.
type Strategy int

const (
	StrategyExactMatch Strategy = iota
	StrategySubstringScan
	StrategyTextParentInference
	StrategyProportionalFallback
)

// Strategies lists every strategy in resolution order.
var Strategies = []Strategy{
	StrategyExactMatch,
	StrategySubstringScan,
	StrategyTextParentInference,
	StrategyProportionalFallback,
}

func (s Strategy) String() string {
	switch s {
	case StrategyExactMatch:
		return "exact_match"
	case StrategySubstringScan:
		return "substring_scan"
	case StrategyTextParentInference:
		return "text_parent_inference"
	case StrategyProportionalFallback:
		return "proportional_fallback"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// MarshalText encodes the strategy as its snake_case name.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a snake_case strategy name.
func (s *Strategy) UnmarshalText(b []byte) error {
	for _, st := range Strategies {
		if st.String() == string(b) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown strategy: %q", string(b))
}

// Confidence returns a rank where higher means more trustworthy.
func (s Strategy) Confidence() int {
	return len(Strategies) - int(s)
}

// ControlCandidate is the result of element resolution. Candidates from
// ProportionalFallback carry only a click point and no bounds.
type ControlCandidate struct {
	Name     string      `yaml:"name,omitempty"   json:"name,omitempty"`
	Type     ControlType `yaml:"type"             json:"type"`
	Bounds   Rect        `yaml:"bounds"           json:"bounds"`
	Point    Point       `yaml:"point"            json:"point"`
	Strategy Strategy    `yaml:"strategy"         json:"strategy"`
	Control  *Control    `yaml:"-"                json:"-"`
}

// HasBounds reports whether the candidate refers to a real control.
func (c ControlCandidate) HasBounds() bool {
	return c.Strategy != StrategyProportionalFallback && c.Control != nil
}
