package engine

import (
	"github.com/condor-engine/condor/pkg/condition"
	"github.com/condor-engine/condor/pkg/registry"
)

// Unit is one candidate configuration unit: a declaration plus the
// conditions that gate its registration and its ordering hints.
type Unit struct {
	// Declaration is the component the unit contributes when included.
	Declaration registry.Declaration `json:"declaration"`

	// Conditions gate the declaration. They are evaluated in attachment
	// order within each phase, short-circuiting on the first non-match.
	Conditions []condition.Condition `json:"-"`

	// Priority orders units; lower values run earlier. Ties are resolved
	// by declaration order.
	Priority int `json:"priority,omitempty"`

	// Before names declarations this unit must be processed ahead of.
	Before []string `json:"before,omitempty"`

	// After names declarations that must be processed ahead of this unit.
	After []string `json:"after,omitempty"`
}

// State is a unit's position in the evaluation state machine.
type State string

const (
	// StateUnevaluated is the initial state.
	StateUnevaluated State = "unevaluated"

	// StateParsePassed marks units whose parse-stage conditions all
	// matched.
	StateParsePassed State = "parse_passed"

	// StateRegistered marks units whose turn in the register stage has
	// started.
	StateRegistered State = "registered"

	// StateEvaluated marks units whose register-stage conditions have all
	// been evaluated.
	StateEvaluated State = "evaluated"

	// StateIncluded marks units whose declaration was accepted into the
	// registry.
	StateIncluded State = "included"

	// StateExcluded marks units rejected by a condition in either stage.
	StateExcluded State = "excluded"
)

// Result is the output of one resolution pass: the accepted declarations
// and the evaluation report.
type Result struct {
	// Registry is the final registry of accepted declarations.
	Registry *registry.Registry `json:"-"`

	// Report explains, per declaration, which conditions were evaluated
	// and how they decided.
	Report *Report `json:"report"`
}
