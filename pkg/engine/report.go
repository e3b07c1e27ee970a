package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// Entry records one condition evaluation against one declaration.
type Entry struct {
	// Condition is the evaluated condition's name.
	Condition string `json:"condition"`

	// Phase is the stage the condition ran in.
	Phase registry.Phase `json:"phase"`

	// Outcome is the evaluation result.
	Outcome outcome.Outcome `json:"outcome"`
}

// Report accumulates, per declaration, the ordered sequence of condition
// evaluations during one resolution pass, with a chain to ancestor reports
// so a child context can explain inherited exclusions. It is built
// incrementally by the engine and read-only afterwards; each fresh pass
// builds a new report.
type Report struct {
	// ID uniquely identifies the resolution pass.
	ID string `json:"id"`

	// StartedAt is when the pass began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the pass completed.
	FinishedAt time.Time `json:"finished_at"`

	parent  *Report
	order   []string
	entries map[string][]Entry
	states  map[string]State
}

// NewReport creates an empty report, optionally chained to the parent
// context's report.
func NewReport(parent *Report) *Report {
	return &Report{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		parent:    parent,
		entries:   make(map[string][]Entry),
		states:    make(map[string]State),
	}
}

// Record appends a condition evaluation for the declaration.
func (r *Report) Record(declaration string, entry Entry) {
	if _, seen := r.entries[declaration]; !seen {
		r.order = append(r.order, declaration)
		r.entries[declaration] = []Entry{}
	}
	r.entries[declaration] = append(r.entries[declaration], entry)
}

// SetState records the declaration's final (or intermediate) state.
func (r *Report) SetState(declaration string, state State) {
	if _, seen := r.entries[declaration]; !seen {
		r.order = append(r.order, declaration)
		r.entries[declaration] = []Entry{}
	}
	r.states[declaration] = state
}

// Declarations returns the declaration names in evaluation order.
func (r *Report) Declarations() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Entries returns the ordered condition evaluations for a declaration.
func (r *Report) Entries(declaration string) []Entry {
	return r.entries[declaration]
}

// State returns the declaration's recorded state, defaulting to
// StateUnevaluated.
func (r *Report) State(declaration string) State {
	if s, ok := r.states[declaration]; ok {
		return s
	}
	return StateUnevaluated
}

// Included returns the declarations accepted during this pass, in
// evaluation order.
func (r *Report) Included() []string {
	return r.withState(StateIncluded)
}

// Excluded returns the declarations rejected during this pass, in
// evaluation order.
func (r *Report) Excluded() []string {
	return r.withState(StateExcluded)
}

func (r *Report) withState(state State) []string {
	var names []string
	for _, name := range r.order {
		if r.states[name] == state {
			names = append(names, name)
		}
	}
	return names
}

// Parent returns the ancestor context's report, or nil.
func (r *Report) Parent() *Report {
	return r.parent
}

// Ancestors returns the ancestor reports from nearest to outermost.
func (r *Report) Ancestors() []*Report {
	var ancestors []*Report
	for current := r.parent; current != nil; current = current.parent {
		ancestors = append(ancestors, current)
	}
	return ancestors
}

// finish stamps the completion time.
func (r *Report) finish() {
	r.FinishedAt = time.Now()
}
