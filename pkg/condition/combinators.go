package condition

import (
	"context"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// compositeMode selects the boolean aggregation of a Composite.
type compositeMode string

const (
	modeAll  compositeMode = "all"
	modeAny  compositeMode = "any"
	modeNone compositeMode = "none"
)

// Composite aggregates a fixed, closed set of member conditions with ALL,
// ANY or NONE semantics. All members must share one evaluation phase; the
// composite adopts it. Mixing phases is a configuration-author error
// reported at construction.
type Composite struct {
	name    string
	mode    compositeMode
	phase   registry.Phase
	members []Condition
}

// AllOf creates a composite matching iff every member matches. Its message
// concatenates all member messages.
func AllOf(name string, members ...Condition) (*Composite, error) {
	return newComposite(name, modeAll, members)
}

// AnyOf creates a composite matching iff at least one member matches. Its
// message concatenates only the matching members' messages, keeping the
// explanation focused on why it did match.
func AnyOf(name string, members ...Condition) (*Composite, error) {
	return newComposite(name, modeAny, members)
}

// NoneOf creates a composite matching iff no member matches. Its message
// explains which members were checked.
func NoneOf(name string, members ...Condition) (*Composite, error) {
	return newComposite(name, modeNone, members)
}

func newComposite(name string, mode compositeMode, members []Condition) (*Composite, error) {
	if len(members) == 0 {
		return nil, NewAuthorError("nested combinator requires at least one member condition", nil).
			WithCode(CodeMissingAttribute).
			WithCondition(name)
	}

	phase := members[0].Phase()
	for _, member := range members[1:] {
		if member.Phase() != phase {
			return nil, NewAuthorError("nested combinator members must share one evaluation phase", nil).
				WithCode(CodeMixedPhases).
				WithCondition(name)
		}
	}

	return &Composite{name: name, mode: mode, phase: phase, members: members}, nil
}

// Name implements Condition.
func (c *Composite) Name() string {
	return c.name
}

// Phase implements Condition. The composite runs in its members' phase.
func (c *Composite) Phase() registry.Phase {
	return c.phase
}

// Evaluate implements Condition. Member author errors propagate unchanged.
func (c *Composite) Evaluate(ctx context.Context, env *Env) (outcome.Outcome, error) {
	outcomes := make([]outcome.Outcome, 0, len(c.members))
	for _, member := range c.members {
		result, err := member.Evaluate(ctx, env)
		if err != nil {
			return outcome.Outcome{}, err
		}
		outcomes = append(outcomes, result)
	}

	switch c.mode {
	case modeAll:
		return c.all(outcomes), nil
	case modeAny:
		return c.any(outcomes), nil
	default:
		return c.none(outcomes), nil
	}
}

func (c *Composite) all(outcomes []outcome.Outcome) outcome.Outcome {
	matched := true
	message := outcome.Empty()
	for _, o := range outcomes {
		matched = matched && o.Matched
		message = message.Join(o.Message)
	}
	return outcome.Outcome{Matched: matched, Message: message}
}

func (c *Composite) any(outcomes []outcome.Outcome) outcome.Outcome {
	message := outcome.Empty()
	matched := false
	for _, o := range outcomes {
		if o.Matched {
			matched = true
			message = message.Join(o.Message)
		}
	}
	if matched {
		return outcome.Match(message)
	}
	// Nothing matched: explain every member's refusal.
	for _, o := range outcomes {
		message = message.Join(o.Message)
	}
	return outcome.NoMatch(message)
}

func (c *Composite) none(outcomes []outcome.Outcome) outcome.Outcome {
	matched := true
	message := outcome.Empty()
	for _, o := range outcomes {
		if o.Matched {
			matched = false
		}
		message = message.Join(o.Message)
	}
	return outcome.Outcome{Matched: matched, Message: message}
}
