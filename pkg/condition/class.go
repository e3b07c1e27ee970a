package condition

import (
	"context"
	"strings"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// resolvable applies the injected classpath view, treating everything as
// unresolvable when the host supplied none. An unresolvable identifier is
// simply absent, never an error.
func resolvable(env *Env, identifier string) bool {
	if env.Resolvable == nil {
		return false
	}
	return env.Resolvable(identifier)
}

// OnClass matches when every named class resolves on the active classpath
// view.
type OnClass struct {
	Classes []string
}

// NewOnClass creates a class-presence condition.
func NewOnClass(classes ...string) *OnClass {
	return &OnClass{Classes: classes}
}

// Name implements Condition.
func (c *OnClass) Name() string {
	return "OnClass (" + strings.Join(c.Classes, ", ") + ")"
}

// Phase implements Condition.
func (c *OnClass) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnClass) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	if len(c.Classes) == 0 {
		return outcome.Outcome{}, NewAuthorError("class condition requires at least one class identifier", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnClass").
			WithDeclaration(env.CandidateName())
	}

	var found, absent []string
	for _, identifier := range c.Classes {
		if resolvable(env, identifier) {
			found = append(found, identifier)
		} else {
			absent = append(absent, identifier)
		}
	}

	builder := outcome.ForCondition(c.Name())
	if len(absent) > 0 {
		return outcome.NoMatch(builder.DidNotFindExactly("required class", "required classes").Quoted(absent...)), nil
	}
	return outcome.Match(builder.FoundExactly("required class", "required classes").Quoted(found...)), nil
}

// OnMissingClass matches when none of the named classes resolve on the
// active classpath view.
type OnMissingClass struct {
	Classes []string
}

// NewOnMissingClass creates a class-absence condition.
func NewOnMissingClass(classes ...string) *OnMissingClass {
	return &OnMissingClass{Classes: classes}
}

// Name implements Condition.
func (c *OnMissingClass) Name() string {
	return "OnMissingClass (" + strings.Join(c.Classes, ", ") + ")"
}

// Phase implements Condition.
func (c *OnMissingClass) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnMissingClass) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	if len(c.Classes) == 0 {
		return outcome.Outcome{}, NewAuthorError("class condition requires at least one class identifier", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnMissingClass").
			WithDeclaration(env.CandidateName())
	}

	var present []string
	for _, identifier := range c.Classes {
		if resolvable(env, identifier) {
			present = append(present, identifier)
		}
	}

	builder := outcome.ForCondition(c.Name())
	if len(present) > 0 {
		return outcome.NoMatch(builder.FoundExactly("unwanted class", "unwanted classes").Quoted(present...)), nil
	}
	return outcome.Match(builder.DidNotFindExactly("unwanted class", "unwanted classes").Items()), nil
}
