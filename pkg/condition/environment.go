package condition

import (
	"context"
	"strings"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// OnProfile matches when at least one of the named environment profiles is
// active.
type OnProfile struct {
	Profiles []string
}

// NewOnProfile creates a profile condition.
func NewOnProfile(profiles ...string) *OnProfile {
	return &OnProfile{Profiles: profiles}
}

// Name implements Condition.
func (c *OnProfile) Name() string {
	return "OnProfile (" + strings.Join(c.Profiles, ", ") + ")"
}

// Phase implements Condition.
func (c *OnProfile) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnProfile) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	if len(c.Profiles) == 0 {
		return outcome.Outcome{}, NewAuthorError("profile condition requires at least one profile", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnProfile").
			WithDeclaration(env.CandidateName())
	}

	var active []string
	for _, profile := range c.Profiles {
		if env.HasProfile(profile) {
			active = append(active, profile)
		}
	}

	builder := outcome.ForCondition(c.Name())
	if len(active) > 0 {
		return outcome.Match(builder.FoundExactly("active profile", "active profiles").Quoted(active...)), nil
	}
	return outcome.NoMatch(builder.DidNotFindExactly("active profile", "active profiles").Quoted(c.Profiles...)), nil
}

// OnCapability matches when every named runtime capability is available,
// e.g. an execution mode the host supports.
type OnCapability struct {
	Capabilities []string
}

// NewOnCapability creates a runtime-capability condition.
func NewOnCapability(capabilities ...string) *OnCapability {
	return &OnCapability{Capabilities: capabilities}
}

// Name implements Condition.
func (c *OnCapability) Name() string {
	return "OnCapability (" + strings.Join(c.Capabilities, ", ") + ")"
}

// Phase implements Condition.
func (c *OnCapability) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnCapability) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	if len(c.Capabilities) == 0 {
		return outcome.Outcome{}, NewAuthorError("capability condition requires at least one capability", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnCapability").
			WithDeclaration(env.CandidateName())
	}

	builder := outcome.ForCondition(c.Name())
	for _, capability := range c.Capabilities {
		if env.Capability == nil || !env.Capability(capability) {
			return outcome.NoMatch(builder.NotAvailable(capability)), nil
		}
	}
	return outcome.Match(builder.Available(strings.Join(c.Capabilities, ", "))), nil
}
