package condition

import (
	"context"
	"strings"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
	"github.com/condor-engine/condor/pkg/typeref"
)

// ComponentSpec is the normalized attribute set shared by the component
// presence and absence conditions. Distinct criteria kinds combine with
// logical AND: every supplied type, name, annotation and target must be
// satisfied for a presence match.
type ComponentSpec struct {
	// Names are declaration names that must be registered.
	Names []string `json:"names,omitempty"`

	// Types are raw types at least one declaration must produce, each.
	Types []string `json:"types,omitempty"`

	// Annotations are markers at least one declaration must carry, each.
	Annotations []string `json:"annotations,omitempty"`

	// Target is an optional generic/holder type specification.
	Target typeref.Target `json:"target,omitempty"`

	// CurrentContextOnly restricts queries to the current registry,
	// ignoring ancestors.
	CurrentContextOnly bool `json:"current_context_only,omitempty"`
}

// isEmpty reports whether no identifying criteria are supplied.
func (s ComponentSpec) isEmpty() bool {
	return len(s.Names) == 0 && len(s.Types) == 0 && len(s.Annotations) == 0 && s.Target.IsZero()
}

// describe summarizes the criteria for condition names and messages.
func (s ComponentSpec) describe() string {
	var parts []string
	if len(s.Types) > 0 {
		parts = append(parts, "types: "+strings.Join(s.Types, ", "))
	}
	if len(s.Names) > 0 {
		parts = append(parts, "names: "+strings.Join(s.Names, ", "))
	}
	if len(s.Annotations) > 0 {
		parts = append(parts, "annotations: "+strings.Join(s.Annotations, ", "))
	}
	if !s.Target.IsZero() {
		parts = append(parts, "target: "+s.Target.String())
	}
	return strings.Join(parts, "; ")
}

// normalized validates the spec and applies default type inference from the
// candidate declaration when no criteria are supplied.
func (s ComponentSpec) normalized(env *Env) (ComponentSpec, *Error) {
	if s.Target.Holder != "" && s.Target.Raw == "" {
		return s, NewAuthorError("holder type requires a payload type", nil).
			WithCode(CodeConflictingAttributes)
	}
	if !s.isEmpty() {
		return s, nil
	}
	if env.Candidate != nil && env.Candidate.Type.Raw != "" {
		s.Types = []string{env.Candidate.Type.Raw}
		return s, nil
	}
	return s, NewAuthorError("no identifying criteria supplied and candidate type is not inferable", nil).
		WithCode(CodeMissingAttribute)
}

// scan queries the registry facade for every criterion. It returns the
// names of matching declarations (union, insertion order, de-duplicated)
// and a description of every criterion that found nothing. excludeSelf
// drops hits on the candidate declaration itself.
func (s ComponentSpec) scan(env *Env, excludeSelf bool) (found, unmet []string) {
	includeAncestors := !s.CurrentContextOnly
	self := ""
	if excludeSelf {
		self = env.CandidateName()
	}

	seen := make(map[string]bool)
	add := func(hits []registry.Hit, criterion string) {
		any := false
		for _, hit := range hits {
			if self != "" && hit.Name == self {
				continue
			}
			any = true
			if !seen[hit.Name] {
				seen[hit.Name] = true
				found = append(found, hit.Name)
			}
		}
		if !any {
			unmet = append(unmet, criterion)
		}
	}

	view := env.Registry
	if view == nil {
		view = registry.NewView(nil, nil, registry.PhaseRegister)
	}

	for _, t := range s.Types {
		add(view.FindByType(t, includeAncestors), "type "+t)
	}
	for _, name := range s.Names {
		d, ok := view.FindByName(name, includeAncestors)
		if ok && name != self {
			add([]registry.Hit{{Name: name, Declaration: d}}, "name "+name)
		} else {
			add(nil, "name "+name)
		}
	}
	for _, marker := range s.Annotations {
		add(view.FindByAnnotation(marker, includeAncestors), "annotation "+marker)
	}
	if !s.Target.IsZero() {
		add(view.FindByTarget(s.Target, includeAncestors), "target "+s.Target.String())
	}
	return found, unmet
}

// OnComponent matches when every supplied criterion finds at least one
// registered declaration. With no criteria it falls back to the candidate's
// own produced type.
type OnComponent struct {
	Spec ComponentSpec
}

// NewOnComponent creates a component-presence condition.
func NewOnComponent(spec ComponentSpec) *OnComponent {
	return &OnComponent{Spec: spec}
}

// Name implements Condition.
func (c *OnComponent) Name() string {
	if desc := c.Spec.describe(); desc != "" {
		return "OnComponent (" + desc + ")"
	}
	return "OnComponent"
}

// Phase implements Condition. Component presence requires the registry.
func (c *OnComponent) Phase() registry.Phase {
	return registry.PhaseRegister
}

// Evaluate implements Condition.
func (c *OnComponent) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	spec, cerr := c.Spec.normalized(env)
	if cerr != nil {
		return outcome.Outcome{}, cerr.WithCondition(c.Name()).WithDeclaration(env.CandidateName())
	}

	found, unmet := spec.scan(env, false)
	if len(unmet) > 0 {
		return outcome.NoMatch(outcome.ForCondition(c.Name()).
			DidNotFindExactly("component matching", "components matching").Items(unmet...)), nil
	}
	return outcome.Match(outcome.ForCondition(c.Name()).
		Found("component").Quoted(found...)), nil
}

// OnMissingComponent matches when no supplied criterion finds a registered
// declaration. The candidate under evaluation never counts as present for
// its own absence check.
type OnMissingComponent struct {
	Spec ComponentSpec
}

// NewOnMissingComponent creates a component-absence condition.
func NewOnMissingComponent(spec ComponentSpec) *OnMissingComponent {
	return &OnMissingComponent{Spec: spec}
}

// Name implements Condition.
func (c *OnMissingComponent) Name() string {
	if desc := c.Spec.describe(); desc != "" {
		return "OnMissingComponent (" + desc + ")"
	}
	return "OnMissingComponent"
}

// Phase implements Condition.
func (c *OnMissingComponent) Phase() registry.Phase {
	return registry.PhaseRegister
}

// Evaluate implements Condition.
func (c *OnMissingComponent) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	spec, cerr := c.Spec.normalized(env)
	if cerr != nil {
		return outcome.Outcome{}, cerr.WithCondition(c.Name()).WithDeclaration(env.CandidateName())
	}

	found, _ := spec.scan(env, true)
	if len(found) > 0 {
		return outcome.NoMatch(outcome.ForCondition(c.Name()).
			FoundExactly("unwanted component", "unwanted components").Quoted(found...)), nil
	}
	return outcome.Match(outcome.ForCondition(c.Name()).
		DidNotFindExactly("any matching component", "any matching components").Items()), nil
}
