package condition

import (
	"context"
	"strings"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// expandPlaceholders substitutes ${key} references in a location with the
// property value. Unresolvable placeholders are left in place so the
// resulting location fails the existence check with a readable message.
func expandPlaceholders(location string, env *Env) string {
	var sb strings.Builder
	for {
		start := strings.Index(location, "${")
		if start < 0 {
			sb.WriteString(location)
			return sb.String()
		}
		end := strings.Index(location[start:], "}")
		if end < 0 {
			sb.WriteString(location)
			return sb.String()
		}
		end += start
		sb.WriteString(location[:start])
		key := location[start+2 : end]
		if value, ok := env.Property(key); ok {
			sb.WriteString(value)
		} else {
			sb.WriteString(location[start : end+1])
		}
		location = location[end+1:]
	}
}

// OnResource matches when every configured resource location, after
// property placeholder substitution, exists.
type OnResource struct {
	Locations []string
}

// NewOnResource creates a resource-presence condition.
func NewOnResource(locations ...string) *OnResource {
	return &OnResource{Locations: locations}
}

// Name implements Condition.
func (c *OnResource) Name() string {
	return "OnResource (" + strings.Join(c.Locations, ", ") + ")"
}

// Phase implements Condition.
func (c *OnResource) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnResource) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	if len(c.Locations) == 0 {
		return outcome.Outcome{}, NewAuthorError("resource condition requires at least one location", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnResource").
			WithDeclaration(env.CandidateName())
	}

	var found, absent []string
	for _, location := range c.Locations {
		expanded := expandPlaceholders(location, env)
		if env.ResourceExists != nil && env.ResourceExists(expanded) {
			found = append(found, expanded)
		} else {
			absent = append(absent, expanded)
		}
	}

	builder := outcome.ForCondition(c.Name())
	if len(absent) > 0 {
		return outcome.NoMatch(builder.DidNotFindExactly("resource", "resources").Quoted(absent...)), nil
	}
	return outcome.Match(builder.FoundExactly("resource", "resources").Quoted(found...)), nil
}
