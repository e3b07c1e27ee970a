package condition

import (
	"context"
	"strings"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// PropertySpec is the normalized attribute set of the property condition.
type PropertySpec struct {
	// Prefix is prepended to every name, separated by a dot.
	Prefix string `json:"prefix,omitempty"`

	// Names are the property names to check, all of which must match.
	Names []string `json:"names"`

	// HavingValue is the expected value; empty means the literal "true".
	HavingValue string `json:"having_value,omitempty"`

	// MatchIfMissing makes an unset property count as a match.
	MatchIfMissing bool `json:"match_if_missing,omitempty"`
}

// key resolves a property name under the optional prefix.
func (s PropertySpec) key(name string) string {
	if s.Prefix == "" {
		return name
	}
	if strings.HasSuffix(s.Prefix, ".") {
		return s.Prefix + name
	}
	return s.Prefix + "." + name
}

// expected returns the value a property must carry to match.
func (s PropertySpec) expected() string {
	if s.HavingValue == "" {
		return "true"
	}
	return s.HavingValue
}

// OnProperty matches when every configured property resolves to the
// expected value, compared case-insensitively. An unset property is a
// non-match unless MatchIfMissing is set, in which case it matches with a
// default-value message. An unset property is never an error.
type OnProperty struct {
	Spec PropertySpec
}

// NewOnProperty creates a property condition.
func NewOnProperty(spec PropertySpec) *OnProperty {
	return &OnProperty{Spec: spec}
}

// Name implements Condition.
func (c *OnProperty) Name() string {
	keys := make([]string, len(c.Spec.Names))
	for i, name := range c.Spec.Names {
		keys[i] = c.Spec.key(name)
	}
	return "OnProperty (" + strings.Join(keys, ", ") + ")"
}

// Phase implements Condition. Properties need no registry.
func (c *OnProperty) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnProperty) Evaluate(_ context.Context, env *Env) (outcome.Outcome, error) {
	if len(c.Spec.Names) == 0 {
		return outcome.Outcome{}, NewAuthorError("property condition requires at least one property name", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnProperty").
			WithDeclaration(env.CandidateName())
	}

	var missing, wrongValue, matched, defaulted []string
	for _, name := range c.Spec.Names {
		key := c.Spec.key(name)
		value, ok := env.Property(key)
		switch {
		case !ok && c.Spec.MatchIfMissing:
			defaulted = append(defaulted, key)
		case !ok:
			missing = append(missing, key)
		case strings.EqualFold(value, c.Spec.expected()):
			matched = append(matched, key)
		default:
			wrongValue = append(wrongValue, key+"="+value)
		}
	}

	builder := outcome.ForCondition(c.Name())
	if len(missing) > 0 {
		return outcome.NoMatch(builder.DidNotFindExactly("property", "properties").Quoted(missing...)), nil
	}
	if len(wrongValue) > 0 {
		return outcome.NoMatch(builder.FoundExactly("different value in property", "different value in properties").Quoted(wrongValue...)), nil
	}
	if len(defaulted) > 0 && len(matched) == 0 {
		return outcome.Match(builder.Because("matched using default value")), nil
	}
	msg := builder.FoundExactly("matching property", "matching properties").Quoted(matched...)
	if len(defaulted) > 0 {
		msg = msg.Append("(remaining matched using default value)")
	}
	return outcome.Match(msg), nil
}
