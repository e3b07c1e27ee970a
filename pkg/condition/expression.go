package condition

import (
	"context"

	"github.com/open-policy-agent/opa/rego"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// OnExpression matches when a Rego expression evaluates to true against an
// input document of the environment properties, active profiles and the
// candidate declaration, e.g.
//
//	input.properties["app.mode"] == "fast"
//
// A malformed expression is a configuration-author error, not a non-match.
type OnExpression struct {
	Expression string
}

// NewOnExpression creates an expression condition.
func NewOnExpression(expression string) *OnExpression {
	return &OnExpression{Expression: expression}
}

// Name implements Condition.
func (c *OnExpression) Name() string {
	return "OnExpression (" + c.Expression + ")"
}

// Phase implements Condition. Expressions read only the environment.
func (c *OnExpression) Phase() registry.Phase {
	return registry.PhaseParse
}

// Evaluate implements Condition.
func (c *OnExpression) Evaluate(ctx context.Context, env *Env) (outcome.Outcome, error) {
	if c.Expression == "" {
		return outcome.Outcome{}, NewAuthorError("expression condition requires an expression", nil).
			WithCode(CodeMissingAttribute).
			WithCondition("OnExpression").
			WithDeclaration(env.CandidateName())
	}

	query, err := rego.New(
		rego.Query(c.Expression),
		rego.Input(c.input(env)),
	).PrepareForEval(ctx)
	if err != nil {
		return outcome.Outcome{}, NewAuthorError("malformed expression", err).
			WithCode(CodeMalformedExpression).
			WithCondition(c.Name()).
			WithDeclaration(env.CandidateName())
	}

	results, err := query.Eval(ctx)
	if err != nil {
		return outcome.Outcome{}, NewAuthorError("expression evaluation failed", err).
			WithCode(CodeMalformedExpression).
			WithCondition(c.Name()).
			WithDeclaration(env.CandidateName())
	}

	builder := outcome.ForCondition(c.Name())
	if truthy(results) {
		return outcome.Match(builder.ResultedIn("true")), nil
	}
	return outcome.NoMatch(builder.ResultedIn("false")), nil
}

// input builds the Rego input document.
func (c *OnExpression) input(env *Env) map[string]interface{} {
	properties := map[string]string{}
	if enumerable, ok := env.Properties.(EnumerablePropertySource); ok {
		properties = enumerable.All()
	}

	input := map[string]interface{}{
		"properties": properties,
		"profiles":   env.Profiles,
	}
	if env.Candidate != nil {
		input["candidate"] = map[string]interface{}{
			"name": env.Candidate.Name,
			"type": env.Candidate.Type.String(),
		}
	}
	return input
}

// truthy reports whether the result set carries a single true expression
// value. An undefined result is false.
func truthy(results rego.ResultSet) bool {
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return false
	}
	value, ok := results[0].Expressions[0].Value.(bool)
	return ok && value
}
