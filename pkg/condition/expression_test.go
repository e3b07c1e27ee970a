package condition

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func expressionEnv(props map[string]string, profiles ...string) *Env {
	return &Env{
		Properties: MapSource(props),
		Profiles:   profiles,
		Logger:     zerolog.Nop(),
	}
}

func TestOnExpression_TrueAndFalse(t *testing.T) {
	env := expressionEnv(map[string]string{"app.mode": "fast"})

	result, err := NewOnExpression(`input.properties["app.mode"] == "fast"`).Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected expression to match, got: %s", result)
	}

	result, err = NewOnExpression(`input.properties["app.mode"] == "slow"`).Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected expression not to match, got: %s", result)
	}
}

func TestOnExpression_ProfilesInInput(t *testing.T) {
	env := expressionEnv(nil, "dev")

	result, err := NewOnExpression(`input.profiles[_] == "dev"`).Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected profile lookup to match, got: %s", result)
	}
}

func TestOnExpression_Malformed_IsAuthorError(t *testing.T) {
	_, err := NewOnExpression(`input.properties[ ==`).Evaluate(context.Background(), expressionEnv(nil))
	if !IsAuthorError(err) {
		t.Errorf("Expected author error for malformed expression, got: %v", err)
	}
}

func TestOnExpression_Empty_IsAuthorError(t *testing.T) {
	if _, err := NewOnExpression("").Evaluate(context.Background(), expressionEnv(nil)); !IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
}
