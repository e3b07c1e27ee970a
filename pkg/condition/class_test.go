package condition

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func classpathEnv(available ...string) *Env {
	onPath := make(map[string]bool, len(available))
	for _, c := range available {
		onPath[c] = true
	}
	return &Env{
		Properties: MapSource{},
		Resolvable: func(identifier string) bool { return onPath[identifier] },
		Logger:     zerolog.Nop(),
	}
}

func TestOnClass_AllMustResolve(t *testing.T) {
	env := classpathEnv("redis.Client")

	result, err := NewOnClass("redis.Client").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected match for resolvable class, got: %s", result)
	}

	result, err = NewOnClass("redis.Client", "redis.Pool").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected no match when one class is unresolvable, got: %s", result)
	}
}

func TestOnClass_UnresolvableIsNonMatchNotError(t *testing.T) {
	result, err := NewOnClass("ghost.Class").Evaluate(context.Background(), classpathEnv())
	if err != nil {
		t.Fatalf("Unresolvable class must not be an error: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected no match, got: %s", result)
	}
}

func TestOnMissingClass_AllMustBeUnresolvable(t *testing.T) {
	env := classpathEnv("redis.Client")

	result, err := NewOnMissingClass("ghost.Class").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected match for absent class, got: %s", result)
	}

	result, err = NewOnMissingClass("redis.Client", "ghost.Class").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected no match when one class is present, got: %s", result)
	}
}

func TestOnClass_NilClasspathView(t *testing.T) {
	env := &Env{Properties: MapSource{}, Logger: zerolog.Nop()}

	result, err := NewOnClass("anything").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Error("Expected nothing to resolve without a classpath view")
	}
}

func TestOnClass_Empty_IsAuthorError(t *testing.T) {
	if _, err := NewOnClass().Evaluate(context.Background(), classpathEnv()); !IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
	if _, err := NewOnMissingClass().Evaluate(context.Background(), classpathEnv()); !IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
}
