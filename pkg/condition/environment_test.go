package condition

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestOnProfile_AnyActiveProfileMatches(t *testing.T) {
	env := &Env{Profiles: []string{"dev"}, Logger: zerolog.Nop()}

	result, err := NewOnProfile("dev", "staging").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected match when one profile is active, got: %s", result)
	}

	result, err = NewOnProfile("prod").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected no match for inactive profile, got: %s", result)
	}
}

func TestOnCapability_AllMustBeAvailable(t *testing.T) {
	caps := map[string]bool{"preview": true}
	env := &Env{
		Capability: func(name string) bool { return caps[name] },
		Logger:     zerolog.Nop(),
	}

	result, err := NewOnCapability("preview").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected available capability to match, got: %s", result)
	}

	result, err = NewOnCapability("preview", "native").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected unavailable capability to fail the match, got: %s", result)
	}
	if result.Message.String() == "" {
		t.Error("Expected a message naming the unavailable capability")
	}
}

func TestOnProfileAndCapability_Empty_IsAuthorError(t *testing.T) {
	env := &Env{Logger: zerolog.Nop()}
	if _, err := NewOnProfile().Evaluate(context.Background(), env); !IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
	if _, err := NewOnCapability().Evaluate(context.Background(), env); !IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
}
