package condition

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func resourceEnv(props map[string]string, existing ...string) *Env {
	present := make(map[string]bool, len(existing))
	for _, location := range existing {
		present[location] = true
	}
	return &Env{
		Properties:     MapSource(props),
		ResourceExists: func(location string) bool { return present[location] },
		Logger:         zerolog.Nop(),
	}
}

func TestExpandPlaceholders(t *testing.T) {
	env := resourceEnv(map[string]string{"app.config.dir": "/etc/app"})

	tests := []struct {
		location string
		expected string
	}{
		{"${app.config.dir}/conf.yaml", "/etc/app/conf.yaml"},
		{"plain/path.yaml", "plain/path.yaml"},
		{"${unknown}/x", "${unknown}/x"},
		{"${broken", "${broken"},
	}

	for _, tt := range tests {
		if got := expandPlaceholders(tt.location, env); got != tt.expected {
			t.Errorf("expandPlaceholders(%q) = %q, expected %q", tt.location, got, tt.expected)
		}
	}
}

func TestOnResource_AllMustExist(t *testing.T) {
	env := resourceEnv(map[string]string{"dir": "/etc/app"}, "/etc/app/conf.yaml")

	result, err := NewOnResource("${dir}/conf.yaml").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if !result.Matched {
		t.Errorf("Expected match for existing resource, got: %s", result)
	}

	result, err = NewOnResource("${dir}/conf.yaml", "/missing.yaml").Evaluate(context.Background(), env)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if result.Matched {
		t.Errorf("Expected no match when one resource is missing, got: %s", result)
	}
}

func TestOnResource_Empty_IsAuthorError(t *testing.T) {
	if _, err := NewOnResource().Evaluate(context.Background(), resourceEnv(nil)); !IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
}
