package condition

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/condor-engine/condor/pkg/outcome"
	"github.com/condor-engine/condor/pkg/registry"
)

// Condition is a pure predicate over the registry snapshot, the candidate
// declaration under evaluation and the host environment. Implementations
// are stateless across evaluations apart from their own configuration and
// are reused for every declaration they are attached to.
type Condition interface {
	// Name identifies the condition in messages and reports, including a
	// summary of its configured criteria.
	Name() string

	// Phase declares the evaluation stage the condition requires.
	// PhaseParse conditions must not read the registry.
	Phase() registry.Phase

	// Evaluate returns the outcome for the candidate in env. A returned
	// error is a hard failure (see Error); ordinary non-matches are
	// outcome values, never errors.
	Evaluate(ctx context.Context, env *Env) (outcome.Outcome, error)
}

// PropertySource is a read-only key to string value lookup supplied by the
// host environment.
type PropertySource interface {
	Get(key string) (string, bool)
}

// EnumerablePropertySource is a property source that can enumerate its
// entries, required by the expression condition.
type EnumerablePropertySource interface {
	PropertySource
	All() map[string]string
}

// MapSource is a PropertySource backed by a plain map.
type MapSource map[string]string

// Get implements PropertySource.
func (m MapSource) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// All implements EnumerablePropertySource.
func (m MapSource) All() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Env is the shared, read-only evaluation context handed to every
// condition. The registry view is nil during the parse phase.
type Env struct {
	// Registry is the query facade over the current registry snapshot.
	Registry *registry.View

	// Properties is the environment property source.
	Properties PropertySource

	// Resolvable reports whether a class identifier resolves on the active
	// classpath view.
	Resolvable func(identifier string) bool

	// ResourceExists reports whether a resource location exists.
	ResourceExists func(location string) bool

	// Capability reports whether a runtime capability is available.
	Capability func(name string) bool

	// Profiles are the active environment profiles.
	Profiles []string

	// Candidate is the declaration currently being evaluated.
	Candidate *registry.Declaration

	// Logger is the evaluation logger.
	Logger zerolog.Logger
}

// Property resolves a property, tolerating a nil source.
func (e *Env) Property(key string) (string, bool) {
	if e.Properties == nil {
		return "", false
	}
	return e.Properties.Get(key)
}

// HasProfile reports whether the named profile is active.
func (e *Env) HasProfile(name string) bool {
	for _, p := range e.Profiles {
		if p == name {
			return true
		}
	}
	return false
}

// CandidateName returns the name of the candidate under evaluation, or ""
// when none is set.
func (e *Env) CandidateName() string {
	if e.Candidate == nil {
		return ""
	}
	return e.Candidate.Name
}
