// Package engine drives one conditional resolution pass: it orders the
// candidate configuration units, evaluates their conditions in two phases
// and produces the final registry together with a navigable evaluation
// report.
//
// # Workflow
//
// Each unit moves through a fixed state machine:
//
//	Unevaluated -> ParsePassed -> Registered -> Evaluated -> {Included, Excluded}
//
// Parse-stage conditions are cheap and registry-independent (classpath,
// property and environment checks); they run first and short-circuit a unit
// before anything else of it is processed. Register-stage conditions run
// once prior units, in priority order, have contributed their declarations
// to the growing registry.
//
// Ordering is an explicit partial order: every unit carries a priority
// value (lower runs earlier) and optional before/after relations to other
// declarations. The engine performs a stable topological sort with
// declaration order as tiebreak; a relation cycle is a configuration-author
// error.
//
// # One-pass schedule
//
// The processing order is a committed, one-pass schedule. If a later unit
// changes the registry in a way that would have altered an earlier unit's
// component-presence outcome, the earlier unit is not re-evaluated.
// Declaration order is authoritative; order units explicitly when they
// depend on each other.
//
// # Failure semantics
//
// A configuration-author error aborts the pass immediately: no partial
// registry is handed downstream. Ordinary non-matches are recorded in the
// report and never escalate.
package engine
