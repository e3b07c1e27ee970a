// Package condition implements the predicates that decide whether a
// candidate declaration is registered during a bootstrap pass.
//
// Every condition is a pure predicate over the current registry snapshot,
// the candidate declaration under evaluation and the host environment
// (properties, classpath view, resources, capabilities, profiles). It
// produces an outcome.Outcome: a match decision plus a human-readable
// explanation. Conditions are instantiated once per kind and reused for
// every declaration they are attached to; they hold only their own
// configuration and never mutate shared state.
//
// Atomic evaluators cover component presence and absence, property values,
// class presence and absence, resource existence, Rego expressions, active
// profiles and runtime capabilities. AllOf, AnyOf and NoneOf compose a
// fixed set of members within a single evaluation phase.
//
// Two kinds of failure are kept strictly apart. An ordinary non-match is a
// normal Outcome value and is never escalated. A configuration-author
// error, such as a condition configured with no identifying criteria or a
// malformed expression, is returned as an *Error with ClassAuthor and
// aborts the whole pass.
package condition
