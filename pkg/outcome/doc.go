// Package outcome defines the result values produced by condition evaluation.
//
// An Outcome pairs a boolean match decision with a Message, a composable
// human-readable explanation of why the decision was made. Outcomes are
// immutable values: combinators derive new Outcomes from existing ones
// without mutating their inputs.
//
// Messages are built through a small fluent builder:
//
//	msg := outcome.ForCondition("OnProperty (app.cache)").
//		DidNotFind("property").Quoted("enabled")
//	// "OnProperty (app.cache) did not find property 'enabled'"
//
// Rendering follows deterministic rules: no leading space when the condition
// clause is empty, singular noun form for exactly one item and plural
// otherwise, items joined with ", ", and an optional quoting style applied
// per item. Appending empty text is a no-op, which lets purely boolean
// sub-results contribute no noise to a composed explanation.
package outcome
