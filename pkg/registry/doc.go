// Package registry holds the candidate declarations accepted during one
// bootstrap pass and answers the queries conditions evaluate against it.
//
// A Registry is an insertion-ordered, name-unique collection of Declaration
// values with an optional parent chain: child contexts see their ancestors'
// declarations, and a name present at multiple levels is shadowed
// outward-to-inward. Registries grow by insertion only; a later declaration
// of an existing name supersedes the earlier one without disturbing its
// position.
//
// Queries run through a View, a read-only facade over one registry snapshot
// tagged with the evaluation phase it serves. Results are stable: the same
// query on the same snapshot returns the same hits in declaration-insertion
// order, ancestors first.
package registry
