// Package typeref models declared types explicitly so that conditions can
// match candidate declarations without any runtime reflection.
//
// A declaration carries a Ref describing the type it produces: a raw type
// identifier, an optional generic type argument, and a flag marking generic
// signatures that exist but are not yet bound. Conditions express what they
// are looking for as a Target: a raw type, an optional generic argument, and
// an optional holder (wrapper) type whose payload is the type of interest.
//
// The Universe records the known type hierarchy (supertype edges) and the
// generic bindings declared at specific types, e.g. a StringHolder type that
// permanently binds Holder's argument to String. The Resolver walks this
// model to decide assignability and generic compatibility.
//
// Under-specified generics never fail hard: a declaration whose signature is
// unresolved matches conservatively when its raw erasure is compatible,
// avoiding false negatives while the registry is only partially built. A
// declaration with no generic information at all matches targets that supply
// no argument and never matches targets that require a specific one.
package typeref
