package typeref

// Resolver decides whether the type a declaration produces satisfies a
// target specification, including generic arguments and holder unwrapping.
// It is stateless apart from the universe it reads.
type Resolver struct {
	universe *Universe
}

// NewResolver creates a resolver over the given universe.
func NewResolver(universe *Universe) *Resolver {
	return &Resolver{universe: universe}
}

// Universe returns the universe the resolver reads.
func (r *Resolver) Universe() *Universe {
	return r.universe
}

// Matches reports whether the produced type satisfies the target.
//
// Without a holder, the produced raw type must be assignable to the target
// raw type, and a target argument (when given) must be satisfied by the
// declaration's resolved generic argument. With a holder, the produced type
// must be assignable to the holder and its extracted payload is matched
// against the target raw type and argument.
//
// Unresolved generic signatures match conservatively when the raw erasure
// is compatible; an erased-only declaration never satisfies a target that
// requires a specific argument.
func (r *Resolver) Matches(produced Ref, target Target) bool {
	if target.Holder != "" {
		return r.matchesHolder(produced, target)
	}

	if !r.universe.AssignableTo(produced.Raw, target.Raw) {
		return false
	}
	if target.Argument == "" {
		return true
	}

	argument, ok := r.resolveArgument(produced)
	if !ok {
		// Unresolved signatures are treated as compatible once the raw
		// erasure matched; erased-only declarations are not.
		return produced.ArgumentUnresolved
	}
	return r.universe.AssignableTo(argument, target.Argument)
}

// matchesHolder unwraps one holder level: the produced type must be
// assignable to the holder, and the holder's payload must satisfy the
// target raw type and argument.
func (r *Resolver) matchesHolder(produced Ref, target Target) bool {
	if !r.universe.AssignableTo(produced.Raw, target.Holder) {
		return false
	}

	payload, ok := r.resolveArgument(produced)
	if !ok {
		return produced.ArgumentUnresolved
	}
	if !r.universe.AssignableTo(payload, target.Raw) {
		return false
	}
	if target.Argument == "" {
		return true
	}

	payloadArgument, ok := r.universe.ArgumentOf(payload)
	if !ok {
		return produced.ArgumentUnresolved
	}
	return r.universe.AssignableTo(payloadArgument, target.Argument)
}

// resolveArgument resolves the generic argument of a produced type, falling
// back to bindings declared along the supertype chain when the declaration
// itself does not carry one.
func (r *Resolver) resolveArgument(produced Ref) (string, bool) {
	if produced.Argument != "" {
		return produced.Argument, true
	}
	return r.universe.ArgumentOf(produced.Raw)
}
