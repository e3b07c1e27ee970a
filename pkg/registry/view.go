package registry

import "github.com/condor-engine/condor/pkg/typeref"

// Phase identifies the evaluation stage a query serves. The registry is
// still empty during the parse stage, so registry-dependent conditions must
// declare PhaseRegister and are only evaluated once prior units have
// contributed their declarations.
type Phase string

const (
	// PhaseParse is the early, registry-independent stage: classpath,
	// property and environment checks.
	PhaseParse Phase = "parse"

	// PhaseRegister is the late stage where conditions observe the
	// partially built registry.
	PhaseRegister Phase = "register"
)

// Hit is one query result: the declaration and the name it is registered
// under.
type Hit struct {
	Name        string      `json:"name"`
	Declaration Declaration `json:"declaration"`
}

// View is a read-only query facade over one registry snapshot, tagged with
// the phase it serves. A parse-phase view answers every query empty: the
// registry is not populated until the register stage, and conditions that
// run early must not observe declarations. Views perform no caching:
// repeating a query on the same snapshot returns the same hits in the same
// order.
type View struct {
	registry *Registry
	resolver *typeref.Resolver
	phase    Phase
}

// NewView creates a view over the given registry snapshot.
func NewView(reg *Registry, resolver *typeref.Resolver, phase Phase) *View {
	return &View{registry: reg, resolver: resolver, phase: phase}
}

// Phase returns the evaluation phase the view serves.
func (v *View) Phase() Phase {
	return v.phase
}

// Resolver returns the type resolver backing generic queries.
func (v *View) Resolver() *typeref.Resolver {
	return v.resolver
}

// FindByType returns the declarations whose produced type is assignable to
// the given raw type, in declaration order, ancestors first.
func (v *View) FindByType(raw string, includeAncestors bool) []Hit {
	return v.FindByTarget(typeref.Target{Raw: raw}, includeAncestors)
}

// FindByName resolves a single declaration by name. Inner registries shadow
// ancestors.
func (v *View) FindByName(name string, includeAncestors bool) (Declaration, bool) {
	if v.registry == nil || v.phase == PhaseParse {
		return Declaration{}, false
	}
	if !includeAncestors {
		return v.registry.Lookup(name)
	}
	return v.registry.effective(name)
}

// FindByAnnotation returns the declarations carrying the marker, including
// markers statically exposed by a declaration's producing factory.
func (v *View) FindByAnnotation(marker string, includeAncestors bool) []Hit {
	return v.collect(includeAncestors, func(d Declaration) bool {
		return d.HasAnnotation(marker)
	})
}

// FindByTarget returns the declarations whose produced type satisfies the
// target specification, delegating generic and holder matching to the type
// resolver.
func (v *View) FindByTarget(target typeref.Target, includeAncestors bool) []Hit {
	return v.collect(includeAncestors, func(d Declaration) bool {
		return v.resolver.Matches(d.Type, target)
	})
}

// collect walks the registry chain outermost-first in insertion order,
// applying inner-shadows-outer name resolution, and returns the hits
// accepted by the predicate.
func (v *View) collect(includeAncestors bool, accept func(Declaration) bool) []Hit {
	if v.registry == nil || v.phase == PhaseParse {
		return nil
	}

	levels := []*Registry{v.registry}
	if includeAncestors {
		levels = v.registry.chain()
	}

	var hits []Hit
	seen := make(map[string]bool)
	for _, level := range levels {
		for _, name := range level.order {
			if seen[name] {
				continue
			}
			seen[name] = true
			d, _ := v.registry.effective(name)
			if !includeAncestors {
				d, _ = level.Lookup(name)
			}
			if accept(d) {
				hits = append(hits, Hit{Name: name, Declaration: d})
			}
		}
	}
	return hits
}
