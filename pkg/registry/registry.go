package registry

import "fmt"

// Registry is the ordered, named collection of declarations accepted so
// far, with an optional parent for ancestor contexts. It is mutated only by
// insertion, by a single goroutine, during one resolution pass; parents are
// never mutated once a child starts evaluating.
type Registry struct {
	parent *Registry
	order  []string
	decls  map[string]Declaration
}

// New creates an empty registry with an optional parent. A nil parent makes
// a root registry.
func New(parent *Registry) *Registry {
	return &Registry{
		parent: parent,
		decls:  make(map[string]Declaration),
	}
}

// Parent returns the parent registry, or nil for a root registry.
func (r *Registry) Parent() *Registry {
	return r.parent
}

// Insert accepts a declaration. A declaration with a name already present
// in this registry supersedes the earlier one, keeping its position in the
// insertion order.
func (r *Registry) Insert(d Declaration) error {
	if d.Name == "" {
		return fmt.Errorf("declaration has empty name")
	}
	if _, exists := r.decls[d.Name]; !exists {
		r.order = append(r.order, d.Name)
	}
	r.decls[d.Name] = d
	return nil
}

// Lookup finds a declaration by name in this registry only, ignoring
// ancestors.
func (r *Registry) Lookup(name string) (Declaration, bool) {
	d, ok := r.decls[name]
	return d, ok
}

// Names returns the declaration names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of declarations in this registry, ignoring
// ancestors.
func (r *Registry) Len() int {
	return len(r.order)
}

// chain returns the registry chain from the outermost ancestor to the
// receiver.
func (r *Registry) chain() []*Registry {
	var levels []*Registry
	for current := r; current != nil; current = current.parent {
		levels = append(levels, current)
	}
	// Reverse so ancestors come first.
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
	return levels
}

// effective resolves a name to its innermost declaration across the chain.
func (r *Registry) effective(name string) (Declaration, bool) {
	for current := r; current != nil; current = current.parent {
		if d, ok := current.decls[name]; ok {
			return d, true
		}
	}
	return Declaration{}, false
}
