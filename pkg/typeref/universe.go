package typeref

// Universe records the known type hierarchy and the generic bindings
// declared at specific types. It is built once per bootstrap from parsed
// declarations and read-only afterwards.
type Universe struct {
	// supers maps a type to its direct supertypes.
	supers map[string][]string

	// arguments maps a type to the generic argument it permanently binds,
	// e.g. an OrderRepository type binding Repository's argument to Order.
	arguments map[string]string
}

// NewUniverse creates an empty type universe.
func NewUniverse() *Universe {
	return &Universe{
		supers:    make(map[string][]string),
		arguments: make(map[string]string),
	}
}

// Define registers a type and its direct supertypes. Defining a type twice
// merges the supertype sets.
func (u *Universe) Define(name string, supers ...string) {
	u.supers[name] = append(u.supers[name], supers...)
}

// DefineGeneric registers a type that binds a generic argument, along with
// its direct supertypes.
func (u *Universe) DefineGeneric(name, argument string, supers ...string) {
	u.Define(name, supers...)
	u.arguments[name] = argument
}

// Known reports whether the type has been defined.
func (u *Universe) Known(name string) bool {
	_, ok := u.supers[name]
	return ok
}

// AssignableTo reports whether a value of type from can be assigned to type
// to, walking the supertype edges upward. Identical names are always
// assignable; types outside the universe are assignable only to themselves.
func (u *Universe) AssignableTo(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	if from == to {
		return true
	}

	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, super := range u.supers[current] {
			if super == to {
				return true
			}
			if !visited[super] {
				visited[super] = true
				queue = append(queue, super)
			}
		}
	}
	return false
}

// ArgumentOf resolves the generic argument bound at the given type, walking
// the supertype chain for a declared binding when the type itself binds
// none. The second result reports whether a binding was found.
func (u *Universe) ArgumentOf(name string) (string, bool) {
	visited := map[string]bool{name: true}
	queue := []string{name}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if arg, ok := u.arguments[current]; ok {
			return arg, true
		}
		for _, super := range u.supers[current] {
			if !visited[super] {
				visited[super] = true
				queue = append(queue, super)
			}
		}
	}
	return "", false
}
