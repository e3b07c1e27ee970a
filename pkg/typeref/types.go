package typeref

// Ref describes the type a candidate declaration produces: the return type
// of its factory, or its directly declared type.
type Ref struct {
	// Raw is the erased type identifier.
	Raw string `json:"raw"`

	// Argument is the generic type argument, when the declaration binds one.
	Argument string `json:"argument,omitempty"`

	// ArgumentUnresolved marks declarations whose generic signature exists
	// but is not yet bound, e.g. a subclass-level type parameter. Such
	// declarations match conservatively on raw-type compatibility.
	ArgumentUnresolved bool `json:"argument_unresolved,omitempty"`
}

// String renders the ref for messages, e.g. "Repository<Order>".
func (r Ref) String() string {
	if r.Argument != "" {
		return r.Raw + "<" + r.Argument + ">"
	}
	if r.ArgumentUnresolved {
		return r.Raw + "<?>"
	}
	return r.Raw
}

// Target specifies the type a condition is looking for. Holder, when set,
// names a generic wrapper type: the condition then matches declarations
// producing Holder-compatible types whose payload satisfies Raw/Argument.
type Target struct {
	// Raw is the type the condition requires.
	Raw string `json:"raw"`

	// Argument is an optional required generic type argument.
	Argument string `json:"argument,omitempty"`

	// Holder is an optional wrapper type to unwrap before matching.
	Holder string `json:"holder,omitempty"`
}

// IsZero reports whether the target specifies nothing.
func (t Target) IsZero() bool {
	return t.Raw == "" && t.Argument == "" && t.Holder == ""
}

// String renders the target for messages, e.g. "Holder<Payload>".
func (t Target) String() string {
	inner := t.Raw
	if t.Argument != "" {
		inner = t.Raw + "<" + t.Argument + ">"
	}
	if t.Holder != "" {
		return t.Holder + "<" + inner + ">"
	}
	return inner
}
