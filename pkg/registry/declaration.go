package registry

import "github.com/condor-engine/condor/pkg/typeref"

// Origin describes how a declaration came to exist.
type Origin string

const (
	// OriginDirect is a declaration of a concrete type.
	OriginDirect Origin = "direct"

	// OriginFactory is a declaration produced by a factory method; its type
	// is the factory's declared return type.
	OriginFactory Origin = "factory"

	// OriginInstance is an externally supplied, already constructed
	// registration.
	OriginInstance Origin = "instance"
)

// Declaration is a named, typed description of a component that might be
// registered. Declarations are immutable once created; overriding a name
// supersedes the declaration rather than mutating it.
type Declaration struct {
	// Name uniquely identifies the declaration within one registry.
	Name string `json:"name"`

	// Type describes the type the declaration produces.
	Type typeref.Ref `json:"type"`

	// Origin records how the declaration was created.
	Origin Origin `json:"origin,omitempty"`

	// Annotations are the markers attached at the declaration site.
	Annotations []string `json:"annotations,omitempty"`

	// FactoryAnnotations are markers statically exposed by the factory that
	// produces the instance, discoverable without constructing it.
	FactoryAnnotations []string `json:"factory_annotations,omitempty"`
}

// HasAnnotation reports whether the declaration carries the marker, either
// at the declaration site or on its producing factory.
func (d Declaration) HasAnnotation(marker string) bool {
	for _, a := range d.Annotations {
		if a == marker {
			return true
		}
	}
	for _, a := range d.FactoryAnnotations {
		if a == marker {
			return true
		}
	}
	return false
}
