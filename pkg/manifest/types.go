package manifest

// Manifest is the root of a resolution manifest file.
type Manifest struct {
	// Name identifies the manifest in logs and reports.
	Name string `yaml:"name" validate:"required"`

	// Types declares the type universe the pass reasons about.
	Types []TypeConfig `yaml:"types,omitempty" validate:"dive"`

	// Environment describes the host environment the conditions observe.
	Environment EnvironmentConfig `yaml:"environment,omitempty"`

	// Units are the candidate configuration units, in declaration order.
	Units []UnitConfig `yaml:"units" validate:"required,min=1,dive"`
}

// TypeConfig declares one type in the universe.
type TypeConfig struct {
	// Name is the type identifier.
	Name string `yaml:"name" validate:"required"`

	// Supers are the direct supertypes.
	Supers []string `yaml:"supers,omitempty"`

	// Argument is the generic argument this type permanently binds, e.g.
	// an OrderRepository binding Repository's argument to Order.
	Argument string `yaml:"argument,omitempty"`
}

// EnvironmentConfig describes the host environment.
type EnvironmentConfig struct {
	// Properties are the environment key-value properties.
	Properties map[string]string `yaml:"properties,omitempty"`

	// Profiles are the active environment profiles.
	Profiles []string `yaml:"profiles,omitempty"`

	// Classpath lists the class identifiers that resolve.
	Classpath []string `yaml:"classpath,omitempty"`

	// Resources lists the resource locations that exist.
	Resources []string `yaml:"resources,omitempty"`

	// Capabilities lists the available runtime capabilities.
	Capabilities []string `yaml:"capabilities,omitempty"`
}

// UnitConfig declares one candidate unit.
type UnitConfig struct {
	// Name uniquely identifies the declaration.
	Name string `yaml:"name" validate:"required"`

	// Type is the raw type the declaration produces.
	Type string `yaml:"type,omitempty"`

	// Argument is the generic argument the produced type binds.
	Argument string `yaml:"argument,omitempty"`

	// Origin is how the declaration is produced (direct, factory, instance).
	Origin string `yaml:"origin,omitempty" validate:"omitempty,oneof=direct factory instance"`

	// Annotations are markers attached at the declaration site.
	Annotations []string `yaml:"annotations,omitempty"`

	// FactoryAnnotations are markers exposed by the producing factory.
	FactoryAnnotations []string `yaml:"factory_annotations,omitempty"`

	// Priority orders units; lower values run earlier.
	Priority int `yaml:"priority,omitempty"`

	// Before names declarations this unit must be processed ahead of.
	Before []string `yaml:"before,omitempty"`

	// After names declarations that must be processed ahead of this unit.
	After []string `yaml:"after,omitempty"`

	// Conditions gate the declaration, in attachment order.
	Conditions []ConditionConfig `yaml:"conditions,omitempty" validate:"dive"`
}

// ConditionConfig declares one condition attachment. Exactly one field must
// be set; setting none or several is a configuration-author error reported
// when the manifest is built.
type ConditionConfig struct {
	OnProperty         *PropertyConfig   `yaml:"on_property,omitempty"`
	OnComponent        *ComponentConfig  `yaml:"on_component,omitempty"`
	OnMissingComponent *ComponentConfig  `yaml:"on_missing_component,omitempty"`
	OnClass            []string          `yaml:"on_class,omitempty"`
	OnMissingClass     []string          `yaml:"on_missing_class,omitempty"`
	OnResource         []string          `yaml:"on_resource,omitempty"`
	OnExpression       string            `yaml:"on_expression,omitempty"`
	OnProfile          []string          `yaml:"on_profile,omitempty"`
	OnCapability       []string          `yaml:"on_capability,omitempty"`
	AllOf              []ConditionConfig `yaml:"all_of,omitempty"`
	AnyOf              []ConditionConfig `yaml:"any_of,omitempty"`
	NoneOf             []ConditionConfig `yaml:"none_of,omitempty"`
}

// PropertyConfig configures a property condition.
type PropertyConfig struct {
	// Prefix is prepended to every name, separated by a dot.
	Prefix string `yaml:"prefix,omitempty"`

	// Names are the property names to check.
	Names []string `yaml:"names" validate:"required,min=1"`

	// HavingValue is the expected value; empty means the literal "true".
	HavingValue string `yaml:"having_value,omitempty"`

	// MatchIfMissing makes an unset property count as a match.
	MatchIfMissing bool `yaml:"match_if_missing,omitempty"`
}

// ComponentConfig configures a component presence or absence condition.
type ComponentConfig struct {
	// Names are declaration names to look for.
	Names []string `yaml:"names,omitempty"`

	// Types are raw types to look for.
	Types []string `yaml:"types,omitempty"`

	// Annotations are markers to look for.
	Annotations []string `yaml:"annotations,omitempty"`

	// Target is an optional generic/holder type specification.
	Target *TargetConfig `yaml:"target,omitempty"`

	// CurrentContextOnly restricts the query to the current registry.
	CurrentContextOnly bool `yaml:"current_context_only,omitempty"`
}

// TargetConfig configures a generic type target.
type TargetConfig struct {
	// Type is the required type.
	Type string `yaml:"type" validate:"required"`

	// Argument is an optional required generic argument.
	Argument string `yaml:"argument,omitempty"`

	// Holder is an optional wrapper type to unwrap before matching.
	Holder string `yaml:"holder,omitempty"`
}
