package manifest

import (
	"fmt"

	"github.com/condor-engine/condor/pkg/condition"
	"github.com/condor-engine/condor/pkg/engine"
	"github.com/condor-engine/condor/pkg/registry"
	"github.com/condor-engine/condor/pkg/typeref"
)

// Universe builds the type universe from the manifest's type declarations.
// Unit types that were never declared are added as plain leaf types so a
// manifest does not have to repeat every type twice.
func (m *Manifest) Universe() *typeref.Universe {
	universe := typeref.NewUniverse()
	for _, t := range m.Types {
		if t.Argument != "" {
			universe.DefineGeneric(t.Name, t.Argument, t.Supers...)
		} else {
			universe.Define(t.Name, t.Supers...)
		}
	}
	for _, u := range m.Units {
		if u.Type != "" && !universe.Known(u.Type) {
			universe.Define(u.Type)
		}
	}
	return universe
}

// BuildUnits builds the candidate units in declaration order.
func (m *Manifest) BuildUnits() ([]engine.Unit, error) {
	units := make([]engine.Unit, 0, len(m.Units))
	for _, uc := range m.Units {
		conditions := make([]condition.Condition, 0, len(uc.Conditions))
		for _, cc := range uc.Conditions {
			cond, err := buildCondition(cc)
			if err != nil {
				if cerr, ok := err.(*condition.Error); ok {
					return nil, cerr.WithDeclaration(uc.Name)
				}
				return nil, err
			}
			conditions = append(conditions, cond)
		}

		units = append(units, engine.Unit{
			Declaration: registry.Declaration{
				Name:               uc.Name,
				Type:               typeref.Ref{Raw: uc.Type, Argument: uc.Argument},
				Origin:             registry.Origin(uc.Origin),
				Annotations:        uc.Annotations,
				FactoryAnnotations: uc.FactoryAnnotations,
			},
			Conditions: conditions,
			Priority:   uc.Priority,
			Before:     uc.Before,
			After:      uc.After,
		})
	}
	return units, nil
}

// Options assembles the engine options for the manifest's environment. The
// caller supplies logging and metrics separately.
func (m *Manifest) Options() engine.Options {
	return engine.Options{
		Universe:       m.Universe(),
		Properties:     condition.MapSource(m.Environment.Properties),
		Profiles:       m.Environment.Profiles,
		Resolvable:     memberFunc(m.Environment.Classpath),
		ResourceExists: memberFunc(m.Environment.Resources),
		Capability:     memberFunc(m.Environment.Capabilities),
	}
}

// memberFunc builds a set-membership lookup over the listed values.
func memberFunc(values []string) func(string) bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return func(name string) bool { return set[name] }
}

// buildCondition converts one condition attachment, recursing into nested
// combinators.
func buildCondition(cc ConditionConfig) (condition.Condition, error) {
	var (
		built condition.Condition
		err   error
		count int
	)
	set := func(c condition.Condition, e error) {
		count++
		built, err = c, e
	}

	if cc.OnProperty != nil {
		set(condition.NewOnProperty(condition.PropertySpec{
			Prefix:         cc.OnProperty.Prefix,
			Names:          cc.OnProperty.Names,
			HavingValue:    cc.OnProperty.HavingValue,
			MatchIfMissing: cc.OnProperty.MatchIfMissing,
		}), nil)
	}
	if cc.OnComponent != nil {
		set(condition.NewOnComponent(componentSpec(cc.OnComponent)), nil)
	}
	if cc.OnMissingComponent != nil {
		set(condition.NewOnMissingComponent(componentSpec(cc.OnMissingComponent)), nil)
	}
	if len(cc.OnClass) > 0 {
		set(condition.NewOnClass(cc.OnClass...), nil)
	}
	if len(cc.OnMissingClass) > 0 {
		set(condition.NewOnMissingClass(cc.OnMissingClass...), nil)
	}
	if len(cc.OnResource) > 0 {
		set(condition.NewOnResource(cc.OnResource...), nil)
	}
	if cc.OnExpression != "" {
		set(condition.NewOnExpression(cc.OnExpression), nil)
	}
	if len(cc.OnProfile) > 0 {
		set(condition.NewOnProfile(cc.OnProfile...), nil)
	}
	if len(cc.OnCapability) > 0 {
		set(condition.NewOnCapability(cc.OnCapability...), nil)
	}
	if len(cc.AllOf) > 0 {
		set(buildComposite("all_of", cc.AllOf, condition.AllOf))
	}
	if len(cc.AnyOf) > 0 {
		set(buildComposite("any_of", cc.AnyOf, condition.AnyOf))
	}
	if len(cc.NoneOf) > 0 {
		set(buildComposite("none_of", cc.NoneOf, condition.NoneOf))
	}

	switch {
	case count == 0:
		return nil, condition.NewAuthorError("condition attachment specifies no condition kind", nil).
			WithCode(condition.CodeMissingAttribute)
	case count > 1:
		return nil, condition.NewAuthorError(
			fmt.Sprintf("condition attachment specifies %d condition kinds, want exactly one", count), nil).
			WithCode(condition.CodeConflictingAttributes)
	}
	return built, err
}

// buildComposite builds the members and hands them to the combinator
// constructor.
func buildComposite(
	name string,
	configs []ConditionConfig,
	combine func(string, ...condition.Condition) (*condition.Composite, error),
) (condition.Condition, error) {
	members := make([]condition.Condition, 0, len(configs))
	for _, cc := range configs {
		member, err := buildCondition(cc)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return combine(name, members...)
}

// componentSpec converts the YAML component criteria.
func componentSpec(cc *ComponentConfig) condition.ComponentSpec {
	spec := condition.ComponentSpec{
		Names:              cc.Names,
		Types:              cc.Types,
		Annotations:        cc.Annotations,
		CurrentContextOnly: cc.CurrentContextOnly,
	}
	if cc.Target != nil {
		spec.Target = typeref.Target{
			Raw:      cc.Target.Type,
			Argument: cc.Target.Argument,
			Holder:   cc.Target.Holder,
		}
	}
	return spec
}
