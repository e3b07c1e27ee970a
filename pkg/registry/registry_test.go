package registry

import (
	"testing"

	"github.com/condor-engine/condor/pkg/typeref"
)

func testResolver() *typeref.Resolver {
	u := typeref.NewUniverse()
	u.Define("CacheManager")
	u.Define("RedisCacheManager", "CacheManager")
	u.Define("DataSource")
	u.Define("Holder")
	u.DefineGeneric("PayloadHolder", "Payload", "Holder")
	u.Define("Payload")
	return typeref.NewResolver(u)
}

func TestRegistry_Insert_PreservesOrder(t *testing.T) {
	reg := New(nil)
	names := []string{"c", "a", "b"}
	for _, name := range names {
		if err := reg.Insert(Declaration{Name: name, Type: typeref.Ref{Raw: "DataSource"}}); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got := reg.Names()
	for i, name := range names {
		if got[i] != name {
			t.Errorf("Expected name %q at position %d, got %q", name, i, got[i])
		}
	}
}

func TestRegistry_Insert_SupersedesKeepingPosition(t *testing.T) {
	reg := New(nil)
	_ = reg.Insert(Declaration{Name: "a", Type: typeref.Ref{Raw: "CacheManager"}})
	_ = reg.Insert(Declaration{Name: "b", Type: typeref.Ref{Raw: "DataSource"}})
	_ = reg.Insert(Declaration{Name: "a", Type: typeref.Ref{Raw: "RedisCacheManager"}})

	if reg.Len() != 2 {
		t.Fatalf("Expected 2 declarations, got %d", reg.Len())
	}
	if reg.Names()[0] != "a" {
		t.Errorf("Expected superseded declaration to keep position 0, got %q", reg.Names()[0])
	}
	d, _ := reg.Lookup("a")
	if d.Type.Raw != "RedisCacheManager" {
		t.Errorf("Expected superseding type RedisCacheManager, got %q", d.Type.Raw)
	}
}

func TestRegistry_Insert_EmptyName(t *testing.T) {
	if err := New(nil).Insert(Declaration{}); err == nil {
		t.Error("Expected error for empty declaration name")
	}
}

func TestView_FindByType_IncludesSubtypes(t *testing.T) {
	reg := New(nil)
	_ = reg.Insert(Declaration{Name: "redisCache", Type: typeref.Ref{Raw: "RedisCacheManager"}})
	_ = reg.Insert(Declaration{Name: "dataSource", Type: typeref.Ref{Raw: "DataSource"}})

	view := NewView(reg, testResolver(), PhaseRegister)
	hits := view.FindByType("CacheManager", false)

	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(hits))
	}
	if hits[0].Name != "redisCache" {
		t.Errorf("Expected hit redisCache, got %q", hits[0].Name)
	}
}

func TestView_FindByName_ShadowingInnerWins(t *testing.T) {
	parent := New(nil)
	_ = parent.Insert(Declaration{Name: "cache", Type: typeref.Ref{Raw: "CacheManager"}})
	child := New(parent)
	_ = child.Insert(Declaration{Name: "cache", Type: typeref.Ref{Raw: "RedisCacheManager"}})

	view := NewView(child, testResolver(), PhaseRegister)
	d, ok := view.FindByName("cache", true)
	if !ok {
		t.Fatal("Expected to find declaration")
	}
	if d.Type.Raw != "RedisCacheManager" {
		t.Errorf("Expected inner declaration to shadow outer, got type %q", d.Type.Raw)
	}
}

func TestView_FindByName_AncestorVisibility(t *testing.T) {
	parent := New(nil)
	_ = parent.Insert(Declaration{Name: "dataSource", Type: typeref.Ref{Raw: "DataSource"}})
	child := New(parent)
	view := NewView(child, testResolver(), PhaseRegister)

	if _, ok := view.FindByName("dataSource", true); !ok {
		t.Error("Expected ancestor declaration to be visible with includeAncestors")
	}
	if _, ok := view.FindByName("dataSource", false); ok {
		t.Error("Expected ancestor declaration to be hidden without includeAncestors")
	}
}

func TestView_FindByAnnotation_IncludesFactoryMarkers(t *testing.T) {
	reg := New(nil)
	_ = reg.Insert(Declaration{
		Name:        "direct",
		Type:        typeref.Ref{Raw: "DataSource"},
		Annotations: []string{"Primary"},
	})
	_ = reg.Insert(Declaration{
		Name:               "fromFactory",
		Type:               typeref.Ref{Raw: "CacheManager"},
		Origin:             OriginFactory,
		FactoryAnnotations: []string{"Primary"},
	})
	_ = reg.Insert(Declaration{Name: "plain", Type: typeref.Ref{Raw: "DataSource"}})

	view := NewView(reg, testResolver(), PhaseRegister)
	hits := view.FindByAnnotation("Primary", false)

	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %d", len(hits))
	}
	if hits[0].Name != "direct" || hits[1].Name != "fromFactory" {
		t.Errorf("Expected hits in insertion order, got %q, %q", hits[0].Name, hits[1].Name)
	}
}

func TestView_FindByTarget_HolderPayload(t *testing.T) {
	reg := New(nil)
	_ = reg.Insert(Declaration{Name: "payloadHolder", Type: typeref.Ref{Raw: "PayloadHolder"}})

	view := NewView(reg, testResolver(), PhaseRegister)
	hits := view.FindByTarget(typeref.Target{Holder: "Holder", Raw: "Payload"}, false)
	if len(hits) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(hits))
	}

	hits = view.FindByTarget(typeref.Target{Holder: "Holder", Raw: "DataSource"}, false)
	if len(hits) != 0 {
		t.Errorf("Expected no hits for mismatched payload, got %d", len(hits))
	}
}

func TestView_ParsePhaseSeesNoDeclarations(t *testing.T) {
	reg := New(nil)
	_ = reg.Insert(Declaration{Name: "cache", Type: typeref.Ref{Raw: "CacheManager"}, Annotations: []string{"Primary"}})

	view := NewView(reg, testResolver(), PhaseParse)
	if hits := view.FindByType("CacheManager", true); len(hits) != 0 {
		t.Errorf("Expected parse-phase view to hide declarations by type, got %d hits", len(hits))
	}
	if _, ok := view.FindByName("cache", true); ok {
		t.Error("Expected parse-phase view to hide declarations by name")
	}
	if hits := view.FindByAnnotation("Primary", true); len(hits) != 0 {
		t.Errorf("Expected parse-phase view to hide declarations by annotation, got %d hits", len(hits))
	}
}

func TestView_QueryResultsAreStable(t *testing.T) {
	parent := New(nil)
	_ = parent.Insert(Declaration{Name: "outer", Type: typeref.Ref{Raw: "DataSource"}})
	child := New(parent)
	_ = child.Insert(Declaration{Name: "inner", Type: typeref.Ref{Raw: "DataSource"}})

	view := NewView(child, testResolver(), PhaseRegister)
	first := view.FindByType("DataSource", true)
	second := view.FindByType("DataSource", true)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("Expected 2 hits on both queries, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("Query order not stable at %d: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
	if first[0].Name != "outer" {
		t.Errorf("Expected ancestor hits first, got %q", first[0].Name)
	}
}
