package engine_test

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/condor-engine/condor/pkg/condition"
	"github.com/condor-engine/condor/pkg/engine"
	"github.com/condor-engine/condor/pkg/registry"
	"github.com/condor-engine/condor/pkg/typeref"
)

// Example_workflow demonstrates a complete resolution pass: declare a type
// universe, attach conditions to candidate units, resolve, and read the
// report.
func Example_workflow() {
	// 1. Declare the types the pass can reason about.
	universe := typeref.NewUniverse()
	universe.Define("CacheManager")
	universe.Define("RedisCacheManager", "CacheManager")

	// 2. Gate a default cache on the absence of any user-supplied one.
	defaultCache := engine.Unit{
		Declaration: registry.Declaration{
			Name: "defaultCacheManager",
			Type: typeref.Ref{Raw: "CacheManager"},
		},
		Conditions: []condition.Condition{
			condition.NewOnMissingComponent(condition.ComponentSpec{
				Types: []string{"CacheManager"},
			}),
		},
	}

	// 3. The user-supplied cache is gated on a property instead.
	redisCache := engine.Unit{
		Declaration: registry.Declaration{
			Name: "redisCacheManager",
			Type: typeref.Ref{Raw: "RedisCacheManager"},
		},
		Priority: -10,
		Conditions: []condition.Condition{
			condition.NewOnProperty(condition.PropertySpec{
				Prefix: "cache",
				Names:  []string{"redis.enabled"},
			}),
		},
	}

	// 4. Resolve against the environment.
	e := engine.New(engine.Options{
		Universe:   universe,
		Properties: condition.MapSource{"cache.redis.enabled": "true"},
		Logger:     zerolog.Nop(),
	})
	result, err := e.Resolve(context.Background(), []engine.Unit{defaultCache, redisCache})
	if err != nil {
		fmt.Println("resolve failed:", err)
		return
	}

	// 5. The redis cache ran first and shadowed the default one.
	fmt.Println("redisCacheManager:", result.Report.State("redisCacheManager"))
	fmt.Println("defaultCacheManager:", result.Report.State("defaultCacheManager"))
	for _, entry := range result.Report.Entries("defaultCacheManager") {
		fmt.Println(entry.Outcome.String())
	}

	// Output:
	// redisCacheManager: included
	// defaultCacheManager: excluded
	// no match: OnMissingComponent (types: CacheManager) found unwanted component 'redisCacheManager'
}
