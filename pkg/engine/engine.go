package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/condor-engine/condor/pkg/condition"
	"github.com/condor-engine/condor/pkg/registry"
	"github.com/condor-engine/condor/pkg/typeref"
)

// Options configures a resolution engine. All fields are optional; the
// zero value resolves against an empty environment and a root registry.
type Options struct {
	// Parent is the ancestor registry chain, read-only for this pass.
	Parent *registry.Registry

	// ParentReport chains the pass's report to an ancestor context's
	// report.
	ParentReport *Report

	// Universe is the type universe built from parsed declarations.
	Universe *typeref.Universe

	// Properties is the environment property source.
	Properties condition.PropertySource

	// Resolvable is the classpath view.
	Resolvable func(identifier string) bool

	// ResourceExists is the resource view.
	ResourceExists func(location string) bool

	// Capability is the runtime capability view.
	Capability func(name string) bool

	// Profiles are the active environment profiles.
	Profiles []string

	// Logger is the engine logger.
	Logger zerolog.Logger

	// Metrics collects resolution metrics; nil disables collection.
	Metrics *Metrics
}

// Engine runs resolution passes. One engine can run independent passes
// sequentially; a single pass is single-threaded and must not be shared.
type Engine struct {
	opts     Options
	resolver *typeref.Resolver
	logger   zerolog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
}

// New creates an engine.
func New(opts Options) *Engine {
	universe := opts.Universe
	if universe == nil {
		universe = typeref.NewUniverse()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NopMetrics()
	}
	if opts.Properties == nil {
		opts.Properties = condition.MapSource{}
	}

	return &Engine{
		opts:     opts,
		resolver: typeref.NewResolver(universe),
		logger:   opts.Logger.With().Str("component", "engine").Logger(),
		metrics:  metrics,
		tracer:   otel.Tracer("github.com/condor-engine/condor/pkg/engine"),
	}
}

// Resolve runs one pass over the candidate units and returns the accepted
// registry and the evaluation report. A configuration-author error aborts
// the pass; no partial registry is returned.
func (e *Engine) Resolve(ctx context.Context, units []Unit) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "engine.Resolve",
		trace.WithAttributes(attribute.Int("units", len(units))))
	defer span.End()

	started := time.Now()
	report := NewReport(e.opts.ParentReport)

	e.logger.Info().
		Str("pass_id", report.ID).
		Int("units", len(units)).
		Msg("Resolution pass started")

	ordered, err := orderUnits(units)
	if err != nil {
		return nil, err
	}
	for _, unit := range ordered {
		report.SetState(unit.Declaration.Name, StateUnevaluated)
	}

	survivors, err := e.parseStage(ctx, ordered, report)
	if err != nil {
		return nil, err
	}

	reg, err := e.registerStage(ctx, survivors, report)
	if err != nil {
		return nil, err
	}

	report.finish()
	e.metrics.ObservePassDuration(time.Since(started))
	e.logger.Info().
		Str("pass_id", report.ID).
		Int("included", len(report.Included())).
		Int("excluded", len(report.Excluded())).
		Dur("duration", time.Since(started)).
		Msg("Resolution pass completed")

	return &Result{Registry: reg, Report: report}, nil
}

// parseStage evaluates the registry-independent conditions of every unit,
// short-circuiting a unit on its first non-match. Excluded units never
// reach the register stage.
func (e *Engine) parseStage(ctx context.Context, units []Unit, report *Report) ([]Unit, error) {
	ctx, span := e.tracer.Start(ctx, "engine.parseStage")
	defer span.End()

	var survivors []Unit
	for i := range units {
		unit := units[i]
		env := e.newEnv(nil, &unit.Declaration)

		included := true
		for _, cond := range unit.Conditions {
			if cond.Phase() != registry.PhaseParse {
				continue
			}
			matched, err := e.evaluate(ctx, cond, env, registry.PhaseParse, report, unit.Declaration.Name)
			if err != nil {
				return nil, err
			}
			if !matched {
				included = false
				break
			}
		}

		if !included {
			report.SetState(unit.Declaration.Name, StateExcluded)
			e.metrics.ObserveUnitState(StateExcluded)
			continue
		}
		report.SetState(unit.Declaration.Name, StateParsePassed)
		survivors = append(survivors, unit)
	}
	return survivors, nil
}

// registerStage evaluates the registry-dependent conditions in schedule
// order, inserting accepted declarations into the growing registry. Earlier
// units are never re-evaluated when later units change the registry.
func (e *Engine) registerStage(ctx context.Context, units []Unit, report *Report) (*registry.Registry, error) {
	ctx, span := e.tracer.Start(ctx, "engine.registerStage")
	defer span.End()

	reg := registry.New(e.opts.Parent)
	for i := range units {
		unit := units[i]
		name := unit.Declaration.Name
		report.SetState(name, StateRegistered)

		view := registry.NewView(reg, e.resolver, registry.PhaseRegister)
		env := e.newEnv(view, &unit.Declaration)

		included := true
		for _, cond := range unit.Conditions {
			if cond.Phase() != registry.PhaseRegister {
				continue
			}
			matched, err := e.evaluate(ctx, cond, env, registry.PhaseRegister, report, name)
			if err != nil {
				return nil, err
			}
			if !matched {
				included = false
				break
			}
		}
		report.SetState(name, StateEvaluated)

		if !included {
			report.SetState(name, StateExcluded)
			e.metrics.ObserveUnitState(StateExcluded)
			e.logger.Debug().Str("declaration", name).Msg("Unit excluded")
			continue
		}

		if err := reg.Insert(unit.Declaration); err != nil {
			return nil, condition.NewInternalError(
				fmt.Sprintf("failed to register declaration %s", name), err)
		}
		report.SetState(name, StateIncluded)
		e.metrics.ObserveUnitState(StateIncluded)
		e.logger.Debug().Str("declaration", name).Msg("Unit included")
	}
	return reg, nil
}

// evaluate runs one condition, records the entry and counts the metric.
func (e *Engine) evaluate(
	ctx context.Context,
	cond condition.Condition,
	env *condition.Env,
	phase registry.Phase,
	report *Report,
	declaration string,
) (bool, error) {
	evaluated, err := cond.Evaluate(ctx, env)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("declaration", declaration).
			Str("condition", cond.Name()).
			Msg("Condition evaluation failed")
		return false, err
	}

	report.Record(declaration, Entry{
		Condition: cond.Name(),
		Phase:     phase,
		Outcome:   evaluated,
	})
	e.metrics.ObserveEvaluation(evaluated.Matched)
	e.logger.Trace().
		Str("declaration", declaration).
		Str("condition", cond.Name()).
		Bool("matched", evaluated.Matched).
		Str("message", evaluated.Message.String()).
		Msg("Condition evaluated")

	return evaluated.Matched, nil
}

// newEnv builds the shared evaluation context. The registry view is nil in
// the parse stage.
func (e *Engine) newEnv(view *registry.View, candidate *registry.Declaration) *condition.Env {
	return &condition.Env{
		Registry:       view,
		Properties:     e.opts.Properties,
		Resolvable:     e.opts.Resolvable,
		ResourceExists: e.opts.ResourceExists,
		Capability:     e.opts.Capability,
		Profiles:       e.opts.Profiles,
		Candidate:      candidate,
		Logger:         e.logger,
	}
}
