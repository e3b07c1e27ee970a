package engine

import (
	"sort"
	"strings"

	"github.com/condor-engine/condor/pkg/condition"
)

// orderBuilder computes the processing schedule for configuration units:
// a stable topological sort over the explicit before/after relations, with
// (priority, declaration order) deciding among units whose relations leave
// them unordered.
type orderBuilder struct {
	// units holds the input units in declaration order.
	units []Unit

	// index maps declaration names to their first position in units.
	index map[string]int

	// adjacency maps a unit position to the positions that must run after
	// it.
	adjacency map[int][]int

	// inDegree tracks the number of incoming edges per position.
	inDegree []int
}

// orderUnits returns the committed processing schedule. A relation cycle is
// a configuration-author error; relations naming unknown declarations are
// ignored, since the referenced unit may simply not be part of this pass.
func orderUnits(units []Unit) ([]Unit, error) {
	if len(units) == 0 {
		return nil, nil
	}

	b := &orderBuilder{
		units:     units,
		index:     make(map[string]int, len(units)),
		adjacency: make(map[int][]int),
		inDegree:  make([]int, len(units)),
	}
	b.initialize()

	if cycle := b.detectCycle(); cycle != nil {
		return nil, condition.NewAuthorError(
			"ordering relations form a cycle: "+formatCycle(cycle), nil).
			WithCode(condition.CodeOrderingCycle)
	}

	return b.sort(), nil
}

// initialize indexes units and builds the edge lists from before/after
// relations.
func (b *orderBuilder) initialize() {
	for i, unit := range b.units {
		name := unit.Declaration.Name
		if _, exists := b.index[name]; !exists {
			b.index[name] = i
		}
	}

	addEdge := func(from, to int) {
		if from == to {
			return
		}
		b.adjacency[from] = append(b.adjacency[from], to)
		b.inDegree[to]++
	}

	for i, unit := range b.units {
		for _, name := range unit.After {
			if j, ok := b.index[name]; ok {
				addEdge(j, i)
			}
		}
		for _, name := range unit.Before {
			if j, ok := b.index[name]; ok {
				addEdge(i, j)
			}
		}
	}
}

// detectCycle runs a depth-first search over the relation edges and returns
// one offending cycle, or nil.
func (b *orderBuilder) detectCycle() []string {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]int, len(b.units))
	var path []int

	var visit func(i int) []string
	visit = func(i int) []string {
		state[i] = inProgress
		path = append(path, i)
		for _, next := range b.adjacency[i] {
			switch state[next] {
			case inProgress:
				// Found a cycle: slice the current path from its start.
				for start, pos := range path {
					if pos == next {
						cycle := make([]string, 0, len(path)-start+1)
						for _, p := range path[start:] {
							cycle = append(cycle, b.units[p].Declaration.Name)
						}
						return append(cycle, b.units[next].Declaration.Name)
					}
				}
			case unvisited:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		state[i] = done
		return nil
	}

	for i := range b.units {
		if state[i] == unvisited {
			if cycle := visit(i); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// sort runs Kahn's algorithm, always releasing the ready unit with the
// lowest (priority, declaration order) pair, which makes the schedule
// deterministic for a fixed input.
func (b *orderBuilder) sort() []Unit {
	inDegree := make([]int, len(b.inDegree))
	copy(inDegree, b.inDegree)

	var ready []int
	for i, degree := range inDegree {
		if degree == 0 {
			ready = append(ready, i)
		}
	}
	sortReady := func() {
		sort.SliceStable(ready, func(x, y int) bool {
			ux, uy := b.units[ready[x]], b.units[ready[y]]
			if ux.Priority != uy.Priority {
				return ux.Priority < uy.Priority
			}
			return ready[x] < ready[y]
		})
	}
	sortReady()

	ordered := make([]Unit, 0, len(b.units))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		ordered = append(ordered, b.units[next])

		released := false
		for _, dependent := range b.adjacency[next] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
				released = true
			}
		}
		if released {
			sortReady()
		}
	}
	return ordered
}

// formatCycle renders a cycle path for error messages.
func formatCycle(cycle []string) string {
	return strings.Join(cycle, " -> ")
}
