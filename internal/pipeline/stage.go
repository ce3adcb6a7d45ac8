package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"armature-dresser/internal/diagnostic"
)

// Stage is one step of a run. Apply extends st and records its findings in
// diags. It returns an error only when the following stages cannot run.
type Stage struct {
	Name string
	// After names the stages that must run before this one.
	After []string
	Apply func(ctx context.Context, st *State, diags *diagnostic.Diagnostics) error
}

// ErrStageCycle is returned when stage dependencies form a cycle.
var ErrStageCycle = errors.New("stage dependency cycle")

// Order sorts stages so that each runs after the stages it names. Stages
// without a mutual constraint keep their input order.
func Order(stages []Stage) ([]Stage, error) {
	index := make(map[string]int, len(stages))

	for i, s := range stages {
		if _, dup := index[s.Name]; dup {
			return nil, fmt.Errorf("duplicate stage %q", s.Name)
		}

		index[s.Name] = i
	}

	deps := make([][]int, len(stages))

	for i, s := range stages {
		for _, name := range s.After {
			j, ok := index[name]
			if !ok {
				return nil, fmt.Errorf("stage %q runs after unknown stage %q", s.Name, name)
			}

			deps[i] = append(deps[i], j)
		}
	}

	order, err := topoSort(len(stages), deps)
	if err != nil {
		return nil, err
	}

	out := make([]Stage, len(order))
	for i, j := range order {
		out[i] = stages[j]
	}

	return out, nil
}

// topoSort returns node indices with every node after its deps. The lowest
// ready index is always taken first, so the result is deterministic.
func topoSort(n int, deps [][]int) ([]int, error) {
	pending := make([]int, n)
	next := make([][]int, n)

	for i := range n {
		pending[i] = len(deps[i])
		for _, d := range deps[i] {
			next[d] = append(next[d], i)
		}
	}

	var ready []int

	for i := range n {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]
		order = append(order, i)

		for _, j := range next[i] {
			pending[j]--
			if pending[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return nil, ErrStageCycle
	}

	return order, nil
}
