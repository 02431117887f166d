// Package domain contains the core domain models for the target dependency
// graph and the build layout conventions.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph of build targets.
type Graph struct {
	targets        map[InternedString]Target
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets: make(map[InternedString]Target),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = *t
	return nil
}

// Lookup returns the target with the given name.
func (g *Graph) Lookup(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Len returns the number of declared targets.
func (g *Graph) Len() int {
	return len(g.targets)
}

// Validate checks for missing dependencies and cycles using a depth-first
// topological sort, and populates the execution order on success. A target
// reached while still on the current traversal path is a cycle; validation
// fails before any action has run.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.targets))
	visited := make(map[InternedString]int) // 0: unvisited, 1: in progress, 2: done
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		target, exists := g.targets[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range target.Dependencies {
			if visited[dep] == 1 {
				return g.cycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for name := range g.targets {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// cycleError renders the offending path as metadata on ErrCycleDetected.
func (g *Graph) cycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cycle := ""
	for i := start; i < len(path); i++ {
		cycle += path[i].String() + " -> "
	}
	cycle += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cycle)
}

// Walk returns an iterator over targets in execution order (dependencies
// before dependents). It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.targets[name]) {
				return
			}
		}
	}
}

// Reachable returns the set of targets in the transitive dependency closure
// of root, root included. It assumes the graph has been validated.
func (g *Graph) Reachable(root InternedString) map[InternedString]bool {
	reach := make(map[InternedString]bool)
	var visit func(u InternedString)
	visit = func(u InternedString) {
		if reach[u] {
			return
		}
		reach[u] = true
		for _, dep := range g.targets[u].Dependencies {
			visit(dep)
		}
	}
	if _, ok := g.targets[root]; ok {
		visit(root)
	}
	return reach
}
