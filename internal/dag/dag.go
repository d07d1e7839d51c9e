// Package dag models the dependency graph between generated collections.
// It supports cycle detection, topological sorting, and execution levels.
// Node insertion order is preserved so the build order is stable per run.
package dag

import "fmt"

// Graph is a directed acyclic graph over collection names.
type Graph struct {
	order    []string // insertion order of nodes
	nodes    map[string]struct{}
	children map[string][]string // parent -> dependents
	parents  map[string][]string // child -> dependencies
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]struct{}),
		children: make(map[string][]string),
		parents:  make(map[string][]string),
	}
}

// AddNode adds a node. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if _, exists := g.nodes[id]; exists {
		return
	}
	g.nodes[id] = struct{}{}
	g.order = append(g.order, id)
	g.children[id] = []string{}
	g.parents[id] = []string{}
}

// AddEdge records that child depends on parent.
func (g *Graph) AddEdge(parentID, childID string) error {
	if _, exists := g.nodes[parentID]; !exists {
		return fmt.Errorf("parent node %q does not exist", parentID)
	}
	if _, exists := g.nodes[childID]; !exists {
		return fmt.Errorf("child node %q does not exist", childID)
	}
	if parentID == childID {
		return fmt.Errorf("self-loop detected: %s", parentID)
	}

	if !contains(g.children[parentID], childID) {
		g.children[parentID] = append(g.children[parentID], childID)
	}
	if !contains(g.parents[childID], parentID) {
		g.parents[childID] = append(g.parents[childID], parentID)
	}
	return nil
}

// Parents returns the dependencies of a node.
func (g *Graph) Parents(id string) []string {
	return g.parents[id]
}

// Children returns the dependents of a node.
func (g *Graph) Children(id string) []string {
	return g.children[id]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, deps := range g.children {
		count += len(deps)
	}
	return count
}

// HasCycle reports whether the graph contains a cycle, with the cycle path.
func (g *Graph) HasCycle() (bool, []string) {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := make(map[string]string)

	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		visited[id] = true
		recStack[id] = true

		for _, childID := range g.children[id] {
			if !visited[childID] {
				path[childID] = id
				if dfs(childID) {
					return true
				}
			} else if recStack[childID] {
				cyclePath = []string{childID}
				for curr := id; curr != childID; curr = path[curr] {
					cyclePath = append([]string{curr}, cyclePath...)
				}
				cyclePath = append([]string{childID}, cyclePath...)
				return true
			}
		}

		recStack[id] = false
		return false
	}

	for _, id := range g.order {
		if !visited[id] {
			if dfs(id) {
				return true, cyclePath
			}
		}
	}
	return false, nil
}

// TopologicalSort returns node IDs with every dependency before its
// dependents. Ties are broken by insertion order, so registering
// collections in their natural export order keeps that order in the
// result. Returns an error if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]string, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("cycle detected: %v", cyclePath)
	}

	visited := make(map[string]bool)
	result := make([]string, 0, len(g.order))

	var visit func(id string)
	visit = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, parentID := range g.parents[id] {
			visit(parentID)
		}
		result = append(result, id)
	}

	for _, id := range g.order {
		visit(id)
	}
	return result, nil
}

// Levels groups node IDs by execution level: level 0 holds nodes with no
// dependencies, level N nodes depend only on earlier levels. Within a
// level, insertion order is preserved.
func (g *Graph) Levels() ([][]string, error) {
	if hasCycle, cyclePath := g.HasCycle(); hasCycle {
		return nil, fmt.Errorf("cycle detected: %v", cyclePath)
	}

	assigned := make(map[string]int)

	var level func(id string) int
	level = func(id string) int {
		if l, ok := assigned[id]; ok {
			return l
		}
		max := -1
		for _, parentID := range g.parents[id] {
			if pl := level(parentID); pl > max {
				max = pl
			}
		}
		assigned[id] = max + 1
		return max + 1
	}

	maxLevel := 0
	for _, id := range g.order {
		if l := level(id); l > maxLevel {
			maxLevel = l
		}
	}

	levels := make([][]string, maxLevel+1)
	for _, id := range g.order {
		levels[assigned[id]] = append(levels[assigned[id]], id)
	}
	return levels, nil
}

// Roots returns nodes with no dependencies, in insertion order.
func (g *Graph) Roots() []string {
	var roots []string
	for _, id := range g.order {
		if len(g.parents[id]) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
