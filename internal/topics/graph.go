// Package topics provides the related-topics lookup used as a ranking
// input by the feed assembler. The relation is symmetric: if A lists B,
// B is related to A even when B's seed entry omits it.
package topics

import (
	"sort"
)

// Graph holds the topic relation with precomputed, deterministic
// neighbor lists.
type Graph struct {
	related map[string][]string
}

// New builds a Graph from a topic → related-topics map. The symmetric
// closure is computed and every neighbor list is sorted so lookups are
// deterministic regardless of seed order.
func New(relations map[string][]string) *Graph {
	sets := make(map[string]map[string]struct{})
	add := func(a, b string) {
		if a == b || a == "" || b == "" {
			return
		}
		if sets[a] == nil {
			sets[a] = make(map[string]struct{})
		}
		sets[a][b] = struct{}{}
	}
	for topic, rel := range relations {
		for _, r := range rel {
			add(topic, r)
			add(r, topic)
		}
	}

	g := &Graph{related: make(map[string][]string, len(sets))}
	for topic, set := range sets {
		list := make([]string, 0, len(set))
		for r := range set {
			list = append(list, r)
		}
		sort.Strings(list)
		g.related[topic] = list
	}
	return g
}

// Related returns the topics related to topic, sorted. A nil Graph or
// an unknown topic returns nil, which callers treat as "no bonus".
func (g *Graph) Related(topic string) []string {
	if g == nil {
		return nil
	}
	return g.related[topic]
}

// RelatedSet returns the related topics as a membership set.
func (g *Graph) RelatedSet(topic string) map[string]struct{} {
	rel := g.Related(topic)
	if len(rel) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(rel))
	for _, r := range rel {
		set[r] = struct{}{}
	}
	return set
}
