package traversal

import (
	"container/heap"

	"github.com/exploro/maprando/pkg/model"
)

// Engine holds a fixed set of links indexed by source vertex, ready to be
// searched repeatedly (once per placement step, with a GlobalState that
// only ever grows) without re-indexing.
type Engine struct {
	numVertices int
	outgoing    map[model.VertexID][]int // vertex -> indices into Links
	incoming    map[model.VertexID][]int // reverse-direction adjacency, for reverse searches
	Links       []*model.Link
}

// NewEngine indexes links for both forward and reverse traversal.
func NewEngine(numVertices int, links []*model.Link) *Engine {
	e := &Engine{
		numVertices: numVertices,
		outgoing:    make(map[model.VertexID][]int),
		incoming:    make(map[model.VertexID][]int),
		Links:       links,
	}
	for i, l := range links {
		e.outgoing[l.FromVertex] = append(e.outgoing[l.FromVertex], i)
		e.incoming[l.ToVertex] = append(e.incoming[l.ToVertex], i)
	}
	return e
}

// TraverseResult holds, for one cost metric and one search direction, the
// cheapest LocalState found so far at each vertex and the trail entry that
// reaches it.
type TraverseResult struct {
	Metric    int
	Reachable []bool
	Best      []model.LocalState
	TrailID   []TrailID
	Trail     *Trail
}

func newTraverseResult(numVertices, metric int, trail *Trail) *TraverseResult {
	return &TraverseResult{
		Metric:    metric,
		Reachable: make([]bool, numVertices),
		Best:      make([]model.LocalState, numVertices),
		TrailID:   make([]TrailID, numVertices),
		Trail:     trail,
	}
}

type pqItem struct {
	vertex model.VertexID
	local  model.LocalState
	trail  TrailID
	cost   float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// metricCost extracts the scalar this metric minimizes from a LocalState.
func metricCost(metric int, local model.LocalState) float64 {
	switch metric {
	case model.MetricEnergy:
		return local.EnergyUsed + local.ReserveUsed
	case model.MetricMissile:
		return local.MissilesUsed + local.SupersUsed + local.PowerBombsUsed
	default:
		return local.TotalFrames()
	}
}

// Traverse runs a single-metric Dijkstra-style search forward from start
// with the given starting LocalState, using adjacency in the given
// direction (true for forward/outgoing, false for reverse/incoming — a
// reverse search walks links backwards, so ApplyLink is evaluated as if
// the link were traversed from ToVertex to FromVertex).
func (e *Engine) Traverse(metric int, global *model.GlobalState, start model.VertexID, startLocal model.LocalState, forward bool, trail *Trail) *TraverseResult {
	result := newTraverseResult(e.numVertices, metric, trail)
	pq := &priorityQueue{}
	heap.Init(pq)

	heap.Push(pq, pqItem{vertex: start, local: startLocal, trail: NoTrail, cost: metricCost(metric, startLocal)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if result.Reachable[item.vertex] {
			continue
		}
		result.Reachable[item.vertex] = true
		result.Best[item.vertex] = item.local
		result.TrailID[item.vertex] = item.trail

		adjacency := e.outgoing[item.vertex]
		if !forward {
			adjacency = e.incoming[item.vertex]
		}
		for _, linkIdx := range adjacency {
			link := e.Links[linkIdx]
			next := link.ToVertex
			if !forward {
				next = link.FromVertex
			}
			if result.Reachable[next] {
				continue
			}
			nextLocal := ApplyLink(link, global, item.local)
			if nextLocal.IsImpossible() {
				continue
			}
			nextTrail := trail.Append(item.trail, linkIdx)
			heap.Push(pq, pqItem{vertex: next, local: nextLocal, trail: nextTrail, cost: metricCost(metric, nextLocal)})
		}
	}

	return result
}

// GetBireachableVertices returns every vertex reachable both by forward
// (any metric satisfied) and reverse (any metric satisfied) search, the
// set of locations a path can both reach and return from under one
// consistent global state.
func GetBireachableVertices(forward, reverse []*TraverseResult) []model.VertexID {
	var out []model.VertexID
	n := len(forward[0].Reachable)
	for v := 0; v < n; v++ {
		fwd := false
		for _, r := range forward {
			if r.Reachable[v] {
				fwd = true
				break
			}
		}
		if !fwd {
			continue
		}
		rev := false
		for _, r := range reverse {
			if r.Reachable[v] {
				rev = true
				break
			}
		}
		if rev {
			out = append(out, model.VertexID(v))
		}
	}
	return out
}

// GetOneWayReachableVertices returns every vertex reachable forward under
// any metric, regardless of whether a return path exists — used for
// locations that are collectible but not round-trippable (e.g. one-way
// shafts), which the placement engine treats more cautiously than
// bireachable ones.
func GetOneWayReachableVertices(forward []*TraverseResult) []model.VertexID {
	var out []model.VertexID
	n := len(forward[0].Reachable)
	for v := 0; v < n; v++ {
		for _, r := range forward {
			if r.Reachable[v] {
				out = append(out, model.VertexID(v))
				break
			}
		}
	}
	return out
}

// GetSpoilerRoute reconstructs the ordered list of link indices a search
// result used to first reach vertex, for spoiler-log route annotation.
func GetSpoilerRoute(result *TraverseResult, vertex model.VertexID) []int {
	if !result.Reachable[vertex] {
		return nil
	}
	return result.Trail.Route(result.TrailID[vertex])
}
