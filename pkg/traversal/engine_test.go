package traversal

import (
	"testing"

	"github.com/exploro/maprando/pkg/model"
)

func buildLinearEngine(n int) *Engine {
	var links []*model.Link
	for i := 0; i < n-1; i++ {
		links = append(links, model.NewLink(model.VertexID(i), model.VertexID(i+1), model.Free()))
		links = append(links, model.NewLink(model.VertexID(i+1), model.VertexID(i), model.Free()))
	}
	return NewEngine(n, links)
}

func TestTraverseReachesEveryVertexOnALinearChain(t *testing.T) {
	e := buildLinearEngine(5)
	g := model.NewGlobalState()
	trail := NewTrail()

	result := e.Traverse(model.MetricFull, g, 0, model.NewLocalState(), true, trail)
	for v := 0; v < 5; v++ {
		if !result.Reachable[model.VertexID(v)] {
			t.Fatalf("vertex %d should be reachable from 0 on a linear chain", v)
		}
	}
}

func TestTraverseBlockedByMissingTech(t *testing.T) {
	links := []*model.Link{
		model.NewLink(0, 1, model.TechReq(5)),
	}
	e := NewEngine(2, links)
	g := model.NewGlobalState()
	trail := NewTrail()

	result := e.Traverse(model.MetricFull, g, 0, model.NewLocalState(), true, trail)
	if result.Reachable[1] {
		t.Fatalf("vertex 1 should be unreachable without the required tech")
	}

	g.EnableTech(5)
	trail2 := NewTrail()
	result2 := e.Traverse(model.MetricFull, g, 0, model.NewLocalState(), true, trail2)
	if !result2.Reachable[1] {
		t.Fatalf("vertex 1 should become reachable once the tech is enabled")
	}
}

func TestGetBireachableVerticesRequiresBothDirections(t *testing.T) {
	// 0 -> 1 is one-way only; 0 <-> 2 is two-way.
	links := []*model.Link{
		model.NewLink(0, 1, model.Free()),
		model.NewLink(0, 2, model.Free()),
		model.NewLink(2, 0, model.Free()),
	}
	e := NewEngine(3, links)
	g := model.NewGlobalState()

	fwdTrail := NewTrail()
	fwd := e.Traverse(model.MetricFull, g, 0, model.NewLocalState(), true, fwdTrail)

	revTrail := NewTrail()
	rev := e.Traverse(model.MetricFull, g, 0, model.NewLocalState(), false, revTrail)

	bireachable := GetBireachableVertices([]*TraverseResult{fwd}, []*TraverseResult{rev})

	found := map[model.VertexID]bool{}
	for _, v := range bireachable {
		found[v] = true
	}
	if !found[2] {
		t.Fatalf("vertex 2 should be bireachable (round trip exists)")
	}
	if found[1] {
		t.Fatalf("vertex 1 should not be bireachable (no way back)")
	}
}

func TestGetSpoilerRouteReconstructsPath(t *testing.T) {
	e := buildLinearEngine(4)
	g := model.NewGlobalState()
	trail := NewTrail()
	result := e.Traverse(model.MetricFull, g, 0, model.NewLocalState(), true, trail)

	route := GetSpoilerRoute(result, 3)
	if len(route) != 3 {
		t.Fatalf("expected a 3-link route from vertex 0 to vertex 3, got %d links", len(route))
	}
}
