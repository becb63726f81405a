package candidate

import (
	"strconv"

	"github.com/katalvlaran/linkern/algorithms"
	"github.com/katalvlaran/linkern/core"
)

func cityVertexID(i int) string { return strconv.Itoa(i) }

// CheckConnected verifies that the candidate graph induced by cs — the
// undirected union of every city's candidate edges — spans all n cities.
// A disconnected candidate graph would strand cities the LK engine's flip
// and kick moves, restricted to candidate edges, could never reach.
func CheckConnected(cs *CandidateSet) error {
	n := cs.N()
	if n == 0 {
		return nil
	}
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cityVertexID(i)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		neigh, err := cs.Candidates(i)
		if err != nil {
			return err
		}
		for _, j := range neigh {
			if _, err = g.AddEdge(cityVertexID(i), cityVertexID(int(j)), 1); err != nil {
				return err
			}
		}
	}

	res, err := algorithms.BFS(g, cityVertexID(0), nil)
	if err != nil {
		return err
	}
	if len(res.Order) != n {
		return ErrDisconnected
	}
	return nil
}
