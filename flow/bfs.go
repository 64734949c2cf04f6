package flow

import "github.com/YohanAvishke/Algorithms-coursework-sub001/matrix"

// bfsParents runs one breadth-first search over the current residual matrix
// from source, following only edges with positive residual capacity.
//
// It returns the parent vector (parent[v] = predecessor of v on the
// fewest-edge path from source; noParent where unreached) and whether the
// sink was reached. Sink unreached is the driver's normal termination
// signal, not an error.
//
// Neighbor columns are scanned strictly in ascending index order. The order
// is load-bearing: it fixes which of several shortest paths is found, and
// with it the engine's determinism guarantee.
//
// Each call is a fresh search; no state survives between calls.
func bfsParents(res *matrix.Matrix, source, sink int) ([]int, bool) {
	n := res.N()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}
	visited := make([]bool, n)

	queue := make([]int, 0, n)
	queue = append(queue, source)
	visited[source] = true

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		row := res.Row(u)
		for v, capUV := range row {
			if capUV <= 0 || visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				// shortest path to sink is complete; no need to drain the queue
				return parent, true
			}
			queue = append(queue, v)
		}
	}

	return parent, false
}

// rebuildPath walks the parent vector backward from sink to source and
// returns the path's edges in source→sink order.
func rebuildPath(parent []int, source, sink int) []Edge {
	// collect edges sink→source
	edges := make([]Edge, 0, len(parent))
	for v := sink; v != source; v = parent[v] {
		edges = append(edges, Edge{From: parent[v], To: v})
	}
	// reverse into source→sink order
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return edges
}
