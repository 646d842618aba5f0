package main

// StartState encodes which end of a subregion's stored traversal path is the
// effective entry point when the subregion is visited, and whether vertex
// order within each segment is read forward or reversed.
type StartState int

const (
	// StartAtV1 reads the path forward, vertices in order.
	StartAtV1 StartState = iota
	// StartAtV2 reads the path forward, vertices swapped within each segment.
	StartAtV2
	// EndAtV1 reads the path in reverse, vertices in order.
	EndAtV1
	// EndAtV2 reads the path in reverse, vertices swapped within each segment.
	EndAtV2
)

// SubregionNode associates one convex subregion with its generated traversal
// path and resolved orientation. Subregions are referenced by index into the
// graph's slice, which is finalized before the graph is built and never
// mutated afterwards.
type SubregionNode struct {
	Subregion int
	Path      []Segment
	State     StartState
}

// SubregionGraph is a fixed-size weighted graph over subregions: a boolean
// adjacency matrix (edge iff the two subregions share a full boundary
// segment) and a weight matrix (center distance for adjacent pairs, a large
// penalty constant plus center distance otherwise, so non-adjacent
// transitions are strongly discouraged but not infinite).
type SubregionGraph struct {
	Subregions []Polygon
	Nodes      []SubregionNode
	Adj        [][]bool
	W          [][]float64
}

// NewSubregionGraph builds the graph over a finalized subregion slice,
// generating each subregion's traversal path and computing the adjacency and
// weight matrices.
func NewSubregionGraph(subregions []Polygon, cfg PlannerConfig) (*SubregionGraph, error) {
	n := len(subregions)
	g := &SubregionGraph{
		Subregions: subregions,
		Nodes:      make([]SubregionNode, n),
		Adj:        make([][]bool, n),
		W:          make([][]float64, n),
	}
	for i := range g.Nodes {
		path, err := Traverse(subregions[i], cfg)
		if err != nil {
			return nil, err
		}
		g.Nodes[i] = SubregionNode{Subregion: i, Path: path, State: StartAtV1}
		g.Adj[i] = make([]bool, n)
		g.W[i] = make([]float64, n)
	}
	g.computeWeights()
	return g, nil
}

// Size returns the number of subregions in the graph.
func (g *SubregionGraph) Size() int {
	return len(g.Nodes)
}

func (g *SubregionGraph) polygon(i int) Polygon {
	return g.Subregions[g.Nodes[i].Subregion]
}

// computeWeights fills in the adjacency and weight matrices. Every pair
// starts at the penalty weight; pairs that share a boundary edge are marked
// adjacent and re-weighted with the plain center-to-center distance, a cheap
// proxy for the true connecting-path length.
func (g *SubregionGraph) computeWeights() {
	for i := 0; i < g.Size(); i++ {
		for j := 0; j < g.Size(); j++ {
			if i == j {
				g.W[i][j] = 0
			} else {
				g.W[i][j] = inf + g.polygon(i).Center().Distance(g.polygon(j).Center())
			}
			if !g.Adj[i][j] {
				if _, _, ok := g.polygon(i).Adjacent(g.polygon(j)); ok {
					g.Adj[i][j] = true
					g.Adj[j][i] = true
				}
			}
		}
	}
	for i := 0; i < g.Size(); i++ {
		for j := 0; j < g.Size(); j++ {
			if g.Adj[i][j] {
				g.W[i][j] = g.polygon(i).Center().Distance(g.polygon(j).Center())
			}
		}
	}
}

// traversalLength computes the total weight of a visiting order.
func (g *SubregionGraph) traversalLength(path []int) float64 {
	length := 0.0
	for k := 0; k < len(path)-1; k++ {
		length += g.W[path[k]][path[k+1]]
	}
	return length
}

// nextPermutation rearranges the slice into the next lexicographic
// permutation, returning false once the last permutation has been reached.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}

// MinTraversal enumerates every permutation of subregion indices and returns
// the one minimizing total path weight. Factorial time; only tractable
// because subregion counts stay in the single digits, which maxSubregions
// enforces explicitly.
func (g *SubregionGraph) MinTraversal(maxSubregions int) ([]int, error) {
	if g.Size() > maxSubregions {
		return nil, ErrTooManySubregions
	}
	verts := make([]int, g.Size())
	for i := range verts {
		verts[i] = i
	}
	var bestPath []int
	minDistance := -1.0
	for {
		if d := g.traversalLength(verts); d < minDistance || minDistance == -1 {
			bestPath = append(bestPath[:0], verts...)
			minDistance = d
		}
		if !nextPermutation(verts) {
			return bestPath, nil
		}
	}
}

// exitVertex returns the point a subregion's path ends at under its resolved
// start state, falling back to the subregion center for empty paths.
func (g *SubregionGraph) exitVertex(i int) Point {
	node := g.Nodes[i]
	if len(node.Path) == 0 {
		return g.polygon(i).Center()
	}
	front := node.Path[0]
	back := node.Path[len(node.Path)-1]
	switch node.State {
	case StartAtV1:
		return back.V2
	case StartAtV2:
		return back.V1
	case EndAtV1:
		return front.V2
	case EndAtV2:
		return front.V1
	}
	return back.V2
}

// ComputeStates resolves each subregion's entry/exit orientation along the
// visiting order. The first subregion picks the state whose exit vertex is
// closest to the next subregion's center; each subsequent subregion picks
// the state whose entry vertex is closest to the previous subregion's exit.
// A greedy linear chain, locally minimal rather than globally optimal.
func (g *SubregionGraph) ComputeStates(order []int) {
	if len(order) < 2 {
		// A single subregion keeps the default orientation.
		return
	}
	first := order[0]
	if path := g.Nodes[first].Path; len(path) > 0 {
		front := path[0]
		back := path[len(path)-1]
		nextCenter := g.polygon(order[1]).Center()
		g.Nodes[first].State = StartAtV1
		dist := back.V2.Distance(nextCenter)
		if d := back.V1.Distance(nextCenter); d < dist {
			dist = d
			g.Nodes[first].State = StartAtV2
		}
		if d := front.V2.Distance(nextCenter); d < dist {
			dist = d
			g.Nodes[first].State = EndAtV1
		}
		if d := front.V1.Distance(nextCenter); d < dist {
			g.Nodes[first].State = EndAtV2
		}
	}
	for k := 0; k < len(order)-1; k++ {
		joint := g.exitVertex(order[k])
		next := order[k+1]
		path := g.Nodes[next].Path
		g.Nodes[next].State = StartAtV1
		if len(path) == 0 {
			continue
		}
		front := path[0]
		back := path[len(path)-1]
		dist := joint.Distance(front.V1)
		if d := joint.Distance(front.V2); dist > d {
			g.Nodes[next].State = StartAtV2
			dist = d
		}
		if d := joint.Distance(back.V1); dist > d {
			g.Nodes[next].State = EndAtV1
			dist = d
		}
		if d := joint.Distance(back.V2); dist > d {
			g.Nodes[next].State = EndAtV2
		}
	}
}
