package mst

import (
	"sort"

	"github.com/katalvlaran/flowgen/dimacs"
)

// DynamicForest maintains a minimum spanning forest under edge insertions
// with plain adjacency and path search per insertion.
//
// Add(u, v, w):
//   - u, v in different trees: link them with (u,v,w).
//   - otherwise find the tree path u⇝v; if its heaviest edge weighs more
//     than w, cut that edge and link (u,v,w).
//
// Each insertion costs O(V) for the path search. The zero value is an
// empty forest ready for use. Not safe for concurrent use.
type DynamicForest struct {
	adj    map[int]map[int]int64
	weight int64
	size   int
}

// NewDynamicForest returns an empty forest.
func NewDynamicForest() *DynamicForest {
	return &DynamicForest{adj: make(map[int]map[int]int64)}
}

// Add offers edge (u,v) with weight w and reports whether the forest
// changed. Self-loops are never taken.
func (f *DynamicForest) Add(u, v int, w int64) bool {
	if f.adj == nil {
		f.adj = make(map[int]map[int]int64)
	}
	f.touch(u)
	f.touch(v)
	if u == v {
		return false
	}

	parent, ok := f.path(u, v)
	if !ok {
		f.link(u, v, w)
		return true
	}

	// Heaviest edge on the path; the first one from u wins ties.
	var (
		maxFrom, maxTo int
		maxW           int64
		found          bool
	)
	var hops []int
	for x := v; x != u; x = parent[x] {
		hops = append(hops, x)
	}
	prev := u
	for i := len(hops) - 1; i >= 0; i-- {
		x := hops[i]
		if ew := f.adj[prev][x]; !found || ew > maxW {
			maxFrom, maxTo, maxW, found = prev, x, ew, true
		}
		prev = x
	}
	if maxW <= w {
		return false
	}

	f.cut(maxFrom, maxTo)
	f.link(u, v, w)

	return true
}

// Weight returns the total weight of the forest.
func (f *DynamicForest) Weight() int64 { return f.weight }

// Len returns the number of forest edges.
func (f *DynamicForest) Len() int { return f.size }

// Edges returns the forest edges normalized to From < To, sorted by
// (From, To).
func (f *DynamicForest) Edges() []dimacs.Arc {
	out := make([]dimacs.Arc, 0, f.size)
	for u, nbrs := range f.adj {
		for v, w := range nbrs {
			if u < v {
				out = append(out, dimacs.Arc{From: u, To: v, Capacity: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Forest returns a snapshot of the current forest.
func (f *DynamicForest) Forest() Forest {
	return Forest{Edges: f.Edges(), Weight: f.weight}
}

func (f *DynamicForest) touch(u int) {
	if _, ok := f.adj[u]; !ok {
		f.adj[u] = make(map[int]int64)
	}
}

func (f *DynamicForest) link(u, v int, w int64) {
	f.adj[u][v] = w
	f.adj[v][u] = w
	f.weight += w
	f.size++
}

func (f *DynamicForest) cut(u, v int) {
	f.weight -= f.adj[u][v]
	delete(f.adj[u], v)
	delete(f.adj[v], u)
	f.size--
}

// path runs BFS from u and returns parent links when v is reachable.
func (f *DynamicForest) path(u, v int) (map[int]int, bool) {
	parent := map[int]int{u: u}
	queue := []int{u}
	for i := 0; i < len(queue); i++ {
		x := queue[i]
		if x == v {
			return parent, true
		}
		for y := range f.adj[x] {
			if _, seen := parent[y]; !seen {
				parent[y] = x
				queue = append(queue, y)
			}
		}
	}

	return nil, false
}
