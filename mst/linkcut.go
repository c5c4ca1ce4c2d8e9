package mst

import (
	"sort"

	"github.com/katalvlaran/flowgen/dimacs"
)

// LinkCutForest maintains a minimum spanning forest under edge insertions
// on a link-cut tree (splay trees over preferred paths). Every forest edge
// is a node of its own between its two endpoints, so a path aggregate can
// name the heaviest edge on any tree path.
//
// Add(u, v, w) follows the same rule as DynamicForest:
//   - expose(u, v) finds no path: link (u,v,w).
//   - the heaviest path edge weighs more than w: cut it, then link (u,v,w).
//
// Each insertion costs O(log V) amortized. The zero value is an empty
// forest ready for use. Not safe for concurrent use.
type LinkCutForest struct {
	vertices map[int]*lcNode
	edges    map[*lcNode]struct{}
	weight   int64
}

// lcNode is a vertex or an edge in the represented forest. Splay children
// hold the preferred path in depth order; par is the splay parent, or the
// path-parent when the node is a splay root.
type lcNode struct {
	ch   [2]*lcNode
	par  *lcNode
	flip bool

	edge   dimacs.Arc // edge nodes only
	isEdge bool
	heavy  *lcNode // heaviest edge node in this splay subtree, nil if none
}

// NewLinkCutForest returns an empty forest.
func NewLinkCutForest() *LinkCutForest {
	return &LinkCutForest{
		vertices: make(map[int]*lcNode),
		edges:    make(map[*lcNode]struct{}),
	}
}

// Add offers edge (u,v) with weight w and reports whether the forest
// changed. Self-loops are never taken.
func (f *LinkCutForest) Add(u, v int, w int64) bool {
	if f.vertices == nil {
		f.vertices = make(map[int]*lcNode)
		f.edges = make(map[*lcNode]struct{})
	}
	nu, nv := f.vertex(u), f.vertex(v)
	if u == v {
		return false
	}

	heaviest, connected := f.expose(nu, nv)
	if connected {
		if heaviest.edge.Capacity <= w {
			return false
		}
		f.cut(heaviest)
	}
	f.link(nu, nv, dimacs.Arc{From: u, To: v, Capacity: w})

	return true
}

// Weight returns the total weight of the forest.
func (f *LinkCutForest) Weight() int64 { return f.weight }

// Len returns the number of forest edges.
func (f *LinkCutForest) Len() int { return len(f.edges) }

// Edges returns the forest edges normalized to From < To, sorted by
// (From, To).
func (f *LinkCutForest) Edges() []dimacs.Arc {
	out := make([]dimacs.Arc, 0, len(f.edges))
	for e := range f.edges {
		a := e.edge
		if a.From > a.To {
			a.From, a.To = a.To, a.From
		}
		out = append(out, a)
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
func (f *LinkCutForest) Forest() Forest {
	return Forest{Edges: f.Edges(), Weight: f.weight}
}

func (f *LinkCutForest) vertex(id int) *lcNode {
	n, ok := f.vertices[id]
	if !ok {
		n = &lcNode{}
		f.vertices[id] = n
	}

	return n
}

// expose reports the heaviest edge on the tree path u⇝v, or false when u
// and v lie in different trees. u and v must differ.
func (f *LinkCutForest) expose(u, v *lcNode) (*lcNode, bool) {
	if findRoot(u) != findRoot(v) {
		return nil, false
	}
	makeRoot(u)
	access(v)

	return v.heavy, true
}

// link joins the trees of u and v through a new edge node.
func (f *LinkCutForest) link(u, v *lcNode, a dimacs.Arc) {
	e := &lcNode{edge: a, isEdge: true}
	e.pull()
	makeRoot(u)
	u.par = e
	makeRoot(e)
	e.par = v

	f.edges[e] = struct{}{}
	f.weight += a.Capacity
}

// cut removes edge node e and its two tree links.
func (f *LinkCutForest) cut(e *lcNode) {
	for _, end := range [2]int{e.edge.From, e.edge.To} {
		x := f.vertices[end]
		makeRoot(e)
		access(x)
		// The path is e, x: e is x's only left descendant.
		x.ch[0] = nil
		e.par = nil
		x.pull()
	}

	delete(f.edges, e)
	f.weight -= e.edge.Capacity
}

func (x *lcNode) isRoot() bool {
	return x.par == nil || (x.par.ch[0] != x && x.par.ch[1] != x)
}

// pull recomputes heavy from x and its children; the first heaviest of
// (x, left, right) wins ties.
func (x *lcNode) pull() {
	x.heavy = nil
	if x.isEdge {
		x.heavy = x
	}
	for _, c := range x.ch {
		if c == nil || c.heavy == nil {
			continue
		}
		if x.heavy == nil || c.heavy.edge.Capacity > x.heavy.edge.Capacity {
			x.heavy = c.heavy
		}
	}
}

// push applies a pending reversal to x's children.
func (x *lcNode) push() {
	if !x.flip {
		return
	}
	x.ch[0], x.ch[1] = x.ch[1], x.ch[0]
	for _, c := range x.ch {
		if c != nil {
			c.flip = !c.flip
		}
	}
	x.flip = false
}

func (x *lcNode) rotate() {
	p := x.par
	g := p.par
	d := 0
	if p.ch[1] == x {
		d = 1
	}
	if !p.isRoot() {
		if g.ch[0] == p {
			g.ch[0] = x
		} else {
			g.ch[1] = x
		}
	}
	x.par = g

	p.ch[d] = x.ch[d^1]
	if p.ch[d] != nil {
		p.ch[d].par = p
	}
	x.ch[d^1] = p
	p.par = x

	p.pull()
	x.pull()
}

// splay moves x to the root of its splay tree.
func (x *lcNode) splay() {
	path := []*lcNode{x}
	for y := x; !y.isRoot(); y = y.par {
		path = append(path, y.par)
	}
	for i := len(path) - 1; i >= 0; i-- {
		path[i].push()
	}

	for !x.isRoot() {
		p := x.par
		if !p.isRoot() {
			g := p.par
			if (g.ch[0] == p) == (p.ch[0] == x) {
				p.rotate()
			} else {
				x.rotate()
			}
		}
		x.rotate()
	}
}

// access makes the root-to-x path preferred and splays x to its top, so
// x's splay tree holds exactly that path.
func access(x *lcNode) {
	var last *lcNode
	for y := x; y != nil; y = y.par {
		y.splay()
		y.ch[1] = last
		y.pull()
		last = y
	}
	x.splay()
}

// makeRoot reroots x's tree at x.
func makeRoot(x *lcNode) {
	access(x)
	x.flip = !x.flip
	x.push()
}

// findRoot returns the root of x's represented tree.
func findRoot(x *lcNode) *lcNode {
	access(x)
	r := x
	r.push()
	for r.ch[0] != nil {
		r = r.ch[0]
		r.push()
	}
	r.splay()

	return r
}
