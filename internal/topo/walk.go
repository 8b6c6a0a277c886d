package topo

import "github.com/ajsb85/brepkernel/internal/store"

// Resolvers gives WalkFace, WalkShell and WalkSolid access to each per-kind
// store, without the walk itself needing to depend on whatever owns those
// stores (the kernel Context).
type Resolvers struct {
	HalfEdge func(store.Handle[HalfEdge]) HalfEdge
	Cycle    func(store.Handle[Cycle]) Cycle
	Region   func(store.Handle[Region]) Region
	Face     func(store.Handle[Face]) Face
	Shell    func(store.Handle[Shell]) Shell
}

// Walked is the set of objects reachable from a traversal root, deduplicated
// by handle identity. It mirrors fj-core/src/objects/set.rs's ObjectSet
// (original_source), adapted from a single flattened BTreeSet<Object> into
// one slice per object kind, which is more useful to Go callers that want
// to, say, iterate only the faces of a solid.
type Walked struct {
	HalfEdges []store.Handle[HalfEdge]
	Cycles    []store.Handle[Cycle]
	Regions   []store.Handle[Region]
	Faces     []store.Handle[Face]
	Shells    []store.Handle[Shell]
}

type walker struct {
	r Resolvers
	w Walked

	seenHalfEdge map[store.Handle[HalfEdge]]bool
	seenCycle    map[store.Handle[Cycle]]bool
	seenRegion   map[store.Handle[Region]]bool
	seenFace     map[store.Handle[Face]]bool
	seenShell    map[store.Handle[Shell]]bool
}

func newWalker(r Resolvers) *walker {
	return &walker{
		r:            r,
		seenHalfEdge: map[store.Handle[HalfEdge]]bool{},
		seenCycle:    map[store.Handle[Cycle]]bool{},
		seenRegion:   map[store.Handle[Region]]bool{},
		seenFace:     map[store.Handle[Face]]bool{},
		seenShell:    map[store.Handle[Shell]]bool{},
	}
}

func (w *walker) visitCycle(h store.Handle[Cycle]) {
	if w.seenCycle[h] {
		return
	}
	w.seenCycle[h] = true
	w.w.Cycles = append(w.w.Cycles, h)

	cycle := w.r.Cycle(h)
	for _, he := range cycle.HalfEdges {
		if w.seenHalfEdge[he] {
			continue
		}
		w.seenHalfEdge[he] = true
		w.w.HalfEdges = append(w.w.HalfEdges, he)
	}
}

func (w *walker) visitRegion(h store.Handle[Region]) {
	if w.seenRegion[h] {
		return
	}
	w.seenRegion[h] = true
	w.w.Regions = append(w.w.Regions, h)

	region := w.r.Region(h)
	w.visitCycle(region.Exterior)
	for _, interior := range region.Interiors {
		w.visitCycle(interior)
	}
}

func (w *walker) visitFace(h store.Handle[Face]) {
	if w.seenFace[h] {
		return
	}
	w.seenFace[h] = true
	w.w.Faces = append(w.w.Faces, h)

	face := w.r.Face(h)
	w.visitRegion(face.Region)
}

func (w *walker) visitShell(h store.Handle[Shell]) {
	if w.seenShell[h] {
		return
	}
	w.seenShell[h] = true
	w.w.Shells = append(w.w.Shells, h)

	shell := w.r.Shell(h)
	for _, f := range shell.Faces {
		w.visitFace(f)
	}
}

// WalkFace returns every object reachable from face.
func WalkFace(r Resolvers, face store.Handle[Face]) Walked {
	w := newWalker(r)
	w.visitFace(face)
	return w.w
}

// WalkShell returns every object reachable from shell.
func WalkShell(r Resolvers, shell store.Handle[Shell]) Walked {
	w := newWalker(r)
	w.visitShell(shell)
	return w.w
}

// WalkSolid returns every object reachable from any of solid's shells.
func WalkSolid(r Resolvers, shells []store.Handle[Shell]) Walked {
	w := newWalker(r)
	for _, s := range shells {
		w.visitShell(s)
	}
	return w.w
}
