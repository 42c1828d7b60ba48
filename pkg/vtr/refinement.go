package vtr

import (
	"fmt"

	"github.com/Faultbox/subdiv/pkg/sdc"
)

// Options configures a Refinement pass.
type Options struct {
	// Sparse refines only the faces chosen by a SparseSelector and the
	// neighborhoods their vertices require.
	Sparse bool
	// FaceTopologyOnly keeps only face-vertices in the child level.
	FaceTopologyOnly bool
	// ComputeMasks stores a mask for every child vertex.
	ComputeMasks bool
	// ParentTagging keeps the selection tags of parent components.
	ParentTagging bool
	// ChildTagging tags child vertices whose neighborhood is incomplete.
	ChildTagging bool
}

// ComponentKind identifies the kind of a mesh component.
type ComponentKind uint8

// Component kinds.
const (
	ComponentFace ComponentKind = iota
	ComponentEdge
	ComponentVertex
)

// String returns the kind name.
func (k ComponentKind) String() string {
	switch k {
	case ComponentFace:
		return "face"
	case ComponentEdge:
		return "edge"
	case ComponentVertex:
		return "vertex"
	default:
		return fmt.Sprintf("ComponentKind(%d)", int(k))
	}
}

// ComponentRef locates a component of a given level.
type ComponentRef struct {
	Level int
	Kind  ComponentKind
	Index Index
}

// Refinement derives a child Level from its parent by splitting every face
// into quads around a new face-vertex.
//
// Child vertices are numbered face-vertices first, then edge-vertices, then
// vertex-vertices, each group following the order of its parent components.
type Refinement struct {
	scheme   sdc.Scheme
	parent   *Level
	child    *Level
	previous *Refinement
	options  Options
	refined  bool

	// parent component -> child vertex
	faceChildVert []Index
	edgeChildVert []Index
	vertChildVert []Index

	// parent face corner -> child face and child face-interior edge, indexed
	// like the parent's face-vertices
	faceChildFaces []Index
	faceChildEdges []Index
	// two halves per parent edge, the first ending at the edge's first vertex
	edgeChildEdges []Index

	childVertParent []ComponentRef
	childVertMasks  []sdc.Mask

	parentFaceSelected  []bool
	parentVertRefined   []bool
	childVertIncomplete []bool
}

// NewRefinement returns a Refinement using the given scheme.
func NewRefinement(scheme sdc.Scheme) *Refinement {
	return &Refinement{scheme: scheme}
}

// Initialize binds the refinement to its levels. previous is the refinement
// that produced parent, or nil at the base level. The parent must not be
// modified afterwards. It panics if the scheme does not split faces into
// quads or the parent lacks full topology.
func (r *Refinement) Initialize(parent, child *Level, previous *Refinement) {
	if r.scheme.Type() == sdc.SchemeLoop {
		panic("vtr: triangle-split refinement is not supported")
	}
	if parent.IsFaceTopologyOnly() {
		panic("vtr: cannot refine a level holding face topology only")
	}

	*child = Level{depth: parent.depth + 1, faceVertOffsets: []int{0}}
	parent.frozen = true

	*r = Refinement{
		scheme:   r.scheme,
		parent:   parent,
		child:    child,
		previous: previous,
	}
}

// Scheme returns the scheme of the refinement.
func (r *Refinement) Scheme() sdc.Scheme { return r.scheme }

// Parent returns the parent level.
func (r *Refinement) Parent() *Level { return r.parent }

// Child returns the child level.
func (r *Refinement) Child() *Level { return r.child }

// Options returns the options of the last Refine call.
func (r *Refinement) Options() Options { return r.options }

// IsRefined reports whether Refine has completed.
func (r *Refinement) IsRefined() bool { return r.refined }

// FaceChildVertex returns the child vertex of face f, or InvalidIndex.
func (r *Refinement) FaceChildVertex(f Index) Index { return r.faceChildVert[f] }

// EdgeChildVertex returns the child vertex of edge e, or InvalidIndex.
func (r *Refinement) EdgeChildVertex(e Index) Index { return r.edgeChildVert[e] }

// VertexChildVertex returns the child vertex of vertex v, or InvalidIndex.
func (r *Refinement) VertexChildVertex(v Index) Index { return r.vertChildVert[v] }

// FaceChildFaces returns the child faces of f, one per corner, holding
// InvalidIndex for corners that were not refined.
func (r *Refinement) FaceChildFaces(f Index) IndexArray {
	o := r.parent.faceVertOffsets
	return r.faceChildFaces[o[f]:o[f+1]]
}

// EdgeChildEdges returns the two child edges of e, or InvalidIndex.
func (r *Refinement) EdgeChildEdges(e Index) [2]Index {
	return [2]Index{r.edgeChildEdges[2*e], r.edgeChildEdges[2*e+1]}
}

// ChildVertexParent returns the parent component of child vertex v.
func (r *Refinement) ChildVertexParent(v Index) ComponentRef { return r.childVertParent[v] }

// HasMasks reports whether masks were computed.
func (r *Refinement) HasMasks() bool { return r.childVertMasks != nil }

// ChildVertexMask returns the mask of child vertex v, or nil when masks were
// not computed. Weights index the neighborhood of the parent component in
// the parent level's adjacency order.
func (r *Refinement) ChildVertexMask(v Index) *sdc.Mask {
	if r.childVertMasks == nil {
		return nil
	}
	return &r.childVertMasks[v]
}

// IsChildVertexIncomplete reports whether the neighborhood of child vertex v
// was only partially generated.
func (r *Refinement) IsChildVertexIncomplete(v Index) bool {
	return r.childVertIncomplete != nil && r.childVertIncomplete[v]
}

// IsParentFaceSelected reports whether face f was selected for refinement.
func (r *Refinement) IsParentFaceSelected(f Index) bool {
	return r.parentFaceSelected != nil && r.parentFaceSelected[f]
}

// IsParentVertexRefined reports whether vertex v has a child vertex with a
// complete ring of child faces.
func (r *Refinement) IsParentVertexRefined(v Index) bool {
	return r.parentVertRefined != nil && r.parentVertRefined[v]
}

// parentVertexIncomplete reports whether v was tagged incomplete by the
// refinement that produced the parent level.
func (r *Refinement) parentVertexIncomplete(v Index) bool {
	return r.previous != nil && r.previous.IsChildVertexIncomplete(v)
}

// Refine populates the child level. A sparse refinement requires a
// completed selection.
func (r *Refinement) Refine(options Options) {
	if r.parent == nil {
		panic("vtr: refinement was not initialized")
	}
	if options.Sparse && r.parentFaceSelected == nil {
		panic("vtr: sparse refinement without a selection")
	}
	r.options = options

	r.markParentComponents()
	r.populateChildVertices()
	r.populateChildFacesAndEdges()
	r.populateChildSharpness()

	if options.FaceTopologyOnly {
		r.child.faceTopologyOnly = true
		r.child.faceEdgeIndices = nil
		r.child.edgeVertIndices = nil
		r.child.edgeSharpness = nil
	} else {
		r.child.completeTopology()
	}

	if options.ChildTagging {
		r.tagIncompleteChildVertices()
	}
	if options.ComputeMasks {
		r.computeMasks()
	}
	if !options.ParentTagging {
		r.parentFaceSelected = nil
		r.parentVertRefined = nil
	}
	r.refined = true
}

// cornerRefined reports whether the child face at corner k of parent face f
// is generated.
func (r *Refinement) cornerRefined(f Index, k int) bool {
	return r.faceChildFaces[r.parent.faceVertOffsets[f]+k] != InvalidIndex
}

// markParentComponents decides which parent corners produce child faces.
// Marked corners hold a placeholder until child faces are numbered.
func (r *Refinement) markParentComponents() {
	p := r.parent
	faceCount := p.FaceCount()

	if !r.options.Sparse {
		r.parentFaceSelected = make([]bool, faceCount)
		for f := range r.parentFaceSelected {
			r.parentFaceSelected[f] = true
		}
	}

	r.parentVertRefined = make([]bool, p.VertCount())
	for f := 0; f < faceCount; f++ {
		if !r.parentFaceSelected[f] {
			continue
		}
		for _, v := range p.FaceVerts(Index(f)) {
			r.parentVertRefined[v] = true
		}
	}

	const marked Index = 0
	r.faceChildFaces = make([]Index, len(p.faceVertIndices))
	for f := 0; f < faceCount; f++ {
		start := p.faceVertOffsets[f]
		for k, v := range p.FaceVerts(Index(f)) {
			if r.parentFaceSelected[f] || r.parentVertRefined[v] {
				r.faceChildFaces[start+k] = marked
			} else {
				r.faceChildFaces[start+k] = InvalidIndex
			}
		}
	}
}

func (r *Refinement) populateChildVertices() {
	p := r.parent
	level := p.Depth()

	r.faceChildVert = newIndices(p.FaceCount())
	r.edgeChildVert = newIndices(p.EdgeCount())
	r.vertChildVert = newIndices(p.VertCount())
	r.childVertParent = r.childVertParent[:0]

	addChild := func(kind ComponentKind, i Index) Index {
		cv := Index(len(r.childVertParent))
		r.childVertParent = append(r.childVertParent, ComponentRef{Level: level, Kind: kind, Index: i})
		return cv
	}

	for f := Index(0); f < Index(p.FaceCount()); f++ {
		for k := range p.FaceVerts(f) {
			if r.cornerRefined(f, k) {
				r.faceChildVert[f] = addChild(ComponentFace, f)
				break
			}
		}
	}

	edgeNeeded := make([]bool, p.EdgeCount())
	for f := Index(0); f < Index(p.FaceCount()); f++ {
		fEdges := p.FaceEdges(f)
		n := len(fEdges)
		for k := range fEdges {
			if r.cornerRefined(f, k) {
				edgeNeeded[fEdges[k]] = true
				edgeNeeded[fEdges[(k+n-1)%n]] = true
			}
		}
	}
	for e := Index(0); e < Index(p.EdgeCount()); e++ {
		if edgeNeeded[e] {
			r.edgeChildVert[e] = addChild(ComponentEdge, e)
		}
	}

	for v := Index(0); v < Index(p.VertCount()); v++ {
		if r.parentVertRefined[v] {
			r.vertChildVert[v] = addChild(ComponentVertex, v)
		}
	}

	r.child.vertCount = len(r.childVertParent)
}

// edgeEnd returns 0 if v is the first vertex of e, 1 otherwise.
func (l *Level) edgeEnd(e, v Index) int {
	if l.EdgeVerts(e)[0] == v {
		return 0
	}
	return 1
}

func (r *Refinement) populateChildFacesAndEdges() {
	p := r.parent
	c := r.child

	r.faceChildEdges = newIndices(len(p.faceVertIndices))
	r.edgeChildEdges = newIndices(2 * p.EdgeCount())

	addEdge := func(v0, v1 Index) Index {
		e := Index(len(c.edgeVertIndices) / 2)
		c.edgeVertIndices = append(c.edgeVertIndices, v0, v1)
		return e
	}

	// Face-interior edges join the face-vertex to an edge-vertex and are
	// shared by the child faces at corners k and k+1.
	for f := Index(0); f < Index(p.FaceCount()); f++ {
		start := p.faceVertOffsets[f]
		fEdges := p.FaceEdges(f)
		n := len(fEdges)
		for k := range fEdges {
			if r.cornerRefined(f, k) || r.cornerRefined(f, (k+1)%n) {
				r.faceChildEdges[start+k] = addEdge(r.faceChildVert[f], r.edgeChildVert[fEdges[k]])
			}
		}
	}

	// Halves of parent edges, needed wherever a refined corner touches them.
	halfNeeded := make([]bool, 2*p.EdgeCount())
	for f := Index(0); f < Index(p.FaceCount()); f++ {
		fVerts := p.FaceVerts(f)
		fEdges := p.FaceEdges(f)
		n := len(fEdges)
		for k, v := range fVerts {
			if !r.cornerRefined(f, k) {
				continue
			}
			lead, trail := fEdges[k], fEdges[(k+n-1)%n]
			halfNeeded[2*int(lead)+p.edgeEnd(lead, v)] = true
			halfNeeded[2*int(trail)+p.edgeEnd(trail, v)] = true
		}
	}
	for e := Index(0); e < Index(p.EdgeCount()); e++ {
		ev := p.EdgeVerts(e)
		mid := r.edgeChildVert[e]
		if halfNeeded[2*e] {
			r.edgeChildEdges[2*e] = addEdge(r.vertChildVert[ev[0]], mid)
		}
		if halfNeeded[2*e+1] {
			r.edgeChildEdges[2*e+1] = addEdge(mid, r.vertChildVert[ev[1]])
		}
	}

	// Child face k is (vv(v_k), ev(e_k), fv(f), ev(e_k-1)) and its edges are
	// co-indexed with those vertices.
	for f := Index(0); f < Index(p.FaceCount()); f++ {
		start := p.faceVertOffsets[f]
		fVerts := p.FaceVerts(f)
		fEdges := p.FaceEdges(f)
		n := len(fEdges)
		for k, v := range fVerts {
			if !r.cornerRefined(f, k) {
				continue
			}
			lead, trail := fEdges[k], fEdges[(k+n-1)%n]

			cf := Index(c.FaceCount())
			c.faceVertIndices = append(c.faceVertIndices,
				r.vertChildVert[v],
				r.edgeChildVert[lead],
				r.faceChildVert[f],
				r.edgeChildVert[trail])
			c.faceEdgeIndices = append(c.faceEdgeIndices,
				r.edgeChildEdges[2*int(lead)+p.edgeEnd(lead, v)],
				r.faceChildEdges[start+k],
				r.faceChildEdges[start+(k+n-1)%n],
				r.edgeChildEdges[2*int(trail)+p.edgeEnd(trail, v)])
			c.faceVertOffsets = append(c.faceVertOffsets, len(c.faceVertIndices))

			r.faceChildFaces[start+k] = cf
		}
	}
}

func (r *Refinement) populateChildSharpness() {
	p := r.parent
	c := r.child
	crease := r.scheme.Crease()

	c.edgeSharpness = make([]float64, c.EdgeCount())
	for e := Index(0); e < Index(p.EdgeCount()); e++ {
		if sdc.IsSmooth(p.EdgeSharpness(e)) {
			continue
		}
		for end, v := range p.EdgeVerts(e) {
			if ce := r.edgeChildEdges[2*int(e)+end]; ce != InvalidIndex {
				c.edgeSharpness[ce] = p.childEdgeSharpnessAtVertex(crease, e, v)
			}
		}
	}

	c.vertSharpness = make([]float64, c.vertCount)
	for v := Index(0); v < Index(p.VertCount()); v++ {
		if cv := r.vertChildVert[v]; cv != InvalidIndex {
			c.vertSharpness[cv] = crease.SubdivideVertexSharpness(p.VertSharpness(v))
		}
	}
}

// tagIncompleteChildVertices marks child vertices whose full ring of child
// faces was not generated, or whose parent neighborhood was itself partial.
func (r *Refinement) tagIncompleteChildVertices() {
	p := r.parent
	r.childVertIncomplete = make([]bool, r.child.vertCount)

	for f := Index(0); f < Index(p.FaceCount()); f++ {
		cv := r.faceChildVert[f]
		if cv == InvalidIndex {
			continue
		}
		for k := range p.FaceVerts(f) {
			if !r.cornerRefined(f, k) {
				r.childVertIncomplete[cv] = true
				break
			}
		}
	}

	for e := Index(0); e < Index(p.EdgeCount()); e++ {
		cv := r.edgeChildVert[e]
		if cv == InvalidIndex {
			continue
		}
		ev := p.EdgeVerts(e)
		incomplete := r.parentVertexIncomplete(ev[0]) && r.parentVertexIncomplete(ev[1])
		for _, f := range p.EdgeFaces(e) {
			if incomplete {
				break
			}
			fEdges := p.FaceEdges(f)
			n := len(fEdges)
			for k, fe := range fEdges {
				if fe == e && (!r.cornerRefined(f, k) || !r.cornerRefined(f, (k+1)%n)) {
					incomplete = true
					break
				}
			}
		}
		r.childVertIncomplete[cv] = incomplete
	}

	for v := Index(0); v < Index(p.VertCount()); v++ {
		if cv := r.vertChildVert[v]; cv != InvalidIndex {
			r.childVertIncomplete[cv] = r.parentVertexIncomplete(v)
		}
	}
}

// computeMasks fills one mask per child vertex. Each mask reads only the
// parent level and writes only its own slot.
func (r *Refinement) computeMasks() {
	r.childVertMasks = make([]sdc.Mask, r.child.vertCount)
	for cv := range r.childVertMasks {
		r.computeChildVertexMask(Index(cv))
	}
}

func (r *Refinement) computeChildVertexMask(cv Index) {
	p := r.parent
	ref := r.childVertParent[cv]
	mask := &r.childVertMasks[cv]

	switch ref.Kind {
	case ComponentFace:
		r.scheme.ComputeFaceVertexMask(p.FaceNeighborhood(ref.Index), mask)
	case ComponentEdge:
		r.scheme.ComputeEdgeVertexMask(p.EdgeNeighborhood(ref.Index), mask, sdc.RuleHint{}, sdc.RuleHint{})
	case ComponentVertex:
		r.scheme.ComputeVertexVertexMask(p.VertexNeighborhood(ref.Index), mask, sdc.RuleHint{}, sdc.RuleHint{})
	}
}

func newIndices(n int) []Index {
	s := make([]Index, n)
	for i := range s {
		s[i] = InvalidIndex
	}
	return s
}
