package sdc

import "fmt"

// schemeMasks supplies the scheme-specific smooth masks. Crease and corner
// masks are shared by every scheme.
type schemeMasks interface {
	assignSmoothMaskForEdge(edge EdgeNeighborhood, mask *Mask)
	assignSmoothMaskForVertex(vertex VertexNeighborhood, mask *Mask)
}

// Scheme computes subdivision masks for one scheme type and set of options.
// It is immutable and safe for concurrent use.
type Scheme struct {
	typ     SchemeType
	options Options
	masks   schemeMasks
}

var _ MaskQuery = Scheme{}

// NewScheme returns the Scheme for t. It panics if t is not a known scheme.
func NewScheme(t SchemeType, options Options) Scheme {
	s := Scheme{typ: t, options: options}
	switch t {
	case SchemeBilinear:
		s.masks = bilinearMasks{}
	case SchemeCatmark:
		s.masks = catmarkMasks{}
	case SchemeLoop:
		s.masks = loopMasks{}
	default:
		panic(fmt.Sprintf("sdc: unsupported scheme type %v", t))
	}
	return s
}

// Type returns the scheme type.
func (s Scheme) Type() SchemeType { return s.typ }

// Options returns the scheme options.
func (s Scheme) Options() Options { return s.options }

// Crease returns a Crease configured with the scheme options.
func (s Scheme) Crease() Crease { return NewCrease(s.options) }

// ComputeFaceVertexMask assigns equal weights to every vertex of the face.
func (s Scheme) ComputeFaceVertexMask(face FaceNeighborhood, mask *Mask) {
	n := face.VertexCount()

	mask.SetVertexWeightCount(n)
	mask.SetEdgeWeightCount(0)
	mask.SetFaceWeightCount(0)

	w := 1.0 / float64(n)
	for i := range mask.VertexWeights {
		mask.VertexWeights[i] = w
	}
}

// ComputeEdgeVertexMask computes the mask of the vertex refined from an
// edge. Known rules for the edge (parent) and the refined vertex (child) may
// be passed to skip the sharpness analysis.
func (s Scheme) ComputeEdgeVertexMask(edge EdgeNeighborhood, mask *Mask, parent, child RuleHint) {
	if s.typ == SchemeBilinear {
		assignCreaseMaskForEdge(mask)
		return
	}

	if parent.Is(RuleSmooth) || (!parent.Valid && IsSmooth(edge.Sharpness())) {
		s.masks.assignSmoothMaskForEdge(edge, mask)
		return
	}
	if child.Is(RuleCrease) {
		assignCreaseMaskForEdge(mask)
		return
	}

	// The parent is a crease. Determine an unspecified child rule and return
	// if it is still a crease; otherwise the crease transitions to smooth.
	if !child.Valid {
		crease := s.Crease()

		var childIsCrease bool
		switch {
		case parent.Is(RuleCrease):
			childIsCrease = true
		case edge.Sharpness() >= 1.0:
			// the fractional weight clamps to 1 and yields a full crease
			childIsCrease = true
		case crease.IsUniform():
			childIsCrease = false
		default:
			cs := edge.ChildSharpnesses(crease)
			childIsCrease = IsSharp(cs[0]) && IsSharp(cs[1])
		}
		if childIsCrease {
			assignCreaseMaskForEdge(mask)
			return
		}
	}

	s.masks.assignSmoothMaskForEdge(edge, mask)

	pWeight := edge.Sharpness()
	cWeight := 1.0 - pWeight

	mask.VertexWeights[0] = pWeight*0.5 + cWeight*mask.VertexWeights[0]
	mask.VertexWeights[1] = pWeight*0.5 + cWeight*mask.VertexWeights[1]

	for i := range mask.FaceWeights {
		mask.FaceWeights[i] *= cWeight
	}
}

// ComputeVertexVertexMask computes the mask of the vertex refined from a
// vertex, blending the masks of the parent and child rules when they differ.
// A parent hint without a child hint means no transition.
func (s Scheme) ComputeVertexVertexMask(vertex VertexNeighborhood, mask *Mask, parent, child RuleHint) {
	if s.typ == SchemeBilinear {
		assignCornerMaskForVertex(mask)
		return
	}

	if parent.Is(RuleSmooth) || parent.Is(RuleDart) {
		s.masks.assignSmoothMaskForVertex(vertex, mask)
		return
	}
	if !child.Valid && parent.Valid {
		child = parent
	}
	valence := vertex.EdgeCount()

	// Gather parent sharpness only when the rule is unknown, the crease mask
	// needs it, or a transition has to be weighted.
	var pEdgeSharpness []float64
	pVertexSharpness := 0.0
	pRule := parent.Rule

	if !parent.Valid || parent.Rule == RuleCrease || parent != child {
		pVertexSharpness = vertex.Sharpness()
		pEdgeSharpness = vertex.SharpnessPerEdge(make([]float64, valence))

		if !parent.Valid {
			pRule = s.Crease().DetermineVertexVertexRule(pVertexSharpness, pEdgeSharpness)
		}
	}
	switch pRule {
	case RuleSmooth, RuleDart:
		s.masks.assignSmoothMaskForVertex(vertex, mask)
		return
	case RuleCrease:
		assignCreaseMaskForVertex(valence, mask, pEdgeSharpness)
	case RuleCorner:
		assignCornerMaskForVertex(mask)
	}
	if child.Valid && child.Rule == pRule {
		return
	}

	crease := s.Crease()
	cEdgeSharpness := vertex.ChildSharpnessPerEdge(crease, make([]float64, valence))
	cVertexSharpness := vertex.ChildSharpness(crease)

	cRule := child.Rule
	if !child.Valid {
		cRule = crease.DetermineVertexVertexRule(cVertexSharpness, cEdgeSharpness)
		if cRule == pRule {
			return
		}
	}

	scratch := make([]float64, 1+2*valence)
	cMask := Mask{
		VertexWeights: scratch[0:0:1],
		EdgeWeights:   scratch[1 : 1 : 1+valence],
		FaceWeights:   scratch[1+valence : 1+valence : 1+2*valence],
	}
	switch cRule {
	case RuleSmooth, RuleDart:
		s.masks.assignSmoothMaskForVertex(vertex, &cMask)
	case RuleCrease:
		assignCreaseMaskForVertex(valence, &cMask, cEdgeSharpness)
	case RuleCorner:
		assignCornerMaskForVertex(&cMask)
	}

	pWeight := crease.ComputeFractionalWeightAtVertex(pVertexSharpness, cVertexSharpness, pEdgeSharpness, cEdgeSharpness)
	cWeight := 1.0 - pWeight

	cMask.combineVertexVertex(cWeight, pWeight, mask)
}

func assignCreaseMaskForEdge(mask *Mask) {
	mask.SetVertexWeightCount(2)
	mask.SetEdgeWeightCount(0)
	mask.SetFaceWeightCount(0)

	mask.VertexWeights[0] = 0.5
	mask.VertexWeights[1] = 0.5
}

func assignCornerMaskForVertex(mask *Mask) {
	mask.SetVertexWeightCount(1)
	mask.SetEdgeWeightCount(0)
	mask.SetFaceWeightCount(0)

	mask.VertexWeights[0] = 1.0
}

// assignCreaseMaskForVertex weights the two crease edges of a vertex. When
// edgeSharpness is nil the crease edges are taken to be the first and last,
// which is where boundary edges are ordered.
func assignCreaseMaskForVertex(valence int, mask *Mask, edgeSharpness []float64) {
	if valence < 2 {
		assignCornerMaskForVertex(mask)
		return
	}
	mask.SetVertexWeightCount(1)
	mask.SetEdgeWeightCount(valence)
	mask.SetFaceWeightCount(0)

	mask.VertexWeights[0] = 0.75
	for i := range mask.EdgeWeights {
		mask.EdgeWeights[i] = 0.0
	}

	first, second := 0, valence-1
	if edgeSharpness != nil {
		sharp := make([]int, 0, 2)
		for i, s := range edgeSharpness {
			if IsSharp(s) {
				sharp = append(sharp, i)
				if len(sharp) == 2 {
					break
				}
			}
		}
		if len(sharp) == 2 {
			first, second = sharp[0], sharp[1]
		}
	}
	mask.EdgeWeights[first] = 0.125
	mask.EdgeWeights[second] = 0.125
}
