package sdc

import "gonum.org/v1/gonum/floats"

// Mask holds the weights that define a refined vertex as a combination of
// parent vertices, edge neighbors and face centers. The length of each slice
// is its current slot count; storage is reused when a count shrinks and
// grows again.
//
// For vertex-vertex masks, edge weights apply to the vertex at the other end
// of each incident edge and face weights to each incident face, in the order
// of the vertex's edges and faces. For edge-vertex masks, face weights apply
// to each incident face.
type Mask struct {
	VertexWeights []float64
	EdgeWeights   []float64
	FaceWeights   []float64

	// FaceWeightsForFaceCenters is true when face weights apply to face
	// centroids (child face-vertices) rather than to the vertex of a
	// triangle opposite the edge.
	FaceWeightsForFaceCenters bool
}

func resize(w []float64, n int) []float64 {
	if cap(w) >= n {
		return w[:n]
	}
	grown := make([]float64, n)
	copy(grown, w)
	return grown
}

// SetVertexWeightCount sets the number of vertex weights.
func (m *Mask) SetVertexWeightCount(n int) { m.VertexWeights = resize(m.VertexWeights, n) }

// SetEdgeWeightCount sets the number of edge weights.
func (m *Mask) SetEdgeWeightCount(n int) { m.EdgeWeights = resize(m.EdgeWeights, n) }

// SetFaceWeightCount sets the number of face weights.
func (m *Mask) SetFaceWeightCount(n int) { m.FaceWeights = resize(m.FaceWeights, n) }

// VertexWeightCount returns the number of vertex weights.
func (m *Mask) VertexWeightCount() int { return len(m.VertexWeights) }

// EdgeWeightCount returns the number of edge weights.
func (m *Mask) EdgeWeightCount() int { return len(m.EdgeWeights) }

// FaceWeightCount returns the number of face weights.
func (m *Mask) FaceWeightCount() int { return len(m.FaceWeights) }

// Reset clears all weight counts.
func (m *Mask) Reset() {
	m.VertexWeights = m.VertexWeights[:0]
	m.EdgeWeights = m.EdgeWeights[:0]
	m.FaceWeights = m.FaceWeights[:0]
	m.FaceWeightsForFaceCenters = false
}

// Sum returns the total of all weights. Well formed masks sum to 1.
func (m *Mask) Sum() float64 {
	return floats.Sum(m.VertexWeights) + floats.Sum(m.EdgeWeights) + floats.Sum(m.FaceWeights)
}

// Clone returns a deep copy of m.
func (m *Mask) Clone() Mask {
	return Mask{
		VertexWeights:             append([]float64(nil), m.VertexWeights...),
		EdgeWeights:               append([]float64(nil), m.EdgeWeights...),
		FaceWeights:               append([]float64(nil), m.FaceWeights...),
		FaceWeightsForFaceCenters: m.FaceWeightsForFaceCenters,
	}
}

// combineVertexVertex blends m (the child rule mask) into dst (the parent
// rule mask). Both carry exactly one vertex weight; edge and face weights are
// optional on either side. The child mask always has a superset of the parent
// weights, so dst only ever grows.
func (m *Mask) combineVertexVertex(thisCoeff, dstCoeff float64, dst *Mask) {
	dst.VertexWeights[0] = dstCoeff*dst.VertexWeights[0] + thisCoeff*m.VertexWeights[0]

	dst.EdgeWeights = combineWeights(m.EdgeWeights, dst.EdgeWeights, thisCoeff, dstCoeff)
	dst.FaceWeights = combineWeights(m.FaceWeights, dst.FaceWeights, thisCoeff, dstCoeff)
	if len(m.FaceWeights) > 0 {
		dst.FaceWeightsForFaceCenters = m.FaceWeightsForFaceCenters
	}
}

func combineWeights(src, dst []float64, thisCoeff, dstCoeff float64) []float64 {
	if len(src) == 0 {
		return dst
	}
	if len(dst) == 0 {
		dst = resize(dst, len(src))
		for i, w := range src {
			dst[i] = thisCoeff * w
		}
		return dst
	}
	for i, w := range src {
		dst[i] = dstCoeff*dst[i] + thisCoeff*w
	}
	return dst
}
