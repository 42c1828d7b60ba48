package sdc

import "math"

// loopMasks are the Loop smooth masks. Face weights apply to the vertex of
// each incident triangle opposite the edge.
type loopMasks struct{}

func (loopMasks) assignSmoothMaskForEdge(edge EdgeNeighborhood, mask *Mask) {
	faceCount := edge.FaceCount()
	if faceCount == 0 {
		assignCreaseMaskForEdge(mask)
		return
	}

	mask.SetVertexWeightCount(2)
	mask.SetEdgeWeightCount(0)
	mask.SetFaceWeightCount(faceCount)
	mask.FaceWeightsForFaceCenters = false

	mask.VertexWeights[0] = 0.375
	mask.VertexWeights[1] = 0.375

	fWeight := 0.25 / float64(faceCount)
	for i := range mask.FaceWeights {
		mask.FaceWeights[i] = fWeight
	}
}

func (loopMasks) assignSmoothMaskForVertex(vertex VertexNeighborhood, mask *Mask) {
	valence := vertex.EdgeCount()
	if valence == 0 {
		assignCornerMaskForVertex(mask)
		return
	}

	mask.SetVertexWeightCount(1)
	mask.SetEdgeWeightCount(valence)
	mask.SetFaceWeightCount(0)

	beta := loopBeta(valence)
	mask.VertexWeights[0] = 1.0 - float64(valence)*beta
	for i := range mask.EdgeWeights {
		mask.EdgeWeights[i] = beta
	}
}

// loopBeta is Loop's neighbor weight, 1/16 for valence 6.
func loopBeta(valence int) float64 {
	n := float64(valence)
	c := 0.375 + 0.25*math.Cos(2.0*math.Pi/n)
	return (0.625 - c*c) / n
}
