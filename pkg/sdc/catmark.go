package sdc

// catmarkMasks are the Catmull-Clark smooth masks. Face weights apply to
// face centers.
type catmarkMasks struct{}

func (catmarkMasks) assignSmoothMaskForEdge(edge EdgeNeighborhood, mask *Mask) {
	faceCount := edge.FaceCount()
	if faceCount == 0 {
		assignCreaseMaskForEdge(mask)
		return
	}

	mask.SetVertexWeightCount(2)
	mask.SetEdgeWeightCount(0)
	mask.SetFaceWeightCount(faceCount)
	mask.FaceWeightsForFaceCenters = true

	mask.VertexWeights[0] = 0.25
	mask.VertexWeights[1] = 0.25

	fWeight := 0.5 / float64(faceCount)
	for i := range mask.FaceWeights {
		mask.FaceWeights[i] = fWeight
	}
}

// assignSmoothMaskForVertex uses the (n-2)/n, 1/n², 1/n² weights of an
// interior vertex of valence n. Face weights are spread over the incident
// faces so the mask stays affine when faces and edges differ in number.
func (catmarkMasks) assignSmoothMaskForVertex(vertex VertexNeighborhood, mask *Mask) {
	valence := vertex.EdgeCount()
	faceCount := vertex.FaceCount()
	if valence == 0 || faceCount == 0 {
		assignCornerMaskForVertex(mask)
		return
	}

	mask.SetVertexWeightCount(1)
	mask.SetEdgeWeightCount(valence)
	mask.SetFaceWeightCount(faceCount)
	mask.FaceWeightsForFaceCenters = true

	n := float64(valence)
	mask.VertexWeights[0] = (n - 2.0) / n

	eWeight := 1.0 / (n * n)
	for i := range mask.EdgeWeights {
		mask.EdgeWeights[i] = eWeight
	}
	fWeight := 1.0 / (n * float64(faceCount))
	for i := range mask.FaceWeights {
		mask.FaceWeights[i] = fWeight
	}
}
