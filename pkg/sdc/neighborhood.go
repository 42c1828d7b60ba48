package sdc

// FaceNeighborhood describes a face being subdivided.
type FaceNeighborhood interface {
	VertexCount() int
}

// EdgeNeighborhood describes an edge being subdivided.
type EdgeNeighborhood interface {
	Sharpness() float64
	FaceCount() int
	// ChildSharpnesses returns the decayed sharpness of the two child edges.
	ChildSharpnesses(c Crease) [2]float64
}

// VertexNeighborhood describes a vertex being subdivided. The per-edge
// methods fill buf, which holds at least EdgeCount values, and return it.
type VertexNeighborhood interface {
	Sharpness() float64
	EdgeCount() int
	FaceCount() int
	SharpnessPerEdge(buf []float64) []float64
	ChildSharpness(c Crease) float64
	ChildSharpnessPerEdge(c Crease, buf []float64) []float64
}

// MaskQuery computes the masks of the three kinds of refined vertex.
type MaskQuery interface {
	ComputeFaceVertexMask(face FaceNeighborhood, mask *Mask)
	ComputeEdgeVertexMask(edge EdgeNeighborhood, mask *Mask, parent, child RuleHint)
	ComputeVertexVertexMask(vertex VertexNeighborhood, mask *Mask, parent, child RuleHint)
}
