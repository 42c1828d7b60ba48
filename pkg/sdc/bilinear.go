package sdc

// bilinearMasks only serve as the schemeMasks of a bilinear Scheme; the
// Scheme itself short-circuits to crease and corner masks.
type bilinearMasks struct{}

func (bilinearMasks) assignSmoothMaskForEdge(_ EdgeNeighborhood, mask *Mask) {
	assignCreaseMaskForEdge(mask)
}

func (bilinearMasks) assignSmoothMaskForVertex(_ VertexNeighborhood, mask *Mask) {
	assignCornerMaskForVertex(mask)
}
