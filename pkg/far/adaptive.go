package far

import (
	"github.com/Faultbox/subdiv/pkg/sdc"
	"github.com/Faultbox/subdiv/pkg/vtr"
)

// catmarkFeatureAdaptiveSelector selects the faces around every feature a
// regular catmark patch cannot represent: irregular faces of the base mesh,
// extraordinary or semi-sharp vertices, and sharp interior edges.
//
// Vertices tagged incomplete by the previous refinement lie on the rim of
// the refined region and are skipped.
func catmarkFeatureAdaptiveSelector(selector *vtr.SparseSelector) {
	level := selector.Refinement().Parent()

	// Irregular faces only exist in the base mesh. Quads with more than two
	// boundary edges, or with two opposite boundary edges, are not regular
	// boundary patches and are isolated too.
	if level.Depth() == 0 {
		for f := vtr.Index(0); f < vtr.Index(level.FaceCount()); f++ {
			if len(level.FaceVerts(f)) != 4 {
				selector.SelectFace(f)
				continue
			}
			fEdges := level.FaceEdges(f)
			boundary := 0
			for _, e := range fEdges {
				if level.IsEdgeBoundary(e) {
					boundary++
				}
			}
			if boundary > 2 || (boundary == 2 && len(level.EdgeFaces(fEdges[0])) == len(level.EdgeFaces(fEdges[2]))) {
				selector.SelectFace(f)
			}
		}
	}

	// An infinitely sharp corner on a single face is regular; any other sharp
	// vertex becomes extraordinary once its sharpness decays.
	for v := vtr.Index(0); v < vtr.Index(level.VertCount()); v++ {
		if selector.IsVertexIncomplete(v) {
			continue
		}

		var selectVertex bool
		if s := level.VertSharpness(v); sdc.IsSharp(s) {
			selectVertex = len(level.VertFaces(v)) != 1 || !sdc.IsInfinite(s)
		} else {
			faces := len(level.VertFaces(v))
			if faces == len(level.VertEdges(v)) {
				selectVertex = faces != 4
			} else {
				selectVertex = faces != 2
			}
		}
		if selectVertex {
			selector.SelectVertexFaces(v)
		}
	}

	// Boundary edges are regular unless an end vertex is irregular, which was
	// handled above. Non-manifold edges have more than two faces and are kept.
	for e := vtr.Index(0); e < vtr.Index(level.EdgeCount()); e++ {
		if sdc.IsSmooth(level.EdgeSharpness(e)) || len(level.EdgeFaces(e)) < 2 {
			continue
		}
		for _, v := range level.EdgeVerts(e) {
			if !selector.IsVertexIncomplete(v) {
				selector.SelectVertexFaces(v)
			}
		}
	}
}
