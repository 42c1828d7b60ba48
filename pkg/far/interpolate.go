package far

import (
	"errors"
	"fmt"

	"github.com/Faultbox/subdiv/pkg/math"
	"github.com/Faultbox/subdiv/pkg/vtr"
)

// ErrNoMasks is returned when interpolating through a refinement that did
// not compute masks.
var ErrNoMasks = errors.New("refinement has no masks")

// Interpolate applies the masks of r to positions of the parent level and
// returns one position per child vertex.
//
// Vertex-vertex edge weights apply to the vertex at the far end of each
// incident edge. Face weights apply to the centroid of each incident face,
// as produced by quad-splitting schemes.
func Interpolate(r *vtr.Refinement, src []math.Vec3) ([]math.Vec3, error) {
	if !r.HasMasks() {
		return nil, ErrNoMasks
	}
	parent := r.Parent()
	if len(src) != parent.VertCount() {
		return nil, fmt.Errorf("interpolating level %d: got %d positions for %d vertices", parent.Depth(), len(src), parent.VertCount())
	}

	faceCenter := func(f vtr.Index) math.Vec3 {
		verts := parent.FaceVerts(f)
		pts := make([]math.Vec3, len(verts))
		for i, v := range verts {
			pts[i] = src[v]
		}
		return math.Centroid(pts...)
	}

	dst := make([]math.Vec3, r.Child().VertCount())
	for cv := range dst {
		ref := r.ChildVertexParent(vtr.Index(cv))
		m := r.ChildVertexMask(vtr.Index(cv))

		var p math.Vec3
		switch ref.Kind {
		case vtr.ComponentFace:
			for i, v := range parent.FaceVerts(ref.Index) {
				p = p.AddWeighted(src[v], m.VertexWeights[i])
			}
		case vtr.ComponentEdge:
			ev := parent.EdgeVerts(ref.Index)
			for i, w := range m.VertexWeights {
				p = p.AddWeighted(src[ev[i]], w)
			}
			for i, f := range parent.EdgeFaces(ref.Index)[:m.FaceWeightCount()] {
				p = p.AddWeighted(faceCenter(f), m.FaceWeights[i])
			}
		case vtr.ComponentVertex:
			v := ref.Index
			p = p.AddWeighted(src[v], m.VertexWeights[0])
			for i, e := range parent.VertEdges(v)[:m.EdgeWeightCount()] {
				ev := parent.EdgeVerts(e)
				other := ev[0]
				if other == v {
					other = ev[1]
				}
				p = p.AddWeighted(src[other], m.EdgeWeights[i])
			}
			for i, f := range parent.VertFaces(v)[:m.FaceWeightCount()] {
				p = p.AddWeighted(faceCenter(f), m.FaceWeights[i])
			}
		}
		dst[cv] = p
	}
	return dst, nil
}

// InterpolateLevels applies every refinement of t in turn, starting from the
// base positions. The result holds one slice per level.
func InterpolateLevels(t *RefineTables, base []math.Vec3) ([][]math.Vec3, error) {
	levels := make([][]math.Vec3, 0, t.LevelCount())
	levels = append(levels, base)
	for i := 0; i < t.LevelCount()-1; i++ {
		next, err := Interpolate(t.Refinement(i), levels[i])
		if err != nil {
			return nil, fmt.Errorf("refinement %d: %w", i, err)
		}
		levels = append(levels, next)
	}
	return levels, nil
}
