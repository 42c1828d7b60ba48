package far

import (
	"errors"
	"fmt"

	"github.com/Faultbox/subdiv/pkg/sdc"
	"github.com/Faultbox/subdiv/pkg/vtr"
)

// ErrInvalidDescriptor is returned for descriptors that do not describe a
// usable mesh.
var ErrInvalidDescriptor = errors.New("invalid topology descriptor")

// TopologyDescriptor describes a base mesh as flat arrays.
type TopologyDescriptor struct {
	NumVertices  int
	NumFaces     int
	VertsPerFace []int
	VertIndices  []int

	// Pairs of vertex indices, one pair per creased edge.
	CreaseVertexIndexPairs []int
	CreaseWeights          []float64

	CornerVertexIndices []int
	CornerWeights       []float64
}

// Validate checks the descriptor for consistency.
func (d *TopologyDescriptor) Validate() error {
	if d.NumVertices <= 0 {
		return fmt.Errorf("%w: %d vertices", ErrInvalidDescriptor, d.NumVertices)
	}
	if d.NumFaces <= 0 || len(d.VertsPerFace) != d.NumFaces {
		return fmt.Errorf("%w: %d faces with %d vertex counts", ErrInvalidDescriptor, d.NumFaces, len(d.VertsPerFace))
	}

	total := 0
	for f, n := range d.VertsPerFace {
		if n < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrInvalidDescriptor, f, n)
		}
		total += n
	}
	if total != len(d.VertIndices) {
		return fmt.Errorf("%w: faces reference %d vertices, got %d indices", ErrInvalidDescriptor, total, len(d.VertIndices))
	}
	for i, v := range d.VertIndices {
		if v < 0 || v >= d.NumVertices {
			return fmt.Errorf("%w: index %d references vertex %d of %d", ErrInvalidDescriptor, i, v, d.NumVertices)
		}
	}

	if len(d.CreaseVertexIndexPairs)%2 != 0 || len(d.CreaseWeights) != len(d.CreaseVertexIndexPairs)/2 {
		return fmt.Errorf("%w: %d crease indices with %d weights", ErrInvalidDescriptor, len(d.CreaseVertexIndexPairs), len(d.CreaseWeights))
	}
	for i, v := range d.CreaseVertexIndexPairs {
		if v < 0 || v >= d.NumVertices {
			return fmt.Errorf("%w: crease %d references vertex %d", ErrInvalidDescriptor, i/2, v)
		}
	}
	if len(d.CornerWeights) != len(d.CornerVertexIndices) {
		return fmt.Errorf("%w: %d corners with %d weights", ErrInvalidDescriptor, len(d.CornerVertexIndices), len(d.CornerWeights))
	}
	for i, v := range d.CornerVertexIndices {
		if v < 0 || v >= d.NumVertices {
			return fmt.Errorf("%w: corner %d references vertex %d", ErrInvalidDescriptor, i, v)
		}
	}
	for _, w := range append(append([]float64(nil), d.CreaseWeights...), d.CornerWeights...) {
		if w < 0 {
			return fmt.Errorf("%w: negative sharpness %v", ErrInvalidDescriptor, w)
		}
	}
	return nil
}

// NewRefineTablesFromDescriptor returns tables whose base level holds the
// mesh described by desc, with boundaries sharpened according to options.
func NewRefineTablesFromDescriptor(schemeType sdc.SchemeType, options sdc.Options, desc *TopologyDescriptor) (*RefineTables, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	t := NewRefineTables(schemeType, options)
	base := t.BaseLevel()
	if err := populateBaseLevel(base, desc); err != nil {
		return nil, err
	}
	sharpenBoundaries(base, options.VtxBoundaryInterpolation)

	if err := base.ValidateTopology(); err != nil {
		return nil, fmt.Errorf("base level: %w", err)
	}
	return t, nil
}

func populateBaseLevel(base *vtr.Level, desc *TopologyDescriptor) error {
	base.ResizeVerts(desc.NumVertices)

	start := 0
	for _, n := range desc.VertsPerFace {
		verts := make([]vtr.Index, n)
		for k := range verts {
			verts[k] = vtr.Index(desc.VertIndices[start+k])
		}
		base.AddFace(verts...)
		start += n
	}
	base.CompleteTopologyFromFaceVerts()

	for i, w := range desc.CreaseWeights {
		v0 := vtr.Index(desc.CreaseVertexIndexPairs[2*i])
		v1 := vtr.Index(desc.CreaseVertexIndexPairs[2*i+1])
		e := base.FindEdge(v0, v1)
		if e == vtr.InvalidIndex {
			return fmt.Errorf("%w: crease %d-%d is not an edge", ErrInvalidDescriptor, v0, v1)
		}
		base.SetEdgeSharpness(e, min(w, sdc.SharpnessInfinite))
	}
	for i, w := range desc.CornerWeights {
		base.SetVertSharpness(vtr.Index(desc.CornerVertexIndices[i]), min(w, sdc.SharpnessInfinite))
	}
	return nil
}

// sharpenBoundaries makes boundary and non-manifold edges infinitely sharp.
// With edge-and-corner interpolation, boundary vertices on a single face
// become infinitely sharp corners.
func sharpenBoundaries(base *vtr.Level, interp sdc.VtxBoundaryInterpolation) {
	for e := vtr.Index(0); e < vtr.Index(base.EdgeCount()); e++ {
		if len(base.EdgeFaces(e)) != 2 {
			base.SetEdgeSharpness(e, sdc.SharpnessInfinite)
		}
	}
	if interp != sdc.VtxBoundaryEdgeAndCorner {
		return
	}
	for v := vtr.Index(0); v < vtr.Index(base.VertCount()); v++ {
		if len(base.VertFaces(v)) == 1 && len(base.VertEdges(v)) == 2 {
			base.SetVertSharpness(v, sdc.SharpnessInfinite)
		}
	}
}
