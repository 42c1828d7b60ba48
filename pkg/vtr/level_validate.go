package vtr

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidTopology is returned when a level's adjacency is inconsistent.
var ErrInvalidTopology = errors.New("invalid topology")

// ValidateTopology checks that every adjacency index is in range and that
// the relations between faces, edges and vertices are reciprocal.
func (l *Level) ValidateTopology() error {
	vertCount := Index(l.VertCount())
	edgeCount := Index(l.EdgeCount())

	for f := Index(0); f < Index(l.FaceCount()); f++ {
		fVerts := l.FaceVerts(f)
		if len(fVerts) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrInvalidTopology, f, len(fVerts))
		}
		for _, v := range fVerts {
			if v < 0 || v >= vertCount {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidTopology, f, v, vertCount)
			}
		}
		if l.faceTopologyOnly {
			continue
		}

		fEdges := l.FaceEdges(f)
		for k, e := range fEdges {
			if e < 0 || e >= edgeCount {
				return fmt.Errorf("%w: face %d references edge %d of %d", ErrInvalidTopology, f, e, edgeCount)
			}
			v0, v1 := fVerts[k], fVerts[(k+1)%len(fVerts)]
			ev := l.EdgeVerts(e)
			if !((ev[0] == v0 && ev[1] == v1) || (ev[0] == v1 && ev[1] == v0)) {
				return fmt.Errorf("%w: edge %d of face %d does not connect vertices %d and %d", ErrInvalidTopology, k, f, v0, v1)
			}
			if !slices.Contains(l.EdgeFaces(e), f) {
				return fmt.Errorf("%w: edge %d does not list face %d", ErrInvalidTopology, e, f)
			}
		}
		for _, v := range fVerts {
			if !slices.Contains(l.VertFaces(v), f) {
				return fmt.Errorf("%w: vertex %d does not list face %d", ErrInvalidTopology, v, f)
			}
		}
	}
	if l.faceTopologyOnly {
		return nil
	}

	for e := Index(0); e < edgeCount; e++ {
		for _, v := range l.EdgeVerts(e) {
			if v < 0 || v >= vertCount {
				return fmt.Errorf("%w: edge %d references vertex %d of %d", ErrInvalidTopology, e, v, vertCount)
			}
			if !slices.Contains(l.VertEdges(v), e) {
				return fmt.Errorf("%w: vertex %d does not list edge %d", ErrInvalidTopology, v, e)
			}
		}
		for _, f := range l.EdgeFaces(e) {
			if !slices.Contains(l.FaceEdges(f), e) {
				return fmt.Errorf("%w: face %d does not list edge %d", ErrInvalidTopology, f, e)
			}
		}
	}

	for v := Index(0); v < vertCount; v++ {
		for _, f := range l.VertFaces(v) {
			if !slices.Contains(l.FaceVerts(f), v) {
				return fmt.Errorf("%w: face %d does not list vertex %d", ErrInvalidTopology, f, v)
			}
		}
		for _, e := range l.VertEdges(v) {
			if !slices.Contains(l.EdgeVerts(e), v) {
				return fmt.Errorf("%w: edge %d does not list vertex %d", ErrInvalidTopology, e, v)
			}
		}
	}
	return nil
}
