// Package vtr provides the topology of refined meshes: one Level per
// generation and the Refinement that derives a child Level from its parent.
package vtr

import (
	"fmt"

	"github.com/Faultbox/subdiv/pkg/sdc"
)

// Index is a handle to a vertex, edge or face within one Level.
type Index int32

// InvalidIndex marks a component that does not exist.
const InvalidIndex Index = -1

// IndexArray is a view into the adjacency storage of a Level. It must not
// be modified by callers.
type IndexArray []Index

// Level is the topology of a mesh at one generation of refinement.
//
// Adjacency is stored in flat arrays with per-component offsets. Face
// vertices and face edges are co-indexed: edge k of a face connects its
// vertex k and vertex k+1. Incident faces and edges of a manifold vertex are
// ordered counter-clockwise; for boundary vertices the first and last edges
// are the boundary edges.
type Level struct {
	depth int

	vertCount int

	faceVertOffsets []int
	faceVertIndices []Index
	faceEdgeIndices []Index

	edgeVertIndices []Index
	edgeFaceOffsets []int
	edgeFaceIndices []Index

	vertFaceOffsets []int
	vertFaceIndices []Index
	vertEdgeOffsets []int
	vertEdgeIndices []Index

	edgeSharpness   []float64
	vertSharpness   []float64
	vertNonManifold []bool

	faceTopologyOnly bool
	frozen           bool
}

// NewLevel returns an empty Level at depth 0.
func NewLevel() *Level {
	return &Level{faceVertOffsets: []int{0}}
}

// Depth returns the refinement generation of the level.
func (l *Level) Depth() int { return l.depth }

// VertCount returns the number of vertices.
func (l *Level) VertCount() int { return l.vertCount }

// FaceCount returns the number of faces.
func (l *Level) FaceCount() int { return len(l.faceVertOffsets) - 1 }

// EdgeCount returns the number of edges. Levels holding face topology only
// have no edges.
func (l *Level) EdgeCount() int { return len(l.edgeVertIndices) / 2 }

// IsFaceTopologyOnly reports whether the level only keeps face-vertices.
func (l *Level) IsFaceTopologyOnly() bool { return l.faceTopologyOnly }

// FaceVerts returns the ordered vertices of face f.
func (l *Level) FaceVerts(f Index) IndexArray {
	return l.faceVertIndices[l.faceVertOffsets[f]:l.faceVertOffsets[f+1]]
}

// FaceEdges returns the ordered edges of face f.
func (l *Level) FaceEdges(f Index) IndexArray {
	if l.faceTopologyOnly {
		return nil
	}
	return l.faceEdgeIndices[l.faceVertOffsets[f]:l.faceVertOffsets[f+1]]
}

// EdgeVerts returns the two vertices of edge e.
func (l *Level) EdgeVerts(e Index) IndexArray {
	return l.edgeVertIndices[2*e : 2*e+2]
}

// EdgeFaces returns the faces incident to edge e.
func (l *Level) EdgeFaces(e Index) IndexArray {
	return l.edgeFaceIndices[l.edgeFaceOffsets[e]:l.edgeFaceOffsets[e+1]]
}

// VertFaces returns the faces incident to vertex v.
func (l *Level) VertFaces(v Index) IndexArray {
	if l.faceTopologyOnly {
		return nil
	}
	return l.vertFaceIndices[l.vertFaceOffsets[v]:l.vertFaceOffsets[v+1]]
}

// VertEdges returns the edges incident to vertex v.
func (l *Level) VertEdges(v Index) IndexArray {
	if l.faceTopologyOnly {
		return nil
	}
	return l.vertEdgeIndices[l.vertEdgeOffsets[v]:l.vertEdgeOffsets[v+1]]
}

// EdgeSharpness returns the crease sharpness of edge e.
func (l *Level) EdgeSharpness(e Index) float64 { return l.edgeSharpness[e] }

// VertSharpness returns the corner sharpness of vertex v.
func (l *Level) VertSharpness(v Index) float64 { return l.vertSharpness[v] }

// IsEdgeBoundary reports whether e has exactly one incident face.
func (l *Level) IsEdgeBoundary(e Index) bool {
	return l.edgeFaceOffsets[e+1]-l.edgeFaceOffsets[e] == 1
}

// IsVertNonManifold reports whether the faces around v could not be ordered
// as a single fan.
func (l *Level) IsVertNonManifold(v Index) bool {
	if l.faceTopologyOnly {
		return false
	}
	return l.vertNonManifold[v]
}

// FindEdge returns the edge between v0 and v1, or InvalidIndex.
func (l *Level) FindEdge(v0, v1 Index) Index {
	for _, e := range l.VertEdges(v0) {
		ev := l.EdgeVerts(e)
		if (ev[0] == v0 && ev[1] == v1) || (ev[0] == v1 && ev[1] == v0) {
			return e
		}
	}
	return InvalidIndex
}

func (l *Level) checkMutable() {
	if l.frozen {
		panic("vtr: level modified after a refinement was initialized from it")
	}
}

// Unfreeze allows modification of a level that no refinement reads from.
func (l *Level) Unfreeze() { l.frozen = false }

// ResizeVerts sets the number of vertices of a level under construction.
func (l *Level) ResizeVerts(n int) {
	l.checkMutable()
	l.vertCount = n
	l.vertSharpness = resizeFloats(l.vertSharpness, n)
}

// AddFace appends a face with the given vertices and returns its index.
func (l *Level) AddFace(verts ...Index) Index {
	l.checkMutable()
	f := Index(l.FaceCount())
	l.faceVertIndices = append(l.faceVertIndices, verts...)
	l.faceVertOffsets = append(l.faceVertOffsets, len(l.faceVertIndices))
	return f
}

// SetEdgeSharpness sets the crease sharpness of edge e.
func (l *Level) SetEdgeSharpness(e Index, s float64) {
	l.checkMutable()
	l.edgeSharpness[e] = s
}

// SetVertSharpness sets the corner sharpness of vertex v.
func (l *Level) SetVertSharpness(v Index, s float64) {
	l.checkMutable()
	l.vertSharpness[v] = s
}

// String summarizes the level.
func (l *Level) String() string {
	return fmt.Sprintf("level %d: %d verts, %d edges, %d faces", l.depth, l.VertCount(), l.EdgeCount(), l.FaceCount())
}

// FaceNeighborhood exposes face f to a mask query.
func (l *Level) FaceNeighborhood(f Index) sdc.FaceNeighborhood {
	return faceNeighborhood{level: l, face: f}
}

// EdgeNeighborhood exposes edge e to a mask query.
func (l *Level) EdgeNeighborhood(e Index) sdc.EdgeNeighborhood {
	return edgeNeighborhood{level: l, edge: e}
}

// VertexNeighborhood exposes vertex v to a mask query.
func (l *Level) VertexNeighborhood(v Index) sdc.VertexNeighborhood {
	return vertexNeighborhood{level: l, vert: v}
}

func resizeFloats(s []float64, n int) []float64 {
	if cap(s) >= n {
		s = s[:n]
		return s
	}
	grown := make([]float64, n)
	copy(grown, s)
	return grown
}
