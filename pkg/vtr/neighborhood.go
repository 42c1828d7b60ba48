package vtr

import "github.com/Faultbox/subdiv/pkg/sdc"

type faceNeighborhood struct {
	level *Level
	face  Index
}

func (n faceNeighborhood) VertexCount() int {
	return len(n.level.FaceVerts(n.face))
}

type edgeNeighborhood struct {
	level *Level
	edge  Index
}

func (n edgeNeighborhood) Sharpness() float64 { return n.level.EdgeSharpness(n.edge) }
func (n edgeNeighborhood) FaceCount() int     { return len(n.level.EdgeFaces(n.edge)) }

// ChildSharpnesses decays the edge at each of its end vertices.
func (n edgeNeighborhood) ChildSharpnesses(c sdc.Crease) [2]float64 {
	var child [2]float64
	for i, v := range n.level.EdgeVerts(n.edge) {
		child[i] = n.level.childEdgeSharpnessAtVertex(c, n.edge, v)
	}
	return child
}

type vertexNeighborhood struct {
	level *Level
	vert  Index
}

func (n vertexNeighborhood) Sharpness() float64 { return n.level.VertSharpness(n.vert) }
func (n vertexNeighborhood) EdgeCount() int     { return len(n.level.VertEdges(n.vert)) }
func (n vertexNeighborhood) FaceCount() int     { return len(n.level.VertFaces(n.vert)) }

func (n vertexNeighborhood) SharpnessPerEdge(buf []float64) []float64 {
	return n.level.vertEdgeSharpness(n.vert, buf)
}

func (n vertexNeighborhood) ChildSharpness(c sdc.Crease) float64 {
	return c.SubdivideVertexSharpness(n.level.VertSharpness(n.vert))
}

func (n vertexNeighborhood) ChildSharpnessPerEdge(c sdc.Crease, buf []float64) []float64 {
	parent := n.level.vertEdgeSharpness(n.vert, make([]float64, len(n.level.VertEdges(n.vert))))
	buf = buf[:len(parent)]
	c.SubdivideEdgeSharpnessesAroundVertex(parent, buf)
	return buf
}

// vertEdgeSharpness fills buf with the sharpness of the edges of v.
func (l *Level) vertEdgeSharpness(v Index, buf []float64) []float64 {
	edges := l.VertEdges(v)
	buf = buf[:len(edges)]
	for i, e := range edges {
		buf[i] = l.edgeSharpness[e]
	}
	return buf
}

// childEdgeSharpnessAtVertex returns the sharpness of the half of e that
// ends at v after refinement.
func (l *Level) childEdgeSharpnessAtVertex(c sdc.Crease, e, v Index) float64 {
	around := l.vertEdgeSharpness(v, make([]float64, len(l.VertEdges(v))))
	return c.SubdivideEdgeSharpnessAtVertex(l.edgeSharpness[e], around)
}
