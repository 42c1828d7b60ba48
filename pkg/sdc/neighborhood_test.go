package sdc

// testEdge is an EdgeNeighborhood with explicit sharpness.
type testEdge struct {
	sharpness float64
	faces     int
	// around holds the sharpness of the edges at each end vertex, used for
	// Chaikin decay. Nil means the edge is the only sharp edge there.
	around [2][]float64
}

func (e testEdge) Sharpness() float64 { return e.sharpness }
func (e testEdge) FaceCount() int     { return e.faces }

func (e testEdge) ChildSharpnesses(c Crease) [2]float64 {
	var out [2]float64
	for i := range out {
		around := e.around[i]
		if around == nil {
			around = []float64{e.sharpness}
		}
		out[i] = c.SubdivideEdgeSharpnessAtVertex(e.sharpness, around)
	}
	return out
}

// testVertex is a VertexNeighborhood with explicit sharpness per edge.
type testVertex struct {
	sharpness float64
	edges     []float64
	faces     int
}

func (v testVertex) Sharpness() float64 { return v.sharpness }
func (v testVertex) EdgeCount() int     { return len(v.edges) }
func (v testVertex) FaceCount() int     { return v.faces }

func (v testVertex) SharpnessPerEdge(buf []float64) []float64 {
	copy(buf, v.edges)
	return buf[:len(v.edges)]
}

func (v testVertex) ChildSharpness(c Crease) float64 {
	return c.SubdivideVertexSharpness(v.sharpness)
}

func (v testVertex) ChildSharpnessPerEdge(c Crease, buf []float64) []float64 {
	buf = buf[:len(v.edges)]
	c.SubdivideEdgeSharpnessesAroundVertex(v.edges, buf)
	return buf
}

type testFace int

func (f testFace) VertexCount() int { return int(f) }

func smoothVertex(valence int) testVertex {
	return testVertex{edges: make([]float64, valence), faces: valence}
}
