package vtr

// CompleteTopologyFromFaceVerts derives the edges of the level from its face
// vertices and then all remaining adjacency. Edge sharpness is reset to
// smooth.
func (l *Level) CompleteTopologyFromFaceVerts() {
	l.checkMutable()

	type vertPair [2]Index
	edgeOf := make(map[vertPair]Index, 2*len(l.faceVertIndices))

	l.edgeVertIndices = l.edgeVertIndices[:0]
	l.faceEdgeIndices = make([]Index, len(l.faceVertIndices))

	for f := 0; f < l.FaceCount(); f++ {
		start, end := l.faceVertOffsets[f], l.faceVertOffsets[f+1]
		n := end - start
		for k := 0; k < n; k++ {
			v0 := l.faceVertIndices[start+k]
			v1 := l.faceVertIndices[start+(k+1)%n]

			key := vertPair{v0, v1}
			if v1 < v0 {
				key = vertPair{v1, v0}
			}
			e, ok := edgeOf[key]
			if !ok {
				e = Index(len(l.edgeVertIndices) / 2)
				l.edgeVertIndices = append(l.edgeVertIndices, v0, v1)
				edgeOf[key] = e
			}
			l.faceEdgeIndices[start+k] = e
		}
	}
	l.edgeSharpness = make([]float64, l.EdgeCount())

	l.completeTopology()
}

// completeTopology fills edge-faces, vertex-faces and vertex-edges from the
// face-vertex, face-edge and edge-vertex relations, then orders the
// components around each vertex.
func (l *Level) completeTopology() {
	edgeCount := l.EdgeCount()
	faceCount := l.FaceCount()

	// Edge faces
	l.edgeFaceOffsets = make([]int, edgeCount+1)
	for _, e := range l.faceEdgeIndices {
		l.edgeFaceOffsets[e+1]++
	}
	prefixSum(l.edgeFaceOffsets)
	l.edgeFaceIndices = make([]Index, len(l.faceEdgeIndices))
	fill := append([]int(nil), l.edgeFaceOffsets[:edgeCount]...)
	for f := 0; f < faceCount; f++ {
		for _, e := range l.FaceEdges(Index(f)) {
			l.edgeFaceIndices[fill[e]] = Index(f)
			fill[e]++
		}
	}

	// Vertex faces
	l.vertFaceOffsets = make([]int, l.vertCount+1)
	for _, v := range l.faceVertIndices {
		l.vertFaceOffsets[v+1]++
	}
	prefixSum(l.vertFaceOffsets)
	l.vertFaceIndices = make([]Index, len(l.faceVertIndices))
	fill = append(fill[:0], l.vertFaceOffsets[:l.vertCount]...)
	for f := 0; f < faceCount; f++ {
		for _, v := range l.FaceVerts(Index(f)) {
			l.vertFaceIndices[fill[v]] = Index(f)
			fill[v]++
		}
	}

	// Vertex edges
	l.vertEdgeOffsets = make([]int, l.vertCount+1)
	for _, v := range l.edgeVertIndices {
		l.vertEdgeOffsets[v+1]++
	}
	prefixSum(l.vertEdgeOffsets)
	l.vertEdgeIndices = make([]Index, len(l.edgeVertIndices))
	fill = append(fill[:0], l.vertEdgeOffsets[:l.vertCount]...)
	for e := 0; e < edgeCount; e++ {
		for _, v := range l.EdgeVerts(Index(e)) {
			l.vertEdgeIndices[fill[v]] = Index(e)
			fill[v]++
		}
	}

	l.vertNonManifold = make([]bool, l.vertCount)
	for v := 0; v < l.vertCount; v++ {
		l.vertNonManifold[v] = !l.orderVertexFacesAndEdges(Index(v))
	}
}

func prefixSum(offsets []int) {
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
}

// faceCorner returns the position of v in face f, or -1.
func (l *Level) faceCorner(f, v Index) int {
	for k, fv := range l.FaceVerts(f) {
		if fv == v {
			return k
		}
	}
	return -1
}

// orderVertexFacesAndEdges rewrites the faces and edges of v in fan order.
// Crossing the leading edge of a face (the edge leaving v) reaches the next
// face; edge i of the result is the trailing edge of face i, followed by the
// leading edge of the last face for boundary vertices. It returns false and
// leaves the order untouched when v is not a manifold vertex.
func (l *Level) orderVertexFacesAndEdges(v Index) bool {
	faces := l.VertFaces(v)
	edges := l.VertEdges(v)
	nFaces := len(faces)
	nEdges := len(edges)

	if nFaces == 0 {
		return nEdges == 0
	}
	var isBoundary bool
	switch nEdges {
	case nFaces:
		isBoundary = false
	case nFaces + 1:
		isBoundary = true
	default:
		return false
	}

	boundaryEdges := 0
	for _, e := range edges {
		switch len(l.EdgeFaces(e)) {
		case 1:
			boundaryEdges++
		case 2:
		default:
			return false
		}
	}
	if (isBoundary && boundaryEdges != 2) || (!isBoundary && boundaryEdges != 0) {
		return false
	}

	leading := func(f Index) Index {
		k := l.faceCorner(f, v)
		return l.FaceEdges(f)[k]
	}
	trailing := func(f Index) Index {
		k := l.faceCorner(f, v)
		fe := l.FaceEdges(f)
		return fe[(k+len(fe)-1)%len(fe)]
	}

	start := faces[0]
	if isBoundary {
		start = InvalidIndex
		for _, f := range faces {
			if l.IsEdgeBoundary(trailing(f)) {
				start = f
				break
			}
		}
		if start == InvalidIndex {
			return false
		}
	}

	orderedFaces := make([]Index, 0, nFaces)
	orderedEdges := make([]Index, 0, nEdges)
	visited := make(map[Index]bool, nFaces)

	f := start
	for i := 0; i < nFaces; i++ {
		if visited[f] || l.faceCorner(f, v) < 0 {
			return false
		}
		visited[f] = true
		orderedFaces = append(orderedFaces, f)
		orderedEdges = append(orderedEdges, trailing(f))

		lead := leading(f)
		if i == nFaces-1 {
			if isBoundary {
				if !l.IsEdgeBoundary(lead) {
					return false
				}
				orderedEdges = append(orderedEdges, lead)
			} else if l.otherFace(lead, f) != start {
				return false
			}
			break
		}
		if l.IsEdgeBoundary(lead) {
			return false
		}
		f = l.otherFace(lead, f)
	}

	copy(faces, orderedFaces)
	copy(edges, orderedEdges)
	return true
}

// otherFace returns the face across manifold edge e from f.
func (l *Level) otherFace(e, f Index) Index {
	ef := l.EdgeFaces(e)
	if ef[0] == f {
		return ef[len(ef)-1]
	}
	return ef[0]
}
