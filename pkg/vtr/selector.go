package vtr

// SparseSelector chooses the parent faces of a sparse Refinement.
type SparseSelector struct {
	refinement *Refinement
	selected   int
}

// NewSparseSelector returns a selector for an initialized refinement.
func NewSparseSelector(r *Refinement) *SparseSelector {
	return &SparseSelector{refinement: r}
}

// Refinement returns the refinement being selected for.
func (s *SparseSelector) Refinement() *Refinement { return s.refinement }

// BeginSelection clears any previous selection. Whether the tags survive
// refinement is decided by Options.ParentTagging.
func (s *SparseSelector) BeginSelection() {
	s.selected = 0
	s.refinement.parentFaceSelected = make([]bool, s.refinement.parent.FaceCount())
}

// SelectFace marks face f for refinement.
func (s *SparseSelector) SelectFace(f Index) {
	sel := s.refinement.parentFaceSelected
	if !sel[f] {
		sel[f] = true
		s.selected++
	}
}

// SelectVertexFaces marks every face incident to v.
func (s *SparseSelector) SelectVertexFaces(v Index) {
	for _, f := range s.refinement.parent.VertFaces(v) {
		s.SelectFace(f)
	}
}

// SelectEdgeFaces marks every face incident to e.
func (s *SparseSelector) SelectEdgeFaces(e Index) {
	for _, f := range s.refinement.parent.EdgeFaces(e) {
		s.SelectFace(f)
	}
}

// IsFaceSelected reports whether f has been marked.
func (s *SparseSelector) IsFaceSelected(f Index) bool {
	return s.refinement.parentFaceSelected[f]
}

// IsVertexIncomplete reports whether parent vertex v came from a partially
// refined neighborhood of the previous level.
func (s *SparseSelector) IsVertexIncomplete(v Index) bool {
	return s.refinement.parentVertexIncomplete(v)
}

// SelectedFaceCount returns the number of marked faces.
func (s *SparseSelector) SelectedFaceCount() int { return s.selected }

// IsSelectionEmpty reports whether no face has been marked.
func (s *SparseSelector) IsSelectionEmpty() bool { return s.selected == 0 }
