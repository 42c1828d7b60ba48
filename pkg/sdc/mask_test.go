package sdc

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestMaskResizeReusesStorage(t *testing.T) {
	var m Mask
	m.SetEdgeWeightCount(6)
	for i := range m.EdgeWeights {
		m.EdgeWeights[i] = float64(i)
	}
	m.SetEdgeWeightCount(2)
	if m.EdgeWeightCount() != 2 {
		t.Fatalf("EdgeWeightCount() = %d, want 2", m.EdgeWeightCount())
	}
	m.SetEdgeWeightCount(6)
	if cap(m.EdgeWeights) != 6 || m.EdgeWeights[5] != 5 {
		t.Errorf("storage was not reused: %v", m.EdgeWeights)
	}

	m.Reset()
	if m.VertexWeightCount()+m.EdgeWeightCount()+m.FaceWeightCount() != 0 {
		t.Errorf("Reset left weights: %+v", m)
	}
}

func TestCombineVertexVertexMasks(t *testing.T) {
	tests := []struct {
		name      string
		dst       Mask
		src       Mask
		wantV     float64
		wantEdges []float64
		wantFaces []float64
	}{
		{
			name:      "corner into smooth",
			dst:       Mask{VertexWeights: []float64{1}},
			src:       Mask{VertexWeights: []float64{0.5}, EdgeWeights: []float64{0.25, 0.25}, FaceWeights: []float64{0.5}},
			wantV:     0.75,
			wantEdges: []float64{0.125, 0.125},
			wantFaces: []float64{0.25},
		},
		{
			name:      "crease into smooth",
			dst:       Mask{VertexWeights: []float64{0.75}, EdgeWeights: []float64{0.125, 0.125}},
			src:       Mask{VertexWeights: []float64{0.5}, EdgeWeights: []float64{0.25, 0.25}},
			wantV:     0.625,
			wantEdges: []float64{0.1875, 0.1875},
		},
		{
			name:      "faces only on source",
			dst:       Mask{VertexWeights: []float64{1}, EdgeWeights: []float64{0}},
			src:       Mask{VertexWeights: []float64{0}, FaceWeights: []float64{1}},
			wantV:     0.5,
			wantEdges: []float64{0},
			wantFaces: []float64{0.5},
		},
		{
			name:  "vertex only",
			dst:   Mask{VertexWeights: []float64{1}},
			src:   Mask{VertexWeights: []float64{1}},
			wantV: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := tt.dst
			tt.src.combineVertexVertex(0.5, 0.5, &dst)

			if dst.VertexWeights[0] != tt.wantV {
				t.Errorf("vertex weight = %v, want %v", dst.VertexWeights[0], tt.wantV)
			}
			if !floats.Equal(dst.EdgeWeights, tt.wantEdges) {
				t.Errorf("edge weights = %v, want %v", dst.EdgeWeights, tt.wantEdges)
			}
			if !floats.Equal(dst.FaceWeights, tt.wantFaces) {
				t.Errorf("face weights = %v, want %v", dst.FaceWeights, tt.wantFaces)
			}
		})
	}
}

func TestMaskClone(t *testing.T) {
	m := Mask{VertexWeights: []float64{0.5, 0.5}, FaceWeights: []float64{0.25}, FaceWeightsForFaceCenters: true}
	c := m.Clone()
	c.VertexWeights[0] = 1
	if m.VertexWeights[0] != 0.5 {
		t.Error("Clone shares vertex storage")
	}
	if !c.FaceWeightsForFaceCenters || c.FaceWeightCount() != 1 {
		t.Errorf("Clone lost fields: %+v", c)
	}
}
