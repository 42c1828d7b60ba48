package far

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/Faultbox/subdiv/pkg/math"
	"github.com/Faultbox/subdiv/pkg/sdc"
	"github.com/Faultbox/subdiv/pkg/vtr"
)

func cubePositions() []math.Vec3 {
	return []math.Vec3{
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
	}
}

func checkPoint(t *testing.T, name string, got, want math.Vec3) {
	t.Helper()
	if !floats.EqualApprox([]float64{got.X, got.Y, got.Z}, []float64{want.X, want.Y, want.Z}, 1e-12) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestInterpolateCatmarkCube(t *testing.T) {
	tables := newTables(t, sdc.SchemeCatmark, sdc.DefaultOptions(), cubeDescriptor())
	tables.RefineUniform(1, WithComputeMasks(true))

	r := tables.Refinement(0)
	pos, err := Interpolate(r, cubePositions())
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if len(pos) != 26 {
		t.Fatalf("%d positions, want 26", len(pos))
	}

	checkPoint(t, "face point", pos[r.FaceChildVertex(0)], math.Vec3{Z: 0.5})

	edge := tables.Level(0).FindEdge(0, 1)
	checkPoint(t, "edge point", pos[r.EdgeChildVertex(edge)], math.Vec3{Y: -0.375, Z: 0.375})

	const c = 5.0 / 18.0
	checkPoint(t, "vertex point", pos[r.VertexChildVertex(0)], math.Vec3{X: -c, Y: -c, Z: c})
}

func TestInterpolateInfiniteCreaseKeepsEdge(t *testing.T) {
	d := cubeDescriptor()
	d.CreaseVertexIndexPairs = []int{0, 1}
	d.CreaseWeights = []float64{sdc.SharpnessInfinite}
	tables := newTables(t, sdc.SchemeCatmark, sdc.DefaultOptions(), d)
	tables.RefineUniform(1, WithComputeMasks(true))

	r := tables.Refinement(0)
	pos, err := Interpolate(r, cubePositions())
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	edge := tables.Level(0).FindEdge(0, 1)
	checkPoint(t, "crease edge point", pos[r.EdgeChildVertex(edge)], math.Vec3{Y: -0.5, Z: 0.5})
}

func TestInterpolateBilinearStaysOnCube(t *testing.T) {
	tables := newTables(t, sdc.SchemeBilinear, sdc.DefaultOptions(), cubeDescriptor())
	tables.RefineUniform(2, WithComputeMasks(true))

	levels, err := InterpolateLevels(tables, cubePositions())
	if err != nil {
		t.Fatalf("InterpolateLevels: %v", err)
	}
	if len(levels) != 3 || len(levels[2]) != tables.Level(2).VertCount() {
		t.Fatalf("unexpected level sizes")
	}

	r := tables.Refinement(0)
	for v := vtr.Index(0); v < 8; v++ {
		checkPoint(t, "corner", levels[1][r.VertexChildVertex(v)], cubePositions()[v])
	}
	for i, p := range levels[2] {
		onFace := p.X == 0.5 || p.X == -0.5 || p.Y == 0.5 || p.Y == -0.5 || p.Z == 0.5 || p.Z == -0.5
		if !onFace {
			t.Errorf("level 2 vertex %d at %v is off the cube", i, p)
		}
	}
}

func TestInterpolateErrors(t *testing.T) {
	tables := newTables(t, sdc.SchemeCatmark, sdc.DefaultOptions(), cubeDescriptor())

	tables.RefineUniform(1)
	if _, err := Interpolate(tables.Refinement(0), cubePositions()); !errors.Is(err, ErrNoMasks) {
		t.Errorf("expected ErrNoMasks, got %v", err)
	}
	if _, err := InterpolateLevels(tables, cubePositions()); !errors.Is(err, ErrNoMasks) {
		t.Errorf("expected ErrNoMasks from InterpolateLevels, got %v", err)
	}

	tables.RefineUniform(1, WithComputeMasks(true))
	if _, err := Interpolate(tables.Refinement(0), cubePositions()[:5]); err == nil {
		t.Error("expected an error for a short position slice")
	}
}
