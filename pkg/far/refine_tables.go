// Package far drives refinement of a base mesh through successive levels,
// either uniformly or adaptively around irregular features.
package far

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/subdiv/pkg/sdc"
	"github.com/Faultbox/subdiv/pkg/vtr"
)

// RefineTables owns a stack of levels and the refinements between them.
// Level 0 is the base mesh; Refinement i derives Level i+1 from Level i.
type RefineTables struct {
	schemeType    sdc.SchemeType
	schemeOptions sdc.Options

	isUniform bool
	maxLevel  int

	levels      []*vtr.Level
	refinements []*vtr.Refinement

	log *zap.Logger
}

// NewRefineTables returns tables holding an empty base level.
func NewRefineTables(schemeType sdc.SchemeType, schemeOptions sdc.Options) *RefineTables {
	return &RefineTables{
		schemeType:    schemeType,
		schemeOptions: schemeOptions,
		isUniform:     true,
		levels:        []*vtr.Level{vtr.NewLevel()},
		log:           zap.NewNop(),
	}
}

// SetLogger sets the logger used to report refinement progress.
func (t *RefineTables) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	t.log = log
}

// SchemeType returns the subdivision scheme.
func (t *RefineTables) SchemeType() sdc.SchemeType { return t.schemeType }

// SchemeOptions returns the scheme options.
func (t *RefineTables) SchemeOptions() sdc.Options { return t.schemeOptions }

// IsUniform reports whether the last refinement was uniform.
func (t *RefineTables) IsUniform() bool { return t.isUniform }

// MaxLevel returns the deepest level held.
func (t *RefineTables) MaxLevel() int { return t.maxLevel }

// LevelCount returns the number of levels held, including the base level.
func (t *RefineTables) LevelCount() int { return len(t.levels) }

// Level returns level i.
func (t *RefineTables) Level(i int) *vtr.Level { return t.levels[i] }

// Refinement returns the refinement from level i to level i+1.
func (t *RefineTables) Refinement(i int) *vtr.Refinement { return t.refinements[i] }

// BaseLevel returns level 0 for population, or nil after Clear.
func (t *RefineTables) BaseLevel() *vtr.Level {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[0]
}

// GetVertCount returns the number of vertices across all levels.
func (t *RefineTables) GetVertCount() int {
	sum := 0
	for _, l := range t.levels {
		sum += l.VertCount()
	}
	return sum
}

// GetEdgeCount returns the number of edges across all levels.
func (t *RefineTables) GetEdgeCount() int {
	sum := 0
	for _, l := range t.levels {
		sum += l.EdgeCount()
	}
	return sum
}

// GetFaceCount returns the number of faces across all levels.
func (t *RefineTables) GetFaceCount() int {
	sum := 0
	for _, l := range t.levels {
		sum += l.FaceCount()
	}
	return sum
}

// Unrefine discards every level above the base level.
func (t *RefineTables) Unrefine() {
	if len(t.levels) > 0 {
		t.levels = t.levels[:1]
		t.levels[0].Unfreeze()
	}
	t.refinements = nil
	t.maxLevel = 0
}

// Clear discards every level, including the base level.
func (t *RefineTables) Clear() {
	t.levels = nil
	t.refinements = nil
	t.maxLevel = 0
}

func (t *RefineTables) checkBaseLevel() {
	if len(t.levels) == 0 || t.levels[0].VertCount() == 0 {
		panic("far: base level has not been initialized")
	}
}

func checkLevel(level int) {
	if level < 0 {
		panic(fmt.Sprintf("far: negative refinement level %d", level))
	}
}

// RefineUniform refines every face of the base mesh maxLevel times. Unless
// full topology is requested, the last level only holds face-vertices.
// It panics if maxLevel is negative, the base level is empty or the scheme
// cannot split faces into quads.
func (t *RefineTables) RefineUniform(maxLevel int, opts ...RefineOption) {
	checkLevel(maxLevel)
	t.checkBaseLevel()
	if t.schemeType != sdc.SchemeCatmark && t.schemeType != sdc.SchemeBilinear {
		panic("far: uniform refinement requires the catmark or bilinear scheme")
	}
	o := applyRefineOptions(opts)

	t.Unrefine()
	t.isUniform = true
	t.maxLevel = maxLevel

	scheme := sdc.NewScheme(t.schemeType, t.schemeOptions)
	refineOpts := vtr.Options{ComputeMasks: o.computeMasks}

	for i := 1; i <= maxLevel; i++ {
		refineOpts.FaceTopologyOnly = !o.fullTopology && i == maxLevel

		parent, child := t.levels[i-1], &vtr.Level{}
		r := vtr.NewRefinement(scheme)
		r.Initialize(parent, child, t.previousRefinement(i))
		r.Refine(refineOpts)

		t.levels = append(t.levels, child)
		t.refinements = append(t.refinements, r)

		t.log.Debug("refined level",
			zap.Int("level", i),
			zap.Int("verts", child.VertCount()),
			zap.Int("edges", child.EdgeCount()),
			zap.Int("faces", child.FaceCount()))
	}
}

// RefineAdaptive refines only the neighborhoods of irregular features, up to
// subdivLevel times. Refinement stops early once no feature remains to be
// isolated. Every level keeps full topology. It panics if subdivLevel is
// negative, the base level is empty or the scheme is not catmark.
func (t *RefineTables) RefineAdaptive(subdivLevel int, opts ...RefineOption) {
	checkLevel(subdivLevel)
	t.checkBaseLevel()
	if t.schemeType != sdc.SchemeCatmark {
		panic("far: adaptive refinement requires the catmark scheme")
	}
	o := applyRefineOptions(opts)

	t.Unrefine()
	t.isUniform = false
	t.maxLevel = subdivLevel

	scheme := sdc.NewScheme(t.schemeType, t.schemeOptions)
	refineOpts := vtr.Options{
		Sparse:        true,
		ComputeMasks:  o.computeMasks,
		ParentTagging: true,
		ChildTagging:  true,
	}

	for i := 1; i <= subdivLevel; i++ {
		parent, child := t.levels[i-1], &vtr.Level{}
		r := vtr.NewRefinement(scheme)
		r.Initialize(parent, child, t.previousRefinement(i))

		selector := vtr.NewSparseSelector(r)
		selector.BeginSelection()
		catmarkFeatureAdaptiveSelector(selector)

		if selector.IsSelectionEmpty() {
			// The truncated last level keeps the full topology it was built with.
			parent.Unfreeze()
			t.maxLevel = i - 1
			t.log.Info("adaptive refinement terminated early",
				zap.Int("requested", subdivLevel),
				zap.Int("reached", t.maxLevel))
			break
		}
		r.Refine(refineOpts)

		t.levels = append(t.levels, child)
		t.refinements = append(t.refinements, r)

		t.log.Debug("refined level",
			zap.Int("level", i),
			zap.Int("selected", selector.SelectedFaceCount()),
			zap.Int("verts", child.VertCount()),
			zap.Int("edges", child.EdgeCount()),
			zap.Int("faces", child.FaceCount()))
	}
}

// previousRefinement returns the refinement that produced level i-1.
func (t *RefineTables) previousRefinement(i int) *vtr.Refinement {
	if i < 2 {
		return nil
	}
	return t.refinements[i-2]
}
