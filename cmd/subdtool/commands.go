package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/subdiv/internal/config"
	"github.com/Faultbox/subdiv/internal/logger"
	"github.com/Faultbox/subdiv/pkg/far"
	"github.com/Faultbox/subdiv/pkg/math"
	"github.com/Faultbox/subdiv/pkg/sdc"
	"github.com/Faultbox/subdiv/pkg/vtr"
)

var errUnsupportedScheme = errors.New("scheme does not support this refinement")

// buildTables creates and refines tables as configured. withMasks forces
// mask computation.
func buildTables(cfg *config.Config, withMasks bool) (*far.RefineTables, error) {
	tables, err := cfg.NewRefineTables()
	if err != nil {
		return nil, err
	}
	tables.SetLogger(logger.Log)

	st := tables.SchemeType()
	opts := []far.RefineOption{
		far.WithFullTopology(cfg.Refine.FullTopology),
		far.WithComputeMasks(cfg.Refine.ComputeMasks || withMasks),
	}

	switch cfg.Refine.Mode {
	case config.ModeAdaptive:
		if st != sdc.SchemeCatmark {
			return nil, fmt.Errorf("%w: adaptive %s", errUnsupportedScheme, st)
		}
		tables.RefineAdaptive(cfg.Refine.Level, opts...)
	default:
		if st == sdc.SchemeLoop {
			return nil, fmt.Errorf("%w: uniform %s", errUnsupportedScheme, st)
		}
		tables.RefineUniform(cfg.Refine.Level, opts...)
	}

	logger.Info("refined",
		zap.String("scheme", st.String()),
		zap.String("mode", cfg.Refine.Mode),
		zap.Int("levels", tables.LevelCount()))
	return tables, nil
}

func cmdInfo(cfg *config.Config) error {
	tables, err := cfg.NewRefineTables()
	if err != nil {
		return err
	}
	base := tables.BaseLevel()

	opts := tables.SchemeOptions()
	fmt.Printf("Scheme:    %s\n", tables.SchemeType())
	fmt.Printf("Boundary:  %s\n", opts.VtxBoundaryInterpolation)
	fmt.Printf("Creasing:  %s\n", opts.CreasingMethod)
	fmt.Printf("Vertices:  %d\n", base.VertCount())
	fmt.Printf("Edges:     %d\n", base.EdgeCount())
	fmt.Printf("Faces:     %d\n", base.FaceCount())

	valence := make(map[int]int)
	boundary, nonManifold, sharpEdges := 0, 0, 0
	for v := vtr.Index(0); v < vtr.Index(base.VertCount()); v++ {
		valence[len(base.VertEdges(v))]++
		if base.IsVertNonManifold(v) {
			nonManifold++
		}
	}
	for e := vtr.Index(0); e < vtr.Index(base.EdgeCount()); e++ {
		if base.IsEdgeBoundary(e) {
			boundary++
		}
		if sdc.IsSharp(base.EdgeSharpness(e)) {
			sharpEdges++
		}
	}
	fmt.Printf("Boundary edges:        %d\n", boundary)
	fmt.Printf("Sharp edges:           %d\n", sharpEdges)
	fmt.Printf("Non-manifold vertices: %d\n", nonManifold)
	fmt.Println()
	fmt.Println("Vertices by valence:")
	for n := 0; n <= maxKey(valence); n++ {
		if c, ok := valence[n]; ok {
			fmt.Printf("  %-3d %d\n", n, c)
		}
	}
	return nil
}

func maxKey(m map[int]int) int {
	k := 0
	for n := range m {
		k = max(k, n)
	}
	return k
}

func cmdRefine(cfg *config.Config) error {
	tables, err := buildTables(cfg, false)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tVERTS\tEDGES\tFACES\tTOPOLOGY")
	for i := 0; i < tables.LevelCount(); i++ {
		l := tables.Level(i)
		topology := "full"
		if l.IsFaceTopologyOnly() {
			topology = "faces"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n", i, l.VertCount(), l.EdgeCount(), l.FaceCount(), topology)
	}
	fmt.Fprintf(w, "total\t%d\t%d\t%d\t\n", tables.GetVertCount(), tables.GetEdgeCount(), tables.GetFaceCount())
	if err := w.Flush(); err != nil {
		return err
	}

	if tables.MaxLevel() < cfg.Refine.Level {
		fmt.Printf("\nAdaptive refinement stopped at level %d of %d\n", tables.MaxLevel(), cfg.Refine.Level)
	}
	return nil
}

func cmdMasks(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: subdtool masks <level>")
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parsing level: %w", err)
	}

	tables, err := buildTables(cfg, true)
	if err != nil {
		return err
	}
	if level < 1 || level >= tables.LevelCount() {
		return fmt.Errorf("level %d out of range 1..%d", level, tables.LevelCount()-1)
	}

	r := tables.Refinement(level - 1)
	ro := r.Options()
	fmt.Printf("level %d -> %d: sparse=%t face-topology-only=%t\n", level-1, level, ro.Sparse, ro.FaceTopologyOnly)
	logger.Debug("printing masks",
		zap.Int("level", level),
		zap.Bool("sparse", ro.Sparse),
		zap.Bool("parent_tagging", ro.ParentTagging),
		zap.Bool("child_tagging", ro.ChildTagging))
	for v := vtr.Index(0); v < vtr.Index(r.Child().VertCount()); v++ {
		ref := r.ChildVertexParent(v)
		m := r.ChildVertexMask(v)
		fmt.Printf("%d: %s %d\n", v, ref.Kind, ref.Index)
		fmt.Printf("    vertex %v\n", m.VertexWeights)
		if m.EdgeWeightCount() > 0 {
			fmt.Printf("    edge   %v\n", m.EdgeWeights)
		}
		if m.FaceWeightCount() > 0 {
			fmt.Printf("    face   %v\n", m.FaceWeights)
		}
	}
	return nil
}

func cmdEval(cfg *config.Config) error {
	tables, err := buildTables(cfg, true)
	if err != nil {
		return err
	}

	base := make([]math.Vec3, len(cfg.Mesh.Positions))
	for i, p := range cfg.Mesh.Positions {
		base[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	levels, err := far.InterpolateLevels(tables, base)
	if err != nil {
		return err
	}

	last := tables.LevelCount() - 1
	for _, p := range levels[last] {
		fmt.Printf("v %s\n", p)
	}
	l := tables.Level(last)
	for f := vtr.Index(0); f < vtr.Index(l.FaceCount()); f++ {
		fmt.Print("f")
		for _, v := range l.FaceVerts(f) {
			fmt.Printf(" %d", v+1)
		}
		fmt.Println()
	}
	return nil
}

func cmdInit(args []string) error {
	cfg := config.Default()
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", args[0])
		return nil
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Wrote config to %s\n", config.ConfigDir())
	return nil
}
