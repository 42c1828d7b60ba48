// Package config handles subdtool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/subdiv/pkg/far"
	"github.com/Faultbox/subdiv/pkg/sdc"
)

// ErrInvalidConfig is returned when settings cannot be applied.
var ErrInvalidConfig = errors.New("invalid config")

// Refinement modes.
const (
	ModeUniform  = "uniform"
	ModeAdaptive = "adaptive"
)

// Config holds all subdtool settings.
type Config struct {
	Scheme  SchemeConfig  `yaml:"scheme"`
	Refine  RefineConfig  `yaml:"refine"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// SchemeConfig selects the subdivision scheme and its options.
type SchemeConfig struct {
	Type                  string `yaml:"type"`
	BoundaryInterpolation string `yaml:"boundary_interpolation"`
	Creasing              string `yaml:"creasing"`
}

// RefineConfig holds refinement settings.
type RefineConfig struct {
	Mode         string `yaml:"mode"`
	Level        int    `yaml:"level"`
	FullTopology bool   `yaml:"full_topology"`
	ComputeMasks bool   `yaml:"compute_masks"`
}

// MeshConfig holds the base mesh.
type MeshConfig struct {
	Positions [][3]float64   `yaml:"positions"`
	Faces     [][]int        `yaml:"faces"`
	Creases   []CreaseConfig `yaml:"creases,omitempty"`
	Corners   []CornerConfig `yaml:"corners,omitempty"`
}

// CreaseConfig tags the edge between two vertices.
type CreaseConfig struct {
	Verts     [2]int  `yaml:"verts"`
	Sharpness float64 `yaml:"sharpness"`
}

// CornerConfig tags a vertex.
type CornerConfig struct {
	Vert      int     `yaml:"vert"`
	Sharpness float64 `yaml:"sharpness"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config refining the unit cube twice with catmark.
func Default() *Config {
	return &Config{
		Scheme: SchemeConfig{
			Type:                  "catmark",
			BoundaryInterpolation: "edge_only",
			Creasing:              "uniform",
		},
		Refine: RefineConfig{
			Mode:         ModeUniform,
			Level:        2,
			FullTopology: false,
			ComputeMasks: true,
		},
		Mesh: cubeMesh(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

func cubeMesh() MeshConfig {
	return MeshConfig{
		Positions: [][3]float64{
			{-0.5, -0.5, 0.5},
			{0.5, -0.5, 0.5},
			{-0.5, 0.5, 0.5},
			{0.5, 0.5, 0.5},
			{-0.5, 0.5, -0.5},
			{0.5, 0.5, -0.5},
			{-0.5, -0.5, -0.5},
			{0.5, -0.5, -0.5},
		},
		Faces: [][]int{
			{0, 1, 3, 2},
			{2, 3, 5, 4},
			{4, 5, 7, 6},
			{6, 7, 1, 0},
			{1, 7, 5, 3},
			{6, 0, 2, 4},
		},
	}
}

// SchemeType parses the configured scheme.
func (c *Config) SchemeType() (sdc.SchemeType, error) {
	t, err := sdc.ParseSchemeType(c.Scheme.Type)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return t, nil
}

// SchemeOptions parses the configured scheme options.
func (c *Config) SchemeOptions() (sdc.Options, error) {
	interp, err := sdc.ParseVtxBoundaryInterpolation(c.Scheme.BoundaryInterpolation)
	if err != nil {
		return sdc.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	creasing, err := sdc.ParseCreasingMethod(c.Scheme.Creasing)
	if err != nil {
		return sdc.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return sdc.Options{VtxBoundaryInterpolation: interp, CreasingMethod: creasing}, nil
}

// Validate checks settings that do not depend on the mesh.
func (c *Config) Validate() error {
	if _, err := c.SchemeType(); err != nil {
		return err
	}
	if _, err := c.SchemeOptions(); err != nil {
		return err
	}
	switch c.Refine.Mode {
	case ModeUniform, ModeAdaptive:
	default:
		return fmt.Errorf("%w: unknown refine mode %q", ErrInvalidConfig, c.Refine.Mode)
	}
	if c.Refine.Level < 0 {
		return fmt.Errorf("%w: negative refine level %d", ErrInvalidConfig, c.Refine.Level)
	}
	return nil
}

// Descriptor converts the mesh into a topology descriptor.
func (c *Config) Descriptor() *far.TopologyDescriptor {
	m := &c.Mesh
	d := &far.TopologyDescriptor{
		NumVertices: len(m.Positions),
		NumFaces:    len(m.Faces),
	}
	for _, f := range m.Faces {
		d.VertsPerFace = append(d.VertsPerFace, len(f))
		d.VertIndices = append(d.VertIndices, f...)
	}
	for _, cr := range m.Creases {
		d.CreaseVertexIndexPairs = append(d.CreaseVertexIndexPairs, cr.Verts[0], cr.Verts[1])
		d.CreaseWeights = append(d.CreaseWeights, cr.Sharpness)
	}
	for _, co := range m.Corners {
		d.CornerVertexIndices = append(d.CornerVertexIndices, co.Vert)
		d.CornerWeights = append(d.CornerWeights, co.Sharpness)
	}
	return d
}

// NewRefineTables builds refinement tables for the configured scheme and
// mesh without refining them.
func (c *Config) NewRefineTables() (*far.RefineTables, error) {
	st, err := c.SchemeType()
	if err != nil {
		return nil, err
	}
	opts, err := c.SchemeOptions()
	if err != nil {
		return nil, err
	}
	return far.NewRefineTablesFromDescriptor(st, opts, c.Descriptor())
}
