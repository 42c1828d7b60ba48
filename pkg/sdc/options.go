// Package sdc provides the subdivision scheme rules: crease sharpness decay,
// rule classification and the mask weights used to compute refined vertices.
package sdc

import "fmt"

// SchemeType identifies a subdivision scheme.
type SchemeType int

// Supported subdivision schemes.
const (
	SchemeBilinear SchemeType = iota
	SchemeCatmark
	SchemeLoop
)

// String returns the configuration name of the scheme.
func (t SchemeType) String() string {
	switch t {
	case SchemeBilinear:
		return "bilinear"
	case SchemeCatmark:
		return "catmark"
	case SchemeLoop:
		return "loop"
	default:
		return fmt.Sprintf("SchemeType(%d)", int(t))
	}
}

// ParseSchemeType converts a configuration name into a SchemeType.
func ParseSchemeType(s string) (SchemeType, error) {
	switch s {
	case "bilinear":
		return SchemeBilinear, nil
	case "catmark", "catmull-clark":
		return SchemeCatmark, nil
	case "loop":
		return SchemeLoop, nil
	default:
		return 0, fmt.Errorf("unknown scheme type: %q", s)
	}
}

// VtxBoundaryInterpolation selects how boundary vertices are interpolated.
type VtxBoundaryInterpolation int

// Boundary interpolation rules.
const (
	VtxBoundaryNone VtxBoundaryInterpolation = iota
	VtxBoundaryEdgeOnly
	VtxBoundaryEdgeAndCorner
)

// String returns the configuration name of the rule.
func (b VtxBoundaryInterpolation) String() string {
	switch b {
	case VtxBoundaryNone:
		return "none"
	case VtxBoundaryEdgeOnly:
		return "edge_only"
	case VtxBoundaryEdgeAndCorner:
		return "edge_and_corner"
	default:
		return fmt.Sprintf("VtxBoundaryInterpolation(%d)", int(b))
	}
}

// ParseVtxBoundaryInterpolation converts a configuration name.
func ParseVtxBoundaryInterpolation(s string) (VtxBoundaryInterpolation, error) {
	switch s {
	case "none":
		return VtxBoundaryNone, nil
	case "edge_only", "":
		return VtxBoundaryEdgeOnly, nil
	case "edge_and_corner":
		return VtxBoundaryEdgeAndCorner, nil
	default:
		return 0, fmt.Errorf("unknown boundary interpolation: %q", s)
	}
}

// CreasingMethod selects how semi-sharp creases decay between levels.
type CreasingMethod int

// Creasing methods.
const (
	CreaseUniform CreasingMethod = iota
	CreaseChaikin
)

// String returns the configuration name of the method.
func (m CreasingMethod) String() string {
	switch m {
	case CreaseUniform:
		return "uniform"
	case CreaseChaikin:
		return "chaikin"
	default:
		return fmt.Sprintf("CreasingMethod(%d)", int(m))
	}
}

// ParseCreasingMethod converts a configuration name.
func ParseCreasingMethod(s string) (CreasingMethod, error) {
	switch s {
	case "uniform", "":
		return CreaseUniform, nil
	case "chaikin":
		return CreaseChaikin, nil
	default:
		return 0, fmt.Errorf("unknown creasing method: %q", s)
	}
}

// Options holds the variable aspects of a scheme's behavior.
type Options struct {
	VtxBoundaryInterpolation VtxBoundaryInterpolation
	CreasingMethod           CreasingMethod
}

// DefaultOptions returns edge-only boundaries with uniform creasing.
func DefaultOptions() Options {
	return Options{
		VtxBoundaryInterpolation: VtxBoundaryEdgeOnly,
		CreasingMethod:           CreaseUniform,
	}
}
