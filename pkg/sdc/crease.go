package sdc

import "fmt"

// Sharpness limits.
const (
	SharpnessSmooth   = 0.0
	SharpnessInfinite = 10.0
)

// Rule classifies the creasing regime of a vertex.
type Rule int

// Vertex rules, ordered by increasing sharpness.
const (
	RuleSmooth Rule = iota
	RuleDart
	RuleCrease
	RuleCorner
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleSmooth:
		return "smooth"
	case RuleDart:
		return "dart"
	case RuleCrease:
		return "crease"
	case RuleCorner:
		return "corner"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// RuleHint carries a Rule the caller already knows. The zero value means
// the rule was not specified and must be determined from sharpness.
type RuleHint struct {
	Rule  Rule
	Valid bool
}

// Hint returns a RuleHint holding r.
func Hint(r Rule) RuleHint {
	return RuleHint{Rule: r, Valid: true}
}

// Is reports whether the hint is specified and equal to r.
func (h RuleHint) Is(r Rule) bool {
	return h.Valid && h.Rule == r
}

// IsSmooth reports whether s is smooth.
func IsSmooth(s float64) bool { return s <= SharpnessSmooth }

// IsSharp reports whether s is sharp.
func IsSharp(s float64) bool { return s > SharpnessSmooth }

// IsInfinite reports whether s is permanently sharp.
func IsInfinite(s float64) bool { return s >= SharpnessInfinite }

// IsSemiSharp reports whether s decays over subsequent levels.
func IsSemiSharp(s float64) bool { return s > SharpnessSmooth && s < SharpnessInfinite }

// Crease computes decayed sharpness values and rules. It holds no state
// apart from the creasing method of the options it was built from.
type Crease struct {
	options Options
}

// NewCrease returns a Crease for the given options.
func NewCrease(options Options) Crease {
	return Crease{options: options}
}

// IsUniform reports whether sharpness decays uniformly.
func (c Crease) IsUniform() bool {
	return c.options.CreasingMethod == CreaseUniform
}

func decrementSharpness(s float64) float64 {
	if IsSmooth(s) {
		return SharpnessSmooth
	}
	if IsInfinite(s) {
		return SharpnessInfinite
	}
	if s > 1.0 {
		return s - 1.0
	}
	return SharpnessSmooth
}

// SubdivideUniformSharpness decrements s by one level.
func (c Crease) SubdivideUniformSharpness(s float64) float64 {
	return decrementSharpness(s)
}

// SubdivideVertexSharpness returns the sharpness of the child of a vertex.
func (c Crease) SubdivideVertexSharpness(s float64) float64 {
	return decrementSharpness(s)
}

// SubdivideEdgeSharpnessAtVertex returns the sharpness of the child edge of an
// edge at one of its end vertices. aroundVertex holds the sharpness of every
// edge incident to that vertex, including the edge itself.
func (c Crease) SubdivideEdgeSharpnessAtVertex(edgeSharpness float64, aroundVertex []float64) float64 {
	if c.IsUniform() || len(aroundVertex) < 2 {
		return decrementSharpness(edgeSharpness)
	}
	if IsSmooth(edgeSharpness) {
		return SharpnessSmooth
	}
	if IsInfinite(edgeSharpness) {
		return SharpnessInfinite
	}

	sharpSum := 0.0
	sharpCount := 0
	for _, s := range aroundVertex {
		if IsSemiSharp(s) {
			sharpCount++
			sharpSum += s
		}
	}
	if sharpCount > 1 {
		// 3/4 of the edge plus 1/4 of the average of the other semi-sharp edges
		avg := (sharpSum - edgeSharpness) / float64(sharpCount-1)
		edgeSharpness = 0.75*edgeSharpness + 0.25*avg
	}
	edgeSharpness -= 1.0
	if IsSharp(edgeSharpness) {
		return edgeSharpness
	}
	return SharpnessSmooth
}

// SubdivideEdgeSharpnessesAroundVertex decays every edge incident to a vertex
// into child. child must be at least as long as parent.
func (c Crease) SubdivideEdgeSharpnessesAroundVertex(parent, child []float64) {
	if c.IsUniform() || len(parent) < 2 {
		for i, s := range parent {
			child[i] = decrementSharpness(s)
		}
		return
	}
	for i, s := range parent {
		child[i] = c.SubdivideEdgeSharpnessAtVertex(s, parent)
	}
}

// DetermineVertexVertexRule classifies a vertex from its own sharpness and
// the sharpness of its incident edges.
func (c Crease) DetermineVertexVertexRule(vertexSharpness float64, edgeSharpness []float64) Rule {
	if IsSharp(vertexSharpness) {
		return RuleCorner
	}
	sharpEdges := 0
	for _, s := range edgeSharpness {
		if IsSharp(s) {
			sharpEdges++
		}
	}
	return ruleFromSharpEdgeCount(sharpEdges)
}

func ruleFromSharpEdgeCount(n int) Rule {
	switch {
	case n == 0:
		return RuleSmooth
	case n == 1:
		return RuleDart
	case n == 2:
		return RuleCrease
	default:
		return RuleCorner
	}
}

// ComputeFractionalWeightAtVertex returns the weight given to the parent rule
// when a vertex transitions to a different child rule. It is the average
// sharpness of the features that become smooth in the child, clamped to 1.
// childEdges may be nil, in which case parent edges with sharpness <= 1 are
// assumed to decay to smooth.
func (c Crease) ComputeFractionalWeightAtVertex(parentVertex, childVertex float64, parentEdges, childEdges []float64) float64 {
	transitionCount := 0
	transitionSum := 0.0

	if IsSharp(parentVertex) && IsSmooth(childVertex) {
		transitionCount = 1
		transitionSum = parentVertex
	} else if parentEdges != nil {
		for i, s := range parentEdges {
			var becomesSmooth bool
			if childEdges != nil {
				becomesSmooth = IsSharp(s) && IsSmooth(childEdges[i])
			} else {
				becomesSmooth = IsSharp(s) && s <= 1.0
			}
			if becomesSmooth {
				transitionSum += s
				transitionCount++
			}
		}
	}
	if transitionCount == 0 {
		return 0.0
	}
	w := transitionSum / float64(transitionCount)
	if w > 1.0 {
		return 1.0
	}
	return w
}
