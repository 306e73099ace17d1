package trig

// Quadrant identifies where an angle's terminal ray lies: one of the four
// open quadrants, or one of the four axis rays for the boundary angles.
type Quadrant uint8

const (
	PositiveXAxis Quadrant = iota
	PositiveYAxis
	NegativeXAxis
	NegativeYAxis
	QuadrantI
	QuadrantII
	QuadrantIII
	QuadrantIV
)

// OnAxis reports whether the quadrant is one of the four axis rays.
func (q Quadrant) OnAxis() bool { return q <= NegativeYAxis }

func (q Quadrant) String() string {
	switch q {
	case PositiveXAxis:
		return "Positive X-axis"
	case PositiveYAxis:
		return "Positive Y-axis"
	case NegativeXAxis:
		return "Negative X-axis"
	case NegativeYAxis:
		return "Negative Y-axis"
	case QuadrantI:
		return "Quadrant I"
	case QuadrantII:
		return "Quadrant II"
	case QuadrantIII:
		return "Quadrant III"
	case QuadrantIV:
		return "Quadrant IV"
	default:
		return "?"
	}
}

// Classify returns the quadrant for an angle in degrees in [0, 360].
//
// The four axis angles take priority over the open intervals; 0 and 360 both
// map to the positive x-axis.
func Classify(deg float64) Quadrant {
	switch deg {
	case 0, 360:
		return PositiveXAxis
	case 90:
		return PositiveYAxis
	case 180:
		return NegativeXAxis
	case 270:
		return NegativeYAxis
	}
	switch {
	case deg < 90:
		return QuadrantI
	case deg < 180:
		return QuadrantII
	case deg < 270:
		return QuadrantIII
	default:
		return QuadrantIV
	}
}

// ReferenceAngle returns the acute angle between the terminal ray and the
// nearest x-axis, always in (0, 90). ok is false for the four axis angles
// {0, 90, 180, 270, 360}, which have no reference angle.
func ReferenceAngle(deg float64) (ref float64, ok bool) {
	switch Classify(deg) {
	case QuadrantI:
		return deg, true
	case QuadrantII:
		return 180 - deg, true
	case QuadrantIII:
		return deg - 180, true
	case QuadrantIV:
		return 360 - deg, true
	default:
		return 0, false
	}
}
