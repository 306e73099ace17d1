package trig

import "math"

// Values holds the trigonometric values of a single angle. Tangent is a
// tagged result because it is undefined at the 90 and 270 degree poles.
type Values struct {
	Sin float64
	Cos float64

	tan   float64
	tanOK bool
}

// Tan returns the tangent and whether it is defined.
func (v Values) Tan() (float64, bool) { return v.tan, v.tanOK }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Evaluate computes sine, cosine, and tangent for an angle in degrees.
//
// The undefined-tangent poles are detected by comparing the input angle
// against 90 and 270 directly. The computed cosine at the poles is only
// near zero in floating point, so an equality test on it would make the
// result platform-dependent.
func Evaluate(deg float64) Values {
	rad := Radians(deg)
	v := Values{Sin: math.Sin(rad), Cos: math.Cos(rad)}
	if deg == 90 || deg == 270 {
		return v
	}
	v.tan = math.Tan(rad)
	v.tanOK = true
	return v
}

// Point returns the coordinate of the angle's point on the unit circle.
func Point(deg float64) (x, y float64) {
	rad := Radians(deg)
	return math.Cos(rad), math.Sin(rad)
}

// KeyAngles returns the commonly taught angles marked on the explorer's
// diagram, in ascending order.
func KeyAngles() []float64 {
	return []float64{0, 30, 45, 60, 90, 120, 135, 150, 180, 210, 225, 240, 270, 300, 315, 330}
}
