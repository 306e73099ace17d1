package explorer

import (
	"fmt"

	"unitcircle/trig"
)

// formatFixed renders a trig value with three decimals. Negative zero would
// read as "-0.000" on screen, so it is normalized away.
func formatFixed(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

func tanText(v trig.Values) string {
	tan, ok := v.Tan()
	if !ok {
		return "Undefined"
	}
	return formatFixed(tan)
}
