package trig

import "testing"

func TestClassify_Boundaries(t *testing.T) {
	tcs := []struct {
		deg  float64
		want Quadrant
	}{
		{0, PositiveXAxis},
		{360, PositiveXAxis},
		{90, PositiveYAxis},
		{180, NegativeXAxis},
		{270, NegativeYAxis},
		{1, QuadrantI},
		{45, QuadrantI},
		{89, QuadrantI},
		{91, QuadrantII},
		{135, QuadrantII},
		{179, QuadrantII},
		{181, QuadrantIII},
		{225, QuadrantIII},
		{269, QuadrantIII},
		{271, QuadrantIV},
		{315, QuadrantIV},
		{359, QuadrantIV},
	}
	for _, tc := range tcs {
		if got := Classify(tc.deg); got != tc.want {
			t.Fatalf("Classify(%v) = %v; want %v", tc.deg, got, tc.want)
		}
	}
}

func TestClassify_TotalOverIntegerDomain(t *testing.T) {
	axes := map[float64]bool{0: true, 90: true, 180: true, 270: true, 360: true}
	for deg := 0; deg <= 360; deg++ {
		q := Classify(float64(deg))
		if q > QuadrantIV {
			t.Fatalf("Classify(%d) = %v; not a valid label", deg, q)
		}
		if q.OnAxis() != axes[float64(deg)] {
			t.Fatalf("Classify(%d) axis=%v; want %v", deg, q.OnAxis(), axes[float64(deg)])
		}
	}
}

func TestReferenceAngle_AxesHaveNone(t *testing.T) {
	for _, deg := range []float64{0, 90, 180, 270, 360} {
		if _, ok := ReferenceAngle(deg); ok {
			t.Fatalf("ReferenceAngle(%v) ok=true; want none", deg)
		}
	}
}

func TestReferenceAngle_Mapping(t *testing.T) {
	tcs := []struct {
		deg  float64
		want float64
	}{
		{30, 30},
		{45, 45},
		{120, 60},
		{135, 45},
		{210, 30},
		{225, 45},
		{300, 60},
		{330, 30},
		{359, 1},
	}
	for _, tc := range tcs {
		ref, ok := ReferenceAngle(tc.deg)
		if !ok {
			t.Fatalf("ReferenceAngle(%v) ok=false; want %v", tc.deg, tc.want)
		}
		if ref != tc.want {
			t.Fatalf("ReferenceAngle(%v) = %v; want %v", tc.deg, ref, tc.want)
		}
	}
}

func TestReferenceAngle_RangeAndSymmetry(t *testing.T) {
	for deg := 1; deg < 360; deg++ {
		if deg%90 == 0 {
			continue
		}
		ref, ok := ReferenceAngle(float64(deg))
		if !ok {
			t.Fatalf("ReferenceAngle(%d) ok=false; want a value", deg)
		}
		if ref <= 0 || ref >= 90 {
			t.Fatalf("ReferenceAngle(%d) = %v; want in (0, 90)", deg, ref)
		}
	}
	// Mirror symmetry about the x-axis.
	for deg := 181; deg < 360; deg++ {
		if deg%90 == 0 {
			continue
		}
		a, _ := ReferenceAngle(float64(deg))
		b, _ := ReferenceAngle(float64(360 - deg))
		if a != b {
			t.Fatalf("ReferenceAngle(%d)=%v != ReferenceAngle(%d)=%v", deg, a, 360-deg, b)
		}
	}
}

func TestQuadrantString(t *testing.T) {
	tcs := []struct {
		q    Quadrant
		want string
	}{
		{PositiveXAxis, "Positive X-axis"},
		{NegativeYAxis, "Negative Y-axis"},
		{QuadrantI, "Quadrant I"},
		{QuadrantIV, "Quadrant IV"},
	}
	for _, tc := range tcs {
		if got := tc.q.String(); got != tc.want {
			t.Fatalf("%d.String() = %q; want %q", tc.q, got, tc.want)
		}
	}
}
