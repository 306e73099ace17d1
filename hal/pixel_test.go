package hal

import "testing"

func TestRGB565RoundTrip(t *testing.T) {
	tcs := []struct {
		r, g, b uint8
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{0xEE, 0xEE, 0xEE},
		{0x14, 0x2A, 0x3C},
	}
	for _, tc := range tcs {
		p := rgb565(tc.r, tc.g, tc.b)
		r, g, b := rgb888From565(p)
		// 5/6 bit channels lose at most the low bits.
		if d := int(tc.r) - int(r); d < -8 || d > 8 {
			t.Fatalf("red %d -> %d drifted too far", tc.r, r)
		}
		if d := int(tc.g) - int(g); d < -4 || d > 4 {
			t.Fatalf("green %d -> %d drifted too far", tc.g, g)
		}
		if d := int(tc.b) - int(b); d < -8 || d > 8 {
			t.Fatalf("blue %d -> %d drifted too far", tc.b, b)
		}
	}
}

func TestRGB565Extremes(t *testing.T) {
	if p := rgb565(255, 255, 255); p != 0xFFFF {
		t.Fatalf("white = %04x; want ffff", p)
	}
	if p := rgb565(0, 0, 0); p != 0 {
		t.Fatalf("black = %04x; want 0000", p)
	}
}
