//go:build !tinygo

package hal

import "testing"

func TestHostFramebuffer_ClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(8, 4)
	if fb.StrideBytes() != 16 || len(fb.Buffer()) != 64 {
		t.Fatalf("stride = %d len = %d; want 16, 64", fb.StrideBytes(), len(fb.Buffer()))
	}

	fb.ClearRGB(255, 0, 0)
	want := rgb565(255, 0, 0)

	snap := make([]byte, len(fb.Buffer()))
	fb.snapshotRGB565(snap)
	for i := 0; i+1 < len(snap); i += 2 {
		got := uint16(snap[i]) | uint16(snap[i+1])<<8
		if got != want {
			t.Fatalf("pixel %d = %04x; want %04x", i/2, got, want)
		}
	}
}
