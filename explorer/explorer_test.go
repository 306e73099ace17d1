package explorer

import (
	"errors"
	"testing"

	"unitcircle/hal"
)

type fakeFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
}

func newFakeFramebuffer() *fakeFramebuffer {
	const w, h = 320, 320
	return &fakeFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *fakeFramebuffer) Present() error {
	f.presents++
	return nil
}

func (f *fakeFramebuffer) pixel(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

type fakeKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeDisplay struct{ fb *fakeFramebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct{ kbd *fakeKeyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}

type fakeTime struct{ ch chan uint64 }

func (t *fakeTime) Ticks() <-chan uint64 { return t.ch }

type fakeHAL struct {
	fb  *fakeFramebuffer
	kbd *fakeKeyboard
	t   *fakeTime
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		fb:  newFakeFramebuffer(),
		kbd: &fakeKeyboard{ch: make(chan hal.KeyEvent, 64)},
		t:   &fakeTime{ch: make(chan uint64, 64)},
	}
}

func (f *fakeHAL) Logger() hal.Logger   { return nopLogger{} }
func (f *fakeHAL) Display() hal.Display { return fakeDisplay{fb: f.fb} }
func (f *fakeHAL) Input() hal.Input     { return fakeInput{kbd: f.kbd} }
func (f *fakeHAL) Time() hal.Time       { return f.t }

func (f *fakeHAL) press(code hal.KeyCode) {
	f.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
}

func (f *fakeHAL) release(code hal.KeyCode) {
	f.kbd.ch <- hal.KeyEvent{Code: code, Press: false}
}

func (f *fakeHAL) typeRune(r rune) {
	f.kbd.ch <- hal.KeyEvent{Press: true, Rune: r}
}

func step(t *testing.T, e *Explorer) {
	t.Helper()
	if err := e.Step(); err != nil {
		t.Fatalf("Step() = %v; want nil", err)
	}
}

func TestNew_ClampsStartAngle(t *testing.T) {
	tcs := []struct {
		start int
		want  int
	}{
		{45, 45},
		{0, 0},
		{360, 360},
		{-10, 0},
		{700, 360},
	}
	for _, tc := range tcs {
		e := New(newFakeHAL(), Config{StartAngle: tc.start})
		if e.Angle() != tc.want {
			t.Fatalf("New(StartAngle: %d).Angle() = %d; want %d", tc.start, e.Angle(), tc.want)
		}
	}
}

func TestStep_ArrowAndRuneAdjust(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 45})

	h.press(hal.KeyRight)
	h.release(hal.KeyRight)
	step(t, e)
	if e.Angle() != 46 {
		t.Fatalf("after Right: angle = %d; want 46", e.Angle())
	}

	h.press(hal.KeyLeft)
	h.release(hal.KeyLeft)
	step(t, e)
	if e.Angle() != 45 {
		t.Fatalf("after Left: angle = %d; want 45", e.Angle())
	}

	h.typeRune('+')
	step(t, e)
	if e.Angle() != 50 {
		t.Fatalf("after '+': angle = %d; want 50", e.Angle())
	}

	h.typeRune('-')
	h.typeRune('-')
	step(t, e)
	if e.Angle() != 40 {
		t.Fatalf("after '-' twice: angle = %d; want 40", e.Angle())
	}
}

func TestStep_AdjustClampsAtBounds(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 2})

	h.typeRune('-')
	step(t, e)
	if e.Angle() != 0 {
		t.Fatalf("near 0 after '-': angle = %d; want 0", e.Angle())
	}

	h.press(hal.KeyEnd)
	h.press(hal.KeyRight)
	h.release(hal.KeyRight)
	step(t, e)
	if e.Angle() != 360 {
		t.Fatalf("at 360 after Right: angle = %d; want 360", e.Angle())
	}
}

func TestStep_SnapToKeyAngles(t *testing.T) {
	tcs := []struct {
		start int
		code  hal.KeyCode
		want  int
	}{
		{45, hal.KeyUp, 60},
		{45, hal.KeyDown, 30},
		{46, hal.KeyDown, 45},
		{0, hal.KeyUp, 30},
		{0, hal.KeyDown, 0},
		{350, hal.KeyUp, 360},
		{360, hal.KeyDown, 330},
	}
	for _, tc := range tcs {
		h := newFakeHAL()
		e := New(h, Config{StartAngle: tc.start})
		h.press(tc.code)
		h.release(tc.code)
		step(t, e)
		if e.Angle() != tc.want {
			t.Fatalf("snap from %d: angle = %d; want %d", tc.start, e.Angle(), tc.want)
		}
	}
}

func TestStep_HomeEndReset(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 123})

	h.press(hal.KeyHome)
	step(t, e)
	if e.Angle() != 0 {
		t.Fatalf("after Home: angle = %d; want 0", e.Angle())
	}

	h.press(hal.KeyEnd)
	step(t, e)
	if e.Angle() != 360 {
		t.Fatalf("after End: angle = %d; want 360", e.Angle())
	}

	h.typeRune('r')
	step(t, e)
	if e.Angle() != 45 {
		t.Fatalf("after 'r': angle = %d; want 45", e.Angle())
	}
}

func TestStep_HoldRepeats(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 180})

	h.press(hal.KeyRight)
	step(t, e)
	if e.Angle() != 181 {
		t.Fatalf("initial press: angle = %d; want 181", e.Angle())
	}

	// Nothing happens during the repeat delay.
	for i := 0; i < holdDelaySteps-2; i++ {
		step(t, e)
	}
	if e.Angle() != 181 {
		t.Fatalf("during delay: angle = %d; want 181", e.Angle())
	}

	for i := 0; i < 4*holdRepeatSteps; i++ {
		step(t, e)
	}
	if e.Angle() <= 181 {
		t.Fatalf("after hold: angle = %d; want > 181", e.Angle())
	}

	h.release(hal.KeyRight)
	step(t, e)
	got := e.Angle()
	for i := 0; i < 10; i++ {
		step(t, e)
	}
	if e.Angle() != got {
		t.Fatalf("after release: angle = %d; want %d", e.Angle(), got)
	}
}

func TestStep_QuitAndHelp(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 45})
	step(t, e)

	h.typeRune('h')
	step(t, e)
	if !e.showHelp {
		t.Fatalf("after 'h': help not shown")
	}

	// Esc closes the help overlay instead of quitting.
	h.press(hal.KeyEscape)
	step(t, e)
	if e.showHelp {
		t.Fatalf("after Esc: help still shown")
	}

	h.press(hal.KeyEscape)
	if err := e.Step(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Step() after second Esc = %v; want ErrQuit", err)
	}
}

func TestStep_QuitRune(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 45})

	h.typeRune('q')
	if err := e.Step(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Step() after 'q' = %v; want ErrQuit", err)
	}
}

func TestStep_RendersOnlyWhenDirty(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 45})

	step(t, e)
	if h.fb.presents != 1 {
		t.Fatalf("presents after first step = %d; want 1", h.fb.presents)
	}

	step(t, e)
	step(t, e)
	if h.fb.presents != 1 {
		t.Fatalf("presents after idle steps = %d; want 1", h.fb.presents)
	}

	h.press(hal.KeyRight)
	h.release(hal.KeyRight)
	step(t, e)
	if h.fb.presents != 2 {
		t.Fatalf("presents after input = %d; want 2", h.fb.presents)
	}
}

func TestRun_StopsOnQuit(t *testing.T) {
	h := newFakeHAL()
	e := New(h, Config{StartAngle: 45})

	h.typeRune('q')
	go func() {
		for i := uint64(1); i <= 64; i++ {
			h.t.ch <- i * 16
		}
		close(h.t.ch)
	}()

	if err := e.Run(h.t); err != nil {
		t.Fatalf("Run() = %v; want nil", err)
	}
}
