package explorer

import (
	"errors"
	"strconv"

	"unitcircle/hal"
	"unitcircle/trig"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// ErrQuit is returned by Step when the user asks to exit.
var ErrQuit = errors.New("explorer: quit")

const (
	defaultAngle = 45

	// Held arrow keys start repeating after ~1/3 s and then step at 30/s
	// (Step runs at 60 Hz on every backend).
	holdDelaySteps  = 20
	holdRepeatSteps = 2
)

// Config holds explorer startup options.
type Config struct {
	// StartAngle is the initial angle in degrees; values outside [0, 360]
	// are clamped.
	StartAngle int
}

// Explorer owns the diagram state and renders it to the framebuffer.
type Explorer struct {
	log    hal.Logger
	fb     hal.Framebuffer
	d      *fbDisplay
	events <-chan hal.KeyEvent

	font       *tinyfont.Font
	fontWidth  int16
	fontHeight int16
	fontOffset int16

	angle    int
	showHelp bool
	dirty    bool
	quit     bool

	heldLeft  bool
	heldRight bool
	holdTicks int
}

// New wires an explorer to the platform. The first Step renders the initial
// frame.
func New(h hal.HAL, cfg Config) *Explorer {
	e := &Explorer{
		log:   h.Logger(),
		angle: clampAngle(cfg.StartAngle),
		dirty: true,
	}
	if disp := h.Display(); disp != nil {
		e.fb = disp.Framebuffer()
		e.d = newFBDisplay(e.fb)
	}
	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			e.events = kbd.Events()
		}
	}

	e.font = &proggy.TinySZ8pt7b
	e.fontHeight = 10
	e.fontOffset = 6
	_, outboxWidth := tinyfont.LineWidth(e.font, "0")
	e.fontWidth = int16(outboxWidth)

	if e.log != nil {
		geom := "no display"
		if e.fb != nil {
			geom = strconv.Itoa(e.fb.Width()) + "x" + strconv.Itoa(e.fb.Height())
		}
		e.log.WriteLineString("explorer: start " + geom + " angle=" + strconv.Itoa(e.angle))
	}
	return e
}

// Angle returns the current angle in degrees.
func (e *Explorer) Angle() int { return e.angle }

// Step advances the explorer by one frame: it applies pending input and
// redraws when the state changed. It returns ErrQuit when the user exits.
func (e *Explorer) Step() error {
	e.drainEvents()
	if e.quit {
		return ErrQuit
	}
	e.stepHold()
	if e.dirty {
		e.render()
		e.dirty = false
	}
	return nil
}

// Run drives Step from the HAL tick stream. It is the main loop on targets
// without a frame callback.
func (e *Explorer) Run(t hal.Time) error {
	// Ticks arrive at 1 kHz; step roughly every 16 ms.
	const stepEvery = 16

	var last uint64
	for tick := range t.Ticks() {
		if tick-last < stepEvery {
			continue
		}
		last = tick
		if err := e.Step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (e *Explorer) drainEvents() {
	for {
		select {
		case ev, ok := <-e.events:
			if !ok {
				e.events = nil
				return
			}
			e.handleKey(ev)
		default:
			return
		}
	}
}

func (e *Explorer) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		switch ev.Code {
		case hal.KeyLeft:
			e.heldLeft = false
		case hal.KeyRight:
			e.heldRight = false
		}
		return
	}

	switch ev.Rune {
	case '+', '=':
		e.adjust(5)
		return
	case '-', '_':
		e.adjust(-5)
		return
	case 'r', 'R':
		e.setAngle(defaultAngle)
		return
	case 'h', 'H':
		e.toggleHelp()
		return
	case 'q', 'Q':
		e.requestQuit()
		return
	}

	switch ev.Code {
	case hal.KeyLeft:
		e.heldLeft = true
		e.holdTicks = 0
		e.adjust(-1)
	case hal.KeyRight:
		e.heldRight = true
		e.holdTicks = 0
		e.adjust(1)
	case hal.KeyUp:
		e.snapToKey(1)
	case hal.KeyDown:
		e.snapToKey(-1)
	case hal.KeyHome:
		e.setAngle(0)
	case hal.KeyEnd:
		e.setAngle(360)
	case hal.KeyF1:
		e.toggleHelp()
	case hal.KeyEscape:
		if e.showHelp {
			e.showHelp = false
			e.dirty = true
		} else {
			e.requestQuit()
		}
	}
}

func (e *Explorer) stepHold() {
	if e.heldLeft == e.heldRight {
		e.holdTicks = 0
		return
	}
	e.holdTicks++
	if e.holdTicks < holdDelaySteps {
		return
	}
	if (e.holdTicks-holdDelaySteps)%holdRepeatSteps != 0 {
		return
	}
	if e.heldLeft {
		e.adjust(-1)
	} else {
		e.adjust(1)
	}
}

func (e *Explorer) requestQuit() {
	if !e.quit && e.log != nil {
		e.log.WriteLineString("explorer: quit angle=" + strconv.Itoa(e.angle))
	}
	e.quit = true
}

func (e *Explorer) toggleHelp() {
	e.showHelp = !e.showHelp
	e.dirty = true
}

func (e *Explorer) adjust(delta int) {
	e.setAngle(e.angle + delta)
}

func (e *Explorer) setAngle(deg int) {
	deg = clampAngle(deg)
	if deg == e.angle {
		return
	}
	e.angle = deg
	e.dirty = true
}

// snapToKey moves to the nearest key angle in the given direction. Upward
// from the last key angle it lands on 360, downward from 0 it stays put.
func (e *Explorer) snapToKey(dir int) {
	keys := trig.KeyAngles()
	if dir > 0 {
		for _, k := range keys {
			if int(k) > e.angle {
				e.setAngle(int(k))
				return
			}
		}
		e.setAngle(360)
		return
	}
	for i := len(keys) - 1; i >= 0; i-- {
		if int(keys[i]) < e.angle {
			e.setAngle(int(keys[i]))
			return
		}
	}
	e.setAngle(0)
}

func clampAngle(deg int) int {
	if deg < 0 {
		return 0
	}
	if deg > 360 {
		return 360
	}
	return deg
}
