package explorer

// This file contains the framebuffer renderer for the unit-circle diagram.

import (
	"image/color"
	"math"
	"strconv"

	"unitcircle/hal"
	"unitcircle/trig"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorHeaderBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorStatusBG = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorPanelBG  = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xFF}
	colorAxis     = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	colorRadius   = color.RGBA{R: 0x4A, G: 0xD1, B: 0xFF, A: 0xFF}
	colorArc      = color.RGBA{R: 0xFF, G: 0xD1, B: 0x4A, A: 0xFF}
	colorMarker   = color.RGBA{R: 0xFF, G: 0x4A, B: 0x4A, A: 0xFF}

	// Quadrant tints I..IV, kept dim so the outline and markers stay on top.
	colorShades = [4]color.RGBA{
		{R: 0x10, G: 0x2C, B: 0x3C, A: 0xFF},
		{R: 0x30, G: 0x20, B: 0x34, A: 0xFF},
		{R: 0x10, G: 0x30, B: 0x24, A: 0xFF},
		{R: 0x34, G: 0x2C, B: 0x18, A: 0xFF},
	}
)

const (
	headerH = 12
	statusH = 12

	circleR = 92
	labelR  = 112
	arcR    = 28
)

type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundInt16(v float64) int16 {
	if v < 0 {
		return int16(v - 0.5)
	}
	return int16(v + 0.5)
}

func (e *Explorer) render() {
	if e.fb == nil || e.d == nil {
		return
	}
	w := int16(e.fb.Width())
	h := int16(e.fb.Height())
	if w <= 0 || h <= 0 {
		return
	}

	_ = e.d.FillRectangle(0, 0, w, h, colorBG)

	_ = e.d.FillRectangle(0, 0, w, headerH, colorHeaderBG)
	e.drawString(4, 1, "Unit Circle Explorer", colorFG)

	cx := w / 2
	cy := int16(headerH + labelR + 10)
	e.drawDiagram(cx, cy)
	e.drawPanel(cy + labelR + 8)

	statusY := h - statusH
	_ = e.d.FillRectangle(0, statusY, w, statusH, colorStatusBG)
	e.drawString(4, statusY+1, "arrows +-1  +/- +-5  r reset  h help  q quit", colorFG)

	if e.showHelp {
		e.renderHelp(w, h)
	}

	_ = e.fb.Present()
}

func (e *Explorer) drawDiagram(cx, cy int16) {
	deg := float64(e.angle)

	e.shadeQuadrants(cx, cy)

	// Axes first so the circle outline stays on top.
	ext := int16(circleR + 10)
	_ = e.d.FillRectangle(cx-ext, cy, 2*ext+1, 1, colorAxis)
	_ = e.d.FillRectangle(cx, cy-ext, 1, 2*ext+1, colorAxis)
	e.drawString(cx+6, cy-ext-2, "sin", colorDim)
	e.drawString(cx+ext-e.fontWidth*3, cy+3, "cos", colorDim)

	e.drawCircle(cx, cy, circleR, colorFG)

	for _, k := range trig.KeyAngles() {
		mx, my := diagramPoint(cx, cy, circleR, k)
		_ = e.d.FillRectangle(mx-1, my-1, 3, 3, colorDim)

		label := strconv.Itoa(int(k))
		_, lw := tinyfont.LineWidth(e.font, label)
		lx := cx + roundInt16(labelR*math.Cos(trig.Radians(k))) - int16(lw)/2
		ly := cy - roundInt16(labelR*math.Sin(trig.Radians(k))) - e.fontHeight/2
		e.drawString(lx, ly, label, colorDim)
	}

	e.drawArc(cx, cy, deg)

	mx, my := diagramPoint(cx, cy, circleR, deg)
	e.drawDashedLine(cx, cy, mx, my, colorRadius)

	e.drawLine(mx-4, my-4, mx+4, my+4, colorMarker)
	e.drawLine(mx-4, my+4, mx+4, my-4, colorMarker)
}

// shadeQuadrants tints the four quarter discs, scanline by scanline.
func (e *Explorer) shadeQuadrants(cx, cy int16) {
	for dy := int16(1); dy <= circleR; dy++ {
		span := roundInt16(math.Sqrt(float64(circleR*circleR - int(dy)*int(dy))))
		if span <= 0 {
			continue
		}
		_ = e.d.FillRectangle(cx+1, cy-dy, span, 1, colorShades[0])
		_ = e.d.FillRectangle(cx-span, cy-dy, span, 1, colorShades[1])
		_ = e.d.FillRectangle(cx-span, cy+dy, span, 1, colorShades[2])
		_ = e.d.FillRectangle(cx+1, cy+dy, span, 1, colorShades[3])
	}
}

// drawArc sweeps a small arc from the positive x-axis to the current angle.
func (e *Explorer) drawArc(cx, cy int16, deg float64) {
	if deg <= 0 {
		return
	}
	px, py := diagramPoint(cx, cy, arcR, 0)
	for a := 3.0; ; a += 3 {
		if a > deg {
			a = deg
		}
		x, y := diagramPoint(cx, cy, arcR, a)
		e.drawLine(px, py, x, y, colorArc)
		px, py = x, y
		if a >= deg {
			return
		}
	}
}

func (e *Explorer) drawPanel(panelY int16) {
	deg := float64(e.angle)
	v := trig.Evaluate(deg)
	q := trig.Classify(deg)

	lineH := e.fontHeight + 4
	y := panelY

	x := e.drawString(8, y, "Angle: "+strconv.Itoa(e.angle), colorFG)
	x = e.drawDegreeMark(x+1, y, colorFG)
	e.drawString(x+e.fontWidth, y, q.String(), colorRadius)
	y += lineH

	if ref, ok := trig.ReferenceAngle(deg); ok {
		x = e.drawString(8, y, "Reference angle: "+strconv.Itoa(int(ref)), colorFG)
		e.drawDegreeMark(x+1, y, colorFG)
	} else {
		e.drawString(8, y, "Reference angle: none (on axis)", colorDim)
	}
	y += lineH

	e.drawString(8, y, "sin = "+formatFixed(v.Sin)+"   cos = "+formatFixed(v.Cos)+"   tan = "+tanText(v), colorFG)
}

var helpLines = []string{
	"Left/Right  adjust by 1 (hold repeats)",
	"- / +       adjust by 5",
	"Up/Down     snap to the key angles",
	"Home/End    jump to 0 / 360",
	"r           reset to 45",
	"h or F1     toggle this help",
	"q or Esc    quit",
}

func (e *Explorer) renderHelp(w, h int16) {
	lineH := e.fontHeight + 2
	boxW := int16(300)
	boxH := int16(len(helpLines)+2)*lineH + 8
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	_ = e.d.FillRectangle(x, y, boxW, boxH, colorHeaderBG)
	_ = e.d.FillRectangle(x, y, boxW, 1, colorAxis)
	_ = e.d.FillRectangle(x, y+boxH-1, boxW, 1, colorAxis)
	_ = e.d.FillRectangle(x, y, 1, boxH, colorAxis)
	_ = e.d.FillRectangle(x+boxW-1, y, 1, boxH, colorAxis)

	ty := y + 4
	e.drawString(x+8, ty, "How to use  (h/Esc closes)", colorFG)
	ty += lineH * 2
	for _, line := range helpLines {
		e.drawString(x+8, ty, line, colorFG)
		ty += lineH
	}
}

func (e *Explorer) drawString(x, y int16, s string, fg color.RGBA) int16 {
	tinyfont.WriteLine(e.d, e.font, x, y+e.fontOffset, s, fg)
	_, outboxWidth := tinyfont.LineWidth(e.font, s)
	return x + int16(outboxWidth)
}

// drawDegreeMark draws a small degree ring at the top of the text cell. The
// bundled fonts are ASCII only, so the sign cannot come from the font.
func (e *Explorer) drawDegreeMark(x, y int16, c color.RGBA) int16 {
	e.d.SetPixel(x+1, y, c)
	e.d.SetPixel(x, y+1, c)
	e.d.SetPixel(x+2, y+1, c)
	e.d.SetPixel(x+1, y+2, c)
	return x + 4
}

func diagramPoint(cx, cy int16, radius float64, deg float64) (int16, int16) {
	x, y := trig.Point(deg)
	return cx + roundInt16(radius*x), cy - roundInt16(radius*y)
}

func (e *Explorer) drawCircle(cx, cy, r int16, c color.RGBA) {
	x := r
	y := int16(0)
	err := int16(1 - r)
	for x >= y {
		e.d.SetPixel(cx+x, cy+y, c)
		e.d.SetPixel(cx+y, cy+x, c)
		e.d.SetPixel(cx-y, cy+x, c)
		e.d.SetPixel(cx-x, cy+y, c)
		e.d.SetPixel(cx-x, cy-y, c)
		e.d.SetPixel(cx-y, cy-x, c)
		e.d.SetPixel(cx+y, cy-x, c)
		e.d.SetPixel(cx+x, cy-y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

func (e *Explorer) drawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		e.d.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}

// drawDashedLine is drawLine with a 4-on/3-off pattern.
func (e *Explorer) drawDashedLine(x0, y0, x1, y1 int16, c color.RGBA) {
	dx := int(math.Abs(float64(x1 - x0)))
	dy := -int(math.Abs(float64(y1 - y0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	step := 0
	for {
		if step%7 < 4 {
			e.d.SetPixel(x0, y0, c)
		}
		step++
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += int16(sx)
		}
		if e2 <= dx {
			err += dx
			y0 += int16(sy)
		}
	}
}
