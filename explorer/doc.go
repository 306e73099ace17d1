// Package explorer implements the interactive unit-circle diagram.
//
// It draws straight into a hal.Framebuffer and consumes key events from a
// hal.Keyboard, so the same code runs in a desktop window, headless, and on
// the PicoCalc.
package explorer
