// Package trig classifies angles on the unit circle and evaluates their
// trigonometric values.
//
// All functions are pure and total over the closed interval [0, 360] degrees.
// Out-of-range input is a caller contract violation: the UI clamps its slider
// before calling in, and this package does not re-validate. There is no shared
// state, so every function may be called concurrently.
package trig
