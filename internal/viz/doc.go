// Package viz holds the terminal drawing pieces: a braille [Canvas] that
// scenes can render into, per-axis time series charts, and the color themes
// used by the terminal front end.
package viz
