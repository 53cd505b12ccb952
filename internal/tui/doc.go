// Package tui plays a scene in the terminal. A bubbletea program owns the
// terminal; its ticks drive the engine one frame at a time.
package tui
