// Package export writes trajectories and rendered frames to an io.Writer.
// Callers choose the destination; nothing here opens files.
package export
