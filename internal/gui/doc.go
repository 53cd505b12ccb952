// Package gui is the native window backend, built on raylib.
package gui
