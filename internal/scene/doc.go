// Package scene implements the Lorenz trajectory scene.
//
// An [Attractor] solves the whole trajectory once at construction, then on
// every frame reveals a longer prefix of it, rotated by a mouse-driven
// [Camera] and perspective-projected onto the viewport.
package scene
