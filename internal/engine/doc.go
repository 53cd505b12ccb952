// Package engine runs the per-frame cycle for a [Scene] against a windowing
// collaborator.
//
// A frame is: poll input, dispatch each event to the scene, update, clear,
// render, present. [Driver.Frame] runs exactly one frame and keeps all loop
// state on the Driver, so the same cycle can be driven two ways:
//
//	// blocking: the driver owns the loop and paces it
//	err := engine.NewDriver(backend, ctx).Run(scene)
//
//	// host-driven: a scheduler calls Frame once per tick
//	d := engine.NewDriver(backend, ctx)
//	d.Start(scene)
//	for d.Frame() {
//	}
//
// Everything runs on one goroutine; neither the [Context] nor the scene is
// synchronized.
package engine
