// Package cursor routes pointer input to interactive elements of an
// [Ebitengine] game.
//
// Each tick the [Router] samples an [InputSource], projects the raw position
// into clamped screen coordinates and world coordinates through a [Camera],
// asks a [HitTester] which listeners lie under the pointer and delivers
// events to registered [Listener] values:
//
//   - EventEnter and EventExit go to the listener whose hover state changed,
//     once per contiguous span of ticks it is hit.
//   - EventMove, EventButtonDown and EventButtonUp are broadcast to every
//     registered listener in registration order.
//
// # Tick
//
// Call [Router.Update] before any feature logic and [Router.LateUpdate] after
// it:
//
//	func (g *Game) Update() error {
//		g.router.Update()
//		g.drag.Update()
//		g.router.LateUpdate()
//		return nil
//	}
//
// LateUpdate releases a drag claim whose owner stopped dragging or
// unregistered and resets the per-tick event list returned by
// [Router.Events].
//
// # Scene
//
// [Scene] is the built-in [HitTester]. Every [Node] declares the listeners
// reachable from it; a hit on a surface reaches the listeners declared on the
// surface and on all of its ancestors:
//
//	scene := cursor.NewScene()
//	panel := cursor.NewContainer("panel", panelListener)
//	button := cursor.NewRectSurface("ok", 80, 24, buttonListener)
//	panel.AddChild(button)
//	scene.Root().AddChild(panel)
//
// Nodes with ScreenSpace set are tested against the screen position and
// ignore the camera.
//
// # Drag
//
// At most one [Dragger] owns the drag slot at a time. [Router.TryClaimDrag]
// succeeds only when the slot is free and the claimant is hovered.
//
// # Cursor visuals
//
// Features push a [Visual] with [Router.AddOverride] and pop it with
// [Router.RemoveOverride]. The highest priority override wins and ties go to
// the most recent one. [EbitenVisualSink] applies the result to the system
// cursor.
//
// # Configuration
//
// [LoadConfig] reads a TOML file over [DefaultConfig]. See the handle
// package for drag handles and camera panning, and the ecs package for a
// [Donburi] event bridge.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package cursor
