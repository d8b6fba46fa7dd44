// Package handle provides ready-made interactive features built on the
// cursor router: a drag handle that moves a node and a camera pan driven by
// a held mouse button.
//
// Features register themselves with the router on creation. Call their
// Update between Router.Update and Router.LateUpdate:
//
//	router.Update()
//	drag.Update()
//	pan.Update()
//	router.LateUpdate()
package handle
