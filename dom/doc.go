// Package dom hosts a cursor.Engine in a web browser when built for js/wasm.
//
// [Host] creates the overlay <canvas> and drives frames with
// requestAnimationFrame. [Events] listens at document level for the five
// mouse events and at window level for a debounced resize. [Env] reads the
// viewport width and the reduced-motion and colour-scheme media queries.
//
//	host := dom.NewHost()
//	events := dom.NewEvents(cfg.ResizeQuiet)
//	ctrl, err := cursor.NewController(host, events, cfg)
//	// ...
//	err = ctrl.Sync(dom.Env())
//
// On other platforms the package is empty.
package dom
