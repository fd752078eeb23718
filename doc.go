// Package cursor replaces the native mouse cursor with a canvas-rendered,
// smoothed circle that reacts to the element under the pointer.
//
// # Model
//
// Pointer events push targets into an [Engine] through a single
// [Engine.Handle] entry point; a frame loop pulls them, advances a
// [Follower] toward them, and paints onto a [Canvas] the engine owns. Event
// rate and paint rate are independent.
//
// The element under the pointer is mapped to a [State] by [Classify] using
// marker classes in the page markup:
//
//	cursor-disabled     hide the cursor over this element
//	cursor-hover        large accent circle with a right arrow
//	cursor-hover-link   large accent circle with an up-right arrow
//	cursor-hover-small  small circle (also implied by a, button, input,
//	                    textarea, and select elements)
//
// Sizes come from the [Appearance] table as fractions of the viewport width.
//
// # Hosts
//
// An engine runs on any [Host] and [EventSource]. This package provides an
// Ebitengine host ([Overlay] and [PointerInput], tied together by [Game]);
// package cursor/dom provides the browser host for js/wasm builds.
//
//	cfg, err := cursor.LoadConfig()
//	// ...
//	game, err := cursor.NewGame(cfg)
//	// ...
//	game.AddRegion(&cursor.Region{
//		Name: "cta", TagName: "div",
//		Classes: []string{cursor.ClassHover},
//		Bounds:  cursor.Rect{X: 40, Y: 40, Width: 240, Height: 120},
//	})
//	cursor.Run(game, cursor.RunConfig{Title: "Demo", Width: 1280, Height: 720})
//
// # Lifecycle
//
// A [Controller] mounts an engine only when the viewport is wider than the
// configured breakpoint and reduced motion is off. Unmounting removes the
// event subscription, removes the canvas, and cancels the pending frame
// together; a new engine is never created while an old one is live.
package cursor
