package cursor

import "errors"

var (
	// ErrNoContext is returned when a host cannot provide a drawable canvas.
	ErrNoContext = errors.New("cursor: canvas context unavailable")
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("cursor: invalid config")
	// ErrReducedMotion reports that the user asked for reduced motion, so no
	// engine was mounted.
	ErrReducedMotion = errors.New("cursor: reduced motion requested")
	// ErrNarrowViewport reports that the viewport is at or below the
	// breakpoint, so no engine was mounted.
	ErrNarrowViewport = errors.New("cursor: viewport below breakpoint")
)
