package toast

import "errors"

var (
	// ErrNilSurface is returned when constructing a Manager without a rendering surface.
	ErrNilSurface = errors.New("toast: nil surface")
)
