package toast

// VisualState is the rendering state of a live notification element.
type VisualState string

const (
	// StateEntering is the initial off-screen/transparent placement.
	StateEntering VisualState = "entering"
	// StateVisible is the on-screen resting placement.
	StateVisible VisualState = "visible"
	// StateExiting resets the element to the off-screen/transparent
	// placement so the exit transition plays before detachment.
	StateExiting VisualState = "exiting"
)

// Handle is an opaque reference to a live on-screen element, owned
// exclusively by the manager while the notification is visible.
type Handle any

// Surface abstracts the host display the manager mutates. Implementations
// render notifications however the host allows: DOM nodes, terminal boxes,
// test recorders.
//
// Remove must be a no-op for a handle that was already removed; the manager
// relies on this for idempotent dismissal.
type Surface interface {
	// Insert creates a new element in the Entering state and returns its handle.
	Insert(n Notification) (Handle, error)

	// SetState transitions the element's visual state.
	SetState(h Handle, state VisualState)

	// Remove detaches the element from the display.
	Remove(h Handle)
}
