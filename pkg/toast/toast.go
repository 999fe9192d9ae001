package toast

import "time"

// Kind represents the notification type/severity. It determines the icon and
// color used by the rendering surface.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Position is the screen corner or edge a notification is anchored to.
type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionTopCenter    Position = "top-center"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
)

const (
	// DefaultMaxVisible bounds the number of simultaneously visible
	// notifications; inserting one more evicts the oldest.
	DefaultMaxVisible = 5

	// DefaultDuration is the time until auto-dismiss.
	DefaultDuration = 4 * time.Second

	// DefaultExitDelay is the fixed transition time between the exit
	// animation starting and the element being detached.
	DefaultExitDelay = 300 * time.Millisecond

	// frameDelay approximates one rendering frame: the flip from Entering to
	// Visible is deferred by this much so the entry animation is observable.
	frameDelay = 16 * time.Millisecond
)

// Notification is a single transient on-screen message. The message is
// untrusted display text; surfaces must not interpret it as markup.
type Notification struct {
	ID       string
	Kind     Kind
	Message  string
	Position Position
	Duration time.Duration
}
