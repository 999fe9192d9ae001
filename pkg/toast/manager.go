package toast

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/deskkit/pkg/logger"
)

// entry tracks a live notification in the manager's queue.
type entry struct {
	id      string
	handle  Handle
	exiting bool
}

// Manager owns a bounded FIFO queue of transient on-screen notifications.
// Show and Clear return immediately; all dismissal happens via later,
// independently scheduled timer callbacks. The queue is guarded by a mutex
// because timers fire on their own goroutines.
type Manager struct {
	mu      sync.Mutex
	surface Surface
	queue   []*entry

	maxVisible      int
	defaultDuration time.Duration
	defaultPosition Position
	exitDelay       time.Duration
	logger          *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.logger = log
		}
	}
}

// WithMaxVisible overrides the visible-notification cap. Values below 1 are ignored.
func WithMaxVisible(n int) ManagerOption {
	return func(m *Manager) {
		if n >= 1 {
			m.maxVisible = n
		}
	}
}

// WithExitDelay overrides the fixed exit-transition delay. Intended for
// surfaces with different animation timing and for tests.
func WithExitDelay(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.exitDelay = d
		}
	}
}

// WithDefaultDuration overrides the default auto-dismiss duration.
func WithDefaultDuration(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.defaultDuration = d
		}
	}
}

// WithDefaultPosition overrides the default screen position.
func WithDefaultPosition(p Position) ManagerOption {
	return func(m *Manager) {
		if p != "" {
			m.defaultPosition = p
		}
	}
}

// NewManager creates a notification manager rendering to the given surface.
// A surface is required: the manager is meaningless without a host display.
func NewManager(surface Surface, opts ...ManagerOption) (*Manager, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	m := &Manager{
		surface:         surface,
		maxVisible:      DefaultMaxVisible,
		defaultDuration: DefaultDuration,
		defaultPosition: PositionTopRight,
		exitDelay:       DefaultExitDelay,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// ShowOption customizes a single notification.
type ShowOption func(*Notification)

// WithDuration sets the time until auto-dismiss for this notification.
func WithDuration(d time.Duration) ShowOption {
	return func(n *Notification) {
		if d > 0 {
			n.Duration = d
		}
	}
}

// WithPosition anchors this notification to a specific corner or edge.
func WithPosition(p Position) ShowOption {
	return func(n *Notification) {
		if p != "" {
			n.Position = p
		}
	}
}

// Show enqueues a new notification. If the queue already holds the maximum,
// the oldest begins its exit animation before the new one is inserted. The
// returned ID can be passed to Dismiss to emulate a user click.
func (m *Manager) Show(message string, kind Kind, opts ...ShowOption) string {
	if kind == "" {
		kind = KindInfo
	}

	n := Notification{
		ID:       uuid.New().String(),
		Kind:     kind,
		Message:  message,
		Position: m.defaultPosition,
		Duration: m.defaultDuration,
	}
	for _, opt := range opts {
		opt(&n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// FIFO eviction: the oldest entry animates out, never vanishes.
	if len(m.queue) >= m.maxVisible {
		m.beginExitLocked(m.queue[0])
	}

	handle, err := m.surface.Insert(n)
	if err != nil {
		m.logger.LogAttrs(context.Background(), slog.LevelWarn, "failed to insert notification",
			logger.NotificationID(n.ID),
			logger.Error(err),
		)
		return n.ID
	}

	e := &entry{id: n.ID, handle: handle}
	m.queue = append(m.queue, e)

	// The flip to Visible is deferred to the next frame so the entry
	// transition is observable; the auto-dismiss timer is armed only once
	// the notification is actually visible.
	duration := n.Duration
	time.AfterFunc(frameDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if e.exiting {
			return
		}
		m.surface.SetState(e.handle, StateVisible)
		time.AfterFunc(duration, func() {
			m.dismiss(e)
		})
	})

	return n.ID
}

// Success shows a success notification.
func (m *Manager) Success(message string, opts ...ShowOption) string {
	return m.Show(message, KindSuccess, opts...)
}

// Error shows an error notification.
func (m *Manager) Error(message string, opts ...ShowOption) string {
	return m.Show(message, KindError, opts...)
}

// Warning shows a warning notification.
func (m *Manager) Warning(message string, opts ...ShowOption) string {
	return m.Show(message, KindWarning, opts...)
}

// Info shows an info notification.
func (m *Manager) Info(message string, opts ...ShowOption) string {
	return m.Show(message, KindInfo, opts...)
}

// Dismiss begins the exit animation for the notification with the given ID,
// as a user click would. Dismissing an unknown or already-exiting
// notification is a no-op.
func (m *Manager) Dismiss(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.queue {
		if e.id == id {
			m.beginExitLocked(e)
			return
		}
	}
}

// Clear begins the exit animation for every currently visible notification.
// The display is empty once all exit transitions complete.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range slices.Clone(m.queue) {
		m.beginExitLocked(e)
	}
}

// Len reports how many notifications are currently held by the queue
// (entries that have not yet begun exiting).
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// dismiss is the auto-dismiss timer callback. The timer is not cancelled on
// early removal, so a stale firing against an entry that already exited must
// be a no-op.
func (m *Manager) dismiss(e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beginExitLocked(e)
}

// beginExitLocked transitions an entry to Exiting: the surface resets it to
// the off-screen state now, and after the fixed exit delay the element is
// detached. The entry leaves the queue as soon as its exit is scheduled.
// Callers must hold m.mu. Safe to call more than once per entry.
func (m *Manager) beginExitLocked(e *entry) {
	if e == nil || e.exiting {
		return
	}
	e.exiting = true

	if i := slices.Index(m.queue, e); i >= 0 {
		m.queue = slices.Delete(m.queue, i, i+1)
	}

	m.surface.SetState(e.handle, StateExiting)
	time.AfterFunc(m.exitDelay, func() {
		// Removing an already-detached handle is a surface-level no-op.
		m.surface.Remove(e.handle)
	})
}
