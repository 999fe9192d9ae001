package toast

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

var kindIcons = map[Kind]string{
	KindSuccess: "✓",
	KindError:   "✗",
	KindWarning: "!",
	KindInfo:    "i",
}

// TerminalSurface renders notifications as lipgloss-styled lines on a
// terminal writer. A terminal cannot animate or un-print, so each
// notification is printed once when it becomes visible; Entering, Exiting and
// Remove are bookkeeping only.
type TerminalSurface struct {
	mu  sync.Mutex
	out io.Writer

	live map[*termElement]struct{}
}

type termElement struct {
	n     Notification
	state VisualState
}

// NewTerminalSurface creates a surface writing to out.
func NewTerminalSurface(out io.Writer) *TerminalSurface {
	return &TerminalSurface{
		out:  out,
		live: make(map[*termElement]struct{}),
	}
}

// Insert registers a new element in the Entering state.
func (s *TerminalSurface) Insert(n Notification) (Handle, error) {
	el := &termElement{n: n, state: StateEntering}

	s.mu.Lock()
	s.live[el] = struct{}{}
	s.mu.Unlock()

	return el, nil
}

// SetState transitions the element; the Visible transition prints the styled line.
func (s *TerminalSurface) SetState(h Handle, state VisualState) {
	el, ok := h.(*termElement)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, present := s.live[el]; !present {
		return
	}
	if el.state == state {
		return
	}
	el.state = state

	if state == StateVisible {
		style := styleFor(el.n.Kind)
		_, _ = fmt.Fprintln(s.out, style.Render(kindIcons[el.n.Kind])+" "+el.n.Message)
	}
}

// Remove detaches the element. Removing an absent element is a no-op.
func (s *TerminalSurface) Remove(h Handle) {
	el, ok := h.(*termElement)
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.live, el)
	s.mu.Unlock()
}

// Live reports how many elements are currently attached, in any state.
func (s *TerminalSurface) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

func styleFor(kind Kind) lipgloss.Style {
	switch kind {
	case KindSuccess:
		return successStyle
	case KindError:
		return errorStyle
	case KindWarning:
		return warningStyle
	default:
		return infoStyle
	}
}
