package tickets

import (
	"time"
)

// Status is the ticket workflow state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Ref is a populated reference to a related record; only the name is needed
// for export.
type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Ticket is a support ticket with populated references. Any of the nested
// references may be absent.
type Ticket struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Status    Status    `json:"status"`
	Priority  string    `json:"priority"`
	Customer  *Ref      `json:"customer,omitempty"`
	Category  *Ref      `json:"category,omitempty"`
	Equipment *Ref      `json:"equipment,omitempty"`
	Agent     *Ref      `json:"assignedAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
