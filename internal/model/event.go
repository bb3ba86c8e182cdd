package model

import "time"

// Event statuses.
const (
	EventPending   = "pending"
	EventConfirmed = "confirmed"
	EventCancelled = "cancelled"
	EventCompleted = "completed"
)

// Event types.
const (
	EventOpen       = "open"
	EventInviteOnly = "invite_only"
)

// Event is a sports match organized by a user.
type Event struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	OrganizerID     string          `json:"organizer_id"`
	SportID         int64           `json:"sport_id"`
	LocationID      int64           `json:"location_id"`
	Address         string          `json:"address"`
	VenueBooked     bool            `json:"venue_booked"`
	StartsAt        time.Time       `json:"starts_at"`
	MinParticipants int             `json:"min_participants"`
	MaxParticipants int             `json:"max_participants"`
	TotalPrice      float64         `json:"total_price"`
	Type            string          `json:"type"`
	MinPoints       int             `json:"min_points"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	Participations  []Participation `json:"participations,omitempty"`
}

// Editable reports whether the event can still be changed.
func (e *Event) Editable() bool {
	return e.Status != EventCancelled && e.Status != EventCompleted
}

// Joinable reports whether users can still join the event.
func (e *Event) Joinable() bool {
	return e.Status == EventPending || e.Status == EventConfirmed
}

// EventSummary is an event as listed, with display names and seat usage.
type EventSummary struct {
	Event
	OrganizerName  string `json:"organizer_name"`
	SportName      string `json:"sport_name"`
	LocationName   string `json:"location_name"`
	ConfirmedCount int    `json:"confirmed_count"`
}

// EventFilter narrows event listings. Zero values mean no filter.
type EventFilter struct {
	SportID    int64
	LocationID int64
	From       *time.Time
	To         *time.Time
	Type       string
	Statuses   []string
}

// EventSeats describes how the seats of an event are used.
type EventSeats struct {
	Registered int `json:"registered"`
	Reserved   int `json:"reserved"`
	Available  int `json:"available"`
}

// Participation links a user, or an external reserved name, to an event.
type Participation struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	UserID          string    `json:"user_id,omitempty"`
	UserName        string    `json:"user_name,omitempty"`
	ParticipantName string    `json:"participant_name,omitempty"`
	Confirmed       bool      `json:"confirmed"`
	Invited         bool      `json:"invited"`
	PendingRequest  bool      `json:"pending_request"`
	External        bool      `json:"external"`
	JoinedAt        time.Time `json:"joined_at"`
}
