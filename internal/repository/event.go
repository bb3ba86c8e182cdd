package repository

import (
	"context"

	"cinesport/internal/model"
)

// EventRepository defines data access for events and their reserved seats.
type EventRepository interface {
	// Create inserts the event together with one confirmed external
	// participation per reserved name, atomically.
	Create(ctx context.Context, e *model.Event, reserved []string) (*model.Event, error)
	FindByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context, f model.EventFilter, pq PageQuery) (*PageResult[model.EventSummary], error)
	Update(ctx context.Context, e *model.Event) error
	SetStatus(ctx context.Context, id, status string) error
	// ReplaceReservations deletes every external participation of the event
	// and inserts the given names, atomically.
	ReplaceReservations(ctx context.Context, eventID, organizerID string, names []string) error
	// Seats counts confirmed members and reserved seats of the event.
	Seats(ctx context.Context, eventID string) (members, reserved int, err error)
}

// ParticipationRepository defines data access for event participations.
type ParticipationRepository interface {
	FindByID(ctx context.Context, id string) (*model.Participation, error)
	FindMember(ctx context.Context, eventID, userID string) (*model.Participation, error)
	ListByEvent(ctx context.Context, eventID string) ([]model.Participation, error)
	CountConfirmed(ctx context.Context, eventID string) (int, error)
	// Create inserts an unconfirmed participation. A member already in the event yields ErrConflict.
	Create(ctx context.Context, p *model.Participation) (*model.Participation, error)
	// CreateConfirmed inserts a confirmed participation while the event holds
	// fewer than capacity confirmed seats, otherwise ErrCapacityReached.
	CreateConfirmed(ctx context.Context, p *model.Participation, capacity int) (*model.Participation, error)
	// Confirm marks a participation confirmed under the same capacity rule.
	Confirm(ctx context.Context, id, eventID string, capacity int) error
	Delete(ctx context.Context, id string) error
	// IsConfirmedMember reports whether the user holds a confirmed seat in the event.
	IsConfirmedMember(ctx context.Context, eventID, userID string) (bool, error)
}
