package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"
)

// DefaultEventStatuses are listed when no status filter is given.
var DefaultEventStatuses = []string{model.EventPending, model.EventConfirmed}

// EventInput is the data accepted when creating an event.
type EventInput struct {
	Name            string    `json:"name"`
	SportID         int64     `json:"sport_id"`
	LocationID      int64     `json:"location_id"`
	Address         string    `json:"address"`
	VenueBooked     bool      `json:"venue_booked"`
	StartsAt        time.Time `json:"starts_at"`
	MinParticipants int       `json:"min_participants"`
	MaxParticipants int       `json:"max_participants"`
	TotalPrice      float64   `json:"total_price"`
	Type            string    `json:"type"`
	MinPoints       int       `json:"min_points"`
	ReservedSeats   []string  `json:"reserved_seats"`
}

// EventUpdateInput holds the editable event fields. Nil fields are left unchanged;
// a non-nil ReservedSeats replaces every reserved seat.
type EventUpdateInput struct {
	Name            *string    `json:"name"`
	SportID         *int64     `json:"sport_id"`
	LocationID      *int64     `json:"location_id"`
	Address         *string    `json:"address"`
	VenueBooked     *bool      `json:"venue_booked"`
	StartsAt        *time.Time `json:"starts_at"`
	MinParticipants *int       `json:"min_participants"`
	MaxParticipants *int       `json:"max_participants"`
	TotalPrice      *float64   `json:"total_price"`
	Type            *string    `json:"type"`
	MinPoints       *int       `json:"min_points"`
	ReservedSeats   *[]string  `json:"reserved_seats"`
}

// EventCreateResult is a created event with its seat usage.
type EventCreateResult struct {
	Event          *model.Event `json:"event"`
	ReservedSeats  int          `json:"reserved_seats"`
	AvailableSeats int          `json:"available_seats"`
}

// EventUpdateResult is an updated event with its seat usage.
type EventUpdateResult struct {
	Event *model.Event     `json:"event"`
	Stats model.EventSeats `json:"stats"`
}

// EventListResult is one page of events.
type EventListResult struct {
	Events      []model.EventSummary `json:"events"`
	Total       int                  `json:"total"`
	Pages       int                  `json:"pages"`
	CurrentPage int                  `json:"current_page"`
}

// EventService defines event organization and participation use cases.
type EventService interface {
	Create(ctx context.Context, organizerID string, in EventInput) (*EventCreateResult, error)
	List(ctx context.Context, f model.EventFilter, page, limit int) (*EventListResult, error)
	Get(ctx context.Context, eventID string) (*model.Event, error)
	Update(ctx context.Context, userID, eventID string, in EventUpdateInput) (*EventUpdateResult, error)
	Cancel(ctx context.Context, userID, eventID string) error

	// Join confirms the user in an open event or files a request in an invite-only one.
	Join(ctx context.Context, userID, eventID string) (*model.Participation, error)
	Leave(ctx context.Context, userID, eventID string) error
	Participants(ctx context.Context, eventID string) ([]model.Participation, error)
	Invite(ctx context.Context, organizerID, eventID, inviteeID string) (*model.Participation, error)
	Approve(ctx context.Context, organizerID, eventID, participationID string) error
	Reject(ctx context.Context, organizerID, eventID, participationID string) error
}

type eventService struct {
	events         repository.EventRepository
	participations repository.ParticipationRepository
	users          repository.UserRepository
	now            func() time.Time
}

// NewEventService constructs a new EventService.
func NewEventService(events repository.EventRepository, participations repository.ParticipationRepository, users repository.UserRepository) EventService {
	return &eventService{events: events, participations: participations, users: users, now: time.Now}
}

func validEventType(t string) bool {
	return t == model.EventOpen || t == model.EventInviteOnly
}

// seatNames trims reserved seat names and drops blank ones.
func seatNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func (s *eventService) Create(ctx context.Context, organizerID string, in EventInput) (*EventCreateResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	switch {
	case in.Name == "" || in.SportID <= 0 || in.LocationID <= 0 || in.StartsAt.IsZero() || in.Type == "":
		return nil, invalid("name, sport_id, location_id, starts_at, min_participants, max_participants, total_price and type are required")
	case !validEventType(in.Type):
		return nil, invalid("type must be open or invite_only")
	case !in.StartsAt.After(s.now()):
		return nil, invalid("event date must be in the future")
	case in.MaxParticipants <= 0 || in.MinParticipants < 0:
		return nil, invalid("participant limits must be positive")
	case in.MinParticipants > in.MaxParticipants:
		return nil, invalid("min_participants cannot exceed max_participants")
	case in.TotalPrice < 0 || in.MinPoints < 0:
		return nil, invalid("total_price and min_points cannot be negative")
	}
	names := seatNames(in.ReservedSeats)
	if len(names) > in.MaxParticipants {
		return nil, invalid("reserved seats exceed max_participants")
	}

	e, err := s.events.Create(ctx, &model.Event{
		Name:            in.Name,
		OrganizerID:     organizerID,
		SportID:         in.SportID,
		LocationID:      in.LocationID,
		Address:         strings.TrimSpace(in.Address),
		VenueBooked:     in.VenueBooked,
		StartsAt:        in.StartsAt,
		MinParticipants: in.MinParticipants,
		MaxParticipants: in.MaxParticipants,
		TotalPrice:      in.TotalPrice,
		Type:            in.Type,
		MinPoints:       in.MinPoints,
		Status:          model.EventPending,
	}, names)
	if err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return nil, invalid("unknown sport or location")
		}
		return nil, err
	}
	return &EventCreateResult{
		Event:          e,
		ReservedSeats:  len(names),
		AvailableSeats: in.MaxParticipants - len(names),
	}, nil
}

func (s *eventService) List(ctx context.Context, f model.EventFilter, page, limit int) (*EventListResult, error) {
	if page <= 0 {
		page = 1
	}
	limit, _ = clampPage(limit, 0)
	if len(f.Statuses) == 0 {
		f.Statuses = DefaultEventStatuses
	}
	if f.Type != "" && !validEventType(f.Type) {
		return nil, invalid("type must be open or invite_only")
	}

	res, err := s.events.List(ctx, f, repository.PageQuery{Limit: limit, Offset: (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	out := &EventListResult{Events: res.Items, Total: res.Total, Pages: pages(res.Total, limit), CurrentPage: page}
	if out.Events == nil {
		out.Events = []model.EventSummary{}
	}
	return out, nil
}

func pages(total, limit int) int {
	return (total + limit - 1) / limit
}

func (s *eventService) Get(ctx context.Context, eventID string) (*model.Event, error) {
	e, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, missing(err, "event not found")
	}
	parts, err := s.participations.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	e.Participations = parts
	return e, nil
}

// owned loads the event and checks that userID organizes it.
func (s *eventService) owned(ctx context.Context, userID, eventID string) (*model.Event, error) {
	e, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, missing(err, "event not found")
	}
	if e.OrganizerID != userID {
		return nil, forbidden("only the organizer can manage this event")
	}
	return e, nil
}

func (s *eventService) Update(ctx context.Context, userID, eventID string, in EventUpdateInput) (*EventUpdateResult, error) {
	e, err := s.owned(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if !e.Editable() {
		return nil, invalid("cancelled or completed events cannot be edited")
	}

	if in.Name != nil {
		if n := strings.TrimSpace(*in.Name); n != "" {
			e.Name = n
		}
	}
	if in.SportID != nil && *in.SportID > 0 {
		e.SportID = *in.SportID
	}
	if in.LocationID != nil && *in.LocationID > 0 {
		e.LocationID = *in.LocationID
	}
	if in.Address != nil {
		e.Address = strings.TrimSpace(*in.Address)
	}
	if in.VenueBooked != nil {
		e.VenueBooked = *in.VenueBooked
	}
	if in.StartsAt != nil {
		if !in.StartsAt.After(s.now()) {
			return nil, invalid("event date must be in the future")
		}
		e.StartsAt = *in.StartsAt
	}
	if in.MinParticipants != nil {
		e.MinParticipants = *in.MinParticipants
	}
	if in.MaxParticipants != nil {
		e.MaxParticipants = *in.MaxParticipants
	}
	if in.TotalPrice != nil {
		e.TotalPrice = *in.TotalPrice
	}
	if in.Type != nil {
		if !validEventType(*in.Type) {
			return nil, invalid("type must be open or invite_only")
		}
		e.Type = *in.Type
	}
	if in.MinPoints != nil {
		e.MinPoints = *in.MinPoints
	}
	switch {
	case e.MaxParticipants <= 0 || e.MinParticipants < 0:
		return nil, invalid("participant limits must be positive")
	case e.MinParticipants > e.MaxParticipants:
		return nil, invalid("min_participants cannot exceed max_participants")
	case e.TotalPrice < 0 || e.MinPoints < 0:
		return nil, invalid("total_price and min_points cannot be negative")
	}

	members, reserved, err := s.events.Seats(ctx, eventID)
	if err != nil {
		return nil, err
	}
	var names []string
	if in.ReservedSeats != nil {
		names = seatNames(*in.ReservedSeats)
		if members+len(names) > e.MaxParticipants {
			return nil, invalid("registered participants plus reserved seats exceed max_participants")
		}
	} else if members+reserved > e.MaxParticipants {
		return nil, invalid("max_participants is below the confirmed participants")
	}

	if err := s.events.Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrInUse) {
			return nil, invalid("unknown sport or location")
		}
		return nil, missing(err, "event not found")
	}
	if in.ReservedSeats != nil {
		if err := s.events.ReplaceReservations(ctx, eventID, e.OrganizerID, names); err != nil {
			return nil, err
		}
		reserved = len(names)
	}

	return &EventUpdateResult{
		Event: e,
		Stats: model.EventSeats{
			Registered: members,
			Reserved:   reserved,
			Available:  max(e.MaxParticipants-members-reserved, 0),
		},
	}, nil
}

func (s *eventService) Cancel(ctx context.Context, userID, eventID string) error {
	e, err := s.owned(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if e.Status == model.EventCompleted {
		return invalid("completed events cannot be cancelled")
	}
	return missing(s.events.SetStatus(ctx, eventID, model.EventCancelled), "event not found")
}

func (s *eventService) Join(ctx context.Context, userID, eventID string) (*model.Participation, error) {
	e, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, missing(err, "event not found")
	}
	if !e.Joinable() {
		return nil, invalid("event is not open for participation")
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, missing(err, "user not found")
	}
	if u.SuspendedAt(s.now()) {
		return nil, forbidden("user is suspended")
	}
	if u.Points < e.MinPoints {
		return nil, invalid("not enough points to join this event")
	}
	if _, err := s.participations.FindMember(ctx, eventID, userID); err == nil {
		return nil, invalid("already participating in this event")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	p := &model.Participation{EventID: eventID, UserID: userID}
	var out *model.Participation
	if e.Type == model.EventOpen {
		p.Confirmed = true
		out, err = s.participations.CreateConfirmed(ctx, p, e.MaxParticipants)
	} else {
		var confirmed int
		confirmed, err = s.participations.CountConfirmed(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if confirmed >= e.MaxParticipants {
			return nil, errEventFull
		}
		p.PendingRequest = true
		out, err = s.participations.Create(ctx, p)
	}
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCapacityReached):
			return nil, errEventFull
		case errors.Is(err, repository.ErrConflict):
			return nil, invalid("already participating in this event")
		}
		return nil, err
	}
	return out, nil
}

func (s *eventService) Leave(ctx context.Context, userID, eventID string) error {
	p, err := s.participations.FindMember(ctx, eventID, userID)
	if err != nil {
		return missing(err, "not participating in this event")
	}
	return missing(s.participations.Delete(ctx, p.ID), "not participating in this event")
}

func (s *eventService) Participants(ctx context.Context, eventID string) ([]model.Participation, error) {
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		return nil, missing(err, "event not found")
	}
	out, err := s.participations.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Participation{}
	}
	return out, nil
}

func (s *eventService) Invite(ctx context.Context, organizerID, eventID, inviteeID string) (*model.Participation, error) {
	if inviteeID == "" {
		return nil, invalid("user_id is required")
	}
	e, err := s.owned(ctx, organizerID, eventID)
	if err != nil {
		return nil, err
	}
	if !e.Joinable() {
		return nil, invalid("event is not open for participation")
	}
	if _, err := s.users.FindByID(ctx, inviteeID); err != nil {
		return nil, missing(err, "user not found")
	}
	if _, err := s.participations.FindMember(ctx, eventID, inviteeID); err == nil {
		return nil, invalid("user is already invited or participating")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	out, err := s.participations.Create(ctx, &model.Participation{
		EventID:        eventID,
		UserID:         inviteeID,
		Invited:        true,
		PendingRequest: true,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, invalid("user is already invited or participating")
		}
		return nil, err
	}
	return out, nil
}

// eventParticipation loads a participation of the organizer's event.
func (s *eventService) eventParticipation(ctx context.Context, organizerID, eventID, participationID string) (*model.Event, *model.Participation, error) {
	e, err := s.owned(ctx, organizerID, eventID)
	if err != nil {
		return nil, nil, err
	}
	p, err := s.participations.FindByID(ctx, participationID)
	if err != nil {
		return nil, nil, missing(err, "participation not found")
	}
	if p.EventID != eventID {
		return nil, nil, invalid("participation does not belong to this event")
	}
	return e, p, nil
}

func (s *eventService) Approve(ctx context.Context, organizerID, eventID, participationID string) error {
	e, p, err := s.eventParticipation(ctx, organizerID, eventID, participationID)
	if err != nil {
		return err
	}
	if p.Confirmed {
		return invalid("participation is already confirmed")
	}
	if err := s.participations.Confirm(ctx, p.ID, eventID, e.MaxParticipants); err != nil {
		if errors.Is(err, repository.ErrCapacityReached) {
			return errEventFull
		}
		return missing(err, "participation not found")
	}
	return nil
}

func (s *eventService) Reject(ctx context.Context, organizerID, eventID, participationID string) error {
	_, p, err := s.eventParticipation(ctx, organizerID, eventID, participationID)
	if err != nil {
		return err
	}
	return missing(s.participations.Delete(ctx, p.ID), "participation not found")
}
