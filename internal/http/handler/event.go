package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"cinesport/internal/model"
	"cinesport/internal/service"
)

type inviteRequest struct {
	UserID string `json:"user_id"`
}

// CreateEvent godoc
// @Summary Create an event organized by the current user
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.EventInput true "Event"
// @Success 201 {object} service.EventCreateResult
// @Failure 400 {object} errorPayload
// @Router /events [post]
func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EventInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		res, err := svc.Create(c.UserContext(), currentUser(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListEvents godoc
// @Summary List events ordered by start time
// @Tags events
// @Produce json
// @Param sport_id query int false "Sport"
// @Param location_id query int false "Location"
// @Param from query string false "Earliest start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Latest start (RFC 3339 or YYYY-MM-DD)"
// @Param type query string false "open or invite_only"
// @Param status query string false "Comma separated statuses" default(pending,confirmed)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.EventListResult
// @Failure 400 {object} errorPayload
// @Router /events [get]
func ListEvents(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f model.EventFilter
		var ok bool
		if f.SportID, ok = queryInt64(c, "sport_id"); !ok {
			return invalidQuery(c, "sport_id")
		}
		if f.LocationID, ok = queryInt64(c, "location_id"); !ok {
			return invalidQuery(c, "location_id")
		}
		if f.From, ok = queryTime(c, "from"); !ok {
			return invalidQuery(c, "from")
		}
		if f.To, ok = queryTime(c, "to"); !ok {
			return invalidQuery(c, "to")
		}
		f.Type = c.Query("type")
		f.Statuses = splitList(c.Query("status"))

		page, ok := queryInt(c, "page", 1)
		if !ok {
			return invalidQuery(c, "page")
		}
		limit, ok := queryInt(c, "limit", 10)
		if !ok {
			return invalidQuery(c, "limit")
		}

		res, err := svc.List(c.UserContext(), f, page, limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GetEvent godoc
// @Summary Event with its participations
// @Tags events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} model.Event
// @Failure 404 {object} errorPayload
// @Router /events/{eventId} [get]
func GetEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		ev, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ev)
	}
}

// UpdateEvent godoc
// @Summary Update an event; only its organizer may
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param body body service.EventUpdateInput true "Changed fields"
// @Success 200 {object} service.EventUpdateResult
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /events/{eventId} [put]
func UpdateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		var in service.EventUpdateInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		res, err := svc.Update(c.UserContext(), currentUser(c), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// CancelEvent godoc
// @Summary Cancel an event; only its organizer may
// @Tags events
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /events/{eventId} [delete]
func CancelEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Cancel(c.UserContext(), currentUser(c), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(messageResponse{Message: "event cancelled"})
	}
}

// JoinEvent godoc
// @Summary Join an event or request to join an invite-only one
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 201 {object} model.Participation
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /events/{eventId}/join [post]
func JoinEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		p, err := svc.Join(c.UserContext(), currentUser(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// LeaveEvent godoc
// @Summary Leave an event
// @Tags events
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorPayload
// @Router /events/{eventId}/leave [delete]
func LeaveEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Leave(c.UserContext(), currentUser(c), id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(messageResponse{Message: "left event"})
	}
}

// EventParticipants godoc
// @Summary Participations of an event in join order
// @Tags events
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} model.Participation
// @Failure 404 {object} errorPayload
// @Router /events/{eventId}/participants [get]
func EventParticipants(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		list, err := svc.Participants(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
}

// InviteToEvent godoc
// @Summary Invite a user; only the organizer may
// @Tags events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param body body inviteRequest true "Invitee"
// @Success 201 {object} model.Participation
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Router /events/{eventId}/invite [post]
func InviteToEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		var in inviteRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		if in.UserID == "" || !optionalUUID(in.UserID) {
			return invalidIDField(c, "user_id")
		}
		p, err := svc.Invite(c.UserContext(), currentUser(c), id, in.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// ApproveParticipation godoc
// @Summary Confirm a pending participation; only the organizer may
// @Tags events
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param participationId path string true "Participation ID"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /events/{eventId}/approve/{participationId} [put]
func ApproveParticipation(svc service.EventService) fiber.Handler {
	return participationAction(svc.Approve, "participation approved")
}

// RejectParticipation godoc
// @Summary Reject and delete a participation; only the organizer may
// @Tags events
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param participationId path string true "Participation ID"
// @Success 200 {object} messageResponse
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /events/{eventId}/reject/{participationId} [put]
func RejectParticipation(svc service.EventService) fiber.Handler {
	return participationAction(svc.Reject, "participation rejected")
}

type participationFunc func(ctx context.Context, organizerID, eventID, participationID string) error

func participationAction(fn participationFunc, done string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, ok := uuidParam(c, "eventId")
		if !ok {
			return invalidID(c)
		}
		pid, ok := uuidParam(c, "participationId")
		if !ok {
			return invalidID(c)
		}
		if err := fn(c.UserContext(), currentUser(c), eventID, pid); err != nil {
			return respondError(c, err)
		}
		return c.JSON(messageResponse{Message: done})
	}
}
