package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinesport/internal/model"
	"cinesport/internal/service"
)

// CreateReport godoc
// @Summary Report another participant of an event
// @Tags reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.ReportInput true "Report"
// @Success 201 {object} model.Report
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /reports [post]
func CreateReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ReportInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		if !optionalUUID(in.ReportedID) {
			return invalidIDField(c, "reported_id")
		}
		if !optionalUUID(in.EventID) {
			return invalidIDField(c, "event_id")
		}
		r, err := svc.Create(c.UserContext(), currentUser(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(r)
	}
}

// ListReports godoc
// @Summary List reports, newest first
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param reported_id query string false "Reported user"
// @Param type query string false "no_show, late or lied_about_event"
// @Param from query string false "Created from"
// @Param to query string false "Created until"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.ReportListResult
// @Failure 400 {object} errorPayload
// @Router /reports [get]
func ListReports(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := model.ReportFilter{
			ReportedID: c.Query("reported_id"),
			Type:       c.Query("type"),
		}
		if !optionalUUID(f.ReportedID) {
			return invalidIDField(c, "reported_id")
		}
		var ok bool
		if f.From, ok = queryTime(c, "from"); !ok {
			return invalidQuery(c, "from")
		}
		if f.To, ok = queryTime(c, "to"); !ok {
			return invalidQuery(c, "to")
		}
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

// GetReport godoc
// @Summary Report by id
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param reportId path string true "Report ID"
// @Success 200 {object} model.Report
// @Failure 404 {object} errorPayload
// @Router /reports/{reportId} [get]
func GetReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "reportId")
		if !ok {
			return invalidID(c)
		}
		r, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(r)
	}
}

// UserReports godoc
// @Summary Reports filed against a user with counts per type
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Param type query string false "Report type"
// @Success 200 {object} service.UserReports
// @Router /reports/user/{userId} [get]
func UserReports(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "userId")
		if !ok {
			return invalidID(c)
		}
		res, err := svc.ForUser(c.UserContext(), id, c.Query("type"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
