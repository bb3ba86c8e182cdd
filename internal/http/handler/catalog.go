package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"cinesport/internal/model"
	"cinesport/internal/service"
)

type locationRequest struct {
	Name string `json:"name"`
}

// ListSports godoc
// @Summary Sports
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Sport
// @Router /sports [get]
func ListSports(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sports, err := svc.Sports(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sports)
	}
}

// CreateSport godoc
// @Summary Create a sport
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body model.Sport true "Sport"
// @Success 201 {object} model.Sport
// @Failure 400 {object} errorPayload
// @Router /sports [post]
func CreateSport(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Sport
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		s, err := svc.CreateSport(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(s)
	}
}

// UpdateSport godoc
// @Summary Rename a sport or change its icon
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Sport ID"
// @Param body body model.Sport true "Sport"
// @Success 200 {object} model.Sport
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /sports/{id} [put]
func UpdateSport(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in model.Sport
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		s, err := svc.UpdateSport(c.UserContext(), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(s)
	}
}

// DeleteSport godoc
// @Summary Delete a sport not used by any event
// @Tags catalog
// @Param id path int true "Sport ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /sports/{id} [delete]
func DeleteSport(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.DeleteSport(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadSportPhoto godoc
// @Summary Replace the photo of a sport
// @Tags catalog
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Sport ID"
// @Param file formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} model.Sport
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /sports/{id}/photo [put]
func UploadSportPhoto(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		return withUploadedFile(c, func(r io.Reader, contentType string, size int64) error {
			s, err := svc.UploadSportPhoto(c.UserContext(), id, r, contentType, size)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(s)
		})
	}
}

// SportPhoto redirects to a short-lived download URL of the sport's photo.
// @Summary Photo of a sport
// @Tags catalog
// @Param id path int true "Sport ID"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /sports/{id}/photo [get]
func SportPhoto(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		url, err := svc.SportPhotoURL(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}

// ListLocations godoc
// @Summary Locations
// @Tags catalog
// @Produce json
// @Success 200 {array} model.Location
// @Router /locations [get]
func ListLocations(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locs, err := svc.Locations(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(locs)
	}
}

// CreateLocation godoc
// @Summary Create a location
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body locationRequest true "Location"
// @Success 201 {object} model.Location
// @Failure 400 {object} errorPayload
// @Router /locations [post]
func CreateLocation(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in locationRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		loc, err := svc.CreateLocation(c.UserContext(), in.Name)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(loc)
	}
}

// UpdateLocation godoc
// @Summary Rename a location
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Location ID"
// @Param body body locationRequest true "Location"
// @Success 200 {object} model.Location
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /locations/{id} [put]
func UpdateLocation(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		var in locationRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		loc, err := svc.UpdateLocation(c.UserContext(), id, in.Name)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(loc)
	}
}

// DeleteLocation godoc
// @Summary Delete a location not used by any event
// @Tags catalog
// @Param id path int true "Location ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /locations/{id} [delete]
func DeleteLocation(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.DeleteLocation(c.UserContext(), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
