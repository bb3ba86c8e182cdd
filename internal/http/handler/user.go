package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinesport/internal/service"
)

// SearchUsers godoc
// @Summary Search users by name or username
// @Tags users
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} model.UserSummary
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /users/search [get]
func SearchUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.Search(c.UserContext(), c.Query("query"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(users)
	}
}

// UserProfile godoc
// @Summary Public profile of a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.UserProfile
// @Failure 404 {object} errorPayload
// @Router /users/profile/{userId} [get]
func UserProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "userId")
		if !ok {
			return invalidID(c)
		}
		p, err := svc.Profile(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// UserStats godoc
// @Summary Event statistics of a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} model.UserStats
// @Failure 404 {object} errorPayload
// @Router /users/{userId}/stats [get]
func UserStats(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "userId")
		if !ok {
			return invalidID(c)
		}
		st, err := svc.Stats(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(st)
	}
}

// UserAvatar redirects to a short-lived download URL of the user's avatar.
// @Summary Avatar of a user
// @Tags users
// @Param userId path string true "User ID"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /users/{userId}/avatar [get]
func UserAvatar(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "userId")
		if !ok {
			return invalidID(c)
		}
		url, err := svc.AvatarURL(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.Redirect(url, fiber.StatusFound)
	}
}
