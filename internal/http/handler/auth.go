package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"cinesport/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register godoc
// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterInput true "New user"
// @Success 201 {object} model.User
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /auth/register [post]
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		u, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /auth/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in loginRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		token, err := svc.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(tokenResponse{Token: token})
	}
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errorPayload
// @Router /auth/me [get]
func Me(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Me(c.UserContext(), currentUser(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.ProfileInput true "Profile"
// @Success 200 {object} model.User
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /auth/me [put]
func UpdateMe(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ProfileInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		u, err := svc.UpdateProfile(c.UserContext(), currentUser(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(u)
	}
}

// UploadAvatar godoc
// @Summary Replace the current user's avatar
// @Tags auth
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} model.User
// @Failure 400 {object} errorPayload
// @Router /auth/me/avatar [put]
func UploadAvatar(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := currentUser(c)
		return withUploadedFile(c, func(r io.Reader, contentType string, size int64) error {
			if err := svc.UploadAvatar(c.UserContext(), userID, r, contentType, size); err != nil {
				return respondError(c, err)
			}
			u, err := svc.Me(c.UserContext(), userID)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(u)
		})
	}
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags password
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body changePasswordRequest true "Passwords"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Router /users/change-password [put]
func ChangePassword(svc service.PasswordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in changePasswordRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		err := svc.ChangePassword(c.UserContext(), currentUser(c), in.CurrentPassword, in.NewPassword, in.ConfirmPassword)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(messageResponse{Message: "password changed"})
	}
}

// ForgotPassword godoc
// @Summary Mail a temporary password
// @Tags password
// @Accept json
// @Produce json
// @Param body body forgotPasswordRequest true "Account email"
// @Success 200 {object} messageResponse
// @Failure 404 {object} errorPayload
// @Router /password/forgot-password [post]
func ForgotPassword(svc service.PasswordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in forgotPasswordRequest
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		if err := svc.ForgotPassword(c.UserContext(), in.Email); err != nil {
			return respondError(c, err)
		}
		return c.JSON(messageResponse{Message: "a temporary password was sent to your email"})
	}
}
