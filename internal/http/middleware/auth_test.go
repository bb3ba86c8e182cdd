package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser map[string]string

func (p stubParser) Parse(token string) (string, error) {
	if id, ok := p[token]; ok {
		return id, nil
	}
	return "", errors.New("invalid token")
}

func TestAuth(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/me", Auth(stubParser{"good": "u-1"}), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "missing header", status: fiber.StatusUnauthorized, code: "TOKEN_MISSING"},
		{name: "wrong scheme", header: "Basic good", status: fiber.StatusUnauthorized, code: "TOKEN_MISSING"},
		{name: "empty token", header: "Bearer ", status: fiber.StatusUnauthorized, code: "TOKEN_MISSING"},
		{name: "invalid token", header: "Bearer bad", status: fiber.StatusUnauthorized, code: "TOKEN_INVALID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body struct {
				RequestID string `json:"request_id"`
				Error     struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Error.Code)
			assert.NotEmpty(t, body.RequestID)
		})
	}

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "bearer good")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		buf := make([]byte, 8)
		n, _ := resp.Body.Read(buf)
		assert.Equal(t, "u-1", string(buf[:n]))
	})
}
