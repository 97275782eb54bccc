package middleware

import (
	"cruise_manager/helper"
	"cruise_manager/model"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextApp() *fiber.App {
	app := fiber.New()
	app.Use(AppContext())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Lang(c) + "|" + MemberID(c))
	})
	return app
}

func TestAppContext(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		accept string
		member string
		want   string
	}{
		{"default", "/", "", "", "fr|"},
		{"query wins", "/?lang=en", "fr-FR", "", "en|"},
		{"accept language", "/", "de-DE, en-GB;q=0.8", "m-1", "en|m-1"},
		{"unsupported query falls through", "/?lang=it", "fr-CA", "", "fr|"},
	}
	app := contextApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			if tt.member != "" {
				req.Header.Set("X-Member-Id", tt.member)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			raw, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.want, string(raw))
		})
	}
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", Protected(), func(c *fiber.Ctx) error {
		claim, ok := helper.GetClaimFromToken(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(claim.Username)
	})
	return app
}

func TestProtected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := protectedApp()

	admin, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "admin", Role: "ADMIN"})
	require.NoError(t, err)
	member, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 2, Username: "guest", Role: "MEMBER"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+member)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Cookie", "access_token="+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "admin", string(raw))
}
