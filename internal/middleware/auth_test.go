package middleware

import (
	"net/http/httptest"
	"testing"

	"nexo/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// The rule is intentionally not a linear hierarchy: members reach guest
// routes, guests never reach member routes.
func TestAllowed(t *testing.T) {
	tests := []struct {
		role     string
		required string
		want     bool
	}{
		{models.RoleAdmin, models.RoleAdmin, true},
		{models.RoleAdmin, models.RoleMember, true},
		{models.RoleAdmin, models.RoleGuest, true},

		{models.RoleMember, models.RoleAdmin, false},
		{models.RoleMember, models.RoleMember, true},
		{models.RoleMember, models.RoleGuest, true},

		{models.RoleGuest, models.RoleAdmin, false},
		{models.RoleGuest, models.RoleMember, false},
		{models.RoleGuest, models.RoleGuest, true},
	}

	for _, tt := range tests {
		t.Run(tt.role+" on "+tt.required+" route", func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.role, tt.required))
		})
	}
}

func TestAllowedUnknownRole(t *testing.T) {
	assert.False(t, Allowed("superuser", models.RoleGuest))
	assert.False(t, Allowed("", models.RoleGuest))
}

func TestRequireRole(t *testing.T) {
	newApp := func(role, required string) *fiber.App {
		app := fiber.New()
		app.Get("/probe",
			func(c *fiber.Ctx) error {
				c.Locals("claims", &models.MemberClaims{MemberID: 1, Role: role})
				return c.Next()
			},
			RequireRole(required),
			func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
		)
		return app
	}

	t.Run("member passes a guest route", func(t *testing.T) {
		app := newApp(models.RoleMember, models.RoleGuest)
		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("guest is refused a member route", func(t *testing.T) {
		app := newApp(models.RoleGuest, models.RoleMember)
		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("missing claims is unauthorized", func(t *testing.T) {
		app := fiber.New()
		app.Get("/probe", RequireRole(models.RoleMember), func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
