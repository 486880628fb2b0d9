package utils

import (
	"errors"

	"nexo/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMemberClaims extracts the member claims from the Fiber context.
// It returns an error if the claims are missing or of an invalid type.
func GetMemberClaims(c *fiber.Ctx) (*models.MemberClaims, error) {
	v := c.Locals("claims")
	if v == nil {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*models.MemberClaims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}
