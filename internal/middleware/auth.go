// Package middleware provides HTTP middleware components for the application.
// It includes token authentication and the role-based permission gate used
// by every protected route.
package middleware

import (
	"log"

	"nexo/internal/models"
	"nexo/internal/services/auth"
	"nexo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the custom request header carrying the signed token.
const TokenHeader = "X-Access-Token"

// AuthMiddleware validates the access token and loads the member claims
// into the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler validates the token header and adds claims to the request context.
// It checks for:
// - Presence of the X-Access-Token header
// - Valid signature and expiry
// - Token version matching the member's current version
// - The member still existing
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	tokenString := c.Get(TokenHeader)
	if tokenString == "" {
		return utils.Unauthorized(c, "token is missing")
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return utils.Unauthorized(c, "token is invalid")
	}

	currentVersion, err := m.authService.GetTokenVersion(claims.MemberID)
	if err != nil {
		log.Printf("Member %d from token not found", claims.MemberID)
		return utils.Unauthorized(c, "token is invalid")
	}

	if claims.TokenVersion != currentVersion {
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals("claims", claims)
	c.Locals("memberID", claims.MemberID)

	return c.Next()
}

// Allowed implements the permission rule. Admins may call anything;
// members may call anything not requiring admin; guests may only call
// endpoints requiring exactly guest. Note the asymmetry: members can
// reach guest routes, but this is not a linear hierarchy — a guest is
// shut out of member routes while a member is let into guest ones.
func Allowed(role, required string) bool {
	switch {
	case role == models.RoleAdmin:
		return true
	case role == models.RoleMember && required != models.RoleAdmin:
		return true
	case role == models.RoleGuest && required == models.RoleGuest:
		return true
	}
	return false
}

// RequireRole returns a middleware enforcing the permission rule for
// the given required role. It expects AuthMiddleware to have run first.
func RequireRole(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := utils.GetMemberClaims(c)
		if err != nil {
			return utils.Unauthorized(c, "unauthorized")
		}

		if !Allowed(claims.Role, required) {
			return utils.Forbidden(c, "permission denied")
		}

		return c.Next()
	}
}
