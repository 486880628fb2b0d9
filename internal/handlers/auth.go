package handlers

import (
	"errors"
	"log"

	"nexo/internal/models"
	"nexo/internal/services/auth"
	"nexo/internal/utils"
	"nexo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles member self-registration.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	// Self-registration never grants elevated roles.
	input.Role = models.RoleMember

	v := validation.New()
	v.MemberRegistration(&input)
	if !v.Valid() {
		return utils.Respond(c, fiber.StatusBadRequest, fiber.Map{
			"error":   "Invalid registration data",
			"details": v.Errors,
		})
	}

	member, err := h.authService.Register(&input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.Conflict(c, "Email already registered")
		}
		log.Printf("Registration failed: %v", err)
		return utils.InternalError(c, "Registration failed")
	}

	return utils.Created(c, fiber.Map{
		"message":   "Member registered successfully",
		"member_id": member.ID,
	})
}

// Login authenticates a member and returns an access token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}

	member, token, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		if errors.Is(err, auth.ErrAccountDisabled) {
			return utils.Forbidden(c, "Account is disabled")
		}
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{
		"token": token,
		"member": fiber.Map{
			"id":    member.ID,
			"name":  member.Name,
			"email": member.Email,
			"role":  member.Role,
			"tier":  member.Tier,
		},
	})
}

// GuestLogin issues a token for the seeded guest account.
func (h *AuthHandler) GuestLogin(c *fiber.Ctx) error {
	_, token, err := h.authService.GuestLogin()
	if err != nil {
		if errors.Is(err, auth.ErrNoGuestAccount) {
			return utils.NotFound(c, "Guest account not found")
		}
		return utils.InternalError(c, "Guest login failed")
	}

	return utils.Success(c, fiber.Map{
		"token":     token,
		"user_type": "guest",
	})
}

// Logout invalidates all outstanding tokens for the caller.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	if err := h.authService.Logout(claims.MemberID); err != nil {
		return utils.InternalError(c, "Failed to logout")
	}

	return utils.Success(c, fiber.Map{
		"message": "Successfully logged out",
	})
}

// ChangePassword handles password change requests.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	if len(input.NewPassword) < validation.MinPasswordLength {
		return utils.BadRequest(c, "New password is too short")
	}

	if err := h.authService.ChangePassword(claims.MemberID, input.OldPassword, input.NewPassword); err != nil {
		log.Printf("Password change failed for member %d: %v", claims.MemberID, err)
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message": "Password changed successfully",
	})
}
