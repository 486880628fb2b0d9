package handlers

import (
	"errors"
	"log"
	"strconv"

	"nexo/internal/models"
	"nexo/internal/services/member"
	"nexo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler exposes the member management operations reserved for
// administrators.
type AdminHandler struct {
	memberService member.Service
}

func NewAdminHandler(memberService member.Service) *AdminHandler {
	return &AdminHandler{memberService: memberService}
}

// CreateMember creates a member with an explicit role and tier.
func (h *AdminHandler) CreateMember(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	m, err := h.memberService.AdminCreate(&input)
	if err != nil {
		if errors.Is(err, member.ErrEmailTaken) {
			return utils.Conflict(c, "Email already registered")
		}
		return utils.BadRequest(c, err.Error())
	}

	return utils.Created(c, fiber.Map{
		"message":   "Member created successfully",
		"member_id": m.ID,
	})
}

// UpdateMember applies an admin-level member update, including role,
// verification and activation flags.
func (h *AdminHandler) UpdateMember(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid member ID")
	}

	var input models.AdminUpdateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	m, err := h.memberService.AdminUpdate(uint(memberID), &input)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrNotFound):
			return utils.NotFound(c, "Member not found")
		case errors.Is(err, member.ErrEmailTaken):
			return utils.Conflict(c, "Email already registered")
		default:
			log.Printf("Failed to update member %d: %v", memberID, err)
			return utils.InternalError(c, "Failed to update member")
		}
	}

	return utils.Success(c, fiber.Map{
		"message": "Member updated successfully",
		"member":  m,
	})
}

// UpdateTier changes a member's membership tier.
func (h *AdminHandler) UpdateTier(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid member ID")
	}

	var input struct {
		Tier string `json:"tier"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if !models.ValidTier(input.Tier) {
		return utils.BadRequest(c, "Invalid tier")
	}

	if err := h.memberService.AdminUpdateTier(uint(memberID), input.Tier); err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return utils.NotFound(c, "Member not found")
		}
		log.Printf("Failed to update tier for member %d: %v", memberID, err)
		return utils.InternalError(c, "Failed to update tier")
	}

	return utils.Success(c, fiber.Map{"message": "Tier updated successfully"})
}

// DeleteMember removes a member account.
func (h *AdminHandler) DeleteMember(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.AdminDelete(uint(memberID)); err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return utils.NotFound(c, "Member not found")
		}
		log.Printf("Failed to delete member %d: %v", memberID, err)
		return utils.InternalError(c, "Failed to delete member")
	}

	return utils.Success(c, fiber.Map{"message": "Member deleted successfully"})
}
