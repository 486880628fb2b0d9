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

type MemberHandler struct {
	service member.Service
}

func NewMemberHandler(service member.Service) *MemberHandler {
	return &MemberHandler{service: service}
}

// List returns the member directory, paginated.
func (h *MemberHandler) List(c *fiber.Ctx) error {
	pagination := utils.GetPagination(c, 1, 20)

	members, total, err := h.service.List(pagination.Offset, pagination.Limit)
	if err != nil {
		log.Printf("Failed to list members: %v", err)
		return utils.InternalError(c, "Failed to retrieve members")
	}
	pagination.SetTotal(total)

	return utils.Success(c, utils.NewPaginatedResponse(members, pagination))
}

// Get returns a single member's profile.
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid member ID")
	}

	m, err := h.service.Get(uint(memberID))
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			return utils.NotFound(c, "Member not found")
		}
		return utils.InternalError(c, "Failed to retrieve member")
	}

	return utils.Success(c, m)
}

// Search filters the directory by name or sector.
func (h *MemberHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.BadRequest(c, "Search query is required")
	}

	members, err := h.service.Search(query)
	if err != nil {
		log.Printf("Member search failed: %v", err)
		return utils.InternalError(c, "Search failed")
	}

	return utils.Success(c, fiber.Map{"members": members})
}

// UpdateProfile applies a self-service profile update.
func (h *MemberHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	memberID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid member ID")
	}

	var input models.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	updated, err := h.service.UpdateProfile(uint(memberID), claims.MemberID, &input)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrNotOwner):
			return utils.Forbidden(c, "You can only update your own profile")
		case errors.Is(err, member.ErrNotFound):
			return utils.NotFound(c, "Member not found")
		default:
			return utils.BadRequest(c, err.Error())
		}
	}

	return utils.Success(c, fiber.Map{
		"message": "Profile updated successfully",
		"member":  updated,
	})
}

// Showcases returns the public projections of verified members.
func (h *MemberHandler) Showcases(c *fiber.Ctx) error {
	showcases, err := h.service.Showcases()
	if err != nil {
		log.Printf("Failed to list showcases: %v", err)
		return utils.InternalError(c, "Failed to retrieve showcases")
	}
	return utils.Success(c, fiber.Map{"showcases": showcases})
}

// ShowcasesBySegment returns the public projections within one sector.
func (h *MemberHandler) ShowcasesBySegment(c *fiber.Ctx) error {
	segment := c.Params("segment")
	showcases, err := h.service.ShowcasesBySegment(segment)
	if err != nil {
		log.Printf("Failed to list showcases for segment %q: %v", segment, err)
		return utils.InternalError(c, "Failed to retrieve showcases")
	}
	return utils.Success(c, fiber.Map{"showcases": showcases})
}

// Segments returns the distinct sectors represented in the showcase.
func (h *MemberHandler) Segments(c *fiber.Ctx) error {
	segments, err := h.service.Segments()
	if err != nil {
		log.Printf("Failed to list segments: %v", err)
		return utils.InternalError(c, "Failed to retrieve segments")
	}
	return utils.Success(c, fiber.Map{"segments": segments})
}
