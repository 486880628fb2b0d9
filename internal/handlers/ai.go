package handlers

import (
	"errors"
	"log"

	"nexo/internal/services/ai"
	"nexo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	service ai.Service
}

func NewAIHandler(service ai.Service) *AIHandler {
	return &AIHandler{service: service}
}

// GenerateDescription builds a profile bio from the caller's profile
// fields and stores it as their description.
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	description, err := h.service.GenerateDescription(c.Context(), claims.MemberID)
	if err != nil {
		if errors.Is(err, ai.ErrMemberNotFound) {
			return utils.NotFound(c, "Member not found")
		}
		log.Printf("Bio generation failed for member %d: %v", claims.MemberID, err)
		return utils.InternalError(c, "Failed to generate description")
	}

	return utils.Success(c, fiber.Map{
		"message":     "Description generated successfully",
		"description": description,
	})
}
