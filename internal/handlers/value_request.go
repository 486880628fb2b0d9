package handlers

import (
	"errors"
	"log"
	"strconv"

	"nexo/internal/models"
	"nexo/internal/services/valuerequest"
	"nexo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ValueRequestHandler struct {
	service valuerequest.Service
}

func NewValueRequestHandler(service valuerequest.Service) *ValueRequestHandler {
	return &ValueRequestHandler{service: service}
}

// Create submits a new value request for the calling member.
func (h *ValueRequestHandler) Create(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input models.CreateValueRequestInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	request, err := h.service.Create(claims.MemberID, &input)
	if err != nil {
		switch {
		case errors.Is(err, valuerequest.ErrDuplicatePending):
			return utils.BadRequest(c, "You already have a pending value request. Please wait for it to be processed.")
		case errors.Is(err, valuerequest.ErrInvalidRequest):
			return utils.BadRequest(c, "Invalid request")
		default:
			// Validation failures surface as plain errors with the
			// offending field in the message.
			return utils.BadRequest(c, err.Error())
		}
	}

	return utils.Created(c, fiber.Map{
		"message":    "Value request submitted successfully",
		"request_id": request.ID,
	})
}

// ListAll returns every value request for admin review, newest first.
func (h *ValueRequestHandler) ListAll(c *fiber.Ctx) error {
	requests, err := h.service.ListAll()
	if err != nil {
		log.Printf("Failed to list value requests: %v", err)
		return utils.InternalError(c, "Failed to retrieve requests")
	}
	return utils.Success(c, fiber.Map{"requests": requests})
}

// ListPending returns the pending value requests for admin review.
func (h *ValueRequestHandler) ListPending(c *fiber.Ctx) error {
	requests, err := h.service.ListPending()
	if err != nil {
		log.Printf("Failed to list pending value requests: %v", err)
		return utils.InternalError(c, "Failed to retrieve pending requests")
	}
	return utils.Success(c, fiber.Map{"requests": requests})
}

// ListMine returns the calling member's own requests.
func (h *ValueRequestHandler) ListMine(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	requests, err := h.service.ListMine(claims.MemberID)
	if err != nil {
		log.Printf("Failed to list member value requests: %v", err)
		return utils.InternalError(c, "Failed to retrieve your requests")
	}
	return utils.Success(c, fiber.Map{"requests": requests})
}

// GetDetails returns a single request; members see only their own.
func (h *ValueRequestHandler) GetDetails(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid request ID")
	}

	request, err := h.service.GetDetails(uint(requestID), claims.MemberID, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, valuerequest.ErrNotFound):
			return utils.NotFound(c, "Request not found")
		case errors.Is(err, valuerequest.ErrAccessDenied):
			return utils.Forbidden(c, "Access denied")
		default:
			return utils.InternalError(c, "Failed to retrieve request details")
		}
	}

	return utils.Success(c, request)
}

// Verify applies the admin decision to a pending request.
func (h *ValueRequestHandler) Verify(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid request ID")
	}

	var input models.VerifyValueRequestInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Verified == nil {
		return utils.BadRequest(c, "Verification status is required")
	}

	request, err := h.service.Verify(uint(requestID), claims.MemberID, &input)
	if err != nil {
		switch {
		case errors.Is(err, valuerequest.ErrNotFound):
			return utils.NotFound(c, "Request not found")
		case errors.Is(err, valuerequest.ErrAlreadyProcessed):
			return utils.BadRequest(c, "Request has already been processed")
		default:
			log.Printf("Failed to verify value request %d: %v", requestID, err)
			return utils.InternalError(c, "Failed to verify request")
		}
	}

	statusText := "rejected"
	if request.Verified {
		statusText = "approved"
	}
	return utils.Success(c, fiber.Map{
		"message": "Request " + statusText + " successfully",
	})
}
