package handlers

import (
	"errors"
	"log"
	"strconv"

	"nexo/internal/models"
	"nexo/internal/services/dealvalidation"
	"nexo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DealHandler struct {
	service dealvalidation.Service
}

func NewDealHandler(service dealvalidation.Service) *DealHandler {
	return &DealHandler{service: service}
}

// SubmitNew submits a new deal for admin approval.
func (h *DealHandler) SubmitNew(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input models.NewDealInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	dealID, err := h.service.SubmitNewDeal(claims.MemberID, &input)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message": "New deal submission received and is pending approval.",
		"deal_id": dealID,
	})
}

// SubmitUpdate submits changes to an existing deal for admin approval.
func (h *DealHandler) SubmitUpdate(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	dealID := c.Params("deal_id")

	var input models.UpdateDealInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.service.SubmitDealUpdate(claims.MemberID, dealID, &input); err != nil {
		if errors.Is(err, dealvalidation.ErrDealNotFound) {
			return utils.NotFound(c, "Deal not found")
		}
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message": "Deal update submission received and is pending approval.",
	})
}

// ListPending returns the pending deal submissions for admin review.
func (h *DealHandler) ListPending(c *fiber.Ctx) error {
	requests, err := h.service.ListPending()
	if err != nil {
		log.Printf("Failed to list pending deal requests: %v", err)
		return utils.InternalError(c, "Failed to retrieve pending requests")
	}
	return utils.Success(c, fiber.Map{"requests": requests})
}

// Approve applies a pending deal submission to the member's deal list.
func (h *DealHandler) Approve(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid request ID")
	}

	if err := h.service.Approve(uint(requestID)); err != nil {
		switch {
		case errors.Is(err, dealvalidation.ErrRequestNotFound):
			return utils.NotFound(c, "Request not found")
		case errors.Is(err, dealvalidation.ErrRequestNotPending):
			return utils.BadRequest(c, "Request is not pending")
		case errors.Is(err, dealvalidation.ErrDealNotFound):
			return utils.NotFound(c, "Deal not found")
		default:
			log.Printf("Failed to approve deal request %d: %v", requestID, err)
			return utils.InternalError(c, "Failed to approve request")
		}
	}

	return utils.Success(c, fiber.Map{"message": "Request approved successfully"})
}

// Reject marks a pending deal submission rejected.
func (h *DealHandler) Reject(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid request ID")
	}

	if err := h.service.Reject(uint(requestID)); err != nil {
		switch {
		case errors.Is(err, dealvalidation.ErrRequestNotFound):
			return utils.NotFound(c, "Request not found")
		case errors.Is(err, dealvalidation.ErrRequestNotPending):
			return utils.BadRequest(c, "Request is not pending")
		default:
			log.Printf("Failed to reject deal request %d: %v", requestID, err)
			return utils.InternalError(c, "Failed to reject request")
		}
	}

	return utils.Success(c, fiber.Map{"message": "Request rejected successfully"})
}
