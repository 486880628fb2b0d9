package handlers

import (
	"errors"
	"log"
	"strconv"

	"nexo/internal/models"
	"nexo/internal/services/message"
	"nexo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type MessageHandler struct {
	service message.Service
}

func NewMessageHandler(service message.Service) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send delivers a message from the caller to another member.
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	var input models.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	msg, err := h.service.Send(claims.MemberID, &input)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrSelfMessaging):
			return utils.BadRequest(c, "Cannot send a message to yourself")
		case errors.Is(err, message.ErrUnknownMember):
			return utils.NotFound(c, "Receiver not found")
		default:
			return utils.BadRequest(c, err.Error())
		}
	}

	return utils.Created(c, fiber.Map{
		"message":    "Message sent successfully",
		"message_id": msg.ID,
	})
}

// Conversation returns the full exchange between the caller and another
// member, oldest first.
func (h *MessageHandler) Conversation(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	otherID, err := strconv.ParseUint(c.Params("member_id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid member ID")
	}

	messages, err := h.service.Conversation(claims.MemberID, uint(otherID))
	if err != nil {
		log.Printf("Failed to load conversation for member %d: %v", claims.MemberID, err)
		return utils.InternalError(c, "Failed to retrieve conversation")
	}

	return utils.Success(c, fiber.Map{"messages": messages})
}

// MarkRead marks a received message as read.
func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	messageID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid message ID")
	}

	msg, err := h.service.MarkRead(uint(messageID), claims.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrNotFound):
			return utils.NotFound(c, "Message not found")
		case errors.Is(err, message.ErrNotReceiver):
			return utils.Forbidden(c, "Only the receiver can mark a message read")
		default:
			return utils.InternalError(c, "Failed to mark message read")
		}
	}

	return utils.Success(c, fiber.Map{
		"message": "Message marked as read",
		"read_at": msg.ReadAt,
	})
}

// UnreadCount returns how many unread messages the caller has.
func (h *MessageHandler) UnreadCount(c *fiber.Ctx) error {
	claims, err := utils.GetMemberClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	count, err := h.service.UnreadCount(claims.MemberID)
	if err != nil {
		return utils.InternalError(c, "Failed to count unread messages")
	}

	return utils.Success(c, fiber.Map{"unread_count": count})
}
