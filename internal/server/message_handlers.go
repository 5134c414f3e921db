package server

import (
	"strconv"

	"warbler/internal/middleware"
	"warbler/internal/models"
	"warbler/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createMessageRequest struct {
	Text string `json:"text"`
}

// CreateMessage posts a new message authored by the authenticated user.
func (s *Server) CreateMessage(c *fiber.Ctx) error {
	var req createMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.PostMessage(c.UserContext(), currentUserID(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "message created",
		"message_id", message.ID, "user_id", message.UserID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": message})
}

// GetMessage returns a single message. Public endpoint; like state is
// resolved against the session if one is present.
func (s *Server) GetMessage(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	viewerID, _ := s.optionalUserID(c)
	message, err := s.messageService.GetMessage(c.UserContext(), id, viewerID)
	return respond(c, fiber.StatusOK, fiber.Map{"message": message}, err)
}

// DeleteMessage removes a message. Only the author may delete it.
func (s *Server) DeleteMessage(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := s.messageService.DeleteMessage(c.UserContext(), currentUserID(c), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "message deleted", "message_id", id)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Message deleted",
	})
}

// GetFeed returns the home timeline. Authenticated users see messages
// from themselves and the users they follow; anonymous visitors see the
// newest messages site-wide.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(service.DefaultFeedLimit)))
	if err != nil {
		limit = service.DefaultFeedLimit
	}

	viewerID, authed := s.optionalUserID(c)
	var messages []*models.Message
	if authed {
		messages, err = s.messageService.Feed(c.UserContext(), viewerID, limit)
	} else {
		messages, err = s.messageService.PublicFeed(c.UserContext(), limit)
	}
	return respond(c, fiber.StatusOK, fiber.Map{
		"messages": messages,
		"count":    len(messages),
	}, err)
}
