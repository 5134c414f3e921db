package server

import (
	"warbler/internal/middleware"
	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLike likes the message if not yet liked, otherwise removes the
// like. Authors cannot like their own messages.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	messageID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	liked, err := s.likeService.ToggleLike(c.UserContext(), currentUserID(c), messageID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "like toggled",
		"message_id", messageID, "user_id", currentUserID(c), "liked", liked)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"liked": liked,
	})
}
