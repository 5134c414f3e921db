package server

import (
	"warbler/internal/middleware"
	"warbler/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser makes the authenticated user follow the target user.
// Following someone you already follow is a no-op.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := s.socialService.Follow(c.UserContext(), currentUserID(c), targetID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user followed",
		"follower_id", currentUserID(c), "followed_id", targetID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Followed",
		"following": true,
	})
}

// UnfollowUser removes the follow edge to the target user.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := s.socialService.Unfollow(c.UserContext(), currentUserID(c), targetID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user unfollowed",
		"follower_id", currentUserID(c), "followed_id", targetID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Unfollowed",
		"following": false,
	})
}
