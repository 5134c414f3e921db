package server

import (
	"warbler/internal/middleware"
	"warbler/internal/models"
	"warbler/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers searches users by username substring. Public endpoint.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	limit, offset := parsePagination(c)
	query := c.Query("q")

	users, err := s.userRepo.List(c.UserContext(), query, limit, offset)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

// GetMyProfile returns the authenticated user's own record.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	return respond(c, fiber.StatusOK, fiber.Map{"user": user}, err)
}

// UpdateMyProfile updates the authenticated user's profile. The current
// password must be supplied and verified before any change is applied.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	input.UserID = currentUserID(c)
	user, err := s.authService.UpdateProfile(c.UserContext(), input)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "profile updated", "user_id", user.ID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": user})
}

// DeleteMyAccount deletes the authenticated user and everything they own,
// then destroys the session.
func (s *Server) DeleteMyAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := s.authService.DeleteAccount(c.UserContext(), userID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if sid := sessionID(c); sid != "" {
		if err := s.sessions.Destroy(c.Context(), sid); err != nil {
			middleware.Logger.WarnContext(c.UserContext(),
				"failed to destroy session after account deletion", "error", err)
		}
	}
	s.clearSessionCookie(c)

	middleware.Logger.InfoContext(c.UserContext(), "account deleted", "user_id", userID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted",
	})
}

// GetUserProfile returns a user's profile page data. Only the profile
// owner may view it; enriched with their most recent messages.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	if id != currentUserID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Access unauthorized"))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	messages, err := s.messageService.UserTimeline(c.UserContext(), id, id, defaultPageLimit, 0)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":     user,
		"messages": messages,
	})
}

// GetFollowing lists the users a user follows.
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	limit, offset := parsePagination(c)

	users, err := s.socialService.ListFollowing(c.UserContext(), id, limit, offset)
	return respond(c, fiber.StatusOK, fiber.Map{
		"users": users,
		"count": len(users),
	}, err)
}

// GetFollowers lists the users following a user.
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	limit, offset := parsePagination(c)

	users, err := s.socialService.ListFollowers(c.UserContext(), id, limit, offset)
	return respond(c, fiber.StatusOK, fiber.Map{
		"users": users,
		"count": len(users),
	}, err)
}

// GetUserLikes lists the messages a user has liked, most recent like first.
func (s *Server) GetUserLikes(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	limit, offset := parsePagination(c)

	messages, err := s.likeService.ListLikes(c.UserContext(), id, limit, offset)
	return respond(c, fiber.StatusOK, fiber.Map{
		"messages": messages,
		"count":    len(messages),
	}, err)
}

// GetUserMessages lists a user's own messages, newest first.
func (s *Server) GetUserMessages(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	limit, offset := parsePagination(c)

	messages, err := s.messageService.UserTimeline(c.UserContext(), id, currentUserID(c), limit, offset)
	return respond(c, fiber.StatusOK, fiber.Map{
		"messages": messages,
		"count":    len(messages),
	}, err)
}
