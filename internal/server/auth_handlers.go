package server

import (
	"time"

	"warbler/internal/middleware"
	"warbler/internal/models"
	"warbler/internal/service"
	"warbler/internal/session"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles user registration and starts a session for the new user.
func (s *Server) Signup(c *fiber.Ctx) error {
	var input service.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Signup(c.UserContext(), input)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	sid, err := s.sessions.Create(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, sid)

	middleware.Logger.InfoContext(c.UserContext(), "user signed up",
		"user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user,
		"token": sid,
	})
}

// Login authenticates by username and password and starts a session.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	sid, err := s.sessions.Create(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, sid)

	middleware.Logger.InfoContext(c.UserContext(), "user logged in",
		"user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":  user,
		"token": sid,
	})
}

// Logout destroys the current session and clears the cookie.
func (s *Server) Logout(c *fiber.Ctx) error {
	if sid := sessionID(c); sid != "" {
		if err := s.sessions.Destroy(c.Context(), sid); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
	}
	s.clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

func (s *Server) setSessionCookie(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    sid,
		Expires:  time.Now().Add(s.sessions.TTL()),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
