// Package service implements the domain rules on top of the repositories.
package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService implements signup, credential verification, profile editing,
// and account deletion.
type AuthService struct {
	userRepo repository.UserRepository
}

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
}

// UpdateProfileInput carries a profile edit. CurrentPassword must verify
// against the stored hash before any field is applied.
type UpdateProfileInput struct {
	UserID          uint   `json:"-"`
	CurrentPassword string `json:"password"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url"`
	HeaderImageURL  string `json:"header_image_url"`
	Bio             string `json:"bio"`
	Location        string `json:"location"`
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Signup validates the input, enforces username/email uniqueness, hashes
// the password, and persists the new user. Plaintext is never stored.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Distinct conflict messages for username vs email. The insert below
	// still translates a lost race into the same conflict errors.
	existing, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username already taken")
	}
	existing, err = s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}
	headerImageURL := in.HeaderImageURL
	if headerImageURL == "" {
		headerImageURL = models.DefaultHeaderImageURL
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		Password:       string(hashed),
		ImageURL:       imageURL,
		HeaderImageURL: headerImageURL,
		Bio:            in.Bio,
		Location:       in.Location,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when username and password match, and
// (nil, nil) for unknown usernames or wrong passwords. Bad credentials are
// an expected outcome, not an error; only storage failures return errors.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

// UpdateProfile re-authenticates with the current password, then applies
// the provided fields. Edits are partial: empty fields are left as they
// are, so this path cannot clear bio or location. On a password mismatch
// the user is left unchanged.
func (s *AuthService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)) != nil {
		return nil, models.NewForbiddenError("Wrong password, please try again")
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Username already taken")
		}
		user.Username = in.Username
	}
	if in.Email != "" && in.Email != user.Email {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewConflictError("Email already taken")
		}
		user.Email = in.Email
	}
	if in.ImageURL != "" {
		user.ImageURL = in.ImageURL
	}
	if in.HeaderImageURL != "" {
		user.HeaderImageURL = in.HeaderImageURL
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}
	if in.Location != "" {
		user.Location = in.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and cascades removal of their messages
// and edges. Deleting an already-deleted account reports not-found.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}
