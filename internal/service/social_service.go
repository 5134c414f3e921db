package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// SocialService manages the directed follow graph between users.
type SocialService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewSocialService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{followRepo: followRepo, userRepo: userRepo}
}

// Follow inserts a follow edge from follower to target. Self-follows are
// rejected; following someone already followed is an idempotent no-op.
func (s *SocialService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.followRepo.Create(ctx, followerID, targetID)
}

// Unfollow removes the edge; removing an absent edge reports not-found.
func (s *SocialService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	return s.followRepo.Delete(ctx, followerID, targetID)
}

// IsFollowing reports whether a follows b.
func (s *SocialService) IsFollowing(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, a, b)
}

// IsFollowedBy reports whether b follows a.
func (s *SocialService) IsFollowedBy(ctx context.Context, a, b uint) (bool, error) {
	return s.followRepo.Exists(ctx, b, a)
}

func (s *SocialService) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, userID, limit, offset)
}

func (s *SocialService) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID, limit, offset)
}
