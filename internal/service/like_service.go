package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// LikeService implements the like toggle and the liked-messages listing.
type LikeService struct {
	likeRepo    repository.LikeRepository
	messageRepo repository.MessageRepository
}

func NewLikeService(likeRepo repository.LikeRepository, messageRepo repository.MessageRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, messageRepo: messageRepo}
}

// ToggleLike flips the like state of (userID, messageID) and returns the
// resulting state. Liking your own message is forbidden regardless of the
// current state.
func (s *LikeService) ToggleLike(ctx context.Context, userID, messageID uint) (bool, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID, userID)
	if err != nil {
		return false, err
	}
	if message.UserID == userID {
		return false, models.NewForbiddenError("You cannot like your own message")
	}

	liked, err := s.likeRepo.Exists(ctx, userID, messageID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.likeRepo.Delete(ctx, userID, messageID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.likeRepo.Create(ctx, userID, messageID); err != nil {
		return false, err
	}
	return true, nil
}

// ListLikes returns the messages userID currently likes.
func (s *LikeService) ListLikes(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.likeRepo.ListMessagesLikedBy(ctx, userID, clampLimit(limit), offset)
}
