package service

import (
	"context"
	"strings"

	"warbler/internal/models"
	"warbler/internal/repository"
	"warbler/internal/validation"
)

// DefaultFeedLimit caps feed and timeline queries.
const DefaultFeedLimit = 100

// MessageService implements posting, deletion, and the feed/timeline reads.
type MessageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// PostMessage creates a message for userID with the current timestamp.
func (s *MessageService) PostMessage(ctx context.Context, userID uint, text string) (*models.Message, error) {
	text = strings.TrimSpace(text)
	if err := validation.ValidateMessageText(text, models.MaxMessageLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{
		Text:   text,
		UserID: userID,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return s.messageRepo.GetByID(ctx, message.ID, userID)
}

// GetMessage returns a single message. currentUserID may be zero for
// anonymous readers; it only affects the computed liked flag.
func (s *MessageService) GetMessage(ctx context.Context, id uint, currentUserID uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id, currentUserID)
}

// DeleteMessage removes the message if requesterID owns it. A missing
// message reports not-found before any ownership check; a non-owner gets
// a forbidden error and the row is untouched.
func (s *MessageService) DeleteMessage(ctx context.Context, requesterID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, requesterID)
	if err != nil {
		return err
	}
	if message.UserID != requesterID {
		return models.NewForbiddenError("You can only delete your own messages")
	}
	return s.messageRepo.Delete(ctx, messageID)
}

// Feed returns the newest messages from userID and everyone they follow.
func (s *MessageService) Feed(ctx context.Context, userID uint, limit int) ([]*models.Message, error) {
	return s.messageRepo.Feed(ctx, userID, clampLimit(limit), 0)
}

// PublicFeed returns the newest messages site-wide, for anonymous visitors.
func (s *MessageService) PublicFeed(ctx context.Context, limit int) ([]*models.Message, error) {
	return s.messageRepo.ListRecent(ctx, clampLimit(limit), 0)
}

// UserTimeline returns the newest messages authored by a single user.
func (s *MessageService) UserTimeline(ctx context.Context, userID, currentUserID uint, limit, offset int) ([]*models.Message, error) {
	if offset < 0 {
		offset = 0
	}
	return s.messageRepo.GetByUserID(ctx, userID, clampLimit(limit), offset, currentUserID)
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > DefaultFeedLimit {
		return DefaultFeedLimit
	}
	return limit
}
