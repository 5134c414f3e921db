package repository

import (
	"context"
	"errors"

	"warbler/internal/cache"
	"warbler/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error)
	Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*models.Message, error)
	Delete(ctx context.Context, id uint) error
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Message, error) {
	var message models.Message
	err := r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.applyMessageDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// Feed returns the newest messages authored by userID or any account
// userID follows. Ties on created_at break by id descending (stable).
func (r *messageRepository) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.applyMessageDetails(r.db.WithContext(ctx), userID).
		Preload("User").
		Where("user_id = ? OR user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)", userID, userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// ListRecent returns the newest messages site-wide, for anonymous feeds.
func (r *messageRepository) ListRecent(ctx context.Context, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.applyMessageDetails(r.db.WithContext(ctx), 0).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// Delete removes the message and its like edges in one transaction.
func (r *messageRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		res := tx.Delete(&models.Message{}, id)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Message", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidateMessage(ctx, id)
	return nil
}

// applyMessageDetails adds subqueries to fetch the like count and the
// requesting user's liked flag in a single query.
func (r *messageRepository) applyMessageDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "messages.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.message_id = messages.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.message_id = messages.id AND likes.user_id = ?) as liked",
			currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}
