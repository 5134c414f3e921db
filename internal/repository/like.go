package repository

import (
	"context"

	"warbler/internal/cache"
	"warbler/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines the interface for like-edge data operations
type LikeRepository interface {
	Create(ctx context.Context, userID, messageID uint) error
	Delete(ctx context.Context, userID, messageID uint) error
	Exists(ctx context.Context, userID, messageID uint) (bool, error)
	ListMessagesLikedBy(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the like edge. ON CONFLICT DO NOTHING handles the race
// between two toggles of the same pair atomically.
func (r *likeRepository) Create(ctx context.Context, userID, messageID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, message_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, message_id) DO NOTHING`,
		userID, messageID,
	).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateMessage(ctx, messageID)
	return nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, messageID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	cache.InvalidateMessage(ctx, messageID)
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND message_id = ?", userID, messageID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListMessagesLikedBy returns the messages userID currently likes, most
// recently liked first.
func (r *likeRepository) ListMessagesLikedBy(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Select("messages.*, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.message_id = messages.id) as likes_count, "+
			"true as liked").
		Joins("JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("User").
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
