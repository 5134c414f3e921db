// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"warbler/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username:       gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:          gofakeit.Email(),
		Password:       string(hashed),
		Bio:            gofakeit.Sentence(10),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		ImageURL:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildMessage constructs a message for the user but does not persist it.
// Useful for batching.
func (f *Factory) BuildMessage(user *models.User, overrides ...func(*models.Message)) *models.Message {
	text := gofakeit.HipsterSentence(f.rnd.Intn(8) + 4)
	if len(text) > models.MaxMessageLength {
		text = text[:models.MaxMessageLength]
	}

	message := &models.Message{
		Text:   text,
		UserID: user.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rnd.Intn(90)
	hoursBack := f.rnd.Intn(24)
	minsBack := f.rnd.Intn(60)
	message.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(message)
	}
	return message
}

// CreateMessage constructs and persists a sample message for the user.
func (f *Factory) CreateMessage(user *models.User, overrides ...func(*models.Message)) (*models.Message, error) {
	message := f.BuildMessage(user, overrides...)
	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// CreateMessagesBatch persists multiple messages in a single DB call.
func (f *Factory) CreateMessagesBatch(messages []*models.Message) error {
	if len(messages) == 0 {
		return nil
	}
	return f.db.Create(&messages).Error
}
