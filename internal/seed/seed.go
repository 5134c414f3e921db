package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers      int
	NumMessages   int
	FollowDensity float64 // probability that any given user pair produces a follow
	LikesPerUser  int
	ShouldClean   bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d messages...", opts.NumUsers, opts.NumMessages)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	messages, err := createMessages(factory, users, opts.NumMessages)
	if err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("%d messages created", len(messages))

	follows, err := createFollowMesh(db, users, opts.FollowDensity)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("%d follow edges created", follows)

	likes, err := createLikes(db, users, messages, opts.LikesPerUser)
	if err != nil {
		return fmt.Errorf("failed to create likes: %w", err)
	}
	log.Printf("%d likes created", likes)

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE likes, follows, messages, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createMessages(factory *Factory, users []*models.User, count int) ([]*models.Message, error) {
	if len(users) == 0 {
		return nil, nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	messages := make([]*models.Message, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		messages = append(messages, factory.BuildMessage(author))
	}
	if err := factory.CreateMessagesBatch(messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// createFollowMesh wires users into a loose social graph. Each directed
// pair follows with probability density, never self.
func createFollowMesh(db *gorm.DB, users []*models.User, density float64) (int, error) {
	if density <= 0 {
		density = 0.1
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	var follows []*models.Follow
	for _, follower := range users {
		for _, followed := range users {
			if follower.ID == followed.ID {
				continue
			}
			if r.Float64() < density {
				follows = append(follows, &models.Follow{
					FollowerID: follower.ID,
					FollowedID: followed.ID,
				})
			}
		}
	}
	if len(follows) == 0 {
		return 0, nil
	}
	if err := db.Create(&follows).Error; err != nil {
		return 0, err
	}
	return len(follows), nil
}

// createLikes gives each user up to likesPerUser likes on messages they
// did not author. Duplicates are skipped by the unique index.
func createLikes(db *gorm.DB, users []*models.User, messages []*models.Message, likesPerUser int) (int, error) {
	if likesPerUser <= 0 || len(messages) == 0 {
		return 0, nil
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	total := 0
	for _, user := range users {
		seen := make(map[uint]bool)
		for i := 0; i < likesPerUser; i++ {
			message := messages[r.Intn(len(messages))]
			if message.UserID == user.ID || seen[message.ID] {
				continue
			}
			seen[message.ID] = true
			err := db.Exec(
				`INSERT INTO likes (user_id, message_id, created_at)
				 VALUES (?, ?, CURRENT_TIMESTAMP)
				 ON CONFLICT (user_id, message_id) DO NOTHING`,
				user.ID, message.ID,
			).Error
			if err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
