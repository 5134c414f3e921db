// Command main runs the database seeder for Warbler.
package main

import (
	"flag"
	"log"
	"os"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/seed"

	"gopkg.in/yaml.v3"
)

// profile mirrors seed.Options for YAML seed profiles.
type profile struct {
	Users         int     `yaml:"users"`
	Messages      int     `yaml:"messages"`
	FollowDensity float64 `yaml:"follow_density"`
	LikesPerUser  int     `yaml:"likes_per_user"`
	Clean         bool    `yaml:"clean"`
}

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numMessages := flag.Int("messages", 200, "Number of messages to create")
	followDensity := flag.Float64("density", 0.1, "Follow probability per user pair")
	likesPerUser := flag.Int("likes", 5, "Likes per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	profilePath := flag.String("profile", "", "YAML seed profile (overrides other flags)")
	flag.Parse()

	opts := seed.Options{
		NumUsers:      *numUsers,
		NumMessages:   *numMessages,
		FollowDensity: *followDensity,
		LikesPerUser:  *likesPerUser,
		ShouldClean:   *shouldClean,
	}

	if *profilePath != "" {
		p, err := loadProfile(*profilePath)
		if err != nil {
			log.Fatalf("Failed to load seed profile: %v", err)
		}
		opts = seed.Options{
			NumUsers:      p.Users,
			NumMessages:   p.Messages,
			FollowDensity: p.FollowDensity,
			LikesPerUser:  p.LikesPerUser,
			ShouldClean:   p.Clean,
		}
		log.Printf("Applying seed profile %s", *profilePath)
	}

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d messages, clean=%v", opts.NumUsers, opts.NumMessages, opts.ShouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
