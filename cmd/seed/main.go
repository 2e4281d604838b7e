// Command seed populates the database with demo content.
package main

import (
	"flag"
	"log"

	"quill/internal/bootstrap"
	"quill/internal/config"
	"quill/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	preset := flag.String("preset", "", "Path to a YAML seeding preset (overrides other flags)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedBuiltIns: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if *preset != "" {
		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Preset load failed: %v", err)
		}
		log.Printf("applying preset %q", p.Name)
		if err := p.Apply(db); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
	} else {
		seeder, err := seed.NewSeeder(db, seed.Options{
			NumUsers: *numUsers,
			NumPosts: *numPosts,
			Clean:    *shouldClean,
		})
		if err != nil {
			log.Fatalf("Seeder init failed: %v", err)
		}
		if err := seeder.Run(); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	log.Println("done; all seeded users have the password: password123")
}
