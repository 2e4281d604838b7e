// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers int
	NumPosts int
	Clean    bool
	MaxDays  int
}

// builtinGroups are the groups every fresh installation starts with.
var builtinGroups = []models.Group{
	{Title: "Technology", Slug: "technology", Description: "Software, hardware, and everything between"},
	{Title: "Books", Slug: "books", Description: "What we are reading and why"},
	{Title: "Travel", Slug: "travel", Description: "Trip reports and route advice"},
	{Title: "Food", Slug: "food", Description: "Recipes, restaurants, and results"},
	{Title: "Music", Slug: "music", Description: "Listening notes and recommendations"},
	{Title: "Science", Slug: "science", Description: "Findings, papers, and questions"},
	{Title: "Art", Slug: "art", Description: "Work in progress and finished pieces"},
	{Title: "Sports", Slug: "sports", Description: "Matches, training, and results"},
}

// Groups creates the built-in groups if they do not exist yet. Safe to run on
// every startup.
func Groups(db *gorm.DB) error {
	for _, group := range builtinGroups {
		group := group
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&group).Error
		if err != nil {
			return fmt.Errorf("seed group %q: %w", group.Slug, err)
		}
	}
	return nil
}

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) (*Seeder, error) {
	factory, err := NewFactory(db, opts)
	if err != nil {
		return nil, err
	}
	return &Seeder{db: db, factory: factory, opts: opts}, nil
}

// ClearAll removes all seeded content. Order matters: dependents first.
func (s *Seeder) ClearAll() error {
	for _, stmt := range []string{
		"DELETE FROM comments",
		"DELETE FROM follows",
		"DELETE FROM posts",
		"DELETE FROM users",
	} {
		if err := s.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Run seeds users, posts in and out of groups, comments, and a follow mesh.
func (s *Seeder) Run() error {
	if s.opts.Clean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clear existing data: %w", err)
		}
	}

	if err := Groups(s.db); err != nil {
		return err
	}
	var groups []models.Group
	if err := s.db.Find(&groups).Error; err != nil {
		return err
	}

	log.Printf("seeding %d users and %d posts", s.opts.NumUsers, s.opts.NumPosts)

	users := make([]*models.User, 0, s.opts.NumUsers)
	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return nil
	}

	rng := s.factory.rng
	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		author := users[rng.Intn(len(users))]
		// roughly a third of posts go to a group
		var group *models.Group
		if len(groups) > 0 && rng.Intn(3) == 0 {
			group = &groups[rng.Intn(len(groups))]
		}
		posts = append(posts, s.factory.BuildPost(author, group))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("create posts: %w", err)
	}

	for _, post := range posts {
		for i := 0; i < rng.Intn(4); i++ {
			commenter := users[rng.Intn(len(users))]
			if err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
	}

	// each user follows a handful of authors
	for _, user := range users {
		for i := 0; i < rng.Intn(5); i++ {
			author := users[rng.Intn(len(users))]
			if err := s.factory.CreateFollow(user, author); err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
		}
	}

	log.Printf("seeding complete: %d users, %d posts", len(users), len(posts))
	return nil
}
