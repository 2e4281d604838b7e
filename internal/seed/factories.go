// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"quill/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
	// all seeded users share one hash so seeding stays fast
	passwordHash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	return &Factory{
		db:           db,
		opts:         opts,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		passwordHash: string(hash),
	}, nil
}

// CreateUser persists a user with a fake identity and the shared seed password.
func (f *Factory) CreateUser() (*models.User, error) {
	user := &models.User{
		Username:  fmt.Sprintf("%s_%s", gofakeit.Username(), gofakeit.LetterN(4)),
		Email:     gofakeit.Email(),
		Password:  f.passwordHash,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post for the user, optionally in a group, with a
// realistic created_at spread. It does not persist; use CreatePostsBatch.
func (f *Factory) BuildPost(user *models.User, group *models.Group) *models.Post {
	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 3, 12, "\n"),
		AuthorID: user.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	return post
}

// CreatePostsBatch persists posts in chunks.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.CreateInBatches(posts, 100).Error
}

// CreateComment persists a short comment by the user on the post.
func (f *Factory) CreateComment(user *models.User, post *models.Post) error {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(f.rng.Intn(12) + 3),
		PostID:   &post.ID,
		AuthorID: user.ID,
	}
	return f.db.Create(comment).Error
}

// CreateFollow persists a follow pair, ignoring duplicates.
func (f *Factory) CreateFollow(user, author *models.User) error {
	if user.ID == author.ID {
		return nil
	}
	return f.db.
		Exec("INSERT INTO follows (user_id, author_id, created_at) VALUES (?, ?, ?) ON CONFLICT DO NOTHING",
			user.ID, author.ID, time.Now()).Error
}
