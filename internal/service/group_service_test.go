package service

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groupRepoStub is a stub for repository.GroupRepository.
type groupRepoStub struct {
	createFn    func(context.Context, *models.Group) error
	getByIDFn   func(context.Context, uint) (*models.Group, error)
	getBySlugFn func(context.Context, string) (*models.Group, error)
	listFn      func(context.Context, int, int) ([]models.Group, error)
	updateFn    func(context.Context, *models.Group) error
	deleteFn    func(context.Context, uint) error
}

func (s *groupRepoStub) Create(ctx context.Context, group *models.Group) error {
	return s.createFn(ctx, group)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *groupRepoStub) List(ctx context.Context, limit, offset int) ([]models.Group, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *groupRepoStub) Update(ctx context.Context, group *models.Group) error {
	return s.updateFn(ctx, group)
}
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		createFn:    func(_ context.Context, _ *models.Group) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Group, error) { return &models.Group{}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Group, error) { return &models.Group{}, nil },
		listFn:      func(_ context.Context, _, _ int) ([]models.Group, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Group) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

func TestGroupService_CreateGroup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("derives slug from title", func(t *testing.T) {
		t.Parallel()
		repo := noopGroupRepo()
		var stored *models.Group
		repo.createFn = func(_ context.Context, g *models.Group) error {
			stored = g
			return nil
		}

		svc := NewGroupService(repo)
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Cooking & Baking"})
		require.NoError(t, err)
		assert.Equal(t, "cooking-baking", stored.Slug)
	})

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		svc := NewGroupService(noopGroupRepo())
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Slug: "cooking"})
		assertValidationError(t, err)
	})

	t.Run("reserved slug", func(t *testing.T) {
		t.Parallel()
		svc := NewGroupService(noopGroupRepo())
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Admin", Slug: "admin"})
		assertValidationError(t, err)
	})

	t.Run("slug conflict propagates", func(t *testing.T) {
		t.Parallel()
		repo := noopGroupRepo()
		repo.createFn = func(_ context.Context, _ *models.Group) error {
			return models.NewConflictError("Group slug already taken")
		}
		svc := NewGroupService(repo)
		_, err := svc.CreateGroup(ctx, CreateGroupInput{Title: "Cooking", Slug: "cooking"})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

func TestGroupService_UpdateGroup_SlugIsPermanent(t *testing.T) {
	t.Parallel()

	repo := noopGroupRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Group, error) {
		return &models.Group{ID: id, Title: "Cooking", Slug: "cooking"}, nil
	}

	svc := NewGroupService(repo)
	group, err := svc.UpdateGroup(context.Background(), UpdateGroupInput{
		GroupID: 1,
		Title:   "Cooking and Baking",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cooking and Baking", group.Title)
	assert.Equal(t, "cooking", group.Slug)
}
