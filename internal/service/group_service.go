package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/validation"
)

const (
	maxGroupTitleLen       = 200
	maxGroupDescriptionLen = 2000
)

type GroupService struct {
	groupRepo repository.GroupRepository
}

type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

type UpdateGroupInput struct {
	GroupID     uint
	Title       string
	Description string
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxGroupTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if len(in.Description) > maxGroupDescriptionLen {
		return nil, models.NewValidationError("Description too long (max 2000 characters)")
	}

	slug := in.Slug
	if slug == "" {
		slug = validation.Slugify(title)
	}
	if err := validation.ValidateGroupSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	group := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) ListGroups(ctx context.Context, limit, offset int) ([]models.Group, error) {
	return s.groupRepo.List(ctx, limit, offset)
}

// UpdateGroup changes the title or description. The slug is permanent so
// existing group URLs never break.
func (s *GroupService) UpdateGroup(ctx context.Context, in UpdateGroupInput) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		if len(in.Title) > maxGroupTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		group.Title = in.Title
	}
	if in.Description != "" {
		if len(in.Description) > maxGroupDescriptionLen {
			return nil, models.NewValidationError("Description too long (max 2000 characters)")
		}
		group.Description = in.Description
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupID uint) error {
	return s.groupRepo.Delete(ctx, groupID)
}
