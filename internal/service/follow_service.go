package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// FollowOutcome reports whether a new subscription was written. Following
// yourself or an author you already follow is acknowledged without change.
type FollowOutcome struct {
	Author  *models.User
	Created bool
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) (*FollowOutcome, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	if author.ID == userID {
		return &FollowOutcome{Author: author, Created: false}, nil
	}

	created, err := s.followRepo.Create(ctx, &models.Follow{UserID: userID, AuthorID: author.ID})
	if err != nil {
		return nil, err
	}
	return &FollowOutcome{Author: author, Created: created}, nil
}

func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) (*models.User, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}

	deleted, err := s.followRepo.Delete(ctx, userID, author.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, models.NewNotFoundError("Follow", authorUsername)
	}
	return author, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, userID uint, authorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}
