package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// Profile is a user page header: the user plus the counts rendered next to
// their posts, and whether the viewer follows them.
type Profile struct {
	User       *models.User `json:"user"`
	PostsCount int64        `json:"posts_count"`
	Followers  int64        `json:"followers_count"`
	Following  int64        `json:"following_count"`
	IsFollowed bool         `json:"is_followed"`
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetProfile assembles the profile page for username. viewerID is zero for
// anonymous readers, who always see IsFollowed == false.
func (s *UserService) GetProfile(ctx context.Context, username string, viewerID uint) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	postsCount, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowed := false
	if viewerID != 0 && viewerID != user.ID {
		isFollowed, err = s.followRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Profile{
		User:       user,
		PostsCount: postsCount,
		Followers:  followers,
		Following:  following,
		IsFollowed: isFollowed,
	}, nil
}
