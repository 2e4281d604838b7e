package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

const maxPostLen = 40000

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

type CreatePostInput struct {
	AuthorID  uint
	Text      string
	GroupID   *uint
	ImagePath string
}

type UpdatePostInput struct {
	EditorID uint
	Username string
	PostID   uint
	Text     string
	GroupID  *uint
	// ImagePath nil keeps the stored image; empty string clears it.
	ImagePath *string
}

// PostUpdateOutcome reports whether an edit was applied. A well-formed edit
// by someone other than the author is not an error: it is acknowledged and
// ignored, and Post carries the unchanged record.
type PostUpdateOutcome struct {
	Post    *models.Post
	Applied bool
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 40000 characters)")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Text:      text,
		AuthorID:  in.AuthorID,
		GroupID:   in.GroupID,
		ImagePath: in.ImagePath,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetUserPost resolves a post through its author's profile: the post must
// exist and belong to username, otherwise the pair is reported missing.
func (s *PostService) GetUserPost(ctx context.Context, username string, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author.Username != username {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

func (s *PostService) ListGroupPosts(ctx context.Context, slug string, limit, offset int) (*models.Group, []models.Post, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

func (s *PostService) ListAuthorPosts(ctx context.Context, username string, limit, offset int) (*models.User, []models.Post, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	return author, posts, nil
}

func (s *PostService) ListFeed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.postRepo.ListFeed(ctx, userID, limit, offset)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*PostUpdateOutcome, error) {
	post, err := s.GetUserPost(ctx, in.Username, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != in.EditorID {
		return &PostUpdateOutcome{Post: post, Applied: false}, nil
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 40000 characters)")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post.Text = text
	post.GroupID = in.GroupID
	if in.ImagePath != nil {
		post.ImagePath = *in.ImagePath
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return &PostUpdateOutcome{Post: post, Applied: true}, nil
}

func (s *PostService) DeletePost(ctx context.Context, editorID uint, username string, postID uint) error {
	post, err := s.GetUserPost(ctx, username, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != editorID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
