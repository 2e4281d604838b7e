package service

import (
	"context"
	"strings"

	"quill/internal/models"
	"quill/internal/repository"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postSvc     *PostService
}

type AddCommentInput struct {
	AuthorID uint
	Username string
	PostID   uint
	Text     string
}

// CommentOutcome reports whether a comment was stored. A blank submission is
// acknowledged without storing anything, mirroring how an invalid comment
// form simply redisplays the post.
type CommentOutcome struct {
	Comment *models.Comment
	Stored  bool
}

func NewCommentService(commentRepo repository.CommentRepository, postSvc *PostService) *CommentService {
	return &CommentService{commentRepo: commentRepo, postSvc: postSvc}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*CommentOutcome, error) {
	post, err := s.postSvc.GetUserPost(ctx, in.Username, in.PostID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return &CommentOutcome{Stored: false}, nil
	}
	if len(text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   &post.ID,
		AuthorID: in.AuthorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return &CommentOutcome{Comment: comment, Stored: true}, nil
}

func (s *CommentService) ListComments(ctx context.Context, username string, postID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postSvc.GetUserPost(ctx, username, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}
