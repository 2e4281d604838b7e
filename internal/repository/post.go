package repository

import (
	"context"
	"errors"

	"quill/internal/cache"
	"quill/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error)
	ListFeed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// postQuery is the base select for post reads: author and group preloaded,
// comment count computed in the store.
func (r *postRepository) postQuery(ctx context.Context) *gorm.DB {
	return readDB(r.db).WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comments_count").
		Preload("Author").
		Preload("Group")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload associations so the response carries author and group.
	if err := r.postQuery(ctx).First(post, post.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.postQuery(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns the newest-first front page. Pages are served from the
// short-lived Redis snapshot when present.
func (r *postRepository) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := cache.Aside(ctx, cache.PostsPageKey(limit, offset), &posts, cache.PageTTL, func() error {
		return r.postQuery(ctx).
			Order("posts.created_at DESC, posts.id DESC").
			Limit(limit).
			Offset(offset).
			Find(&posts).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByGroup(ctx context.Context, groupID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.postQuery(ctx).
		Where("posts.group_id = ?", groupID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.postQuery(ctx).
		Where("posts.author_id = ?", authorID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListFeed returns posts by every author the user follows, newest first.
func (r *postRepository) ListFeed(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := r.postQuery(ctx).
		Joins("JOIN follows ON follows.author_id = posts.author_id AND follows.user_id = ?", userID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := readDB(r.db).WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := r.postQuery(ctx).First(post, post.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(post.ID))
	cache.InvalidatePostsList(ctx)
	return nil
}

// Delete removes the post and its comments. Rows are soft-deleted, so the
// comment cascade runs here rather than through the foreign key action.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		return models.NewInternalError(err)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PostKey(id))
	cache.InvalidatePostsList(ctx)
	return nil
}
