package repository

import (
	"context"
	"testing"

	"quill/internal/database"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func insertUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func insertPost(t *testing.T, db *gorm.DB, authorID uint, text string) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: authorID}
	require.NoError(t, db.Create(post).Error)
	return post
}

func insertComment(t *testing.T, db *gorm.DB, postID, authorID uint, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: text, PostID: &postID, AuthorID: authorID}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func TestPostRepository_DeleteCascadesComments(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	leo := insertUser(t, db, "leo")
	mira := insertUser(t, db, "mira")
	post := insertPost(t, db, leo.ID, "soon deleted")
	insertComment(t, db, post.ID, mira.ID, "one")
	insertComment(t, db, post.ID, mira.ID, "two")

	require.NoError(t, repo.Delete(ctx, post.ID))

	var live int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&live).Error)
	assert.Zero(t, live)

	// Soft delete: the rows are retained but marked.
	var marked int64
	require.NoError(t, db.Unscoped().Model(&models.Comment{}).
		Where("post_id = ? AND deleted_at IS NOT NULL", post.ID).Count(&marked).Error)
	assert.EqualValues(t, 2, marked)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	leo := insertUser(t, db, "leo")
	mira := insertUser(t, db, "mira")

	leoPost := insertPost(t, db, leo.ID, "by leo")
	miraPost := insertPost(t, db, mira.ID, "by mira")
	insertComment(t, db, leoPost.ID, mira.ID, "mira on leo's post")
	insertComment(t, db, miraPost.ID, leo.ID, "leo on mira's post")
	require.NoError(t, db.Create(&models.Follow{UserID: leo.ID, AuthorID: mira.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{UserID: mira.ID, AuthorID: leo.ID}).Error)

	require.NoError(t, repo.Delete(ctx, leo.ID))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("author_id = ?", leo.ID).Count(&count).Error)
	assert.Zero(t, count, "leo's posts")

	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", leoPost.ID).Count(&count).Error)
	assert.Zero(t, count, "comments on leo's posts")

	require.NoError(t, db.Model(&models.Comment{}).Where("author_id = ?", leo.ID).Count(&count).Error)
	assert.Zero(t, count, "comments leo wrote")

	require.NoError(t, db.Model(&models.Follow{}).
		Where("user_id = ? OR author_id = ?", leo.ID, leo.ID).Count(&count).Error)
	assert.Zero(t, count, "follow rows in either direction")

	// Mira and her post are untouched.
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", miraPost.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", mira.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGroupRepository_DeleteClearsPosts(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	leo := insertUser(t, db, "leo")
	group := &models.Group{Title: "Travel", Slug: "travel"}
	require.NoError(t, db.Create(group).Error)

	post := insertPost(t, db, leo.ID, "grouped")
	require.NoError(t, db.Model(post).Update("group_id", group.ID).Error)

	require.NoError(t, repo.Delete(ctx, group.ID))

	var reloaded models.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Nil(t, reloaded.GroupID)
}
