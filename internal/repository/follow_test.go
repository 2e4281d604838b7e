package repository

import (
	"context"
	"regexp"
	"testing"

	"quill/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFollowRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("New Relation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "follows"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		created, err := repo.Create(ctx, &models.Follow{UserID: 1, AuthorID: 2})
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Following", func(t *testing.T) {
		// ON CONFLICT DO NOTHING: the duplicate insert returns no row.
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "follows"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		created, err := repo.Create(ctx, &models.Follow{UserID: 1, AuthorID: 2})
		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	t.Run("Existing Relation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE user_id = $1 AND author_id = $2`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		deleted, err := repo.Delete(ctx, 1, 2)
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent Relation", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "follows" WHERE user_id = $1 AND author_id = $2`)).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		deleted, err := repo.Delete(ctx, 1, 2)
		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_Exists(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "follows" WHERE user_id = $1 AND author_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	following, err := repo.Exists(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, following)
	assert.NoError(t, mock.ExpectationsWereMet())
}
