package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB opens a GORM session over a sqlmock connection with the same
// TranslateError setting production uses, so unique-violation translation
// is exercised for real.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestCreateLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WithArgs(int64(1), int64(101), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateLike(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLikeDuplicateIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WithArgs(int64(1), int64(101), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uniq_requester_provider_like"})

	created, err := repo.CreateLike(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLikeInfrastructureFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "likes"`)).
		WithArgs(int64(1), int64(101), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "57P01"})

	_, err := repo.CreateLike(context.Background(), 1, 101)
	assert.Error(t, err)
}

func TestDeleteLike(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(int64(1), int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.DeleteLike(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteLikeNoRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "likes"`)).
		WithArgs(int64(1), int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteLike(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCountByProviderIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT provider_id, COUNT(*) AS count FROM "likes"`)).
		WithArgs(int64(101), int64(102), int64(103)).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id", "count"}).
			AddRow(101, 3).
			AddRow(102, 1))

	counts, err := repo.CountByProviderIDs(context.Background(), []int64{101, 102, 103})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{101: 3, 102: 1}, counts)
	// 103 has no likes; a missing key stands for zero.
	_, ok := counts[103]
	assert.False(t, ok)
}

func TestCountByProviderIDsEmptySet(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	counts, err := repo.CountByProviderIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestGetLikedProviderIDsExcludesBlockedProviders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLikeRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "likes" JOIN providers`).
		WithArgs(false, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id"}).
			AddRow(101).
			AddRow(102))

	ids, err := repo.GetLikedProviderIDs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{101, 102}, ids)
}
