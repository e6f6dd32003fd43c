package repositories

import (
	"context"
	"errors"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations. The unique
// (requester_id, provider_id) index is the authority on duplicates: CreateLike
// reports a duplicate as (false, nil), including under concurrent attempts.
type LikeRepository interface {
	CreateLike(ctx context.Context, requesterID, providerID int64) (bool, error)
	DeleteLike(ctx context.Context, requesterID, providerID int64) (bool, error)
	CountByProviderID(ctx context.Context, providerID int64) (int64, error)
	CountByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64]int64, error)
	GetLikedProviderIDs(ctx context.Context, requesterID int64) ([]int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike inserts a like, returning false when the pair already exists
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, requesterID, providerID int64) (bool, error) {
	like := models.Like{RequesterID: requesterID, ProviderID: providerID}
	err := r.db.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteLike removes a like, returning false when no row matched
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, requesterID, providerID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("requester_id = ? AND provider_id = ?", requesterID, providerID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountByProviderID retrieves the like count of a single provider
func (r *PostgresLikeRepository) CountByProviderID(ctx context.Context, providerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("provider_id = ?", providerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProviderIDs retrieves like counts grouped by provider for the given
// id set. Providers without likes are absent from the map; callers treat a
// missing key as zero.
func (r *PostgresLikeRepository) CountByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(providerIDs))
	if len(providerIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		ProviderID int64
		Count      int64
	}
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("provider_id, COUNT(*) AS count").
		Where("provider_id IN ?", providerIDs).
		Group("provider_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProviderID] = row.Count
	}
	return result, nil
}

// GetLikedProviderIDs retrieves the ids of non-blocked providers the
// requester has liked
func (r *PostgresLikeRepository) GetLikedProviderIDs(ctx context.Context, requesterID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Joins("JOIN providers ON providers.id = likes.provider_id AND providers.is_blocked = ?", false).
		Where("likes.requester_id = ?", requesterID).
		Pluck("likes.provider_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
