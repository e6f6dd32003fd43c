package repositories

import (
	"context"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// PhotoRepository defines the interface for provider photo data operations
type PhotoRepository interface {
	ReplaceProviderPhotos(ctx context.Context, providerID int64, paths []string) error
	GetPhotoPathsByProviderID(ctx context.Context, providerID int64) ([]string, error)
	GetPhotoPathsByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64][]string, error)
	DeleteProviderPhotos(ctx context.Context, providerID int64) error
}

// PostgresPhotoRepository implements PhotoRepository for PostgreSQL
type PostgresPhotoRepository struct {
	db *gorm.DB
}

// NewPostgresPhotoRepository creates a new PostgresPhotoRepository
func NewPostgresPhotoRepository(db *gorm.DB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{db: db}
}

// ReplaceProviderPhotos replaces a provider's photo set, keeping the given order
func (r *PostgresPhotoRepository) ReplaceProviderPhotos(ctx context.Context, providerID int64, paths []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).Delete(&models.ProviderPhoto{}).Error; err != nil {
			return err
		}
		for _, path := range paths {
			if err := tx.Create(&models.ProviderPhoto{ProviderID: providerID, Path: path}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPhotoPathsByProviderID retrieves a provider's photo paths in stored order
func (r *PostgresPhotoRepository) GetPhotoPathsByProviderID(ctx context.Context, providerID int64) ([]string, error) {
	var paths []string
	err := r.db.WithContext(ctx).Model(&models.ProviderPhoto{}).
		Where("provider_id = ?", providerID).
		Order("id").
		Pluck("path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// GetPhotoPathsByProviderIDs retrieves photo paths per provider for the given
// id set. Providers without photos are absent from the map.
func (r *PostgresPhotoRepository) GetPhotoPathsByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(providerIDs))
	if len(providerIDs) == 0 {
		return result, nil
	}
	var rows []models.ProviderPhoto
	err := r.db.WithContext(ctx).
		Where("provider_id IN ?", providerIDs).
		Order("provider_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProviderID] = append(result[row.ProviderID], row.Path)
	}
	return result, nil
}

// DeleteProviderPhotos removes all photos of a provider
func (r *PostgresPhotoRepository) DeleteProviderPhotos(ctx context.Context, providerID int64) error {
	return r.db.WithContext(ctx).Where("provider_id = ?", providerID).Delete(&models.ProviderPhoto{}).Error
}
