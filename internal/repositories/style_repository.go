package repositories

import (
	"context"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// StyleRepository defines the interface for style catalog and style
// membership data operations. Batch lookups are keyed by the given id set
// only, so their cost is bounded by the caller's page size.
type StyleRepository interface {
	SeedStyles(ctx context.Context, styles []models.Style) error
	GetStyles(ctx context.Context) ([]models.Style, error)
	MaxStyleID(ctx context.Context) (int, error)
	GetRequesterStyleIDs(ctx context.Context, requesterID int64) ([]int, error)
	GetStyleIDsByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64][]int, error)
	GetStyleNamesByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64][]string, error)
	ReplaceProviderStyles(ctx context.Context, providerID int64, styleIDs []int) error
	ReplaceRequesterStyles(ctx context.Context, requesterID int64, styleIDs []int) error
}

// PostgresStyleRepository implements StyleRepository for PostgreSQL
type PostgresStyleRepository struct {
	db *gorm.DB
}

// NewPostgresStyleRepository creates a new PostgresStyleRepository
func NewPostgresStyleRepository(db *gorm.DB) *PostgresStyleRepository {
	return &PostgresStyleRepository{db: db}
}

// SeedStyles inserts catalog entries, skipping ids that already exist
func (r *PostgresStyleRepository) SeedStyles(ctx context.Context, styles []models.Style) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, style := range styles {
			var count int64
			if err := tx.Model(&models.Style{}).Where("id = ?", style.ID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			if err := tx.Create(&style).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetStyles retrieves the public style catalog. The wildcard entry is
// reserved and never listed.
func (r *PostgresStyleRepository) GetStyles(ctx context.Context) ([]models.Style, error) {
	var styles []models.Style
	err := r.db.WithContext(ctx).
		Where("id <> ?", models.WildcardStyleID).
		Order("id").
		Find(&styles).Error
	if err != nil {
		return nil, err
	}
	return styles, nil
}

// MaxStyleID retrieves the highest catalog id, the upper bound for selections
func (r *PostgresStyleRepository) MaxStyleID(ctx context.Context) (int, error) {
	var maxID int
	err := r.db.WithContext(ctx).Model(&models.Style{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID, nil
}

// GetRequesterStyleIDs retrieves the style ids a requester chose
func (r *PostgresStyleRepository) GetRequesterStyleIDs(ctx context.Context, requesterID int64) ([]int, error) {
	var styleIDs []int
	err := r.db.WithContext(ctx).Model(&models.RequesterStyle{}).
		Where("requester_id = ?", requesterID).
		Order("style_id").
		Pluck("style_id", &styleIDs).Error
	if err != nil {
		return nil, err
	}
	return styleIDs, nil
}

// GetStyleIDsByProviderIDs retrieves style ids per provider for the given id set
func (r *PostgresStyleRepository) GetStyleIDsByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64][]int, error) {
	result := make(map[int64][]int, len(providerIDs))
	if len(providerIDs) == 0 {
		return result, nil
	}
	var rows []models.ProviderStyle
	err := r.db.WithContext(ctx).
		Where("provider_id IN ?", providerIDs).
		Order("provider_id, style_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProviderID] = append(result[row.ProviderID], row.StyleID)
	}
	return result, nil
}

// GetStyleNamesByProviderIDs retrieves style names per provider for the given id set
func (r *PostgresStyleRepository) GetStyleNamesByProviderIDs(ctx context.Context, providerIDs []int64) (map[int64][]string, error) {
	result := make(map[int64][]string, len(providerIDs))
	if len(providerIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		ProviderID int64
		Name       string
	}
	err := r.db.WithContext(ctx).Model(&models.ProviderStyle{}).
		Select("provider_styles.provider_id, styles.name").
		Joins("JOIN styles ON styles.id = provider_styles.style_id").
		Where("provider_styles.provider_id IN ?", providerIDs).
		Order("provider_styles.provider_id, provider_styles.style_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProviderID] = append(result[row.ProviderID], row.Name)
	}
	return result, nil
}

// ReplaceProviderStyles replaces a provider's style selection
func (r *PostgresStyleRepository) ReplaceProviderStyles(ctx context.Context, providerID int64, styleIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("provider_id = ?", providerID).Delete(&models.ProviderStyle{}).Error; err != nil {
			return err
		}
		for _, styleID := range styleIDs {
			if err := tx.Create(&models.ProviderStyle{ProviderID: providerID, StyleID: styleID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceRequesterStyles replaces a requester's style selection
func (r *PostgresStyleRepository) ReplaceRequesterStyles(ctx context.Context, requesterID int64, styleIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requester_id = ?", requesterID).Delete(&models.RequesterStyle{}).Error; err != nil {
			return err
		}
		for _, styleID := range styleIDs {
			if err := tx.Create(&models.RequesterStyle{RequesterID: requesterID, StyleID: styleID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
