package repositories

import (
	"context"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// StatsRepository defines the interface for aggregate counter reads
type StatsRepository interface {
	GetProviderStats(ctx context.Context, providerID int64) (*models.ProviderStats, error)
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}

// PostgresStatsRepository implements StatsRepository for PostgreSQL
type PostgresStatsRepository struct {
	db *gorm.DB
}

// NewPostgresStatsRepository creates a new PostgresStatsRepository
func NewPostgresStatsRepository(db *gorm.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// GetProviderStats retrieves the like, complaint and contact request counters of one provider
func (r *PostgresStatsRepository) GetProviderStats(ctx context.Context, providerID int64) (*models.ProviderStats, error) {
	var stats models.ProviderStats
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Like{}).Where("provider_id = ?", providerID).Count(&stats.Likes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).Where("provider_id = ?", providerID).Count(&stats.Complaints).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.ContactRequest{}).Where("provider_id = ?", providerID).Count(&stats.ContactRequests).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetAdminStats retrieves the global entity counters
func (r *PostgresStatsRepository) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	db := r.db.WithContext(ctx)
	counters := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Provider{}, &stats.Providers},
		{&models.Requester{}, &stats.Requesters},
		{&models.Like{}, &stats.Likes},
		{&models.Complaint{}, &stats.Complaints},
		{&models.ContactRequest{}, &stats.ContactRequests},
	}
	for _, counter := range counters {
		if err := db.Model(counter.model).Count(counter.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
