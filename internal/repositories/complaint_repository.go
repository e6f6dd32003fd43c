package repositories

import (
	"context"
	"errors"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// ComplaintRepository defines the interface for complaint data operations.
// A repeat complaint for the same pair is ignored, not an error.
type ComplaintRepository interface {
	CreateComplaint(ctx context.Context, requesterID, providerID int64, text string) error
	CountByProviderID(ctx context.Context, providerID int64) (int64, error)
}

// PostgresComplaintRepository implements ComplaintRepository for PostgreSQL
type PostgresComplaintRepository struct {
	db *gorm.DB
}

// NewPostgresComplaintRepository creates a new PostgresComplaintRepository
func NewPostgresComplaintRepository(db *gorm.DB) *PostgresComplaintRepository {
	return &PostgresComplaintRepository{db: db}
}

// CreateComplaint stores a complaint, ignoring a duplicate pair
func (r *PostgresComplaintRepository) CreateComplaint(ctx context.Context, requesterID, providerID int64, text string) error {
	complaint := models.Complaint{RequesterID: requesterID, ProviderID: providerID, Text: text}
	err := r.db.WithContext(ctx).Create(&complaint).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// CountByProviderID retrieves the complaint count of a provider
func (r *PostgresComplaintRepository) CountByProviderID(ctx context.Context, providerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Complaint{}).Where("provider_id = ?", providerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
