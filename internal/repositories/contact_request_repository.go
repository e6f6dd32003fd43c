package repositories

import (
	"context"
	"errors"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// ContactRequestRepository defines the interface for contact request data
// operations. A repeat request for the same pair is ignored, not an error.
type ContactRequestRepository interface {
	CreateContactRequest(ctx context.Context, requesterID, providerID int64) error
	CountByProviderID(ctx context.Context, providerID int64) (int64, error)
}

// PostgresContactRequestRepository implements ContactRequestRepository for PostgreSQL
type PostgresContactRequestRepository struct {
	db *gorm.DB
}

// NewPostgresContactRequestRepository creates a new PostgresContactRequestRepository
func NewPostgresContactRequestRepository(db *gorm.DB) *PostgresContactRequestRepository {
	return &PostgresContactRequestRepository{db: db}
}

// CreateContactRequest stores a contact request, ignoring a duplicate pair
func (r *PostgresContactRequestRepository) CreateContactRequest(ctx context.Context, requesterID, providerID int64) error {
	request := models.ContactRequest{RequesterID: requesterID, ProviderID: providerID}
	err := r.db.WithContext(ctx).Create(&request).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// CountByProviderID retrieves the contact request count of a provider
func (r *PostgresContactRequestRepository) CountByProviderID(ctx context.Context, providerID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ContactRequest{}).Where("provider_id = ?", providerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
