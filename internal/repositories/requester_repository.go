package repositories

import (
	"context"
	"errors"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// RequesterRepository defines the interface for requester data operations.
// GetRequesterByID returns (nil, nil) when the requester does not exist.
type RequesterRepository interface {
	CreateRequester(ctx context.Context, requester *models.Requester) error
	GetRequesterByID(ctx context.Context, id int64) (*models.Requester, error)
	RequesterExists(ctx context.Context, id int64) (bool, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateCity(ctx context.Context, id int64, city string) error
	UpdateTattooType(ctx context.Context, id int64, tattooType models.TattooType) error
	SetAdvertisingAllowed(ctx context.Context, id int64, allowed bool) error
	SetModel(ctx context.Context, id int64, isModel bool) error
	SetConsentGiven(ctx context.Context, id int64, given bool) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	DeleteRequester(ctx context.Context, id int64) error
}

// PostgresRequesterRepository implements RequesterRepository for PostgreSQL
type PostgresRequesterRepository struct {
	db *gorm.DB
}

// NewPostgresRequesterRepository creates a new PostgresRequesterRepository
func NewPostgresRequesterRepository(db *gorm.DB) *PostgresRequesterRepository {
	return &PostgresRequesterRepository{db: db}
}

// CreateRequester creates a new requester in PostgreSQL
func (r *PostgresRequesterRepository) CreateRequester(ctx context.Context, requester *models.Requester) error {
	return r.db.WithContext(ctx).Create(requester).Error
}

// GetRequesterByID retrieves a requester by ID, nil when absent
func (r *PostgresRequesterRepository) GetRequesterByID(ctx context.Context, id int64) (*models.Requester, error) {
	var requester models.Requester
	err := r.db.WithContext(ctx).First(&requester, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &requester, nil
}

// RequesterExists checks whether a requester row exists
func (r *PostgresRequesterRepository) RequesterExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Requester{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUsername updates a requester's username
func (r *PostgresRequesterRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return r.updateColumn(ctx, id, "username", username)
}

// UpdateName updates a requester's display name
func (r *PostgresRequesterRepository) UpdateName(ctx context.Context, id int64, name string) error {
	return r.updateColumn(ctx, id, "name", name)
}

// UpdateCity updates a requester's city
func (r *PostgresRequesterRepository) UpdateCity(ctx context.Context, id int64, city string) error {
	return r.updateColumn(ctx, id, "city", city)
}

// UpdateTattooType updates a requester's tattoo type preference
func (r *PostgresRequesterRepository) UpdateTattooType(ctx context.Context, id int64, tattooType models.TattooType) error {
	return r.updateColumn(ctx, id, "tattoo_type", tattooType)
}

// SetAdvertisingAllowed updates a requester's advertising consent flag
func (r *PostgresRequesterRepository) SetAdvertisingAllowed(ctx context.Context, id int64, allowed bool) error {
	return r.updateColumn(ctx, id, "is_advertising_allowed", allowed)
}

// SetModel updates a requester's model-willingness flag
func (r *PostgresRequesterRepository) SetModel(ctx context.Context, id int64, isModel bool) error {
	return r.updateColumn(ctx, id, "is_model", isModel)
}

// SetConsentGiven updates a requester's usage-consent flag
func (r *PostgresRequesterRepository) SetConsentGiven(ctx context.Context, id int64, given bool) error {
	return r.updateColumn(ctx, id, "is_consent_given", given)
}

// SetBlocked blocks or unblocks a requester
func (r *PostgresRequesterRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return r.updateColumn(ctx, id, "is_blocked", blocked)
}

// DeleteRequester deletes a requester and its dependent rows
func (r *PostgresRequesterRepository) DeleteRequester(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.RequesterStyle{}, &models.Like{}, &models.Complaint{}, &models.ContactRequest{},
		} {
			if err := tx.Where("requester_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Requester{}, id).Error
	})
}

func (r *PostgresRequesterRepository) updateColumn(ctx context.Context, id int64, column string, value interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Requester{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
