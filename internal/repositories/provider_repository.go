package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"gorm.io/gorm"
)

// ProviderRepository defines the interface for provider data operations.
// Lookup methods return (nil, nil) when the provider does not exist so
// callers can tell "absent" apart from a store failure.
type ProviderRepository interface {
	CreateProvider(ctx context.Context, provider *models.Provider) error
	GetProviderByID(ctx context.Context, id int64) (*models.Provider, error)
	ProviderExists(ctx context.Context, id int64) (bool, error)
	GetProvidersByIDs(ctx context.Context, ids []int64) ([]models.Provider, error)
	GetActiveProvidersByCity(ctx context.Context, city string) ([]models.Provider, error)
	GetActiveProvidersOutsideCity(ctx context.Context, city string) ([]models.Provider, error)
	GetNewProvidersByCity(ctx context.Context, city string, since time.Time) ([]models.Provider, error)
	GetFakeProviders(ctx context.Context) ([]models.Provider, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdateURL(ctx context.Context, id int64, url string) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateCity(ctx context.Context, id int64, city string) error
	UpdateAbout(ctx context.Context, id int64, about string) error
	UpdateTattooType(ctx context.Context, id int64, tattooType models.TattooType) error
	UpdatePhoneNumber(ctx context.Context, id int64, phoneNumber string) error
	SetNotificationsAllowed(ctx context.Context, id int64, allowed bool) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	DeleteProvider(ctx context.Context, id int64) error
}

// PostgresProviderRepository implements ProviderRepository for PostgreSQL
type PostgresProviderRepository struct {
	db *gorm.DB
}

// NewPostgresProviderRepository creates a new PostgresProviderRepository
func NewPostgresProviderRepository(db *gorm.DB) *PostgresProviderRepository {
	return &PostgresProviderRepository{db: db}
}

// CreateProvider creates a new provider in PostgreSQL
func (r *PostgresProviderRepository) CreateProvider(ctx context.Context, provider *models.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

// GetProviderByID retrieves a provider by ID, nil when absent
func (r *PostgresProviderRepository) GetProviderByID(ctx context.Context, id int64) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.WithContext(ctx).First(&provider, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// ProviderExists checks whether a provider row exists
func (r *PostgresProviderRepository) ProviderExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Provider{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetProvidersByIDs retrieves the providers whose ids are in the given set
func (r *PostgresProviderRepository) GetProvidersByIDs(ctx context.Context, ids []int64) ([]models.Provider, error) {
	var providers []models.Provider
	if len(ids) == 0 {
		return providers, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// GetActiveProvidersByCity retrieves all non-blocked providers in a city
func (r *PostgresProviderRepository) GetActiveProvidersByCity(ctx context.Context, city string) ([]models.Provider, error) {
	var providers []models.Provider
	if err := r.db.WithContext(ctx).Where("city = ? AND is_blocked = ?", city, false).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// GetActiveProvidersOutsideCity retrieves all non-blocked providers outside a city
func (r *PostgresProviderRepository) GetActiveProvidersOutsideCity(ctx context.Context, city string) ([]models.Provider, error) {
	var providers []models.Provider
	if err := r.db.WithContext(ctx).Where("city <> ? AND is_blocked = ?", city, false).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// GetNewProvidersByCity retrieves non-blocked providers in a city registered after `since`
func (r *PostgresProviderRepository) GetNewProvidersByCity(ctx context.Context, city string, since time.Time) ([]models.Provider, error) {
	var providers []models.Provider
	err := r.db.WithContext(ctx).
		Where("city = ? AND is_blocked = ? AND registered_at > ?", city, false, since).
		Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

// GetFakeProviders retrieves all admin-created provider profiles
func (r *PostgresProviderRepository) GetFakeProviders(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	if err := r.db.WithContext(ctx).Where("is_fake = ?", true).Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// UpdateUsername updates a provider's username
func (r *PostgresProviderRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	return r.updateColumn(ctx, id, "username", username)
}

// UpdateURL updates a provider's profile URL
func (r *PostgresProviderRepository) UpdateURL(ctx context.Context, id int64, url string) error {
	return r.updateColumn(ctx, id, "url", url)
}

// UpdateName updates a provider's display name
func (r *PostgresProviderRepository) UpdateName(ctx context.Context, id int64, name string) error {
	return r.updateColumn(ctx, id, "name", name)
}

// UpdateCity updates a provider's city
func (r *PostgresProviderRepository) UpdateCity(ctx context.Context, id int64, city string) error {
	return r.updateColumn(ctx, id, "city", city)
}

// UpdateAbout updates a provider's about text
func (r *PostgresProviderRepository) UpdateAbout(ctx context.Context, id int64, about string) error {
	return r.updateColumn(ctx, id, "about", about)
}

// UpdateTattooType updates a provider's tattoo type
func (r *PostgresProviderRepository) UpdateTattooType(ctx context.Context, id int64, tattooType models.TattooType) error {
	return r.updateColumn(ctx, id, "tattoo_type", tattooType)
}

// UpdatePhoneNumber updates a provider's phone number
func (r *PostgresProviderRepository) UpdatePhoneNumber(ctx context.Context, id int64, phoneNumber string) error {
	return r.updateColumn(ctx, id, "phone_number", phoneNumber)
}

// SetNotificationsAllowed updates a provider's like-notification consent flag
func (r *PostgresProviderRepository) SetNotificationsAllowed(ctx context.Context, id int64, allowed bool) error {
	return r.updateColumn(ctx, id, "is_notifications_allowed", allowed)
}

// SetBlocked blocks or unblocks a provider
func (r *PostgresProviderRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	return r.updateColumn(ctx, id, "is_blocked", blocked)
}

// DeleteProvider deletes a provider and its dependent rows
func (r *PostgresProviderRepository) DeleteProvider(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []interface{}{
			&models.ProviderStyle{}, &models.ProviderPhoto{}, &models.Like{},
			&models.Complaint{}, &models.ContactRequest{},
		} {
			if err := tx.Where("provider_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Provider{}, id).Error
	})
}

func (r *PostgresProviderRepository) updateColumn(ctx context.Context, id int64, column string, value interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Provider{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
