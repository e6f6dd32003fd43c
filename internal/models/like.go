package models

import "time"

// Like is a requester's endorsement of a provider. The unique index keeps a
// pair from being stored twice even under concurrent attempts; the count of
// likes per provider is the ranking signal.
type Like struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	RequesterID int64     `json:"requester_id" gorm:"index;uniqueIndex:uniq_requester_provider_like"`
	ProviderID  int64     `json:"provider_id" gorm:"index;uniqueIndex:uniq_requester_provider_like"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateLikeRequest defines the request body for liking a provider
type CreateLikeRequest struct {
	ProviderID int64 `json:"provider_id" validate:"required"`
}
