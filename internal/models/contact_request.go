package models

import "time"

// ContactRequest records a requester asking for a provider's contact card.
// Unique per pair, so the contact-request counter counts distinct requesters.
type ContactRequest struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	RequesterID int64     `json:"requester_id" gorm:"index;uniqueIndex:uniq_requester_provider_contact"`
	ProviderID  int64     `json:"provider_id" gorm:"index;uniqueIndex:uniq_requester_provider_contact"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateContactRequestRequest defines the request body for requesting contacts
type CreateContactRequestRequest struct {
	ProviderID int64 `json:"provider_id" validate:"required"`
}
