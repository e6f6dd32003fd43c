package models

import "time"

// Complaint is a report a requester files against a provider. One complaint
// per pair; repeats are silently ignored.
type Complaint struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	RequesterID int64     `json:"requester_id" gorm:"index;uniqueIndex:uniq_requester_provider_complaint"`
	ProviderID  int64     `json:"provider_id" gorm:"index;uniqueIndex:uniq_requester_provider_complaint"`
	Text        string    `json:"text" gorm:"size:1200"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateComplaintRequest defines the request body for filing a complaint
type CreateComplaintRequest struct {
	ProviderID int64  `json:"provider_id" validate:"required"`
	Text       string `json:"text" validate:"required,max=1200"`
}
