package models

import "time"

// TattooType is the kind of tattoo work a provider offers or a requester wants.
type TattooType string

const (
	TattooTypeColor      TattooType = "color"
	TattooTypeMonochrome TattooType = "monochrome"
	TattooTypeBoth       TattooType = "both"
)

// Provider represents a tattoo artist profile. The ID is the messenger
// account id of the artist and is assigned by the presentation layer,
// never generated here.
type Provider struct {
	ID                     int64      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username               string     `json:"username,omitempty" gorm:"size:70"`
	URL                    string     `json:"url" gorm:"size:140"`
	Name                   string     `json:"name" gorm:"size:130"`
	City                   string     `json:"city" gorm:"size:70;index"`
	About                  string     `json:"about" gorm:"size:850"`
	TattooType             TattooType `json:"tattoo_type" gorm:"size:20"`
	PhoneNumber            string     `json:"-" gorm:"size:13"`
	RegisteredAt           time.Time  `json:"registered_at" gorm:"autoCreateTime"`
	IsNotificationsAllowed bool       `json:"is_notifications_allowed" gorm:"default:false"`
	IsFake                 bool       `json:"is_fake,omitempty" gorm:"default:false"`
	IsBlocked              bool       `json:"is_blocked" gorm:"default:false;index"`
}

// CreateProviderRequest defines the request body for registering a provider
type CreateProviderRequest struct {
	ID          int64    `json:"id" validate:"required"`
	Username    string   `json:"username"`
	URL         string   `json:"url" validate:"required,max=140"`
	Name        string   `json:"name" validate:"required,min=2,max=130"`
	City        string   `json:"city" validate:"required,max=70"`
	About       string   `json:"about" validate:"required,max=850"`
	TattooType  string   `json:"tattoo_type" validate:"required,oneof=color monochrome both"`
	PhoneNumber string   `json:"phone_number" validate:"required,max=13"`
	StyleIDs    []int    `json:"style_ids" validate:"required,min=1"`
	PhotoPaths  []string `json:"photo_paths"`
}

// UpdateProviderFieldRequest is a single field-update command. Field is a
// closed enum; anything outside it is rejected by validation.
type UpdateProviderFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=username url name city about tattoo_type phone_number is_notifications_allowed"`
	Value string `json:"value" validate:"required"`
}

// ProviderContact is the contact card handed out on a contact request.
type ProviderContact struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Username    string `json:"username,omitempty"`
	PhoneNumber string `json:"phone_number"`
}

// ProviderStats aggregates the counters shown to a provider about their profile.
type ProviderStats struct {
	Likes           int64 `json:"likes"`
	Complaints      int64 `json:"complaints"`
	ContactRequests int64 `json:"contact_requests"`
}
