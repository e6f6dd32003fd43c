package models

import "time"

// Requester represents a person looking for a tattoo artist. Like Provider,
// the ID comes from the messenger account and is not generated here.
type Requester struct {
	ID                   int64      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Username             string     `json:"username,omitempty" gorm:"size:60"`
	URL                  string     `json:"url" gorm:"size:130"`
	Name                 string     `json:"name" gorm:"size:130"`
	City                 string     `json:"city" gorm:"size:70;index"`
	TattooType           TattooType `json:"tattoo_type" gorm:"size:20"`
	RegisteredAt         time.Time  `json:"registered_at" gorm:"autoCreateTime"`
	IsAdvertisingAllowed bool       `json:"is_advertising_allowed" gorm:"default:true"`
	IsModel              bool       `json:"is_model" gorm:"default:false"`
	IsConsentGiven       bool       `json:"is_consent_given" gorm:"default:false"`
	IsBlocked            bool       `json:"is_blocked" gorm:"default:false;index"`
}

// CreateRequesterRequest defines the request body for registering a requester
type CreateRequesterRequest struct {
	ID         int64  `json:"id" validate:"required"`
	Username   string `json:"username"`
	URL        string `json:"url" validate:"required,max=130"`
	Name       string `json:"name" validate:"required,min=2,max=130"`
	City       string `json:"city" validate:"required,max=70"`
	TattooType string `json:"tattoo_type" validate:"required,oneof=color monochrome both"`
	StyleIDs   []int  `json:"style_ids" validate:"required,min=1"`
}

// UpdateRequesterFieldRequest is the requester-side field-update command.
type UpdateRequesterFieldRequest struct {
	Field string `json:"field" validate:"required,oneof=username name city tattoo_type is_advertising_allowed is_model is_consent_given"`
	Value string `json:"value" validate:"required"`
}
