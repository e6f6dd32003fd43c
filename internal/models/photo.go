package models

// ProviderPhoto is one stored photo of a provider's work. Insertion order is
// preserved through the autoincrement id.
type ProviderPhoto struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	ProviderID int64  `json:"provider_id" gorm:"index"`
	Path       string `json:"path" gorm:"size:400"`
}

// ReplacePhotosRequest defines the request body for replacing a provider's photos
type ReplacePhotosRequest struct {
	PhotoPaths []string `json:"photo_paths" validate:"required,min=1,max=10,dive,max=400"`
}
