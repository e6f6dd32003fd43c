package models

// WildcardStyleID is the reserved style id meaning "all styles". A requester
// holding only this id matches every active provider; a provider holding it
// matches any requester's style set.
const WildcardStyleID = 0

// Style is one entry of the static tattoo style catalog.
type Style struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"size:70"`
}

// ProviderStyle links a provider to a style they work in.
type ProviderStyle struct {
	ID         uint  `json:"-" gorm:"primaryKey"`
	ProviderID int64 `json:"provider_id" gorm:"index;uniqueIndex:uniq_provider_style"`
	StyleID    int   `json:"style_id" gorm:"uniqueIndex:uniq_provider_style"`
}

// RequesterStyle links a requester to a style they chose.
type RequesterStyle struct {
	ID          uint  `json:"-" gorm:"primaryKey"`
	RequesterID int64 `json:"requester_id" gorm:"index;uniqueIndex:uniq_requester_style"`
	StyleID     int   `json:"style_id" gorm:"uniqueIndex:uniq_requester_style"`
}

// ReplaceStylesRequest defines the request body for replacing a style selection
type ReplaceStylesRequest struct {
	StyleIDs []int `json:"style_ids" validate:"required,min=1"`
}

// NormalizeStyleIDs deduplicates a style selection and drops ids outside the
// catalog range [WildcardStyleID, maxID]. If the wildcard id is present the
// whole selection collapses to just the wildcard.
func NormalizeStyleIDs(styleIDs []int, maxID int) []int {
	seen := make(map[int]bool, len(styleIDs))
	normalized := make([]int, 0, len(styleIDs))
	for _, id := range styleIDs {
		if id == WildcardStyleID {
			return []int{WildcardStyleID}
		}
		if id < WildcardStyleID || id > maxID || seen[id] {
			continue
		}
		seen[id] = true
		normalized = append(normalized, id)
	}
	return normalized
}
