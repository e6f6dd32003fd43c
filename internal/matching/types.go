// Package matching implements the tiered candidate search over provider
// profiles: per-tier candidate selection, like-count ranking, windowed
// pagination and page-bounded enrichment.
package matching

import "errors"

// Tier is one of the three fallback candidate pools, tried in priority
// order by the presentation layer.
type Tier string

const (
	// TierAll matches by city, tattoo type and style set.
	TierAll Tier = "all"
	// TierCity is the same-city remainder that failed the TierAll match.
	TierCity Tier = "city"
	// TierNone applies the TierAll filters to providers outside the
	// requester's city.
	TierNone Tier = "none"
)

// ParseTier maps a tier token to a Tier. Unknown tokens report false;
// callers answer those with an empty page rather than an error.
func ParseTier(token string) (Tier, bool) {
	switch Tier(token) {
	case TierAll, TierCity, TierNone:
		return Tier(token), true
	default:
		return "", false
	}
}

// ErrProviderNotFound is returned by LikeProvider when the target provider
// does not exist.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderCard is the enriched result record returned to the caller.
type ProviderCard struct {
	ProviderID int64    `json:"provider_id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	About      string   `json:"about"`
	Styles     []string `json:"styles"`
	Photos     []string `json:"photos"`
	LikeCount  int64    `json:"like_count"`
}
