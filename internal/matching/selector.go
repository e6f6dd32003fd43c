package matching

import (
	"context"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
)

// CandidateSelector computes the per-tier sets of eligible provider ids for
// a requester. The three tiers are pairwise disjoint: "all" is the strict
// match inside the requester's city, "city" is the same-city remainder, and
// "none" applies the strict match to every other city.
type CandidateSelector struct {
	providers repositories.ProviderRepository
	styles    repositories.StyleRepository
}

// NewCandidateSelector creates a new CandidateSelector
func NewCandidateSelector(providers repositories.ProviderRepository, styles repositories.StyleRepository) *CandidateSelector {
	return &CandidateSelector{providers: providers, styles: styles}
}

// Select returns the candidate ids of one tier for the given requester and
// their chosen style ids. An unknown tier yields an empty set, not an error.
func (s *CandidateSelector) Select(ctx context.Context, requester *models.Requester, styleIDs []int, tier Tier) ([]int64, error) {
	switch tier {
	case TierAll:
		inCity, err := s.providers.GetActiveProvidersByCity(ctx, requester.City)
		if err != nil {
			return nil, err
		}
		return s.eligible(ctx, inCity, requester.TattooType, styleIDs)
	case TierCity:
		inCity, err := s.providers.GetActiveProvidersByCity(ctx, requester.City)
		if err != nil {
			return nil, err
		}
		matched, err := s.eligible(ctx, inCity, requester.TattooType, styleIDs)
		if err != nil {
			return nil, err
		}
		matchedSet := make(map[int64]bool, len(matched))
		for _, id := range matched {
			matchedSet[id] = true
		}
		remainder := make([]int64, 0, len(inCity)-len(matched))
		for _, provider := range inCity {
			if !matchedSet[provider.ID] {
				remainder = append(remainder, provider.ID)
			}
		}
		return remainder, nil
	case TierNone:
		outside, err := s.providers.GetActiveProvidersOutsideCity(ctx, requester.City)
		if err != nil {
			return nil, err
		}
		return s.eligible(ctx, outside, requester.TattooType, styleIDs)
	default:
		return nil, nil
	}
}

// eligible filters a city-scoped provider snapshot down to the ids matching
// the requester's tattoo type and style set.
func (s *CandidateSelector) eligible(ctx context.Context, scope []models.Provider, preference models.TattooType, styleIDs []int) ([]int64, error) {
	typed := make([]int64, 0, len(scope))
	for _, provider := range scope {
		if TypeCompatible(preference, provider.TattooType) {
			typed = append(typed, provider.ID)
		}
	}
	if len(typed) == 0 {
		return nil, nil
	}

	providerStyles, err := s.styles.GetStyleIDsByProviderIDs(ctx, typed)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int]bool, len(styleIDs))
	for _, id := range styleIDs {
		wanted[id] = true
	}
	// A requester whose selection is exactly the wildcard matches every
	// provider that has at least one style row.
	wildcardRequester := len(styleIDs) == 1 && styleIDs[0] == models.WildcardStyleID

	matched := make([]int64, 0, len(typed))
	for _, id := range typed {
		owned := providerStyles[id]
		if len(owned) == 0 {
			continue
		}
		if wildcardRequester {
			matched = append(matched, id)
			continue
		}
		for _, styleID := range owned {
			// A provider holding the wildcard style works in all styles.
			if styleID == models.WildcardStyleID || wanted[styleID] {
				matched = append(matched, id)
				break
			}
		}
	}
	return matched, nil
}
