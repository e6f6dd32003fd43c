package matching

import (
	"context"

	"github.com/inkmatch/inkmatch/backend/internal/repositories"
)

// Enricher attaches profile info, style names, photo paths and like counts
// to a page of provider ids. All lookups are batched and keyed by the page
// ids only, so enrichment cost is bounded by the page size no matter how
// large the tier was.
type Enricher struct {
	providers repositories.ProviderRepository
	styles    repositories.StyleRepository
	photos    repositories.PhotoRepository
	likes     repositories.LikeRepository
}

// NewEnricher creates a new Enricher
func NewEnricher(
	providers repositories.ProviderRepository,
	styles repositories.StyleRepository,
	photos repositories.PhotoRepository,
	likes repositories.LikeRepository,
) *Enricher {
	return &Enricher{providers: providers, styles: styles, photos: photos, likes: likes}
}

// Enrich builds the ProviderCards for a page, preserving the page order.
// A provider without styles or photos gets empty lists.
func (e *Enricher) Enrich(ctx context.Context, pageIDs []int64) ([]ProviderCard, error) {
	cards := make([]ProviderCard, 0, len(pageIDs))
	if len(pageIDs) == 0 {
		return cards, nil
	}

	profiles, err := e.providers.GetProvidersByIDs(ctx, pageIDs)
	if err != nil {
		return nil, err
	}
	styleNames, err := e.styles.GetStyleNamesByProviderIDs(ctx, pageIDs)
	if err != nil {
		return nil, err
	}
	photoPaths, err := e.photos.GetPhotoPathsByProviderIDs(ctx, pageIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := e.likes.CountByProviderIDs(ctx, pageIDs)
	if err != nil {
		return nil, err
	}

	profileByID := make(map[int64]int, len(profiles))
	for i, profile := range profiles {
		profileByID[profile.ID] = i
	}
	for _, id := range pageIDs {
		i, ok := profileByID[id]
		if !ok {
			// Deleted between ranking and enrichment; drop from the page.
			continue
		}
		profile := profiles[i]
		styles := styleNames[id]
		if styles == nil {
			styles = []string{}
		}
		photos := photoPaths[id]
		if photos == nil {
			photos = []string{}
		}
		cards = append(cards, ProviderCard{
			ProviderID: profile.ID,
			Name:       profile.Name,
			City:       profile.City,
			About:      profile.About,
			Styles:     styles,
			Photos:     photos,
			LikeCount:  likeCounts[id],
		})
	}
	return cards, nil
}
