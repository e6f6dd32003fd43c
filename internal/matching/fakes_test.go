package matching

import (
	"context"
	"sort"
	"time"

	"github.com/inkmatch/inkmatch/backend/internal/models"
)

type likeKey struct {
	requesterID int64
	providerID  int64
}

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// implements every repository interface the engine touches so a single
// fixture can back selector, ranker, enricher and engine tests.
type fakeStore struct {
	requesters      map[int64]models.Requester
	providers       []models.Provider
	providerStyles  map[int64][]int
	requesterStyles map[int64][]int
	styleNames      map[int]string
	photos          map[int64][]string
	likes           map[likeKey]bool

	// failWith, when set, is returned by every read so callers can assert
	// store failures propagate instead of degrading to an empty page.
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		requesters:      make(map[int64]models.Requester),
		providerStyles:  make(map[int64][]int),
		requesterStyles: make(map[int64][]int),
		styleNames:      make(map[int]string),
		photos:          make(map[int64][]string),
		likes:           make(map[likeKey]bool),
	}
}

func (s *fakeStore) addRequester(r models.Requester, styleIDs ...int) {
	s.requesters[r.ID] = r
	s.requesterStyles[r.ID] = styleIDs
}

func (s *fakeStore) addProvider(p models.Provider, styleIDs ...int) {
	s.providers = append(s.providers, p)
	s.providerStyles[p.ID] = styleIDs
}

func (s *fakeStore) addLike(requesterID, providerID int64) {
	s.likes[likeKey{requesterID, providerID}] = true
}

// --- RequesterRepository ---

func (s *fakeStore) CreateRequester(_ context.Context, r *models.Requester) error {
	s.requesters[r.ID] = *r
	return nil
}

func (s *fakeStore) GetRequesterByID(_ context.Context, id int64) (*models.Requester, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	r, ok := s.requesters[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *fakeStore) RequesterExists(_ context.Context, id int64) (bool, error) {
	if s.failWith != nil {
		return false, s.failWith
	}
	_, ok := s.requesters[id]
	return ok, nil
}

func (s *fakeStore) DeleteRequester(_ context.Context, id int64) error {
	delete(s.requesters, id)
	return nil
}

func (s *fakeStore) SetAdvertisingAllowed(context.Context, int64, bool) error { return nil }
func (s *fakeStore) SetModel(context.Context, int64, bool) error              { return nil }
func (s *fakeStore) SetConsentGiven(context.Context, int64, bool) error       { return nil }

// --- ProviderRepository ---

func (s *fakeStore) CreateProvider(_ context.Context, p *models.Provider) error {
	s.providers = append(s.providers, *p)
	return nil
}

func (s *fakeStore) GetProviderByID(_ context.Context, id int64) (*models.Provider, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for _, p := range s.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) ProviderExists(_ context.Context, id int64) (bool, error) {
	if s.failWith != nil {
		return false, s.failWith
	}
	for _, p := range s.providers {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) GetProvidersByIDs(_ context.Context, ids []int64) ([]models.Provider, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []models.Provider
	for _, p := range s.providers {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) GetActiveProvidersByCity(_ context.Context, city string) ([]models.Provider, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Provider
	for _, p := range s.providers {
		if !p.IsBlocked && p.City == city {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) GetActiveProvidersOutsideCity(_ context.Context, city string) ([]models.Provider, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Provider
	for _, p := range s.providers {
		if !p.IsBlocked && p.City != city {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) GetNewProvidersByCity(_ context.Context, city string, since time.Time) ([]models.Provider, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var out []models.Provider
	for _, p := range s.providers {
		if !p.IsBlocked && p.City == city && p.RegisteredAt.After(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) GetFakeProviders(_ context.Context) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range s.providers {
		if p.IsFake {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdateUsername(context.Context, int64, string) error           { return nil }
func (s *fakeStore) UpdateURL(context.Context, int64, string) error                { return nil }
func (s *fakeStore) UpdateName(context.Context, int64, string) error               { return nil }
func (s *fakeStore) UpdateCity(context.Context, int64, string) error               { return nil }
func (s *fakeStore) UpdateAbout(context.Context, int64, string) error              { return nil }
func (s *fakeStore) UpdateTattooType(context.Context, int64, models.TattooType) error {
	return nil
}
func (s *fakeStore) UpdatePhoneNumber(context.Context, int64, string) error     { return nil }
func (s *fakeStore) SetNotificationsAllowed(context.Context, int64, bool) error { return nil }
func (s *fakeStore) SetBlocked(context.Context, int64, bool) error              { return nil }
func (s *fakeStore) DeleteProvider(context.Context, int64) error                { return nil }

// --- StyleRepository ---

func (s *fakeStore) SeedStyles(_ context.Context, styles []models.Style) error {
	for _, st := range styles {
		s.styleNames[st.ID] = st.Name
	}
	return nil
}

func (s *fakeStore) GetStyles(_ context.Context) ([]models.Style, error) {
	var out []models.Style
	for id, name := range s.styleNames {
		if id == models.WildcardStyleID {
			continue
		}
		out = append(out, models.Style{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) MaxStyleID(_ context.Context) (int, error) {
	max := 0
	for id := range s.styleNames {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (s *fakeStore) GetRequesterStyleIDs(_ context.Context, requesterID int64) ([]int, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.requesterStyles[requesterID], nil
}

func (s *fakeStore) GetStyleIDsByProviderIDs(_ context.Context, providerIDs []int64) (map[int64][]int, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make(map[int64][]int)
	for _, id := range providerIDs {
		if styles := s.providerStyles[id]; len(styles) > 0 {
			out[id] = styles
		}
	}
	return out, nil
}

func (s *fakeStore) GetStyleNamesByProviderIDs(_ context.Context, providerIDs []int64) (map[int64][]string, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make(map[int64][]string)
	for _, id := range providerIDs {
		for _, styleID := range s.providerStyles[id] {
			if name, ok := s.styleNames[styleID]; ok {
				out[id] = append(out[id], name)
			}
		}
	}
	return out, nil
}

func (s *fakeStore) ReplaceProviderStyles(_ context.Context, providerID int64, styleIDs []int) error {
	s.providerStyles[providerID] = styleIDs
	return nil
}

func (s *fakeStore) ReplaceRequesterStyles(_ context.Context, requesterID int64, styleIDs []int) error {
	s.requesterStyles[requesterID] = styleIDs
	return nil
}

// --- PhotoRepository ---

func (s *fakeStore) ReplaceProviderPhotos(_ context.Context, providerID int64, paths []string) error {
	s.photos[providerID] = paths
	return nil
}

func (s *fakeStore) GetPhotoPathsByProviderID(_ context.Context, providerID int64) ([]string, error) {
	return s.photos[providerID], nil
}

func (s *fakeStore) GetPhotoPathsByProviderIDs(_ context.Context, providerIDs []int64) (map[int64][]string, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make(map[int64][]string)
	for _, id := range providerIDs {
		if paths := s.photos[id]; len(paths) > 0 {
			out[id] = paths
		}
	}
	return out, nil
}

func (s *fakeStore) DeleteProviderPhotos(_ context.Context, providerID int64) error {
	delete(s.photos, providerID)
	return nil
}

// --- LikeRepository ---

func (s *fakeStore) CreateLike(_ context.Context, requesterID, providerID int64) (bool, error) {
	if s.failWith != nil {
		return false, s.failWith
	}
	key := likeKey{requesterID, providerID}
	if s.likes[key] {
		return false, nil
	}
	s.likes[key] = true
	return true, nil
}

func (s *fakeStore) DeleteLike(_ context.Context, requesterID, providerID int64) (bool, error) {
	key := likeKey{requesterID, providerID}
	if !s.likes[key] {
		return false, nil
	}
	delete(s.likes, key)
	return true, nil
}

func (s *fakeStore) CountByProviderID(_ context.Context, providerID int64) (int64, error) {
	var count int64
	for key := range s.likes {
		if key.providerID == providerID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) CountByProviderIDs(_ context.Context, providerIDs []int64) (map[int64]int64, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	wanted := make(map[int64]bool, len(providerIDs))
	for _, id := range providerIDs {
		wanted[id] = true
	}
	out := make(map[int64]int64)
	for key := range s.likes {
		if wanted[key.providerID] {
			out[key.providerID]++
		}
	}
	return out, nil
}

func (s *fakeStore) GetLikedProviderIDs(_ context.Context, requesterID int64) ([]int64, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	blocked := make(map[int64]bool)
	for _, p := range s.providers {
		if p.IsBlocked {
			blocked[p.ID] = true
		}
	}
	var out []int64
	for key := range s.likes {
		if key.requesterID == requesterID && !blocked[key.providerID] {
			out = append(out, key.providerID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
