package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/inkmatch/inkmatch/backend/internal/matching"
	"github.com/inkmatch/inkmatch/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMatcher records the arguments of the last call and plays back canned
// results, so handler tests only check the HTTP translation layer.
type fakeMatcher struct {
	cards []matching.ProviderCard
	err   error

	created bool
	likeErr error

	lastTier   string
	lastOffset int
	lastLimit  int
}

func (m *fakeMatcher) RankCandidates(_ context.Context, _ int64, tier string, offset, pageSize int) ([]matching.ProviderCard, error) {
	m.lastTier = tier
	m.lastOffset = offset
	m.lastLimit = pageSize
	return m.cards, m.err
}

func (m *fakeMatcher) RankLiked(_ context.Context, _ int64, offset, pageSize int) ([]matching.ProviderCard, error) {
	m.lastOffset = offset
	m.lastLimit = pageSize
	return m.cards, m.err
}

func (m *fakeMatcher) RankNew(_ context.Context, _ int64, offset, pageSize int) ([]matching.ProviderCard, error) {
	m.lastOffset = offset
	m.lastLimit = pageSize
	return m.cards, m.err
}

func (m *fakeMatcher) LikeProvider(context.Context, int64, int64) (bool, error) {
	return m.created, m.likeErr
}

type fakeLikeRepo struct {
	deleted bool
	err     error
}

func (r *fakeLikeRepo) CreateLike(context.Context, int64, int64) (bool, error) { return false, nil }
func (r *fakeLikeRepo) DeleteLike(context.Context, int64, int64) (bool, error) {
	return r.deleted, r.err
}
func (r *fakeLikeRepo) CountByProviderID(context.Context, int64) (int64, error) { return 0, nil }
func (r *fakeLikeRepo) CountByProviderIDs(context.Context, []int64) (map[int64]int64, error) {
	return nil, nil
}
func (r *fakeLikeRepo) GetLikedProviderIDs(context.Context, int64) ([]int64, error) {
	return nil, nil
}

func newMatchTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validators.NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetMatchesDefaultsTierAndWindow(t *testing.T) {
	matcher := &fakeMatcher{cards: []matching.ProviderCard{{ProviderID: 101, Name: "Ana"}}}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, rec := newMatchTestContext(http.MethodGet, "/api/v1/requesters/1/matches", "")
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	require.NoError(t, h.GetMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "all", matcher.lastTier)
	assert.Equal(t, 0, matcher.lastOffset)
	assert.Equal(t, 10, matcher.lastLimit)
	assert.Contains(t, rec.Body.String(), `"provider_id":101`)
}

func TestGetMatchesPassesWindowAndTier(t *testing.T) {
	matcher := &fakeMatcher{}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, rec := newMatchTestContext(http.MethodGet, "/api/v1/requesters/1/matches?tier=city&offset=20&limit=5", "")
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	require.NoError(t, h.GetMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "city", matcher.lastTier)
	assert.Equal(t, 20, matcher.lastOffset)
	assert.Equal(t, 5, matcher.lastLimit)
}

func TestGetMatchesClampsOversizedLimit(t *testing.T) {
	matcher := &fakeMatcher{}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, _ := newMatchTestContext(http.MethodGet, "/api/v1/requesters/1/matches?limit=500", "")
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	require.NoError(t, h.GetMatches(c))
	assert.Equal(t, 10, matcher.lastLimit)
}

func TestGetMatchesInvalidRequesterID(t *testing.T) {
	h := NewMatchHandler(&fakeMatcher{}, &fakeLikeRepo{})

	c, _ := newMatchTestContext(http.MethodGet, "/api/v1/requesters/abc/matches", "")
	c.SetParamNames("requester_id")
	c.SetParamValues("abc")

	err := h.GetMatches(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGetMatchesEngineFailure(t *testing.T) {
	matcher := &fakeMatcher{err: assert.AnError}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, _ := newMatchTestContext(http.MethodGet, "/api/v1/requesters/1/matches", "")
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	err := h.GetMatches(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestLikeProviderCreated(t *testing.T) {
	matcher := &fakeMatcher{created: true}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, rec := newMatchTestContext(http.MethodPost, "/api/v1/requesters/1/likes", `{"provider_id":101}`)
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	require.NoError(t, h.LikeProvider(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":true`)
}

func TestLikeProviderDuplicate(t *testing.T) {
	matcher := &fakeMatcher{created: false}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, rec := newMatchTestContext(http.MethodPost, "/api/v1/requesters/1/likes", `{"provider_id":101}`)
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	require.NoError(t, h.LikeProvider(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":false`)
}

func TestLikeProviderUnknownProvider(t *testing.T) {
	matcher := &fakeMatcher{likeErr: matching.ErrProviderNotFound}
	h := NewMatchHandler(matcher, &fakeLikeRepo{})

	c, _ := newMatchTestContext(http.MethodPost, "/api/v1/requesters/1/likes", `{"provider_id":404}`)
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	err := h.LikeProvider(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestLikeProviderMissingBody(t *testing.T) {
	h := NewMatchHandler(&fakeMatcher{}, &fakeLikeRepo{})

	c, _ := newMatchTestContext(http.MethodPost, "/api/v1/requesters/1/likes", `{}`)
	c.SetParamNames("requester_id")
	c.SetParamValues("1")

	err := h.LikeProvider(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestUnlikeProvider(t *testing.T) {
	h := NewMatchHandler(&fakeMatcher{}, &fakeLikeRepo{deleted: true})

	c, rec := newMatchTestContext(http.MethodDelete, "/api/v1/requesters/1/likes/101", "")
	c.SetParamNames("requester_id", "provider_id")
	c.SetParamValues("1", "101")

	require.NoError(t, h.UnlikeProvider(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUnlikeProviderNotFound(t *testing.T) {
	h := NewMatchHandler(&fakeMatcher{}, &fakeLikeRepo{deleted: false})

	c, _ := newMatchTestContext(http.MethodDelete, "/api/v1/requesters/1/likes/101", "")
	c.SetParamNames("requester_id", "provider_id")
	c.SetParamValues("1", "101")

	err := h.UnlikeProvider(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
