package matching

import (
	"context"
	"time"

	"github.com/inkmatch/inkmatch/backend/internal/metrics"
	"github.com/inkmatch/inkmatch/backend/internal/repositories"
	"go.uber.org/zap"
)

// newProviderWindow is how far back the newly-registered view looks,
// relative to call time.
const newProviderWindow = 7 * 24 * time.Hour

// Engine is the tier orchestrator. Every call is a read against a snapshot
// of the store; ranking is computed once per call and nothing is cached
// across calls, so two successive pages are not guaranteed a stable cursor
// when likes or blocks land in between.
type Engine struct {
	requesters repositories.RequesterRepository
	providers  repositories.ProviderRepository
	styles     repositories.StyleRepository
	likes      repositories.LikeRepository

	selector *CandidateSelector
	ranker   *Ranker
	enricher *Enricher

	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates a new Engine over the given store repositories
func NewEngine(
	requesters repositories.RequesterRepository,
	providers repositories.ProviderRepository,
	styles repositories.StyleRepository,
	photos repositories.PhotoRepository,
	likes repositories.LikeRepository,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		requesters: requesters,
		providers:  providers,
		styles:     styles,
		likes:      likes,
		selector:   NewCandidateSelector(providers, styles),
		ranker:     NewRanker(likes),
		enricher:   NewEnricher(providers, styles, photos, likes),
		logger:     logger,
		now:        time.Now,
	}
}

// RankCandidates returns one page of ranked provider cards for the given
// tier. An absent requester, an unknown tier token or an out-of-range
// window all produce an empty page with a nil error; only store failures
// return an error.
func (e *Engine) RankCandidates(ctx context.Context, requesterID int64, tierToken string, offset, pageSize int) ([]ProviderCard, error) {
	start := e.now()
	tier, ok := ParseTier(tierToken)
	if !ok {
		e.logger.Warn("unknown tier token", zap.String("tier", tierToken), zap.Int64("requester_id", requesterID))
		metrics.RankRequests.WithLabelValues(tierToken, "invalid").Inc()
		return []ProviderCard{}, nil
	}
	if offset < 0 || pageSize <= 0 {
		metrics.RankRequests.WithLabelValues(string(tier), "invalid").Inc()
		return []ProviderCard{}, nil
	}

	requester, err := e.requesters.GetRequesterByID(ctx, requesterID)
	if err != nil {
		metrics.RankRequests.WithLabelValues(string(tier), "error").Inc()
		return nil, err
	}
	if requester == nil {
		metrics.RankRequests.WithLabelValues(string(tier), "not_found").Inc()
		return []ProviderCard{}, nil
	}
	styleIDs, err := e.styles.GetRequesterStyleIDs(ctx, requesterID)
	if err != nil {
		metrics.RankRequests.WithLabelValues(string(tier), "error").Inc()
		return nil, err
	}

	candidateIDs, err := e.selector.Select(ctx, requester, styleIDs, tier)
	if err != nil {
		metrics.RankRequests.WithLabelValues(string(tier), "error").Inc()
		return nil, err
	}
	cards, err := e.rankPage(ctx, candidateIDs, offset, pageSize)
	if err != nil {
		metrics.RankRequests.WithLabelValues(string(tier), "error").Inc()
		return nil, err
	}

	metrics.RankRequests.WithLabelValues(string(tier), "ok").Inc()
	metrics.RankDuration.WithLabelValues(string(tier)).Observe(e.now().Sub(start).Seconds())
	e.logger.Debug("ranked candidates",
		zap.Int64("requester_id", requesterID),
		zap.String("tier", string(tier)),
		zap.Int("candidates", len(candidateIDs)),
		zap.Int("page", len(cards)),
	)
	return cards, nil
}

// RankLiked returns one page of the providers the requester has liked,
// ranked and enriched like any tier.
func (e *Engine) RankLiked(ctx context.Context, requesterID int64, offset, pageSize int) ([]ProviderCard, error) {
	if offset < 0 || pageSize <= 0 {
		return []ProviderCard{}, nil
	}
	exists, err := e.requesters.RequesterExists(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []ProviderCard{}, nil
	}
	likedIDs, err := e.likes.GetLikedProviderIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return e.rankPage(ctx, likedIDs, offset, pageSize)
}

// RankNew returns one page of the non-blocked providers in the requester's
// city registered within the trailing week.
func (e *Engine) RankNew(ctx context.Context, requesterID int64, offset, pageSize int) ([]ProviderCard, error) {
	if offset < 0 || pageSize <= 0 {
		return []ProviderCard{}, nil
	}
	requester, err := e.requesters.GetRequesterByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return []ProviderCard{}, nil
	}
	since := e.now().Add(-newProviderWindow)
	recent, err := e.providers.GetNewProvidersByCity(ctx, requester.City, since)
	if err != nil {
		return nil, err
	}
	recentIDs := make([]int64, len(recent))
	for i, provider := range recent {
		recentIDs[i] = provider.ID
	}
	return e.rankPage(ctx, recentIDs, offset, pageSize)
}

// LikeProvider stores a like. It returns true when the like is new and
// false when the pair already exists, also under concurrent duplicate
// attempts; the unique constraint decides. A missing provider is reported
// as ErrProviderNotFound.
func (e *Engine) LikeProvider(ctx context.Context, requesterID, providerID int64) (bool, error) {
	exists, err := e.providers.ProviderExists(ctx, providerID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrProviderNotFound
	}
	created, err := e.likes.CreateLike(ctx, requesterID, providerID)
	if err != nil {
		return false, err
	}
	if created {
		metrics.LikesCreated.Inc()
	} else {
		metrics.LikeConflicts.Inc()
		e.logger.Debug("duplicate like ignored",
			zap.Int64("requester_id", requesterID),
			zap.Int64("provider_id", providerID),
		)
	}
	return created, nil
}

// rankPage is the shared rank -> paginate -> enrich tail of every view.
func (e *Engine) rankPage(ctx context.Context, candidateIDs []int64, offset, pageSize int) ([]ProviderCard, error) {
	ranked, err := e.ranker.Rank(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	return e.enricher.Enrich(ctx, Page(ranked, offset, pageSize))
}
