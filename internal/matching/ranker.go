package matching

import (
	"context"
	"sort"

	"github.com/inkmatch/inkmatch/backend/internal/repositories"
)

// Ranker orders a candidate id set by like count, descending. Equal counts
// fall back to ascending provider id so that the order is reproducible
// across calls and pagination never shuffles.
type Ranker struct {
	likes repositories.LikeRepository
}

// NewRanker creates a new Ranker
func NewRanker(likes repositories.LikeRepository) *Ranker {
	return &Ranker{likes: likes}
}

// Rank returns the candidate ids as a totally ordered sequence. Candidates
// without likes count as zero.
func (r *Ranker) Rank(ctx context.Context, candidateIDs []int64) ([]int64, error) {
	if len(candidateIDs) == 0 {
		return nil, nil
	}
	counts, err := r.likes.CountByProviderIDs(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	ranked := make([]int64, len(candidateIDs))
	copy(ranked, candidateIDs)
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked, nil
}
