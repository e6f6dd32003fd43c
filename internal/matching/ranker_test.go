package matching

import (
	"context"
	"testing"

	"github.com/inkmatch/inkmatch/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByLikeCountThenID(t *testing.T) {
	store := newFakeStore()
	// 30 has two likes, 10 and 20 one each, 40 none.
	store.addLike(1, 30)
	store.addLike(2, 30)
	store.addLike(1, 10)
	store.addLike(1, 20)
	ranker := NewRanker(store)

	ranked, err := ranker.Rank(context.Background(), []int64{40, 30, 20, 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 10, 20, 40}, ranked)
}

func TestRankIsDeterministicAcrossInputOrder(t *testing.T) {
	store := newFakeStore()
	store.addLike(1, 5)
	store.addLike(1, 7)
	ranker := NewRanker(store)
	ctx := context.Background()

	first, err := ranker.Rank(ctx, []int64{9, 7, 5, 3})
	require.NoError(t, err)
	second, err := ranker.Rank(ctx, []int64{3, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRankAllZeroLikesFallsBackToAscendingID(t *testing.T) {
	store := newFakeStore()
	ranker := NewRanker(store)

	ranked, err := ranker.Rank(context.Background(), []int64{42, 7, 99, 13})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 13, 42, 99}, ranked)
}

func TestRankEmptyCandidateSet(t *testing.T) {
	store := newFakeStore()
	ranker := NewRanker(store)

	ranked, err := ranker.Rank(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankCountsOnlyGivenCandidates(t *testing.T) {
	store := newFakeStore()
	store.addProvider(models.Provider{ID: 1, City: "Berlin"})
	store.addLike(1, 1)
	store.addLike(2, 999) // not a candidate
	ranker := NewRanker(store)

	ranked, err := ranker.Rank(context.Background(), []int64{1})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ranked)
}
