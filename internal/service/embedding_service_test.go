package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"youthy-chat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type countingEmbedder struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (e *countingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	if e.fail {
		return nil, fmt.Errorf("provider down")
	}
	return hashVector(text, 64), nil
}

func (e *countingEmbedder) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func TestHashVectorDeterminism(t *testing.T) {
	a := hashVector("서울 월세 지원", 1536)
	b := hashVector("서울 월세 지원", 1536)
	assert.Equal(t, a, b)
	assert.Len(t, a, 1536)

	c := hashVector("부산 창업 지원", 1536)
	assert.NotEqual(t, a, c)
}

func TestHashVectorNormalized(t *testing.T) {
	vec := hashVector("청년 정책", 256)
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-4)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)

	// Zero norms and mismatched dimensions yield 0, never NaN.
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 0}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
}

func newTestEmbeddingService(t *testing.T, embedder Embedder, clock *fakeClock) (*EmbeddingService, *PolicyStore) {
	t.Helper()
	cfg := testChatConfig()
	cfg.CacheTTL = 30 * time.Minute

	store := NewPolicyStore(zap.NewNop())
	store.Reload(testPolicies())

	svc := NewEmbeddingService(cfg, embedder, clock, zap.NewNop())
	require.NoError(t, svc.Rebuild(context.Background(), store.All()))
	return svc, store
}

func TestSearchReturnsTotalOrdering(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, store := newTestEmbeddingService(t, nil, clock)

	results := svc.Search(context.Background(), "ㅁㅁㅁ", store, 10)
	assert.Len(t, results, store.Len(), "semantic search is total even for nonsense queries")
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Similarity, results[i].Similarity)
	}
}

func TestSearchCacheCoherence(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	embedder := &countingEmbedder{}
	svc, store := newTestEmbeddingService(t, embedder, clock)
	rebuildCalls := embedder.Calls()

	first := svc.Search(context.Background(), "서울 월세 지원", store, 10)
	assert.Equal(t, rebuildCalls+1, embedder.Calls())

	// Within the TTL window the ranking comes from the cache unchanged.
	second := svc.Search(context.Background(), "서울 월세 지원", store, 10)
	assert.Equal(t, first, second)
	assert.Equal(t, rebuildCalls+1, embedder.Calls())

	// Normalization makes differently spaced queries share an entry.
	third := svc.Search(context.Background(), "  서울 월세 지원  ", store, 10)
	assert.Equal(t, first, third)
	assert.Equal(t, rebuildCalls+1, embedder.Calls())

	// Expiry triggers a fresh computation.
	clock.Advance(31 * time.Minute)
	fourth := svc.Search(context.Background(), "서울 월세 지원", store, 10)
	assert.Equal(t, first, fourth, "recomputation over unchanged data gives the same ranking")
	assert.Equal(t, rebuildCalls+2, embedder.Calls())
}

func TestSearchProviderFailureFallsBack(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	embedder := &countingEmbedder{fail: true}
	svc, store := newTestEmbeddingService(t, embedder, clock)

	results := svc.Search(context.Background(), "서울 월세 지원", store, 10)
	assert.NotEmpty(t, results, "provider failure degrades to the local vector")
}

func TestSearchTopKCap(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, store := newTestEmbeddingService(t, nil, clock)

	results := svc.Search(context.Background(), "청년 정책", store, 2)
	assert.Len(t, results, 2)
}

func TestRebuildReplacesVectors(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, store := newTestEmbeddingService(t, nil, clock)

	store.Reload([]models.PolicyRecord{
		{ID: "only", Title: "하나뿐인 정책", Category: models.CategoryOther},
	})
	require.NoError(t, svc.Rebuild(context.Background(), store.All()))

	results := svc.Search(context.Background(), "정책", store, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "only", results[0].Policy.ID)
}
