package service

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"youthy-chat/internal/models"
	"youthy-chat/pkg/cache"
	"youthy-chat/pkg/config"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Embedder produces an embedding vector for a piece of text.
// LLMService satisfies this; tests substitute fakes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type indexedVector struct {
	policyID string
	vector   []float32
}

// EmbeddingService is the semantic fallback for queries the keyword
// ranker cannot serve. It keeps one vector per policy, rebuilt whenever
// the policy collection reloads, and caches rankings with a TTL so
// repeated questions skip recomputation. When the provider is
// unavailable the service degrades to a deterministic local vector
// instead of failing, so semantic search always returns something.
type EmbeddingService struct {
	cfg      *config.ChatConfig
	embedder Embedder
	logger   *zap.Logger

	resultCache *cache.Service[[]models.ScoredPolicy]

	mu      sync.RWMutex
	vectors []indexedVector
}

func NewEmbeddingService(cfg *config.ChatConfig, embedder Embedder, clock cache.Clock, logger *zap.Logger) *EmbeddingService {
	return &EmbeddingService{
		cfg:         cfg,
		embedder:    embedder,
		logger:      logger,
		resultCache: cache.New[[]models.ScoredPolicy](cfg.CacheTTL, clock),
	}
}

// Rebuild recomputes the vector for every policy in the collection.
// Policies are embedded in parallel; a provider failure for one policy
// downgrades that policy to the local vector rather than aborting.
func (s *EmbeddingService) Rebuild(ctx context.Context, policies []models.PolicyRecord) error {
	vectors := make([]indexedVector, len(policies))

	pool, err := ants.NewPool(8)
	if err != nil {
		return err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, p := range policies {
		i, p := i, p
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			text := embeddingText(p)
			vectors[i] = indexedVector{
				policyID: p.ID,
				vector:   s.embed(ctx, text),
			}
		})
		if submitErr != nil {
			wg.Done()
			text := embeddingText(p)
			vectors[i] = indexedVector{policyID: p.ID, vector: s.embed(ctx, text)}
		}
	}
	wg.Wait()

	s.mu.Lock()
	s.vectors = vectors
	s.mu.Unlock()

	s.logger.Info("Embedding index rebuilt", zap.Int("policies", len(vectors)))
	return nil
}

// Search ranks the collection by cosine similarity against the query
// and returns up to topK policies. Results carry Similarity, not the
// keyword Score. Rankings are cached per normalized query with a TTL;
// a hit returns the last computed ranking unchanged. Writes are
// last-write-wins, so concurrent identical queries may each compute
// once before the cache warms, which is harmless for a pure ranking.
func (s *EmbeddingService) Search(ctx context.Context, query string, store *PolicyStore, topK int) []models.ScoredPolicy {
	key := strings.ToLower(strings.TrimSpace(query))
	if ranked, ok := s.resultCache.Get(key); ok {
		return ranked
	}

	queryVec := s.embed(ctx, key)

	s.mu.RLock()
	indexed := s.vectors
	s.mu.RUnlock()

	scored := make([]models.ScoredPolicy, 0, len(indexed))
	for _, iv := range indexed {
		policy, ok := store.ByID(iv.policyID)
		if !ok {
			continue
		}
		sim := cosineSimilarity(queryVec, iv.vector)
		scored = append(scored, models.ScoredPolicy{Policy: policy, Similarity: sim})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}

	s.resultCache.Set(key, scored)
	return scored
}

// embed asks the provider for a vector, falling back to the local
// deterministic vector on any failure.
func (s *EmbeddingService) embed(ctx context.Context, text string) []float32 {
	if s.embedder != nil {
		vec, err := s.embedder.Embed(ctx, text)
		if err == nil && len(vec) > 0 {
			return vec
		}
		if err != nil {
			s.logger.Warn("Embedding provider failed, using local vector", zap.Error(err))
		}
	}
	return hashVector(text, s.cfg.EmbeddingDim)
}

func embeddingText(p models.PolicyRecord) string {
	return p.Title + " " + p.Description + " " + string(p.Category)
}

// hashVector maps text to a fixed-dimension unit vector by accumulating
// rune codes into slots. Deterministic: the same text always yields the
// same vector, so similarity stays reproducible offline.
func hashVector(text string, dim int) []float32 {
	vec := make([]float32, dim)
	if dim == 0 {
		return vec
	}

	acc := 0
	for i, r := range strings.ToLower(text) {
		acc = acc*31 + int(r)
		if acc < 0 {
			acc = -acc
		}
		slot := (acc + i) % dim
		vec[slot] += float32(r%97) / 97.0
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched dimensions or a zero-norm vector yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
