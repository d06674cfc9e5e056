package service

import (
	"sort"
	"strings"

	"youthy-chat/internal/models"
	"youthy-chat/pkg/config"

	"go.uber.org/zap"
)

// SearchService ranks policy candidates by a weighted combination of
// keyword overlap, category match and region match. Category and region
// exactness dominate incidental keyword overlap so that a query about
// housing in one city is not drowned out by unrelated nationwide
// postings with high keyword counts.
type SearchService struct {
	cfg    *config.ChatConfig
	logger *zap.Logger
}

func NewSearchService(cfg *config.ChatConfig, logger *zap.Logger) *SearchService {
	return &SearchService{cfg: cfg, logger: logger}
}

// Rank filters candidates by region and intent category, scores the
// survivors and returns a stable top-K ordering. Purely computational:
// an empty collection yields an empty result, never an error.
func (s *SearchService) Rank(
	tokens []string,
	intent models.Intent,
	region string,
	policies []models.PolicyRecord,
) []models.ScoredPolicy {
	wantCategory, hasCategory := intent.Type.Category()
	keepZero := intent.Type.KeepsZeroScores()

	var scored []models.ScoredPolicy
	for _, p := range policies {
		if region != "" && region != models.RegionNationwide {
			if p.Region != region && p.Region != models.RegionNationwide {
				continue
			}
		}
		if hasCategory && p.Category != wantCategory {
			continue
		}

		score := s.score(tokens, region, p, wantCategory, hasCategory)
		if score == 0 && !keepZero {
			continue
		}
		scored = append(scored, models.ScoredPolicy{Policy: p, Score: score})
	}

	// Stable sort keeps ties in collection order, so repeated calls over
	// the same snapshot return the same ordering.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.cfg.TopK {
		scored = scored[:s.cfg.TopK]
	}

	s.logger.Debug("Keyword ranking completed",
		zap.Int("candidates", len(policies)),
		zap.Int("results", len(scored)),
		zap.String("intent", string(intent.Type)),
	)
	return scored
}

func (s *SearchService) score(
	tokens []string,
	region string,
	p models.PolicyRecord,
	wantCategory models.Category,
	hasCategory bool,
) float64 {
	haystack := strings.ToLower(p.Title + " " + p.Description + " " + string(p.Category))

	hits := 0
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			hits++
		}
	}

	score := float64(s.cfg.KeywordWeight * hits)
	if hasCategory && p.Category == wantCategory {
		score += float64(s.cfg.CategoryWeight)
	}
	if region != "" && region != models.RegionNationwide && p.Region == region {
		score += float64(s.cfg.RegionWeight)
	}
	return score
}
