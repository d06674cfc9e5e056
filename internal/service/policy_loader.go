package service

import (
	"context"

	"youthy-chat/internal/models"

	"go.uber.org/zap"
)

// PolicySource provides policy records from an external store.
// The Postgres repository satisfies this.
type PolicySource interface {
	ListAll(ctx context.Context) ([]models.PolicyRecord, error)
}

// Load sources for RefreshResponse reporting.
const (
	SourceDatabase = "database"
	SourceSeed     = "seed"
)

// PolicyLoader fills the in-memory store from the database, falling
// back to the built-in seed dataset when the database is unreachable or
// empty, and rebuilds the embedding index afterwards. The service keeps
// answering from the previous snapshot while a reload runs.
type PolicyLoader struct {
	source     PolicySource
	seed       []models.PolicyRecord
	store      *PolicyStore
	embeddings *EmbeddingService
	logger     *zap.Logger
}

func NewPolicyLoader(
	source PolicySource,
	seed []models.PolicyRecord,
	store *PolicyStore,
	embeddings *EmbeddingService,
	logger *zap.Logger,
) *PolicyLoader {
	return &PolicyLoader{
		source:     source,
		seed:       seed,
		store:      store,
		embeddings: embeddings,
		logger:     logger,
	}
}

// Load refreshes the store and embedding index. Returns the number of
// accepted records and which source supplied them. A database failure
// degrades to the seed dataset instead of failing the refresh.
func (l *PolicyLoader) Load(ctx context.Context) (int, string, error) {
	records, source := l.fetch(ctx)

	count := l.store.Reload(records)
	if err := l.embeddings.Rebuild(ctx, l.store.All()); err != nil {
		return count, source, err
	}

	l.logger.Info("Policy collection loaded",
		zap.Int("count", count),
		zap.String("source", source),
	)
	return count, source, nil
}

func (l *PolicyLoader) fetch(ctx context.Context) ([]models.PolicyRecord, string) {
	if l.source != nil {
		records, err := l.source.ListAll(ctx)
		if err != nil {
			l.logger.Warn("Policy database unavailable, using seed dataset", zap.Error(err))
		} else if len(records) == 0 {
			l.logger.Warn("Policy database is empty, using seed dataset")
		} else {
			return records, SourceDatabase
		}
	}
	return l.seed, SourceSeed
}
