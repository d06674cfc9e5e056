package service

import (
	"sync/atomic"

	"youthy-chat/internal/models"

	"go.uber.org/zap"
)

type policySnapshot struct {
	records []models.PolicyRecord
	byID    map[string]int
}

// PolicyStore holds the current policy collection. Reload swaps a fully
// built snapshot behind an atomic pointer, so concurrent readers never
// observe a partially replaced collection. The store itself performs no
// I/O; loading is the caller's concern.
type PolicyStore struct {
	snapshot atomic.Pointer[policySnapshot]
	logger   *zap.Logger
}

func NewPolicyStore(logger *zap.Logger) *PolicyStore {
	s := &PolicyStore{logger: logger}
	s.snapshot.Store(&policySnapshot{byID: map[string]int{}})
	return s
}

// Reload replaces the collection with records. Malformed records and
// duplicate ids are logged and skipped rather than aborting the swap.
// Returns the number of records accepted into the new snapshot.
func (s *PolicyStore) Reload(records []models.PolicyRecord) int {
	snap := &policySnapshot{
		records: make([]models.PolicyRecord, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}

	for _, r := range records {
		if err := r.Validate(); err != nil {
			s.logger.Warn("Skipping malformed policy record",
				zap.String("id", r.ID),
				zap.Error(err),
			)
			continue
		}
		if _, dup := snap.byID[r.ID]; dup {
			s.logger.Warn("Skipping duplicate policy record", zap.String("id", r.ID))
			continue
		}
		snap.byID[r.ID] = len(snap.records)
		snap.records = append(snap.records, r)
	}

	s.snapshot.Store(snap)
	return len(snap.records)
}

// All returns the current snapshot's records in load order.
// Callers must not mutate the returned slice.
func (s *PolicyStore) All() []models.PolicyRecord {
	return s.snapshot.Load().records
}

// ByCategory returns the records of exactly the given category, in load order.
func (s *PolicyStore) ByCategory(category models.Category) []models.PolicyRecord {
	var out []models.PolicyRecord
	for _, r := range s.snapshot.Load().records {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// ByID looks up a record by id.
func (s *PolicyStore) ByID(id string) (models.PolicyRecord, bool) {
	snap := s.snapshot.Load()
	idx, ok := snap.byID[id]
	if !ok {
		return models.PolicyRecord{}, false
	}
	return snap.records[idx], true
}

// Len reports the size of the current snapshot.
func (s *PolicyStore) Len() int {
	return len(s.snapshot.Load().records)
}
