package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
)

// LogRepo cumple tracking.Repository y medications.LogPurger.
type LogRepo struct {
	mu   sync.RWMutex
	byID map[string]medications.Log
}

func NewLogRepo() *LogRepo {
	return &LogRepo{
		byID: make(map[string]medications.Log),
	}
}

func (r *LogRepo) Create(ctx context.Context, l medications.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("log id required")
	}
	if _, exists := r.byID[l.ID]; exists {
		return errors.New("log already exists")
	}
	r.byID[l.ID] = l
	return nil
}

func (r *LogRepo) List(ctx context.Context, filter tracking.LogFilter) ([]medications.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Log, 0)
	for _, l := range r.byID {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out, nil
}

func (r *LogRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, l := range r.byID {
		if l.MedicationID == medicationID {
			delete(r.byID, id)
		}
	}
	return nil
}
