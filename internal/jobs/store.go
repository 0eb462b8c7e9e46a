package jobs

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"roottrace/domain/core"
	"roottrace/models"
	"roottrace/ports"
)

// MemoryStore is the in-memory JobRepository used when no database is
// configured. Jobs live for the process lifetime.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*models.AnalysisJob
}

// NewMemoryStore creates an empty in-memory job store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{jobs: make(map[uuid.UUID]*models.AnalysisJob)}
}

var _ ports.JobRepository = (*MemoryStore)(nil)

// Create stores a new job.
func (s *MemoryStore) Create(ctx context.Context, job *models.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = cloneJob(job)
	return nil
}

// Get returns a copy of the job with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, core.ErrJobNotFound
	}
	return cloneJob(job), nil
}

// Update replaces the stored job state.
func (s *MemoryStore) Update(ctx context.Context, job *models.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.ID]; !ok {
		return core.ErrJobNotFound
	}
	s.jobs[job.ID] = cloneJob(job)
	return nil
}

// List returns up to limit jobs, newest first.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*models.AnalysisJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*models.AnalysisJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		all = append(all, cloneJob(job))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// cloneJob keeps callers from sharing mutable job state with the store.
func cloneJob(job *models.AnalysisJob) *models.AnalysisJob {
	copied := *job
	if job.Result != nil {
		result := *job.Result
		copied.Result = &result
	}
	return &copied
}
