package ports

import (
	"context"

	"github.com/google/uuid"

	"roottrace/models"
)

// JobRepository persists analysis jobs. The in-memory implementation backs
// single-process deployments; the postgres implementation is selected when a
// database URL is configured.
type JobRepository interface {
	Create(ctx context.Context, job *models.AnalysisJob) error
	Get(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error)
	Update(ctx context.Context, job *models.AnalysisJob) error
	List(ctx context.Context, limit int) ([]*models.AnalysisJob, error)
}
