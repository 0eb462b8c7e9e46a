package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/models"
	"roottrace/ports"
)

// JobRepositoryImpl implements JobRepository for PostgreSQL
type JobRepositoryImpl struct {
	db *sqlx.DB
}

// NewJobRepository creates a new PostgreSQL job repository
func NewJobRepository(db *sqlx.DB) ports.JobRepository {
	return &JobRepositoryImpl{db: db}
}

// EnsureSchema creates the analysis_jobs table if it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_jobs (
			id UUID PRIMARY KEY,
			status TEXT NOT NULL,
			progress INT NOT NULL DEFAULT 0,
			input JSONB NOT NULL,
			result JSONB,
			error_message TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ
		)
	`)
	return err
}

// jobRow maps the analysis_jobs table
type jobRow struct {
	ID           uuid.UUID       `db:"id"`
	Status       string          `db:"status"`
	Progress     int             `db:"progress"`
	Input        json.RawMessage `db:"input"`
	Result       json.RawMessage `db:"result"`
	ErrorMessage string          `db:"error_message"`
	CreatedAt    time.Time       `db:"created_at"`
	CompletedAt  sql.NullTime    `db:"completed_at"`
}

// Create inserts a new analysis job
func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.AnalysisJob) error {
	row, err := toRow(job)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analysis_jobs (id, status, progress, input, result, error_message, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, row.ID, row.Status, row.Progress, row.Input, row.Result, row.ErrorMessage, row.CreatedAt, row.CompletedAt)
	return err
}

// Get retrieves a job by ID
func (r *JobRepositoryImpl) Get(ctx context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	var row jobRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, status, progress, input, result, error_message, created_at, completed_at
		FROM analysis_jobs
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromRow(&row)
}

// Update replaces the stored state of a job
func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.AnalysisJob) error {
	row, err := toRow(job)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE analysis_jobs
		SET status = $2, progress = $3, result = $4, error_message = $5, completed_at = $6
		WHERE id = $1
	`, row.ID, row.Status, row.Progress, row.Result, row.ErrorMessage, row.CompletedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return core.ErrJobNotFound
	}
	return err
}

// List returns up to limit jobs, newest first
func (r *JobRepositoryImpl) List(ctx context.Context, limit int) ([]*models.AnalysisJob, error) {
	var rows []jobRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, status, progress, input, result, error_message, created_at, completed_at
		FROM analysis_jobs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}

	jobs := make([]*models.AnalysisJob, 0, len(rows))
	for i := range rows {
		job, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func toRow(job *models.AnalysisJob) (*jobRow, error) {
	input, err := json.Marshal(job.Input)
	if err != nil {
		return nil, err
	}

	row := &jobRow{
		ID:           job.ID,
		Status:       string(job.Status),
		Progress:     job.Progress,
		Input:        input,
		ErrorMessage: job.ErrorMessage,
		CreatedAt:    job.CreatedAt,
	}
	if job.Result != nil {
		result, err := json.Marshal(job.Result)
		if err != nil {
			return nil, err
		}
		row.Result = result
	}
	if job.CompletedAt != nil {
		row.CompletedAt = sql.NullTime{Time: *job.CompletedAt, Valid: true}
	}
	return row, nil
}

func fromRow(row *jobRow) (*models.AnalysisJob, error) {
	job := &models.AnalysisJob{
		ID:           row.ID,
		Status:       models.JobStatus(row.Status),
		Progress:     row.Progress,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
	}
	if err := json.Unmarshal(row.Input, &job.Input); err != nil {
		return nil, err
	}
	if len(row.Result) > 0 {
		var result ancestry.AncestralResult
		if err := json.Unmarshal(row.Result, &result); err != nil {
			return nil, err
		}
		job.Result = &result
	}
	if row.CompletedAt.Valid {
		completed := row.CompletedAt.Time
		job.CompletedAt = &completed
	}
	return job, nil
}
