package models

import (
	"time"

	"github.com/google/uuid"

	"roottrace/domain/ancestry"
)

// JobStatus tracks the lifecycle of an analysis job
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
)

// AnalysisJob tracks one background ancestry resolution
type AnalysisJob struct {
	ID           uuid.UUID                 `json:"job_id" db:"id"`
	Status       JobStatus                 `json:"status" db:"status"`
	Progress     int                       `json:"progress_percentage" db:"progress"`
	Input        ancestry.AncestralInput   `json:"input"`
	Result       *ancestry.AncestralResult `json:"result,omitempty"`
	ErrorMessage string                    `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time                 `json:"created_at" db:"created_at"`
	CompletedAt  *time.Time                `json:"completed_at,omitempty" db:"completed_at"`
}

// NewAnalysisJob creates a pending job for the given input
func NewAnalysisJob(input ancestry.AncestralInput) *AnalysisJob {
	return &AnalysisJob{
		ID:        uuid.New(),
		Status:    JobPending,
		Progress:  0,
		Input:     input,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkProcessing transitions the job into the processing state
func (j *AnalysisJob) MarkProcessing(progress int) {
	j.Status = JobProcessing
	j.Progress = progress
}

// MarkCompleted records the result and finalizes the job
func (j *AnalysisJob) MarkCompleted(result *ancestry.AncestralResult) {
	now := time.Now().UTC()
	j.Status = JobCompleted
	j.Progress = 100
	j.Result = result
	j.CompletedAt = &now
}

// MarkFailed records the failure reason and finalizes the job
func (j *AnalysisJob) MarkFailed(err error) {
	now := time.Now().UTC()
	j.Status = JobFailed
	j.ErrorMessage = err.Error()
	j.CompletedAt = &now
}
