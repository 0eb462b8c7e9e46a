package jobs

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"roottrace/app"
	"roottrace/internal"
	"roottrace/ports"
)

// Runner executes analysis jobs on a bounded pool of background workers.
// Queueing, retries and backpressure live here, outside the resolution core.
type Runner struct {
	repo     ports.JobRepository
	resolver *app.ResolverService
	logger   *internal.Logger
	queue    chan uuid.UUID
	group    *errgroup.Group
	cancel   context.CancelFunc
}

// NewRunner creates a runner with a bounded submission queue.
func NewRunner(repo ports.JobRepository, resolver *app.ResolverService, logger *internal.Logger, queueSize int) *Runner {
	return &Runner{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
		queue:    make(chan uuid.UUID, queueSize),
	}
}

// Start launches the worker pool. Workers drain the queue until Stop is
// called or the parent context ends.
func (r *Runner) Start(ctx context.Context, workers int) {
	ctx, r.cancel = context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)
	r.group = group

	for i := 0; i < workers; i++ {
		group.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case id := <-r.queue:
					r.process(ctx, id)
				}
			}
		})
	}
}

// Stop shuts the pool down and waits for in-flight jobs to finish.
func (r *Runner) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	if r.group != nil {
		_ = r.group.Wait()
	}
}

// Submit enqueues a pending job for background processing.
func (r *Runner) Submit(ctx context.Context, id uuid.UUID) error {
	select {
	case r.queue <- id:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// process runs one job end to end, recording progress and the terminal state.
func (r *Runner) process(ctx context.Context, id uuid.UUID) {
	job, err := r.repo.Get(ctx, id)
	if err != nil {
		r.logger.Error("job %s vanished before processing: %v", id, err)
		return
	}

	job.MarkProcessing(25)
	if err := r.repo.Update(ctx, job); err != nil {
		r.logger.Error("job %s: progress update failed: %v", id, err)
	}

	result, err := r.resolver.Resolve(ctx, job.Input)
	if err != nil {
		job.MarkFailed(err)
		r.logger.Warn("job %s failed: %v", id, err)
	} else {
		job.MarkCompleted(result)
	}

	if err := r.repo.Update(ctx, job); err != nil {
		r.logger.Error("job %s: final update failed: %v", id, err)
	}
}
