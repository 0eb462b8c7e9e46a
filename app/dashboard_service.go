package app

import (
	"context"

	"github.com/montanaflynn/stats"

	"roottrace/models"
	"roottrace/ports"
)

// DashboardStats aggregates recent analysis activity for the stats endpoint.
type DashboardStats struct {
	TotalJobs        int                `json:"total_jobs"`
	CompletedJobs    int                `json:"completed_jobs"`
	FailedJobs       int                `json:"failed_jobs"`
	PendingJobs      int                `json:"pending_jobs"`
	MeanConfidence   float64            `json:"mean_confidence"`
	MedianCoherence  float64            `json:"median_coherence"`
	RegionFrequency  map[string]int     `json:"region_frequency"`
	BackendName      string             `json:"backend"`
	ConfidenceSpread map[string]float64 `json:"confidence_spread"`
}

// DashboardService summarizes job history.
type DashboardService struct {
	repo     ports.JobRepository
	resolver *ResolverService
}

// NewDashboardService creates a dashboard aggregator.
func NewDashboardService(repo ports.JobRepository, resolver *ResolverService) *DashboardService {
	return &DashboardService{repo: repo, resolver: resolver}
}

// Stats aggregates up to the most recent 500 jobs.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	jobs, err := s.repo.List(ctx, 500)
	if err != nil {
		return nil, err
	}

	out := &DashboardStats{
		TotalJobs:        len(jobs),
		RegionFrequency:  make(map[string]int),
		BackendName:      s.resolver.Backend(),
		ConfidenceSpread: make(map[string]float64),
	}

	confidences := make([]float64, 0, len(jobs))
	coherences := make([]float64, 0, len(jobs))

	for _, job := range jobs {
		switch job.Status {
		case models.JobCompleted:
			out.CompletedJobs++
			if job.Result != nil {
				confidences = append(confidences, job.Result.ConfidenceScore)
				coherences = append(coherences, job.Result.QuantumCoherenceScore)
				out.RegionFrequency[job.Result.PrimaryRegion]++
			}
		case models.JobFailed:
			out.FailedJobs++
		default:
			out.PendingJobs++
		}
	}

	if len(confidences) > 0 {
		if mean, err := stats.Mean(confidences); err == nil {
			out.MeanConfidence = mean
		}
		if min, err := stats.Min(confidences); err == nil {
			out.ConfidenceSpread["min"] = min
		}
		if max, err := stats.Max(confidences); err == nil {
			out.ConfidenceSpread["max"] = max
		}
		if stdDev, err := stats.StandardDeviation(confidences); err == nil {
			out.ConfidenceSpread["std_dev"] = stdDev
		}
	}
	if len(coherences) > 0 {
		if median, err := stats.Median(coherences); err == nil {
			out.MedianCoherence = median
		}
	}

	return out, nil
}
