package ui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"roottrace/domain/ancestry"
	"roottrace/domain/core"
	"roottrace/internal/errors"
	"roottrace/internal/report"
	"roottrace/models"
)

// handleHealth reports liveness and the selected backend
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": a.resolver.Backend(),
	})
}

// handleSubmitAnalysis accepts an analysis request and queues it as a job
func (a *App) handleSubmitAnalysis(w http.ResponseWriter, r *http.Request) {
	var input ancestry.AncestralInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		a.respondError(w, errors.InvalidInput("request body is not valid JSON"))
		return
	}
	if err := input.Validate(); err != nil {
		a.respondError(w, errors.WithCode(errors.CodeInvalidInput, err))
		return
	}

	job := models.NewAnalysisJob(input)
	if err := a.repo.Create(r.Context(), job); err != nil {
		a.respondError(w, errors.Wrap(err, "failed to store analysis job"))
		return
	}
	if err := a.runner.Submit(r.Context(), job.ID); err != nil {
		a.respondError(w, errors.Wrap(err, "failed to queue analysis job"))
		return
	}

	a.respondJSON(w, http.StatusAccepted, job)
}

// handleJobStatus returns the job record without the result payload
func (a *App) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}
	job.Result = nil
	a.respondJSON(w, http.StatusOK, job)
}

// handleJobResult returns the resolved result once the job has completed
func (a *App) handleJobResult(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}

	switch job.Status {
	case models.JobCompleted:
		a.respondJSON(w, http.StatusOK, map[string]interface{}{
			"job_id": job.ID,
			"result": job.Result,
		})
	case models.JobFailed:
		a.respondJSON(w, http.StatusOK, map[string]interface{}{
			"job_id": job.ID,
			"status": job.Status,
			"error":  job.ErrorMessage,
		})
	default:
		a.respondJSON(w, http.StatusOK, map[string]interface{}{
			"job_id":   job.ID,
			"status":   job.Status,
			"progress": job.Progress,
		})
	}
}

// handleJobReport renders the completed analysis as an HTML report
func (a *App) handleJobReport(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}
	if job.Status != models.JobCompleted || job.Result == nil {
		a.respondError(w, errors.NotFound("completed analysis"))
		return
	}

	md := report.BuildMarkdown(job.Input, job.Result)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report.RenderHTML(md))
}

// handleJobExport streams the completed analysis as an Excel workbook
func (a *App) handleJobExport(w http.ResponseWriter, r *http.Request) {
	job, ok := a.loadJob(w, r)
	if !ok {
		return
	}
	if job.Status != models.JobCompleted || job.Result == nil {
		a.respondError(w, errors.NotFound("completed analysis"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="analysis-%s.xlsx"`, job.ID))
	if err := a.exporter.Write(w, job.Input, job.Result); err != nil {
		a.logger.Error("export of job %s failed: %v", job.ID, err)
	}
}

// handleMedicalHeritage returns the medical markers for a region
func (a *App) handleMedicalHeritage(w http.ResponseWriter, r *http.Request) {
	region := chi.URLParam(r, "region")
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"region":            region,
		"medical_markers":   a.kb.MedicalMarkersFor(region),
		"coastal_departure": a.kb.CoastalDepartureFor(region),
		"disclaimer":        "Educational information only. Consult healthcare providers for medical advice.",
	})
}

// handleCulturalResources returns reconnection resources for an ethnic group
func (a *App) handleCulturalResources(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	a.respondJSON(w, http.StatusOK, map[string]interface{}{
		"ethnic_group": group,
		"resources": []map[string]string{
			{
				"type":  "language",
				"title": fmt.Sprintf("Learn %s Language", group),
			},
			{
				"type":  "organization",
				"title": fmt.Sprintf("%s Cultural Association", group),
			},
			{
				"type":  "heritage_travel",
				"title": fmt.Sprintf("Heritage travel for %s descendants", group),
			},
		},
	})
}

// handleDashboard returns aggregate statistics over recent jobs
func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboardStats, err := a.dashboard.Stats(r.Context())
	if err != nil {
		a.respondError(w, errors.Wrap(err, "failed to aggregate dashboard stats"))
		return
	}
	a.respondJSON(w, http.StatusOK, dashboardStats)
}

// loadJob parses the jobID URL param and fetches the job, writing the error
// response itself when either step fails.
func (a *App) loadJob(w http.ResponseWriter, r *http.Request) (*models.AnalysisJob, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		a.respondError(w, errors.InvalidInput("job ID must be a UUID"))
		return nil, false
	}
	job, err := a.repo.Get(r.Context(), id)
	if err != nil {
		a.respondError(w, errors.WithCode(errors.CodeNotFound, err))
		return nil, false
	}
	return job, true
}

// respondJSON writes a JSON response
func (a *App) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("failed to encode response: %v", err)
	}
}

// respondError maps application error codes to HTTP statuses
func (a *App) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeSimulationError:
		status = http.StatusBadGateway
	}
	if core.IsInvalidInput(err) {
		status = http.StatusBadRequest
	}

	a.respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
