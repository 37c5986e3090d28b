package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/handymgr/jobtrack/internal/api/domain"
	"github.com/handymgr/jobtrack/internal/api/dto"
)

// CreateJob handles POST /api/v1/jobs
// Opens a new in-progress job for a technician.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing required fields")
		return
	}

	if h.creds.Verify(req.Token) == domain.LevelNone {
		respondFail(c, "Invalid token")
		return
	}

	startTime, err := domain.NormalizeTime(req.StartTime)
	if err != nil {
		respondFail(c, "Invalid start time format")
		return
	}

	jobID, err := h.storage.CreateJob(c.Request.Context(), req.TechName, startTime, req.Location)
	if err != nil {
		h.logger.Error("Failed to create job",
			slog.String("tech_name", req.TechName),
			slog.String("error", err.Error()),
		)
		respondFail(c, "Failed to create job")
		return
	}

	h.logger.Info("Job created",
		slog.Int64("job_id", jobID),
		slog.String("tech_name", req.TechName),
	)

	respondOK(c, gin.H{
		"message": "Job created successfully",
		"job_id":  jobID,
	})
}

// GetInProgressJobs handles POST /api/v1/jobs/in-progress
// Lists a technician's open jobs, most recently started first.
func (h *JobHandler) GetInProgressJobs(c *gin.Context) {
	var req dto.TechJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing token or tech name")
		return
	}

	if h.creds.Verify(req.Token) == domain.LevelNone {
		respondFail(c, "Invalid token")
		return
	}

	jobs, err := h.storage.GetInProgressJobs(c.Request.Context(), req.TechName)
	if err != nil {
		h.logger.Error("Failed to list in-progress jobs", slog.String("error", err.Error()))
		respondFail(c, "Failed to load jobs")
		return
	}

	respondOK(c, gin.H{"jobs": dto.NewInProgressJobDTOs(jobs)})
}

// GetLatestJobs handles POST /api/v1/jobs/latest
// Lists a technician's recent jobs, in-progress first.
func (h *JobHandler) GetLatestJobs(c *gin.Context) {
	var req dto.TechJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing token or tech name")
		return
	}

	if h.creds.Verify(req.Token) == domain.LevelNone {
		respondFail(c, "Invalid token")
		return
	}

	jobs, err := h.storage.GetLatestJobs(c.Request.Context(), req.TechName, req.Limit)
	if err != nil {
		h.logger.Error("Failed to list latest jobs", slog.String("error", err.Error()))
		respondFail(c, "Failed to load jobs")
		return
	}

	respondOK(c, gin.H{"jobs": dto.NewLatestJobDTOs(jobs)})
}

// GetJob handles POST /api/v1/jobs/get
// Full-field lookup of one job. Technician callers must supply their own
// tech_name and may only read jobs they own.
func (h *JobHandler) GetJob(c *gin.Context) {
	var req dto.GetJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing token or job ID")
		return
	}

	level := h.creds.Verify(req.Token)
	if level == domain.LevelNone {
		respondFail(c, "Invalid token")
		return
	}

	job, err := h.storage.GetJobByID(c.Request.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondFail(c, "Job not found")
			return
		}
		h.logger.Error("Failed to get job",
			slog.Int64("job_id", req.JobID),
			slog.String("error", err.Error()),
		)
		respondFail(c, "Failed to load job")
		return
	}

	ident := domain.Identity{Level: level, TechName: req.TechName}
	if !ident.CanAccess(job) {
		respondFail(c, "You can only access your own jobs")
		return
	}

	respondOK(c, gin.H{"job": dto.NewJobDTO(job)})
}

// CompleteJob handles POST /api/v1/jobs/complete
// Closes a job: end_time, notes and the server-side closed_at stamp are set
// together. Ownership is checked against the stored row.
func (h *JobHandler) CompleteJob(c *gin.Context) {
	var req dto.CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing required fields")
		return
	}

	level := h.creds.Verify(req.Token)
	if level == domain.LevelNone {
		respondFail(c, "Invalid token")
		return
	}

	endTime, err := domain.NormalizeTime(req.EndTime)
	if err != nil {
		respondFail(c, "Invalid end time format")
		return
	}

	job, err := h.storage.GetJobByID(c.Request.Context(), req.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondFail(c, "Job not found")
			return
		}
		h.logger.Error("Failed to load job for completion",
			slog.Int64("job_id", req.JobID),
			slog.String("error", err.Error()),
		)
		respondFail(c, "Failed to complete job")
		return
	}

	ident := domain.Identity{Level: level, TechName: req.TechName}
	if !ident.CanAccess(job) {
		respondFail(c, "You can only access your own jobs")
		return
	}

	if err := h.storage.CompleteJob(c.Request.Context(), req.JobID, endTime, req.Notes); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondFail(c, "Job not found")
			return
		}
		h.logger.Error("Failed to complete job",
			slog.Int64("job_id", req.JobID),
			slog.String("error", err.Error()),
		)
		respondFail(c, "Failed to complete job")
		return
	}

	h.logger.Info("Job completed", slog.Int64("job_id", req.JobID))

	respondOK(c, gin.H{"message": "Job completed successfully"})
}

// GetLocations handles POST /api/v1/jobs/locations
// Distinct locations ordered by most recent use, for autocompletion.
func (h *JobHandler) GetLocations(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing token")
		return
	}

	if h.creds.Verify(req.Token) == domain.LevelNone {
		respondFail(c, "Invalid token")
		return
	}

	locations, err := h.storage.GetRecentLocations(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", slog.String("error", err.Error()))
		respondFail(c, "Failed to load locations")
		return
	}

	respondOK(c, gin.H{"locations": locations})
}
