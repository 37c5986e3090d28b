package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/handymgr/jobtrack/internal/api/domain"
	"github.com/handymgr/jobtrack/internal/api/dto"
	"github.com/handymgr/jobtrack/internal/api/storage"
)

func (h *AdminHandler) requireAdmin(c *gin.Context, token string) bool {
	if h.creds.Verify(token) != domain.LevelAdmin {
		respondFail(c, "Invalid admin token")
		return false
	}
	return true
}

// ListJobs handles POST /api/v1/admin/jobs
// All jobs across technicians, constrained by the optional filter set. The
// dashboard table and the CSV export both consume this response.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	var req dto.AdminJobsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing token")
		return
	}

	if !h.requireAdmin(c, req.Token) {
		return
	}

	filters, err := buildFilters(req.Filters)
	if err != nil {
		respondFail(c, err.Error())
		return
	}

	jobs, err := h.storage.GetAllJobs(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.String("error", err.Error()))
		respondFail(c, "Failed to load jobs")
		return
	}

	respondOK(c, gin.H{"jobs": dto.NewJobDTOs(jobs)})
}

// UpdateJob handles POST /api/v1/admin/jobs/update
// Applies any subset of the editable fields to one job. Editing end_time
// here never touches closed_at.
func (h *AdminHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Job ID is required")
		return
	}

	if !h.requireAdmin(c, req.Token) {
		return
	}

	upd := domain.JobUpdate{
		Location:  req.Location,
		Notes:     req.Notes,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		TechName:  req.TechName,
	}

	if upd.Empty() {
		respondFail(c, "At least one field must be provided for update")
		return
	}

	if upd.StartTime != nil {
		normalized, err := domain.NormalizeTime(*upd.StartTime)
		if err != nil {
			respondFail(c, "Invalid start time format")
			return
		}
		upd.StartTime = &normalized
	}

	if upd.EndTime != nil {
		normalized, err := domain.NormalizeTime(*upd.EndTime)
		if err != nil {
			respondFail(c, "Invalid end time format")
			return
		}
		upd.EndTime = &normalized
	}

	if err := h.storage.UpdateJobPartial(c.Request.Context(), req.JobID, upd); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondFail(c, "Job not found")
			return
		}
		h.logger.Error("Failed to update job",
			slog.Int64("job_id", req.JobID),
			slog.String("error", err.Error()),
		)
		respondFail(c, "Failed to update job")
		return
	}

	h.logger.Info("Job updated", slog.Int64("job_id", req.JobID))

	respondOK(c, gin.H{"message": "Job updated successfully"})
}

// DeleteJob handles POST /api/v1/admin/jobs/delete
// Unconditional delete by primary key.
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	var req dto.DeleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Job ID is required")
		return
	}

	if !h.requireAdmin(c, req.Token) {
		return
	}

	if err := h.storage.DeleteJob(c.Request.Context(), req.JobID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			respondFail(c, "Job not found")
			return
		}
		h.logger.Error("Failed to delete job",
			slog.Int64("job_id", req.JobID),
			slog.String("error", err.Error()),
		)
		respondFail(c, "Failed to delete job")
		return
	}

	h.logger.Info("Job deleted", slog.Int64("job_id", req.JobID))

	respondOK(c, gin.H{"message": "Job deleted successfully"})
}

// GetFilterOptions handles POST /api/v1/admin/filter-options
// Distinct techs and locations for the dashboard dropdowns.
func (h *AdminHandler) GetFilterOptions(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Missing token")
		return
	}

	if !h.requireAdmin(c, req.Token) {
		return
	}

	options, err := h.storage.GetFilterOptions(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load filter options", slog.String("error", err.Error()))
		respondFail(c, "Failed to load filter options")
		return
	}

	respondOK(c, gin.H{"options": options})
}

// buildFilters turns the wire filter object into storage filters. Absent or
// empty keys impose no constraint; date bounds must parse.
func buildFilters(f *dto.JobFilters) ([]storage.Filter, error) {
	if f == nil {
		return nil, nil
	}

	var filters []storage.Filter

	if f.DateFrom != "" {
		d, err := domain.NormalizeDate(f.DateFrom)
		if err != nil {
			return nil, errors.New("Invalid date_from format")
		}
		filters = append(filters, storage.DateFrom(d))
	}

	if f.DateTo != "" {
		d, err := domain.NormalizeDate(f.DateTo)
		if err != nil {
			return nil, errors.New("Invalid date_to format")
		}
		filters = append(filters, storage.DateTo(d))
	}

	if f.Tech != "" {
		filters = append(filters, storage.TechIs(f.Tech))
	}

	switch len(f.Location) {
	case 0:
	case 1:
		if f.Location[0] != "" {
			filters = append(filters, storage.LocationIs(f.Location[0]))
		}
	default:
		filters = append(filters, storage.LocationIn(f.Location))
	}

	return filters, nil
}
