package dto

import (
	"database/sql"
	"encoding/json"

	"github.com/handymgr/jobtrack/internal/api/domain"
)

// StringList accepts either a single JSON string or an array of strings,
// the two shapes the admin client sends for the location filter.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

type CreateJobRequest struct {
	Token     string `json:"token" binding:"required"`
	TechName  string `json:"tech_name" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Location  string `json:"location" binding:"required"`
}

// TechJobsRequest serves both the in-progress and latest-jobs lists.
type TechJobsRequest struct {
	Token    string `json:"token" binding:"required"`
	TechName string `json:"tech_name" binding:"required"`
	Limit    int    `json:"limit"`
}

type GetJobRequest struct {
	Token    string `json:"token" binding:"required"`
	JobID    int64  `json:"job_id" binding:"required"`
	TechName string `json:"tech_name"`
}

type CompleteJobRequest struct {
	Token    string `json:"token" binding:"required"`
	JobID    int64  `json:"job_id" binding:"required"`
	EndTime  string `json:"end_time" binding:"required"`
	Notes    string `json:"notes"`
	TechName string `json:"tech_name"`
}

type UpdateJobRequest struct {
	Token     string  `json:"token" binding:"required"`
	JobID     int64   `json:"job_id" binding:"required"`
	Location  *string `json:"location"`
	Notes     *string `json:"notes"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	TechName  *string `json:"tech_name"`
}

type AdminJobsRequest struct {
	Token   string      `json:"token" binding:"required"`
	Filters *JobFilters `json:"filters"`
}

// JobFilters mirrors the filter keys of the admin list: inclusive date
// bounds on start_time's date, exact tech match, and a location that may be
// a single value or a set.
type JobFilters struct {
	DateFrom string     `json:"date_from"`
	DateTo   string     `json:"date_to"`
	Tech     string     `json:"tech"`
	Location StringList `json:"location"`
}

type DeleteJobRequest struct {
	Token string `json:"token" binding:"required"`
	JobID int64  `json:"job_id" binding:"required"`
}

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// JobDTO is the full wire form of a job.
type JobDTO struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"created_at"`
	TechName  string  `json:"tech_name"`
	StartTime string  `json:"start_time"`
	Location  string  `json:"location"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`
	ClosedAt  *string `json:"closed_at"`
}

// InProgressJobDTO is the trimmed shape of the active-job list.
type InProgressJobDTO struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	Location  string `json:"location"`
}

// LatestJobDTO is the shape of a technician's recent-jobs list.
type LatestJobDTO struct {
	ID        int64   `json:"id"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Location  string  `json:"location"`
	Notes     *string `json:"notes"`
}

func NewJobDTO(job *domain.Job) JobDTO {
	return JobDTO{
		ID:        job.ID,
		CreatedAt: job.CreatedAt,
		TechName:  job.TechName,
		StartTime: job.StartTime,
		Location:  job.Location,
		EndTime:   nullable(job.EndTime),
		Notes:     nullable(job.Notes),
		ClosedAt:  nullable(job.ClosedAt),
	}
}

func NewInProgressJobDTOs(jobs []domain.Job) []InProgressJobDTO {
	out := make([]InProgressJobDTO, len(jobs))
	for i, job := range jobs {
		out[i] = InProgressJobDTO{
			ID:        job.ID,
			StartTime: job.StartTime,
			Location:  job.Location,
		}
	}
	return out
}

func NewLatestJobDTOs(jobs []domain.Job) []LatestJobDTO {
	out := make([]LatestJobDTO, len(jobs))
	for i, job := range jobs {
		out[i] = LatestJobDTO{
			ID:        job.ID,
			StartTime: job.StartTime,
			EndTime:   nullable(job.EndTime),
			Location:  job.Location,
			Notes:     nullable(job.Notes),
		}
	}
	return out
}

func NewJobDTOs(jobs []domain.Job) []JobDTO {
	out := make([]JobDTO, len(jobs))
	for i := range jobs {
		out[i] = NewJobDTO(&jobs[i])
	}
	return out
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
