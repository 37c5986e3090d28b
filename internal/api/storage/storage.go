package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/handymgr/jobtrack/internal/api/domain"
	"github.com/handymgr/jobtrack/shared/sqlite"
	"github.com/jmoiron/sqlx"
)

// DefaultLatestLimit caps a technician's recent-jobs list when the caller
// does not ask for a specific size.
const DefaultLatestLimit = 20

const jobColumns = "id, created_at, tech_name, start_time, location, end_time, notes, closed_at"

// groupedOrder puts in-progress jobs (no end_time) first, then sorts each
// group by its relevant timestamp, newest first. Every job list the admin
// table or a tech's history shows uses this rule.
const groupedOrder = `
	ORDER BY
		CASE WHEN end_time IS NULL THEN 0 ELSE 1 END,
		CASE WHEN end_time IS NULL THEN start_time ELSE end_time END DESC`

// Storage is the job store: durable state and query access for Job rows.
// It holds no in-process state between calls.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(client *sqlite.Client) *Storage {
	return &Storage{db: client.GetDB()}
}

// CreateJob inserts a new in-progress job and returns its assigned id.
// Name and location are trimmed before storage; created_at is the current
// server time.
func (s *Storage) CreateJob(ctx context.Context, techName, startTime, location string) (int64, error) {
	query := `
		INSERT INTO jobs (created_at, tech_name, start_time, location)
		VALUES (?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		time.Now().Format(domain.TimeLayout),
		strings.TrimSpace(techName),
		startTime,
		strings.TrimSpace(location),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create job: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new job id: %w", err)
	}

	return id, nil
}

// GetJobByID looks a job up by primary key. Authorization is the caller's
// concern.
func (s *Storage) GetJobByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE id = ?
	`

	var job domain.Job
	if err := s.db.GetContext(ctx, &job, query, jobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// GetInProgressJobs lists the open jobs of one technician, most recently
// started first. A job counts as open until it has gone through completion
// (closed_at is null).
func (s *Storage) GetInProgressJobs(ctx context.Context, techName string) ([]domain.Job, error) {
	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE tech_name = ? AND closed_at IS NULL
		ORDER BY start_time DESC
	`

	jobs := []domain.Job{}
	if err := s.db.SelectContext(ctx, &jobs, query, techName); err != nil {
		return nil, fmt.Errorf("failed to list in-progress jobs: %w", err)
	}

	return jobs, nil
}

// GetLatestJobs lists one technician's jobs, in-progress first, capped at
// limit rows.
func (s *Storage) GetLatestJobs(ctx context.Context, techName string, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}

	query := `
		SELECT ` + jobColumns + `
		FROM jobs
		WHERE tech_name = ?` + groupedOrder + `
		LIMIT ?
	`

	jobs := []domain.Job{}
	if err := s.db.SelectContext(ctx, &jobs, query, techName, limit); err != nil {
		return nil, fmt.Errorf("failed to list latest jobs: %w", err)
	}

	return jobs, nil
}

// GetAllJobs lists jobs across all technicians, constrained by the filter
// set. The admin table and the CSV export share this query and ordering.
func (s *Storage) GetAllJobs(ctx context.Context, filters []Filter) ([]domain.Job, error) {
	where, args := whereClause(filters)
	query := "SELECT " + jobColumns + " FROM jobs" + where + groupedOrder

	jobs := []domain.Job{}
	if err := s.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJobPartial applies the non-nil fields of upd to one job. Location
// and tech name are trimmed. closed_at is never touched here: it stays a
// one-time completion stamp even when end_time is edited afterwards.
func (s *Storage) UpdateJobPartial(ctx context.Context, jobID int64, upd domain.JobUpdate) error {
	sets := []string{}
	args := []any{}

	if upd.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, strings.TrimSpace(*upd.Location))
	}
	if upd.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *upd.Notes)
	}
	if upd.StartTime != nil {
		sets = append(sets, "start_time = ?")
		args = append(args, *upd.StartTime)
	}
	if upd.EndTime != nil {
		sets = append(sets, "end_time = ?")
		args = append(args, *upd.EndTime)
	}
	if upd.TechName != nil {
		sets = append(sets, "tech_name = ?")
		args = append(args, strings.TrimSpace(*upd.TechName))
	}

	if len(sets) == 0 {
		return domain.ErrNoFieldsToUpdate
	}

	query := "UPDATE jobs SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, jobID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	return requireRow(res)
}

// CompleteJob closes a job: end_time, notes and the server-side closed_at
// stamp are set together in one statement.
func (s *Storage) CompleteJob(ctx context.Context, jobID int64, endTime, notes string) error {
	query := `
		UPDATE jobs
		SET end_time = ?, notes = ?, closed_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		endTime,
		strings.TrimSpace(notes),
		time.Now().Format(domain.TimeLayout),
		jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return requireRow(res)
}

// DeleteJob removes a job unconditionally. Admin-only at the authorization
// layer.
func (s *Storage) DeleteJob(ctx context.Context, jobID int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return requireRow(res)
}

// GetFilterOptions returns the distinct technicians and locations across
// all jobs, each trimmed and alphabetically sorted.
func (s *Storage) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	techs, err := s.distinctColumn(ctx, `
		SELECT DISTINCT tech_name FROM jobs
		WHERE tech_name IS NOT NULL
		ORDER BY tech_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list techs: %w", err)
	}

	locations, err := s.distinctColumn(ctx, `
		SELECT DISTINCT location FROM jobs
		WHERE location IS NOT NULL
		ORDER BY location
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return &domain.FilterOptions{Techs: techs, Locations: locations}, nil
}

// GetRecentLocations returns the distinct non-empty locations ordered by
// the most recent job seen at each, for autocompletion.
func (s *Storage) GetRecentLocations(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT location
		FROM jobs
		WHERE location IS NOT NULL AND location != ''
		ORDER BY
			(SELECT MAX(start_time) FROM jobs j2 WHERE j2.location = jobs.location) DESC,
			location
	`

	locations, err := s.distinctColumn(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent locations: %w", err)
	}

	return locations, nil
}

func (s *Storage) distinctColumn(ctx context.Context, query string) ([]string, error) {
	values := []string{}
	if err := s.db.SelectContext(ctx, &values, query); err != nil {
		return nil, err
	}
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values, nil
}

// requireRow turns a zero-row mutation into ErrJobNotFound.
func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}
