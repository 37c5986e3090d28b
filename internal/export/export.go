// Package export writes one day's jobs as CSV for the office workflow. It
// reuses the same store query and ordering the admin table uses.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/handymgr/jobtrack/internal/api/domain"
	"github.com/handymgr/jobtrack/internal/api/storage"
)

var header = []string{"Start Time", "End Time", "Tech Name", "Location", "Notes", "Status"}

// WriteDay writes the jobs whose start_time falls on date (YYYY-MM-DD) to w
// and returns how many rows it wrote.
func WriteDay(ctx context.Context, store *storage.Storage, w io.Writer, date string) (int, error) {
	day, err := domain.NormalizeDate(date)
	if err != nil {
		return 0, fmt.Errorf("invalid export date %q: %w", date, err)
	}

	jobs, err := store.GetAllJobs(ctx, []storage.Filter{
		storage.DateFrom(day),
		storage.DateTo(day),
	})
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return 0, err
	}

	for i := range jobs {
		job := &jobs[i]
		status := "Completed"
		if !job.ClosedAt.Valid {
			status = "In Progress"
		}

		record := []string{
			shortTime(job.StartTime),
			shortTime(job.EndTime.String),
			job.TechName,
			job.Location,
			job.Notes.String,
			status,
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return len(jobs), nil
}

// shortTime renders MM/DD HH:MM, dropping seconds and year. Values that do
// not parse pass through untouched rather than losing data.
func shortTime(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(domain.TimeLayout, s)
	if err != nil {
		return s
	}
	return t.Format("01/02 15:04")
}
