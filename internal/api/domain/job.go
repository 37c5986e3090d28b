package domain

import "database/sql"

// Job is one field-service work record. Timestamps are stored as
// "YYYY-MM-DD HH:MM:SS" text, the layout the jobs table has always used;
// lexicographic order on that layout is chronological order.
type Job struct {
	ID        int64          `db:"id"`
	CreatedAt string         `db:"created_at"`
	TechName  string         `db:"tech_name"`
	StartTime string         `db:"start_time"`
	Location  string         `db:"location"`
	EndTime   sql.NullString `db:"end_time"`
	Notes     sql.NullString `db:"notes"`
	ClosedAt  sql.NullString `db:"closed_at"`
}

// Completed reports whether the job has an end time recorded.
func (j *Job) Completed() bool {
	return j.EndTime.Valid
}

// JobUpdate carries the fields of a partial update. A nil field leaves the
// column unchanged.
type JobUpdate struct {
	Location  *string
	Notes     *string
	StartTime *string
	EndTime   *string
	TechName  *string
}

// Empty reports whether the update would touch no columns.
func (u JobUpdate) Empty() bool {
	return u.Location == nil && u.Notes == nil && u.StartTime == nil &&
		u.EndTime == nil && u.TechName == nil
}

// FilterOptions feeds the admin dashboard dropdowns.
type FilterOptions struct {
	Techs     []string `json:"techs"`
	Locations []string `json:"locations"`
}
