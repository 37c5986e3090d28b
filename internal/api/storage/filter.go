package storage

import "strings"

// Filter is one constraint on a job query. Each variant renders a single
// parameterized clause; a filter set is composed with AND, and an empty set
// imposes no constraint.
type Filter interface {
	Clause() (string, []any)
}

// DateFrom is an inclusive lower bound on the date portion of start_time.
type DateFrom string

func (f DateFrom) Clause() (string, []any) {
	return "DATE(start_time) >= ?", []any{string(f)}
}

// DateTo is an inclusive upper bound on the same basis.
type DateTo string

func (f DateTo) Clause() (string, []any) {
	return "DATE(start_time) <= ?", []any{string(f)}
}

// TechIs matches a technician name exactly, after trimming.
type TechIs string

func (f TechIs) Clause() (string, []any) {
	return "tech_name = ?", []any{strings.TrimSpace(string(f))}
}

// LocationIs matches a single location exactly, after trimming.
type LocationIs string

func (f LocationIs) Clause() (string, []any) {
	return "location = ?", []any{strings.TrimSpace(string(f))}
}

// LocationIn matches any location in the set. Callers must not build an
// empty set; an absent filter means no constraint, not "match nothing".
type LocationIn []string

func (f LocationIn) Clause() (string, []any) {
	placeholders := make([]string, len(f))
	args := make([]any, len(f))
	for i, loc := range f {
		placeholders[i] = "?"
		args[i] = strings.TrimSpace(loc)
	}
	return "location IN (" + strings.Join(placeholders, ",") + ")", args
}

// whereClause joins a filter set into a WHERE fragment with its arguments.
func whereClause(filters []Filter) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(filters))
	var args []any
	for _, f := range filters {
		cond, condArgs := f.Clause()
		conds = append(conds, cond)
		args = append(args, condArgs...)
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
