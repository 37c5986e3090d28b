package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterClauses(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantCond string
		wantArgs []any
	}{
		{
			name:     "date lower bound",
			filter:   DateFrom("2024-01-01"),
			wantCond: "DATE(start_time) >= ?",
			wantArgs: []any{"2024-01-01"},
		},
		{
			name:     "date upper bound",
			filter:   DateTo("2024-01-31"),
			wantCond: "DATE(start_time) <= ?",
			wantArgs: []any{"2024-01-31"},
		},
		{
			name:     "tech exact match trims",
			filter:   TechIs(" Alice "),
			wantCond: "tech_name = ?",
			wantArgs: []any{"Alice"},
		},
		{
			name:     "single location trims",
			filter:   LocationIs(" Main St "),
			wantCond: "location = ?",
			wantArgs: []any{"Main St"},
		},
		{
			name:     "location set membership",
			filter:   LocationIn{"Site A", " Site B "},
			wantCond: "location IN (?,?)",
			wantArgs: []any{"Site A", "Site B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, args := tt.filter.Clause()
			assert.Equal(t, tt.wantCond, cond)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestWhereClause(t *testing.T) {
	t.Run("empty set imposes no constraint", func(t *testing.T) {
		where, args := whereClause(nil)
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		where, args := whereClause([]Filter{
			DateFrom("2024-01-01"),
			TechIs("Alice"),
			LocationIn{"Site A", "Site B"},
		})
		assert.Equal(t, " WHERE DATE(start_time) >= ? AND tech_name = ? AND location IN (?,?)", where)
		assert.Equal(t, []any{"2024-01-01", "Alice", "Site A", "Site B"}, args)
	})
}
