package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"testing"

	"github.com/handymgr/jobtrack/internal/api/storage"
	"github.com/handymgr/jobtrack/shared/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *storage.Storage {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := sqlite.NewClient(&sqlite.Config{Path: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return storage.NewStorage(client)
}

func TestWriteDay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	closed, err := store.CreateJob(ctx, "Alice", "2024-03-01 08:15:00", "Site A")
	require.NoError(t, err)
	require.NoError(t, store.CompleteJob(ctx, closed, "2024-03-01 09:45:00", "replaced filter"))

	_, err = store.CreateJob(ctx, "Bob", "2024-03-01 10:00:00", "Site B")
	require.NoError(t, err)

	// A different day stays out of the export.
	_, err = store.CreateJob(ctx, "Bob", "2024-03-02 08:00:00", "Site C")
	require.NoError(t, err)

	var buf bytes.Buffer
	count, err := WriteDay(ctx, store, &buf, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Start Time", "End Time", "Tech Name", "Location", "Notes", "Status"}, records[0])

	// In-progress rows first, times rendered MM/DD HH:MM without seconds.
	assert.Equal(t, []string{"03/01 10:00", "", "Bob", "Site B", "", "In Progress"}, records[1])
	assert.Equal(t, []string{"03/01 08:15", "03/01 09:45", "Alice", "Site A", "replaced filter", "Completed"}, records[2])
}

func TestWriteDay_InvalidDate(t *testing.T) {
	store := newTestStore(t)

	var buf bytes.Buffer
	_, err := WriteDay(context.Background(), store, &buf, "last tuesday")
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestWriteDay_EmptyDayStillWritesHeader(t *testing.T) {
	store := newTestStore(t)

	var buf bytes.Buffer
	count, err := WriteDay(context.Background(), store, &buf, "2024-03-01")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "Start Time,End Time,Tech Name,Location,Notes,Status\n", buf.String())
}
