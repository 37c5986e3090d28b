package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Config holds SQLite connection configuration.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// Client owns the SQLite database handle and prepares the schema on open.
type Client struct {
	db     *sqlx.DB
	config *Config
	logger *slog.Logger
}

// The jobs table: integer primary key plus seven data columns, timestamps
// stored as text.
const schema = `
	CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		tech_name TEXT NOT NULL,
		start_time TEXT NOT NULL,
		location TEXT NOT NULL,
		end_time TEXT,
		notes TEXT,
		closed_at TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_tech_closed ON jobs(tech_name, closed_at);
`

// NewClient opens the database file, creating it and the schema if needed.
func NewClient(config *Config, logger *slog.Logger) (*Client, error) {
	logger.Info("Opening SQLite database",
		slog.String("path", config.Path),
	)

	busy := config.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)",
		config.Path, busy.Milliseconds())

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		logger.Error("Failed to open SQLite database",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite permits a single writer; one pooled connection keeps writes
	// serialized and makes :memory: databases see a single store.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite database ready",
		slog.String("path", config.Path),
		slog.Duration("busy_timeout", busy),
	)

	return &Client{db: db, config: config, logger: logger}, nil
}

// GetDB returns the underlying sqlx.DB instance.
func (c *Client) GetDB() *sqlx.DB {
	return c.db
}

// Close closes the database handle.
func (c *Client) Close() error {
	c.logger.Info("Closing SQLite database")

	if c.db == nil {
		return nil
	}
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close SQLite database",
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Ping checks the database connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// HealthCheck verifies the database answers a trivial query.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var result int
	if err := c.db.GetContext(ctx, &result, "SELECT 1"); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}
