package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handymgr/jobtrack/internal/api/domain"
	"github.com/handymgr/jobtrack/internal/api/storage"
	"github.com/handymgr/jobtrack/shared/sqlite"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger      *slog.Logger
	DBClient    *sqlite.Client
	Storage     *storage.Storage
	Credentials domain.Credentials
}

// JobHandler handles the technician-facing job endpoints
type JobHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
	creds   domain.Credentials
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
		creds:   deps.Credentials,
	}
}

// AdminHandler handles the dashboard endpoints
type AdminHandler struct {
	logger  *slog.Logger
	storage *storage.Storage
	creds   domain.Credentials
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(deps *Dependencies) *AdminHandler {
	return &AdminHandler{
		logger:  deps.Logger,
		storage: deps.Storage,
		creds:   deps.Credentials,
	}
}

// Domain failures travel in the envelope with HTTP 200; the clients key off
// the success flag, not the status code. Only malformed requests get a 4xx.

func respondOK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func respondFail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}
