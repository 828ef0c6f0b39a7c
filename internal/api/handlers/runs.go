package handlers

import (
	"net/http"
	"strconv"

	"microgrid-sim/internal/store"

	"github.com/gin-gonic/gin"
)

// RunsHandler serves the persisted run history.
type RunsHandler struct {
	store *store.Store
}

func NewRunsHandler(st *store.Store) *RunsHandler {
	return &RunsHandler{store: st}
}

// ListRuns handles GET /api/v1/runs
func (h *RunsHandler) ListRuns(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{
			"code":    "STORE_DISABLED",
			"message": "run history store is not configured",
		}})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"code":    "BAD_REQUEST",
				"message": "limit must be a positive integer",
			}})
			return
		}
		limit = n
	}

	runs, err := h.store.ListRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "STORE_ERROR",
			"message": err.Error(),
		}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
