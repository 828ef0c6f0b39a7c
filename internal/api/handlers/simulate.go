package handlers

import (
	"log"
	"net/http"

	"microgrid-sim/internal/api/models"
	"microgrid-sim/internal/simulate"
	"microgrid-sim/internal/store"

	"github.com/gin-gonic/gin"
)

// SimulateHandler runs scenarios on request.
type SimulateHandler struct {
	store *store.Store // may be nil (history disabled)
}

// NewSimulateHandler creates the handler; st may be nil to disable the
// run-history store.
func NewSimulateHandler(st *store.Store) *SimulateHandler {
	return &SimulateHandler{store: st}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    "BAD_REQUEST",
			"message": err.Error(),
		}})
		return
	}

	cfg := req.Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    "INVALID_CONFIG",
			"message": err.Error(),
		}})
		return
	}

	eng, err := simulate.FromConfig(&cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
			"code":    "INVALID_CONFIG",
			"message": err.Error(),
		}})
		return
	}

	res, err := eng.Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "RUN_FAILED",
			"message": err.Error(),
		}})
		return
	}

	resp := models.SimulateResponse{Summary: res.Summary}
	if req.IncludeSteps {
		resp.Steps = res.Steps
	}

	if req.Save && h.store != nil {
		id, err := h.store.SaveRun(res.Summary)
		if err != nil {
			// The run itself succeeded; report it and log the store failure.
			log.Printf("saving run: %v", err)
		} else {
			resp.RunID = id
		}
	}

	c.JSON(http.StatusOK, resp)
}
