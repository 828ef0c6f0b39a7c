package handlers

import (
	"net/http"

	"microgrid-sim/internal/analysis"
	"microgrid-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// CompareHandler ranks the three strategies on one scenario.
type CompareHandler struct{}

func NewCompareHandler() *CompareHandler {
	return &CompareHandler{}
}

// CompareStrategies handles POST /api/v1/compare
func (h *CompareHandler) CompareStrategies(c *gin.Context) {
	var req models.CompareRequest
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

	outcomes, err := analysis.CompareStrategies(&cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
			"code":    "RUN_FAILED",
			"message": err.Error(),
		}})
		return
	}

	resp := models.CompareResponse{Outcomes: outcomes}
	if len(outcomes) > 0 {
		resp.Seed = outcomes[0].Summary.Seed
	}
	c.JSON(http.StatusOK, resp)
}
