package handlers

import (
	"net/http"

	"microgrid-sim/internal/api/models"
	"microgrid-sim/internal/strategy"

	"github.com/gin-gonic/gin"
)

// StrategiesHandler handles strategy discovery requests.
type StrategiesHandler struct{}

func NewStrategiesHandler() *StrategiesHandler {
	return &StrategiesHandler{}
}

var strategyDescriptions = map[string]string{
	strategy.NameLoadPriority:    "Serve the house load first, charge the battery with the surplus, export the rest up to the grid limit.",
	strategy.NameChargePriority:  "Charge the battery before the house load, serve the load from what remains, export any surplus past that.",
	strategy.NameProducePriority: "Export surplus generation first up to the grid limit, charge the battery with the remainder.",
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategiesHandler) ListStrategies(c *gin.Context) {
	infos := make([]models.StrategyInfo, 0, len(strategy.Names()))
	for _, name := range strategy.Names() {
		infos = append(infos, models.StrategyInfo{
			Name:        name,
			Description: strategyDescriptions[name],
		})
	}
	c.JSON(http.StatusOK, gin.H{"strategies": infos})
}
