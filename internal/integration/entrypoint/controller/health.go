package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/infra/db"
)

// HealthController reports service liveness and database reachability.
type HealthController struct {
	database *db.Database
}

// NewHealthController creates a new health controller instance.
func NewHealthController(database *db.Database) *HealthController {
	return &HealthController{database: database}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	if !c.database.HealthCheck() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
