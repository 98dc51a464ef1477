package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStore is the liveness slice of the database layer.
type HealthStore interface {
	Now(ctx context.Context) (time.Time, error)
}

// Root serves a plain-text banner so a browser hit on / confirms the
// service is up.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Watson backend API is running. Try /health or /api/projects")
}

// HealthCheck verifies store connectivity with a trivial query and
// reports the store's clock. Used for operational monitoring, not by
// the UI.
func HealthCheck(store HealthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		now, err := store.Now(c.Request.Context())
		if err != nil {
			log.Printf("Health check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "DB connection failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "db": "connected", "now": now})
	}
}
