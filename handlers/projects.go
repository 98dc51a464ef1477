package handlers

import (
	"context"
	"log"
	"net/http"

	"watson/models"

	"github.com/gin-gonic/gin"
)

// ProjectStore is the slice of the database layer the project
// handlers need. *database.DB satisfies it.
type ProjectStore interface {
	CreateProject(ctx context.Context, params models.CreateProjectParams) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
}

const missingFieldsError = "Missing fields: title, description"

func ListProjects(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			log.Printf("GET /api/projects failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to load projects"})
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func CreateProject(store ProjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Bind error: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": missingFieldsError})
			return
		}

		// Both required fields are checked before the store is touched.
		if req.Title == "" || req.Description == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": missingFieldsError})
			return
		}

		params := models.CreateProjectParams{
			Title:       req.Title,
			Description: req.Description,
			Skills:      req.Skills,
			Deadline:    normalizeDeadline(req.Deadline),
		}

		ctx := c.Request.Context()
		project, err := store.CreateProject(ctx, params)
		if err != nil {
			log.Printf("POST /api/projects failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Server error while saving project"})
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}
