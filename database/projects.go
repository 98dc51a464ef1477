package database

import (
	"context"
	"fmt"
	"log"

	"watson/models"
)

const projectColumns = "id, title, description, skills, to_char(deadline, 'YYYY-MM-DD'), created_at"

// CreateProject inserts one row and returns the persisted record,
// including the server-assigned id and creation timestamp. The
// deadline is expected to be pre-normalized (YYYY-MM-DD or nil).
func (db *DB) CreateProject(ctx context.Context, params models.CreateProjectParams) (*models.Project, error) {
	query := fmt.Sprintf(`
		INSERT INTO projects (title, description, skills, deadline)
		VALUES ($1, $2, $3, $4::date)
		RETURNING %s
	`, projectColumns)

	project, err := scanProject(db.Pool.QueryRow(ctx, query,
		params.Title, params.Description, params.Skills, params.Deadline))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Printf("Created project: %q (ID: %d)", project.Title, project.ID)
	return project, nil
}

// ListProjects returns every project, newest first by id. No
// pagination or filtering exists for this resource.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		ORDER BY id DESC
	`, projectColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return scanProjects(rows)
}

// Helper functions

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Skills,
		&project.Deadline,
		&project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type rowsScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanProjects(rows rowsScanner) ([]models.Project, error) {
	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}
