// Package board models the project page's state: a submission form
// and a newest-first list, with explicit loading and error flags.
// State transitions are plain method calls so the contract (optimistic
// prepend, form retention on failure, single error slot) is testable
// without any rendering framework.
package board

import (
	"context"
	"strings"

	"watson/models"
)

// API is the client data layer the board drives. *client.Client
// satisfies it.
type API interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, form models.CreateProjectRequest) (*models.Project, error)
}

// Form holds the four input fields. All are required before a
// submission is attempted; the server independently re-validates.
type Form struct {
	Title       string
	Description string
	Skills      string
	Deadline    string
}

func (f Form) complete() bool {
	return strings.TrimSpace(f.Title) != "" &&
		strings.TrimSpace(f.Description) != "" &&
		strings.TrimSpace(f.Skills) != "" &&
		strings.TrimSpace(f.Deadline) != ""
}

const fillAllFieldsError = "Please fill in all fields"

type Board struct {
	api API

	Projects   []models.Project
	Form       Form
	Fetching   bool
	Submitting bool
	Err        string
}

func New(api API) *Board {
	return &Board{api: api}
}

// LoadProjects replaces the list with a fresh fetch. The Fetching
// flag is raised around the call so a renderer can show a loading
// state. On failure the previous list is kept and Err is set.
func (b *Board) LoadProjects(ctx context.Context) {
	b.Fetching = true
	b.Err = ""

	projects, err := b.api.ListProjects(ctx)
	b.Fetching = false
	if err != nil {
		b.Err = err.Error()
		return
	}

	b.Projects = projects
}

// Refresh is the explicit user-triggered reload.
func (b *Board) Refresh(ctx context.Context) {
	b.LoadProjects(ctx)
}

// SubmitProject validates the form and posts it. On success the
// returned record is prepended to the list (no reload) and the form
// is cleared. On failure the form keeps its values so the user can
// retry without retyping, and Err holds the last failure.
func (b *Board) SubmitProject(ctx context.Context) {
	if b.Submitting {
		return
	}

	if !b.Form.complete() {
		b.Err = fillAllFieldsError
		return
	}

	b.Submitting = true
	b.Err = ""

	project, err := b.api.CreateProject(ctx, models.CreateProjectRequest{
		Title:       b.Form.Title,
		Description: b.Form.Description,
		Skills:      b.Form.Skills,
		Deadline:    b.Form.Deadline,
	})
	b.Submitting = false
	if err != nil {
		b.Err = err.Error()
		return
	}

	b.Projects = append([]models.Project{*project}, b.Projects...)
	b.Form = Form{}
}
