package models

import (
	"time"
)

// Project is a sponsor-posted opportunity. Records are insert-only:
// there are no update or delete operations anywhere in the system,
// so ID and CreatedAt never change after creation.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Skills      string    `json:"skills"`
	Deadline    *string   `json:"deadline"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest is the payload for posting a new project.
// Title and description are required; skills defaults to an empty
// string and deadline is normalized server-side.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Deadline    string `json:"deadline"`
}

// CreateProjectParams carries validated, normalized values into the
// store layer. Deadline is nil when the input had no usable date.
type CreateProjectParams struct {
	Title       string
	Description string
	Skills      string
	Deadline    *string
}
