package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"watson/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	projects    []models.Project
	listErr     error
	createErr   error
	createCalls int
	lastParams  models.CreateProjectParams
}

func (f *fakeStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.projects, nil
}

func (f *fakeStore) CreateProject(ctx context.Context, params models.CreateProjectParams) (*models.Project, error) {
	f.createCalls++
	f.lastParams = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Project{
		ID:          int64(len(f.projects) + 1),
		Title:       params.Title,
		Description: params.Description,
		Skills:      params.Skills,
		Deadline:    params.Deadline,
		CreatedAt:   time.Now(),
	}, nil
}

func newRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/projects", ListProjects(store))
	r.POST("/api/projects", CreateProject(store))
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestListProjects(t *testing.T) {
	deadline := "2024-03-15"
	store := &fakeStore{projects: []models.Project{
		{ID: 2, Title: "Second", Description: "Desc", Deadline: &deadline},
		{ID: 1, Title: "First", Description: "Desc"},
	}}
	r := newRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var projects []models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, int64(2), projects[0].ID)
	require.NotNil(t, projects[0].Deadline)
	assert.Equal(t, "2024-03-15", *projects[0].Deadline)
	assert.Nil(t, projects[1].Deadline)
}

func TestListProjects_StoreFailure(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	r := newRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "Failed to load projects", resp["error"])
	// Raw store error never reaches the response body.
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestCreateProject(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := postJSON(r, `{
		"title": "Build a landing page",
		"description": "One-pager for a student club",
		"skills": "HTML, CSS",
		"deadline": "2024-03-15T18:30:00Z"
	}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, 1, store.createCalls)

	require.NotNil(t, store.lastParams.Deadline)
	assert.Equal(t, "2024-03-15", *store.lastParams.Deadline)

	var project models.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &project))
	assert.Equal(t, "Build a landing page", project.Title)
	assert.NotZero(t, project.ID)
}

func TestCreateProject_Defaults(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := postJSON(r, `{"title": "T", "description": "D"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "", store.lastParams.Skills)
	assert.Nil(t, store.lastParams.Deadline)
}

func TestCreateProject_UnparsableDeadline(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := postJSON(r, `{"title": "T", "description": "D", "deadline": "whenever"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Nil(t, store.lastParams.Deadline)
}

func TestCreateProject_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"description": "D"}`},
		{"missing description", `{"title": "T"}`},
		{"empty title", `{"title": "", "description": "D"}`},
		{"empty description", `{"title": "T", "description": ""}`},
		{"empty body", `{}`},
		{"malformed json", `{"title": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			r := newRouter(store)

			rr := postJSON(r, tt.body)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), "Missing fields: title, description")
			assert.Equal(t, 0, store.createCalls, "store must not be touched on invalid input")
		})
	}
}

func TestCreateProject_StoreFailure(t *testing.T) {
	store := &fakeStore{createErr: errors.New("duplicate key value")}
	r := newRouter(store)

	rr := postJSON(r, `{"title": "T", "description": "D"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Equal(t, "Server error while saving project", resp["error"])
	assert.NotContains(t, rr.Body.String(), "duplicate key value")
}
