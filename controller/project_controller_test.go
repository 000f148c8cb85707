// api/controller/project_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/folio/api/controller"
	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/test/mock"
)

// noCache stands in for the page cache middleware in routing tests.
func noCache(c *gin.Context) {
	c.Next()
}

func TestProjectController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	mockProjectService := new(mock.MockProjectService)
	projectController := controller.NewProjectController(mockProjectService)
	router := setupRouter()
	api := router.Group("/api")
	projectController.RegisterRoutes(api, noCache)

	t.Run("ListProjects_Success", func(t *testing.T) {
		projects := []*model.Project{
			{ID: "5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a01", Name: "Project 1"},
			{ID: "5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a02", Name: "Project 2"},
		}
		mockProjectService.On("ListProjects", testify_mock.Anything, 50, 0).
			Return(projects, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string][]model.Project
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp["projects"], 2)
	})

	t.Run("ListProjects_EmptyIsArray", func(t *testing.T) {
		mockProjectService.On("ListProjects", testify_mock.Anything, 50, 0).
			Return(nil, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"projects":[]}`, w.Body.String())
	})

	t.Run("GetProject_NotFound", func(t *testing.T) {
		mockProjectService.On("GetProject", testify_mock.Anything, "5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a99").
			Return(nil, folio_errors.ErrProjectNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects/5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})

	t.Run("GetProject_InvalidID", func(t *testing.T) {
		mockProjectService.On("GetProject", testify_mock.Anything, "not-a-uuid").
			Return(nil, folio_errors.ErrInvalidResourceID).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/projects/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid ID format"}`, w.Body.String())
	})

	t.Run("CreateProject_Success", func(t *testing.T) {
		created := &model.Project{ID: "5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a01", Name: "Portfolio Site"}
		mockProjectService.On("CreateProject", testify_mock.Anything, testify_mock.Anything).
			Return(created, nil).Once()

		body := strings.NewReader(`{"name":"Portfolio Site","technologies":["Go","Neo4j"]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/projects", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("UpdateProject_NotFound", func(t *testing.T) {
		mockProjectService.On("UpdateProject", testify_mock.Anything, testify_mock.Anything).
			Return(nil, folio_errors.ErrProjectNotFound).Once()

		body := strings.NewReader(`{"name":"Renamed"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/projects/5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a99", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteProject_Success", func(t *testing.T) {
		mockProjectService.On("DeleteProject", testify_mock.Anything, "5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a01").
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/projects/5f0c9ee2-4b54-47a1-a5a3-0f37c94c4a01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	mockProjectService.AssertExpectations(t)
}
