// api/controller/skill_controller_test.go
package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/folio/api/controller"
	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/test/mock"
)

func TestSkillController(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	mockSkillService := new(mock.MockSkillService)
	skillController := controller.NewSkillController(mockSkillService)
	router := setupRouter()
	api := router.Group("/api")
	skillController.RegisterRoutes(api, noCache)

	t.Run("ListSkills_BareArray", func(t *testing.T) {
		skills := []*model.Skill{
			{ID: "7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a01", Name: "Go", Level: "advanced"},
		}
		mockSkillService.On("ListSkills", testify_mock.Anything, 50, 0).
			Return(skills, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/skills", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "["))
	})

	t.Run("CreateSkill_InvalidData", func(t *testing.T) {
		mockSkillService.On("CreateSkill", testify_mock.Anything, testify_mock.Anything).
			Return(nil, folio_errors.ErrInvalidSkillData).Once()

		body := strings.NewReader(`{"name":"Go"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/skills", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateSkill_Success", func(t *testing.T) {
		updated := &model.Skill{ID: "7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a01", Name: "Go", Level: "expert"}
		mockSkillService.On("UpdateSkill", testify_mock.Anything, testify_mock.Anything).
			Return(updated, nil).Once()

		body := strings.NewReader(`{"name":"Go","level":"expert"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/skills/7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a01", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteSkill_Success", func(t *testing.T) {
		mockSkillService.On("DeleteSkill", testify_mock.Anything, "7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a01").
			Return(nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/skills/7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Skill deleted successfully"}`, w.Body.String())
	})

	t.Run("DeleteSkill_NotFound", func(t *testing.T) {
		mockSkillService.On("DeleteSkill", testify_mock.Anything, "7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a99").
			Return(folio_errors.ErrSkillNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/skills/7a1c9ee2-4b54-47a1-a5a3-0f37c94c4a99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	mockSkillService.AssertExpectations(t)
}
