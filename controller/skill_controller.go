// api/controller/skill_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	"github.com/dev-mohitbeniwal/folio/api/model"
	"github.com/dev-mohitbeniwal/folio/api/service"
	"github.com/dev-mohitbeniwal/folio/api/util"
	helper_util "github.com/dev-mohitbeniwal/folio/api/util/helper"
)

type SkillController struct {
	skillService service.ISkillService
}

func NewSkillController(skillService service.ISkillService) *SkillController {
	return &SkillController{
		skillService: skillService,
	}
}

// RegisterRoutes registers the API routes. Read routes get the page
// cache; write routes bypass it.
func (sc *SkillController) RegisterRoutes(r *gin.RouterGroup, cache gin.HandlerFunc) {
	skills := r.Group("/skills")
	{
		skills.GET("", cache, sc.ListSkills)
		skills.GET("/:id", cache, sc.GetSkill)
		skills.POST("", sc.CreateSkill)
		skills.PUT("/:id", sc.UpdateSkill)
		skills.DELETE("/:id", sc.DeleteSkill)
	}
}

// RegisterAdminRoutes registers the admin-only read surface.
func (sc *SkillController) RegisterAdminRoutes(r *gin.RouterGroup, cache gin.HandlerFunc) {
	r.GET("/skills", cache, sc.ListSkills)
}

// ListSkills endpoint. The skill list is a bare array, unlike projects;
// both shapes are load-bearing for existing clients.
func (sc *SkillController) ListSkills(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	skills, err := sc.skillService.ListSkills(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch skills", err)
		return
	}
	if skills == nil {
		skills = []*model.Skill{}
	}

	c.JSON(http.StatusOK, skills)
}

// GetSkill endpoint
func (sc *SkillController) GetSkill(c *gin.Context) {
	skill, err := sc.skillService.GetSkill(c, c.Param("id"))
	if err != nil {
		switch err {
		case folio_errors.ErrInvalidResourceID:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ID format", err)
		case folio_errors.ErrSkillNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch skill", err)
		}
		return
	}

	c.JSON(http.StatusOK, skill)
}

// CreateSkill endpoint
func (sc *SkillController) CreateSkill(c *gin.Context) {
	var skill model.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid skill data", err)
		return
	}

	created, err := sc.skillService.CreateSkill(c, skill)
	if err != nil {
		switch err {
		case folio_errors.ErrInvalidSkillData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid skill data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create skill", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateSkill endpoint
func (sc *SkillController) UpdateSkill(c *gin.Context) {
	var skill model.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid skill data", err)
		return
	}
	skill.ID = c.Param("id")

	updated, err := sc.skillService.UpdateSkill(c, skill)
	if err != nil {
		switch err {
		case folio_errors.ErrInvalidResourceID:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ID format", err)
		case folio_errors.ErrInvalidSkillData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid skill data", err)
		case folio_errors.ErrSkillNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update skill", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteSkill endpoint
func (sc *SkillController) DeleteSkill(c *gin.Context) {
	if err := sc.skillService.DeleteSkill(c, c.Param("id")); err != nil {
		switch err {
		case folio_errors.ErrInvalidResourceID:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ID format", err)
		case folio_errors.ErrSkillNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete skill", err)
		}
		return
	}

	util.RespondWithMessage(c, http.StatusOK, "Skill deleted successfully")
}
