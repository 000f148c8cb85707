// api/controller/project_controller.go
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

type ProjectController struct {
	projectService service.IProjectService
}

func NewProjectController(projectService service.IProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// RegisterRoutes registers the API routes. Read routes get the page
// cache; write routes bypass it.
func (pc *ProjectController) RegisterRoutes(r *gin.RouterGroup, cache gin.HandlerFunc) {
	projects := r.Group("/projects")
	{
		projects.GET("", cache, pc.ListProjects)
		projects.GET("/:id", cache, pc.GetProject)
		projects.POST("", pc.CreateProject)
		projects.PUT("/:id", pc.UpdateProject)
		projects.DELETE("/:id", pc.DeleteProject)
	}
}

// RegisterAdminRoutes registers the admin-only read surface.
func (pc *ProjectController) RegisterAdminRoutes(r *gin.RouterGroup, cache gin.HandlerFunc) {
	r.GET("/projects", cache, pc.ListProjects)
}

// ListProjects endpoint
func (pc *ProjectController) ListProjects(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	projects, err := pc.projectService.ListProjects(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch projects", err)
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject endpoint
func (pc *ProjectController) GetProject(c *gin.Context) {
	project, err := pc.projectService.GetProject(c, c.Param("id"))
	if err != nil {
		switch err {
		case folio_errors.ErrInvalidResourceID:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ID format", err)
		case folio_errors.ErrProjectNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch project", err)
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject endpoint
func (pc *ProjectController) CreateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid project data", err)
		return
	}

	created, err := pc.projectService.CreateProject(c, project)
	if err != nil {
		switch err {
		case folio_errors.ErrInvalidProjectData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid project data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create project", err)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateProject endpoint
func (pc *ProjectController) UpdateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid project data", err)
		return
	}
	project.ID = c.Param("id")

	updated, err := pc.projectService.UpdateProject(c, project)
	if err != nil {
		switch err {
		case folio_errors.ErrInvalidResourceID:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ID format", err)
		case folio_errors.ErrInvalidProjectData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid project data", err)
		case folio_errors.ErrProjectNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update project", err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProject endpoint
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	if err := pc.projectService.DeleteProject(c, c.Param("id")); err != nil {
		switch err {
		case folio_errors.ErrInvalidResourceID:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid ID format", err)
		case folio_errors.ErrProjectNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete project", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
