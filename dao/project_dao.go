// api/dao/project_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/folio/api/audit"
	folio_errors "github.com/dev-mohitbeniwal/folio/api/errors"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
	"github.com/dev-mohitbeniwal/folio/api/model"
)

type ProjectDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewProjectDAO(driver neo4j.Driver, auditService audit.Service) *ProjectDAO {
	dao := &ProjectDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Project", zap.Error(err))
	}
	return dao
}

func (dao *ProjectDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_project_id IF NOT EXISTS
        FOR (p:Project) REQUIRE p.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

func (dao *ProjectDAO) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	start := time.Now()
	logger.Info("Creating new project", zap.String("name", project.Name))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (p:Project {id: $id})
        ON CREATE SET p += $props
        ON MATCH SET p += $props
        RETURN p.id as id
        `
		params := map[string]interface{}{
			"id": project.ID,
			"props": map[string]interface{}{
				"name":         project.Name,
				"description":  project.Description,
				"technologies": project.Technologies,
				"createdAt":    project.CreatedAt.Format(time.RFC3339),
				"updatedAt":    project.UpdatedAt.Format(time.RFC3339),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			return result.Record().Values[0], nil
		}
		return nil, folio_errors.ErrInternalServer
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create project",
			zap.Error(err),
			zap.String("name", project.Name),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Project created successfully",
		zap.String("projectID", project.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, "CREATE_PROJECT", project.ID)
	return &project, nil
}

func (dao *ProjectDAO) UpdateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	start := time.Now()
	logger.Info("Updating project", zap.String("projectID", project.ID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	var updatedProject *model.Project
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:Project {id: $id})
        SET p += $props
        RETURN p
        `
		params := map[string]interface{}{
			"id": project.ID,
			"props": map[string]interface{}{
				"name":         project.Name,
				"description":  project.Description,
				"technologies": project.Technologies,
				"updatedAt":    time.Now().Format(time.RFC3339),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			updatedProject = mapNodeToProject(node)
			return nil, nil
		}
		return nil, folio_errors.ErrProjectNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update project",
			zap.Error(err),
			zap.String("projectID", project.ID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Project updated successfully",
		zap.String("projectID", project.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, "UPDATE_PROJECT", project.ID)
	return updatedProject, nil
}

func (dao *ProjectDAO) DeleteProject(ctx context.Context, projectID string) error {
	start := time.Now()
	logger.Info("Deleting project", zap.String("projectID", projectID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:Project {id: $id})
        DETACH DELETE p
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": projectID})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}

		summary, err := result.Consume()
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if summary.Counters().NodesDeleted() == 0 {
			return nil, folio_errors.ErrProjectNotFound
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete project",
			zap.Error(err),
			zap.String("projectID", projectID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Project deleted successfully",
		zap.String("projectID", projectID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, "DELETE_PROJECT", projectID)
	return nil
}

func (dao *ProjectDAO) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:Project {id: $id})
        RETURN p
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": projectID})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToProject(node), nil
		}
		return nil, folio_errors.ErrProjectNotFound
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.Project), nil
}

func (dao *ProjectDAO) ListProjects(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:Project)
        RETURN p
        ORDER BY p.createdAt DESC
        SKIP $offset LIMIT $limit
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"limit":  limit,
			"offset": offset,
		})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}

		var projects []*model.Project
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			projects = append(projects, mapNodeToProject(node))
		}
		return projects, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*model.Project), nil
}

func (dao *ProjectDAO) logAudit(ctx context.Context, action, resourceID string) {
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     requestingUserID(ctx),
		Action:     action,
		ResourceID: resourceID,
		Success:    true,
	}
	if err := dao.AuditService.LogAccess(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}
}

func mapNodeToProject(node neo4j.Node) *model.Project {
	props := node.Props
	return &model.Project{
		ID:           stringProp(props, "id"),
		Name:         stringProp(props, "name"),
		Description:  stringProp(props, "description"),
		Technologies: stringSliceProp(props, "technologies"),
		CreatedAt:    timeProp(props, "createdAt"),
		UpdatedAt:    timeProp(props, "updatedAt"),
	}
}
