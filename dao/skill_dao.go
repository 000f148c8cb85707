// api/dao/skill_dao.go
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

type SkillDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewSkillDAO(driver neo4j.Driver, auditService audit.Service) *SkillDAO {
	dao := &SkillDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Skill", zap.Error(err))
	}
	return dao
}

func (dao *SkillDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE CONSTRAINT unique_skill_id IF NOT EXISTS
        FOR (s:Skill) REQUIRE s.id IS UNIQUE
        `
		_, err := transaction.Run(query, nil)
		return nil, err
	})
	return err
}

func (dao *SkillDAO) CreateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error) {
	start := time.Now()
	logger.Info("Creating new skill", zap.String("name", skill.Name))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (s:Skill {id: $id})
        ON CREATE SET s += $props
        ON MATCH SET s += $props
        RETURN s.id as id
        `
		params := map[string]interface{}{
			"id": skill.ID,
			"props": map[string]interface{}{
				"name":      skill.Name,
				"level":     skill.Level,
				"category":  skill.Category,
				"createdAt": skill.CreatedAt.Format(time.RFC3339),
				"updatedAt": skill.UpdatedAt.Format(time.RFC3339),
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
		logger.Error("Failed to create skill",
			zap.Error(err),
			zap.String("name", skill.Name),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Skill created successfully",
		zap.String("skillID", skill.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, "CREATE_SKILL", skill.ID)
	return &skill, nil
}

func (dao *SkillDAO) UpdateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error) {
	start := time.Now()
	logger.Info("Updating skill", zap.String("skillID", skill.ID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	var updatedSkill *model.Skill
	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (s:Skill {id: $id})
        SET s += $props
        RETURN s
        `
		params := map[string]interface{}{
			"id": skill.ID,
			"props": map[string]interface{}{
				"name":      skill.Name,
				"level":     skill.Level,
				"category":  skill.Category,
				"updatedAt": time.Now().Format(time.RFC3339),
			},
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			updatedSkill = mapNodeToSkill(node)
			return nil, nil
		}
		return nil, folio_errors.ErrSkillNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update skill",
			zap.Error(err),
			zap.String("skillID", skill.ID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Skill updated successfully",
		zap.String("skillID", skill.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, "UPDATE_SKILL", skill.ID)
	return updatedSkill, nil
}

func (dao *SkillDAO) DeleteSkill(ctx context.Context, skillID string) error {
	start := time.Now()
	logger.Info("Deleting skill", zap.String("skillID", skillID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (s:Skill {id: $id})
        DETACH DELETE s
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": skillID})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}

		summary, err := result.Consume()
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if summary.Counters().NodesDeleted() == 0 {
			return nil, folio_errors.ErrSkillNotFound
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete skill",
			zap.Error(err),
			zap.String("skillID", skillID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Skill deleted successfully",
		zap.String("skillID", skillID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, "DELETE_SKILL", skillID)
	return nil
}

func (dao *SkillDAO) GetSkill(ctx context.Context, skillID string) (*model.Skill, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (s:Skill {id: $id})
        RETURN s
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": skillID})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToSkill(node), nil
		}
		return nil, folio_errors.ErrSkillNotFound
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.Skill), nil
}

func (dao *SkillDAO) ListSkills(ctx context.Context, limit, offset int) ([]*model.Skill, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (s:Skill)
        RETURN s
        ORDER BY s.name ASC
        SKIP $offset LIMIT $limit
        `
		result, err := transaction.Run(query, map[string]interface{}{
			"limit":  limit,
			"offset": offset,
		})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}

		var skills []*model.Skill
		for result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			skills = append(skills, mapNodeToSkill(node))
		}
		return skills, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]*model.Skill), nil
}

func (dao *SkillDAO) logAudit(ctx context.Context, action, resourceID string) {
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

func mapNodeToSkill(node neo4j.Node) *model.Skill {
	props := node.Props
	return &model.Skill{
		ID:        stringProp(props, "id"),
		Name:      stringProp(props, "name"),
		Level:     stringProp(props, "level"),
		Category:  stringProp(props, "category"),
		CreatedAt: timeProp(props, "createdAt"),
		UpdatedAt: timeProp(props, "updatedAt"),
	}
}
