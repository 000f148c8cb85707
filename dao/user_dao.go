// api/dao/user_dao.go
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

type UserDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewUserDAO(driver neo4j.Driver, auditService audit.Service) *UserDAO {
	dao := &UserDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraints(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraints for User", zap.Error(err))
	}
	return dao
}

func (dao *UserDAO) EnsureUniqueConstraints(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		queries := []string{
			`CREATE CONSTRAINT unique_user_id IF NOT EXISTS
			 FOR (u:User) REQUIRE u.id IS UNIQUE`,
			`CREATE CONSTRAINT unique_user_email IF NOT EXISTS
			 FOR (u:User) REQUIRE u.email IS UNIQUE`,
		}
		for _, query := range queries {
			if _, err := transaction.Run(query, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("email", user.Email))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MERGE (u:User {id: $id})
        ON CREATE SET u += $props
        RETURN u.id as id
        `
		params := map[string]interface{}{
			"id": user.ID,
			"props": map[string]interface{}{
				"email":     user.Email,
				"password":  user.Password,
				"role":      user.Role,
				"createdAt": user.CreatedAt.Format(time.RFC3339),
				"updatedAt": user.UpdatedAt.Format(time.RFC3339),
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
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", duration))

	// Audit trail
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     user.ID,
		Action:     "REGISTER_USER",
		ResourceID: user.ID,
		Success:    true,
	}
	if err := dao.AuditService.LogAccess(ctx, auditLog); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err))
	}

	return &user, nil
}

func (dao *UserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:User {email: $email})
        RETURN u
        `
		result, err := transaction.Run(query, map[string]interface{}{"email": email})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToUser(node), nil
		}
		return nil, folio_errors.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.User), nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (u:User {id: $id})
        RETURN u
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": userID})
		if err != nil {
			return nil, folio_errors.ErrDatabaseOperation
		}
		if result.Next() {
			node := result.Record().Values[0].(neo4j.Node)
			return mapNodeToUser(node), nil
		}
		return nil, folio_errors.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.User), nil
}

func mapNodeToUser(node neo4j.Node) *model.User {
	props := node.Props
	return &model.User{
		ID:        stringProp(props, "id"),
		Email:     stringProp(props, "email"),
		Password:  stringProp(props, "password"),
		Role:      stringProp(props, "role"),
		CreatedAt: timeProp(props, "createdAt"),
		UpdatedAt: timeProp(props, "updatedAt"),
	}
}
