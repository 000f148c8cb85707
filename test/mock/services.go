// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/folio/api/model"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// MockProjectService is a mock implementation of service.IProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	args := m.Called(ctx, project)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	args := m.Called(ctx, project)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectService) GetProject(ctx context.Context, projectID string) (*model.Project, error) {
	args := m.Called(ctx, projectID)
	if p := args.Get(0); p != nil {
		return p.(*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProjectService) ListProjects(ctx context.Context, limit, offset int) ([]*model.Project, error) {
	args := m.Called(ctx, limit, offset)
	if p := args.Get(0); p != nil {
		return p.([]*model.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockSkillService is a mock implementation of service.ISkillService
type MockSkillService struct {
	mock.Mock
}

func (m *MockSkillService) CreateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error) {
	args := m.Called(ctx, skill)
	if s := args.Get(0); s != nil {
		return s.(*model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSkillService) UpdateSkill(ctx context.Context, skill model.Skill) (*model.Skill, error) {
	args := m.Called(ctx, skill)
	if s := args.Get(0); s != nil {
		return s.(*model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSkillService) DeleteSkill(ctx context.Context, skillID string) error {
	args := m.Called(ctx, skillID)
	return args.Error(0)
}

func (m *MockSkillService) GetSkill(ctx context.Context, skillID string) (*model.Skill, error) {
	args := m.Called(ctx, skillID)
	if s := args.Get(0); s != nil {
		return s.(*model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSkillService) ListSkills(ctx context.Context, limit, offset int) ([]*model.Skill, error) {
	args := m.Called(ctx, limit, offset)
	if s := args.Get(0); s != nil {
		return s.([]*model.Skill), args.Error(1)
	}
	return nil, args.Error(1)
}
