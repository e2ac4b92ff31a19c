package usermodel

import (
	"github.com/certward/certward-api/type/shared/model"
)

// IUserRepository defines the interface for user repository operations
type IUserRepository interface {
	GetByUsername(username string) (*model.User, error)
	GetById(id string) (*model.User, error)
	Create(username string, hashedPassword string, firstname string, lastname string) (*model.User, error)
}

// Ensure UserRepository implements IUserRepository
var _ IUserRepository = (*UserRepository)(nil)

// MockUserRepository is a mock implementation for testing
type MockUserRepository struct {
	GetByUsernameFunc func(username string) (*model.User, error)
	GetByIdFunc       func(id string) (*model.User, error)
	CreateFunc        func(username string, hashedPassword string, firstname string, lastname string) (*model.User, error)
}

// Ensure MockUserRepository implements IUserRepository
var _ IUserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) GetByUsername(username string) (*model.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(username)
	}
	return nil, nil
}

func (m *MockUserRepository) GetById(id string) (*model.User, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockUserRepository) Create(username string, hashedPassword string, firstname string, lastname string) (*model.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(username, hashedPassword, firstname, lastname)
	}
	return nil, nil
}
