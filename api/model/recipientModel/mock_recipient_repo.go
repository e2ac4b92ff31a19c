package recipientmodel

import (
	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/shared/model"
)

// IRecipientRepository defines the interface for recipient repository operations
type IRecipientRepository interface {
	Add(userId string, rows []payload.RecipientRow) (*RecipientCreateResult, error)
	GetByUser(userId string) ([]*CombinedRecipient, error)
	GetById(id string) (*CombinedRecipient, error)
	GetByEmail(email string) ([]*model.Recipient, error)
	Delete(id string) (*model.Recipient, error)
}

// Ensure RecipientRepository implements IRecipientRepository
var _ IRecipientRepository = (*RecipientRepository)(nil)

// MockRecipientRepository is a mock implementation for testing
type MockRecipientRepository struct {
	AddFunc        func(userId string, rows []payload.RecipientRow) (*RecipientCreateResult, error)
	GetByUserFunc  func(userId string) ([]*CombinedRecipient, error)
	GetByIdFunc    func(id string) (*CombinedRecipient, error)
	GetByEmailFunc func(email string) ([]*model.Recipient, error)
	DeleteFunc     func(id string) (*model.Recipient, error)
}

// Ensure MockRecipientRepository implements IRecipientRepository
var _ IRecipientRepository = (*MockRecipientRepository)(nil)

func NewMockRecipientRepository() *MockRecipientRepository {
	return &MockRecipientRepository{}
}

func (m *MockRecipientRepository) Add(userId string, rows []payload.RecipientRow) (*RecipientCreateResult, error) {
	if m.AddFunc != nil {
		return m.AddFunc(userId, rows)
	}
	return nil, nil
}

func (m *MockRecipientRepository) GetByUser(userId string) ([]*CombinedRecipient, error) {
	if m.GetByUserFunc != nil {
		return m.GetByUserFunc(userId)
	}
	return nil, nil
}

func (m *MockRecipientRepository) GetById(id string) (*CombinedRecipient, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(id)
	}
	return nil, nil
}

func (m *MockRecipientRepository) GetByEmail(email string) ([]*model.Recipient, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockRecipientRepository) Delete(id string) (*model.Recipient, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil, nil
}
