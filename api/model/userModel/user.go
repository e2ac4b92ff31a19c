package usermodel

import (
	"errors"
	"log/slog"

	"github.com/certward/certward-api/type/shared/model"
	"gorm.io/gorm"
)

// UserRepository handles user persistence in PostgreSQL.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByUsername returns nil, nil when the username does not exist so callers
// can distinguish "not found" from a query failure.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	user := new(model.User)
	queryErr := r.db.Where("username = ?", username).First(user).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("User GetByUsername", "error", queryErr, "username", username)
		return nil, queryErr
	}

	return user, nil
}

func (r *UserRepository) GetById(id string) (*model.User, error) {
	user := new(model.User)
	queryErr := r.db.Where("id = ?", id).First(user).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("User GetById", "error", queryErr, "user_id", id)
		return nil, queryErr
	}

	return user, nil
}

func (r *UserRepository) Create(username string, hashedPassword string, firstname string, lastname string) (*model.User, error) {
	user := &model.User{
		Username:  username,
		Firstname: firstname,
		Lastname:  lastname,
		Password:  hashedPassword,
	}

	createErr := r.db.Create(user).Error

	if createErr != nil {
		slog.Error("User Create", "error", createErr, "username", username)
		return nil, createErr
	}

	return user, nil
}
