package auth_controller

import (
	usermodel "github.com/certward/certward-api/api/model/userModel"
)

type AuthController struct {
	users usermodel.IUserRepository
}

func NewAuthController(users usermodel.IUserRepository) *AuthController {
	return &AuthController{users: users}
}
