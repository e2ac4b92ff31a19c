package routes

import (
	auth_controller "github.com/certward/certward-api/api/controllers/auth"
	usermodel "github.com/certward/certward-api/api/model/userModel"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router, users usermodel.IUserRepository) {
	ac := auth_controller.NewAuthController(users)

	authGroup := router.Group("auth")

	authGroup.Post("register", ac.Register)
	authGroup.Post("login", ac.Login)
}
