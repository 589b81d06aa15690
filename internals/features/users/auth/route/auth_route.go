package route

import (
	"campusfeedback_backend/internals/features/users/auth/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes: endpoint publik, tanpa middleware auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	api.Post("/auth/login", ctrl.Login)
}
