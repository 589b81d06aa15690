package route

import (
	"campusfeedback_backend/internals/features/feedback/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuestionSetAdminRoutes: CRUD + aktivasi question set (group admin).
func QuestionSetAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuestionSetController(db)
	admin.Get("/questions", ctrl.List)
	admin.Post("/questions", ctrl.Create)
	admin.Put("/questions/:id", ctrl.Update)
	admin.Delete("/questions/:id", ctrl.Delete)
	admin.Patch("/questions/:id/activate", ctrl.Activate)
}
