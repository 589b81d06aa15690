package route

import (
	"campusfeedback_backend/internals/features/feedback/responses/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentFeedbackRoutes: dashboard + form feedback (group student).
func StudentFeedbackRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentFeedbackController(db)
	student.Get("/dashboard", ctrl.Dashboard)
	student.Get("/questions/:subjectId", ctrl.GetQuestions)
	student.Post("/submit-feedback", ctrl.SubmitFeedback)
}
