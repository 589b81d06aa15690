package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsModel "campusfeedback_backend/internals/features/academics/model"
	feedbackModel "campusfeedback_backend/internals/features/feedback/responses/model"
	helper "campusfeedback_backend/internals/helpers"
)

// MaintenanceController: operasi reset data oleh admin.
type MaintenanceController struct {
	DB *gorm.DB
}

func NewMaintenanceController(db *gorm.DB) *MaintenanceController {
	return &MaintenanceController{DB: db}
}

// DELETE /api/admin/clear-feedback
// Hapus semua feedback + reset cache feedback-status di students.
func (ctrl *MaintenanceController) ClearFeedback(c *fiber.Ctx) error {
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&feedbackModel.FeedbackModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&academicsModel.StudentModel{}).
			Where("1 = 1").
			Update("student_feedback_status", nil).Error
	})
	if err != nil {
		log.Println("[ERROR] ClearFeedback:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear feedback")
	}
	return helper.JsonDeleted(c, "Feedback cleared", nil)
}

// DELETE /api/admin/clear-students
// Hapus students beserta feedback-nya.
func (ctrl *MaintenanceController) ClearStudents(c *fiber.Ctx) error {
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&feedbackModel.FeedbackModel{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&academicsModel.StudentModel{}).Error
	})
	if err != nil {
		log.Println("[ERROR] ClearStudents:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear students")
	}
	return helper.JsonDeleted(c, "Students and their feedback cleared", nil)
}
