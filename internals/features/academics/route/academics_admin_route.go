package route

import (
	admincontroller "campusfeedback_backend/internals/features/academics/admin/controller"
	importcontroller "campusfeedback_backend/internals/features/academics/imports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AcademicsAdminRoutes: upload spreadsheet + maintenance data (group admin).
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	upload := importcontroller.NewUploadController(db)
	admin.Post("/upload-excel", upload.UploadExcel)

	maintenance := admincontroller.NewMaintenanceController(db)
	admin.Delete("/clear-feedback", maintenance.ClearFeedback)
	admin.Delete("/clear-students", maintenance.ClearStudents)
}
