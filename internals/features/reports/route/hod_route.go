package route

import (
	analyticscontroller "campusfeedback_backend/internals/features/reports/analytics/controller"
	exportcontroller "campusfeedback_backend/internals/features/reports/export/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HodRoutes: analytics + export laporan (group hod).
func HodRoutes(hod fiber.Router, db *gorm.DB) {
	analytics := analyticscontroller.NewAnalyticsController(db)
	hod.Get("/analytics", analytics.GetAnalytics)

	export := exportcontroller.NewExportController(db)
	hod.Get("/export/pdf", export.ExportPDF)
	hod.Get("/export/excel", export.ExportExcel)
	hod.Get("/export/word", export.ExportWord)
}
