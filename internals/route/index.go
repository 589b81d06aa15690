package routes

import (
	"campusfeedback_backend/internals/constants"
	academicsroute "campusfeedback_backend/internals/features/academics/route"
	questionroute "campusfeedback_backend/internals/features/feedback/questions/route"
	responseroute "campusfeedback_backend/internals/features/feedback/responses/route"
	reportsroute "campusfeedback_backend/internals/features/reports/route"
	authroute "campusfeedback_backend/internals/features/users/auth/route"
	"campusfeedback_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes mount semua group: public, admin, student, hod.
// Role dipercaya dari klaim token (sudah diverifikasi AuthMiddleware).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===== Public =====
	authroute.AuthRoutes(api, db)

	// ===== Admin =====
	admin := api.Group("/admin",
		auth.AuthMiddleware(db),
		auth.OnlyRoles("You are not allowed to access this resource", constants.RoleAdmin),
	)
	questionroute.QuestionSetAdminRoutes(admin, db)
	academicsroute.AcademicsAdminRoutes(admin, db)

	// ===== Student =====
	student := api.Group("/student",
		auth.AuthMiddleware(db),
		auth.OnlyRoles("You are not allowed to access this resource", constants.RoleStudent),
	)
	responseroute.StudentFeedbackRoutes(student, db)

	// ===== HOD =====
	hod := api.Group("/hod",
		auth.AuthMiddleware(db),
		auth.OnlyRoles("You are not allowed to access this resource", constants.RoleHod),
	)
	reportsroute.HodRoutes(hod, db)
}
