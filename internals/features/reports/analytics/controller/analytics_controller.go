package controller

import (
	"log"
	"strconv"

	"campusfeedback_backend/internals/features/reports/analytics/service"
	helper "campusfeedback_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// =============================
// GET /api/hod/analytics?year=&semester=
// =============================
func (ctrl *AnalyticsController) GetAnalytics(c *fiber.Ctx) error {
	year, err := queryInt(c, "year")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year filter")
	}
	semester, err := queryInt(c, "semester")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester filter")
	}

	report, err := service.Calculate(ctrl.DB, year, semester)
	if err != nil {
		log.Println("[ERROR] analytics:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to calculate analytics")
	}
	return helper.JsonOK(c, "Analytics calculated", report)
}

// queryInt: query param opsional, nil kalau kosong.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
