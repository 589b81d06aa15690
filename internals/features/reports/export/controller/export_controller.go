package controller

import (
	"log"
	"strconv"
	"time"

	analytics "campusfeedback_backend/internals/features/reports/analytics/service"
	"campusfeedback_backend/internals/features/reports/export/service"
	helper "campusfeedback_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExportController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db, Now: time.Now}
}

// =============================
// GET /api/hod/export/pdf|excel|word?year=&semester=
// =============================

func (ctrl *ExportController) ExportPDF(c *fiber.Ctx) error {
	return ctrl.export(c, "pdf", "application/pdf", service.RenderPDF)
}

func (ctrl *ExportController) ExportExcel(c *fiber.Ctx) error {
	return ctrl.export(c, "xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		service.RenderExcel)
}

func (ctrl *ExportController) ExportWord(c *fiber.Ctx) error {
	return ctrl.export(c, "docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		service.RenderWord)
}

type renderFunc func(*analytics.AnalyticsReport, time.Time) ([]byte, error)

func (ctrl *ExportController) export(c *fiber.Ctx, ext, contentType string, render renderFunc) error {
	year, err := queryInt(c, "year")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid year filter")
	}
	semester, err := queryInt(c, "semester")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester filter")
	}

	report, err := analytics.Calculate(ctrl.DB, year, semester)
	if err != nil {
		log.Println("[ERROR] export report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate report")
	}

	body, err := render(report, ctrl.Now())
	if err != nil {
		log.Println("[ERROR] render report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate report")
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.Filename(report, ext)+`"`)
	return c.Send(body)
}

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
