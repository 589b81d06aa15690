package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusfeedback_backend/internals/features/academics/imports/parse"
	"campusfeedback_backend/internals/features/academics/imports/service"
	helper "campusfeedback_backend/internals/helpers"
)

type UploadController struct {
	DB *gorm.DB
}

func NewUploadController(db *gorm.DB) *UploadController {
	return &UploadController{DB: db}
}

// POST /api/admin/upload-excel (multipart, field "file")
// Selalu balas ringkasan hasil — operator harus cek angkanya, bukan cuma
// HTTP status, karena partial success itu normal.
func (ctrl *UploadController) UploadExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please upload an Excel file")
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Println("[ERROR] Gagal buka file upload:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Uploaded file could not be read")
	}
	defer f.Close()

	wb, err := parse.LoadWorkbook(fileHeader.Filename, f)
	if err != nil {
		log.Println("[ERROR] Gagal parse workbook:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Uploaded file is not a readable spreadsheet")
	}

	importer := service.NewImporter(ctrl.DB)
	results := importer.Run(wb)

	log.Printf("[SUCCESS] Import %s (%s): students=%d faculty=%d subjects=%d",
		fileHeader.Filename, service.Classify(fileHeader.Filename), results.Students, results.Faculty, results.Subjects)

	return helper.JsonOK(c, "Data imported successfully", fiber.Map{
		"results": results,
	})
}
