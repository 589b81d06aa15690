package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusfeedback_backend/internals/features/feedback/questions/dto"
	"campusfeedback_backend/internals/features/feedback/questions/model"
	helper "campusfeedback_backend/internals/helpers"
)

type QuestionSetController struct {
	DB *gorm.DB
}

func NewQuestionSetController(db *gorm.DB) *QuestionSetController {
	return &QuestionSetController{DB: db}
}

// GET /api/admin/questions
func (ctrl *QuestionSetController) List(c *fiber.Ctx) error {
	var sets []model.QuestionSetModel
	if err := ctrl.DB.Order("created_at DESC").Find(&sets).Error; err != nil {
		log.Println("[ERROR] List question sets:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question sets")
	}
	return helper.JsonOK(c, "Question sets fetched successfully", dto.FromModelList(sets))
}

// POST /api/admin/questions
// Kalau isActive=true: nonaktifkan semua set lain dengan tipe sama, lalu
// create — dua langkah dalam SATU transaksi supaya reader tidak pernah
// lihat dua set aktif setipe.
func (ctrl *QuestionSetController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionSetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	m := req.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsActive {
			if err := deactivateSiblings(tx, req.Type, uuid.Nil); err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
	if err != nil {
		log.Println("[ERROR] Create question set:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question set")
	}
	return helper.JsonCreated(c, "Question set created successfully", dto.FromModel(m))
}

// PUT /api/admin/questions/:id
func (ctrl *QuestionSetController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question set id")
	}

	var req dto.UpdateQuestionSetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	req.Normalize()
	if err := validator.New().Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	var m model.QuestionSetModel
	if err := ctrl.DB.First(&m, "question_set_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question set not found")
		}
		log.Println("[ERROR] Update question set:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question set")
	}

	req.ApplyToModel(&m)
	if req.IsActive != nil {
		m.QuestionSetIsActive = *req.IsActive
	}

	// Setiap kali state akhir aktif, matikan saudara setipenya. Berlaku juga
	// saat set aktif pindah tipe, supaya tipe tujuan tidak punya dua set aktif.
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if m.QuestionSetIsActive {
			if err := deactivateSiblings(tx, m.QuestionSetType, m.QuestionSetID); err != nil {
				return err
			}
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		log.Println("[ERROR] Update question set:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question set")
	}
	return helper.JsonUpdated(c, "Question set updated successfully", dto.FromModel(&m))
}

// DELETE /api/admin/questions/:id
func (ctrl *QuestionSetController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question set id")
	}

	res := ctrl.DB.Delete(&model.QuestionSetModel{}, "question_set_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Delete question set:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question set")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question set not found")
	}
	return helper.JsonDeleted(c, "Question set removed", nil)
}

// PATCH /api/admin/questions/:id/activate
func (ctrl *QuestionSetController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question set id")
	}

	var m model.QuestionSetModel
	if err := ctrl.DB.First(&m, "question_set_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question set not found")
		}
		log.Println("[ERROR] Activate question set:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question set")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := deactivateSiblings(tx, m.QuestionSetType, m.QuestionSetID); err != nil {
			return err
		}
		return tx.Model(&model.QuestionSetModel{}).
			Where("question_set_id = ?", m.QuestionSetID).
			Update("question_set_is_active", true).Error
	})
	if err != nil {
		log.Println("[ERROR] Activate question set:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to activate question set")
	}
	return helper.JsonUpdated(c, "Question set activated", nil)
}

// deactivateSiblings: matikan semua set lain setipe. Dipanggil di dalam
// transaksi aktivasi — invariant "maksimal satu aktif per tipe".
func deactivateSiblings(tx *gorm.DB, setType string, except uuid.UUID) error {
	q := tx.Model(&model.QuestionSetModel{}).Where("question_set_type = ?", setType)
	if except != uuid.Nil {
		q = q.Where("question_set_id <> ?", except)
	}
	return q.Update("question_set_is_active", false).Error
}
