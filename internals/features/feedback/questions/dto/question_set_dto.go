package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"campusfeedback_backend/internals/features/feedback/questions/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateQuestionSetRequest — create by admin
type CreateQuestionSetRequest struct {
	Type      string   `json:"type" validate:"required,oneof=theory lab"`
	Questions []string `json:"questions" validate:"required,min=1,dive,required"`
	IsActive  bool     `json:"isActive"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateQuestionSetRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	for i := range r.Questions {
		r.Questions[i] = strings.TrimSpace(r.Questions[i])
	}
}

// ToModel — konversi ke model
func (r *CreateQuestionSetRequest) ToModel() *model.QuestionSetModel {
	return &model.QuestionSetModel{
		QuestionSetType:      r.Type,
		QuestionSetQuestions: pq.StringArray(r.Questions),
		QuestionSetIsActive:  r.IsActive,
	}
}

// UpdateQuestionSetRequest — partial update (pointer biar bisa bedakan omit vs null)
type UpdateQuestionSetRequest struct {
	Type      *string   `json:"type,omitempty" validate:"omitempty,oneof=theory lab"`
	Questions *[]string `json:"questions,omitempty" validate:"omitempty,min=1,dive,required"`
	IsActive  *bool     `json:"isActive,omitempty"`
}

func (r *UpdateQuestionSetRequest) Normalize() {
	if r.Type != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Type))
		r.Type = &v
	}
	if r.Questions != nil {
		qs := *r.Questions
		for i := range qs {
			qs[i] = strings.TrimSpace(qs[i])
		}
	}
}

// ApplyToModel — terapkan perubahan parsial ke model existing
// (is_active diproses terpisah di controller karena menyangkut invariant aktivasi)
func (r *UpdateQuestionSetRequest) ApplyToModel(m *model.QuestionSetModel) {
	if r.Type != nil {
		m.QuestionSetType = *r.Type
	}
	if r.Questions != nil {
		m.QuestionSetQuestions = pq.StringArray(*r.Questions)
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type QuestionSetResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Questions []string  `json:"questions"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(m *model.QuestionSetModel) QuestionSetResponse {
	return QuestionSetResponse{
		ID:        m.QuestionSetID,
		Type:      m.QuestionSetType,
		Questions: []string(m.QuestionSetQuestions),
		IsActive:  m.QuestionSetIsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModelList(list []model.QuestionSetModel) []QuestionSetResponse {
	out := make([]QuestionSetResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
