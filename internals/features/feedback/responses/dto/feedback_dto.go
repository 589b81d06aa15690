package dto

import (
	"strings"
	"time"

	"campusfeedback_backend/internals/features/feedback/responses/model"
)

// =============================
// Request DTO
// =============================

type ResponseItemRequest struct {
	QuestionIndex int `json:"questionIndex" validate:"min=0"`
	Rating        int `json:"rating" validate:"required,min=1,max=5"`
}

type SubmitFeedbackRequest struct {
	SubjectID string                `json:"subjectId" validate:"required,uuid"`
	Responses []ResponseItemRequest `json:"responses" validate:"required,min=1,dive"`
}

func (r *SubmitFeedbackRequest) Normalize() {
	r.SubjectID = strings.TrimSpace(r.SubjectID)
}

func (r *SubmitFeedbackRequest) Items() []model.ResponseItem {
	items := make([]model.ResponseItem, 0, len(r.Responses))
	for _, it := range r.Responses {
		items = append(items, model.ResponseItem{
			QuestionIndex: it.QuestionIndex,
			Rating:        it.Rating,
		})
	}
	return items
}

// =============================
// Response DTO
// =============================

// DashboardSubjectResponse: satu baris dashboard student.
type DashboardSubjectResponse struct {
	SubjectID         string `json:"subjectId"`
	SubjectCode       string `json:"subjectCode"`
	SubjectName       string `json:"subjectName"`
	SubjectType       string `json:"type"`
	FacultyName       string `json:"facultyName"`
	Status            string `json:"status"`
	CanResubmit       bool   `json:"canResubmit"`
	DaysUntilResubmit int    `json:"daysUntilResubmit"`
}

// SubjectQuestionsResponse: payload halaman form feedback.
type SubjectQuestionsResponse struct {
	SubjectID         string               `json:"subjectId"`
	SubjectCode       string               `json:"subjectCode"`
	SubjectName       string               `json:"subjectName"`
	SubjectType       string               `json:"type"`
	FacultyName       string               `json:"facultyName"`
	Questions         []string             `json:"questions"`
	ExistingResponses []model.ResponseItem `json:"existingResponses"`
}

type SubmitFeedbackResponse struct {
	FeedbackID  string    `json:"feedbackId"`
	SubjectID   string    `json:"subjectId"`
	TotalScore  float64   `json:"totalScore"`
	SubmittedAt time.Time `json:"submittedAt"`
}
