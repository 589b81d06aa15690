package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResponseItem: satu jawaban rating untuk satu pertanyaan.
type ResponseItem struct {
	QuestionIndex int `json:"questionIndex"`
	Rating        int `json:"rating"` // 1..5
}

// FeedbackModel: satu record per (student, subject) — unik komposit.
// Resubmit meng-update record yang sama, tidak bikin record baru.
// Year/semester disalin dari student saat submit (bukan live-join).
type FeedbackModel struct {
	FeedbackID          uuid.UUID      `gorm:"column:feedback_id;primaryKey;type:uuid" json:"feedback_id"`
	FeedbackStudentID   uuid.UUID      `gorm:"column:feedback_student_id;type:uuid;not null;uniqueIndex:uq_feedback_student_subject" json:"feedback_student_id"`
	FeedbackSubjectID   uuid.UUID      `gorm:"column:feedback_subject_id;type:uuid;not null;uniqueIndex:uq_feedback_student_subject" json:"feedback_subject_id"`
	FeedbackFacultyID   uuid.UUID      `gorm:"column:feedback_faculty_id;type:uuid;not null;index" json:"feedback_faculty_id"`
	FeedbackYear        int            `gorm:"column:feedback_year;not null" json:"feedback_year"`
	FeedbackSemester    int            `gorm:"column:feedback_semester;not null" json:"feedback_semester"`
	FeedbackResponses   datatypes.JSON `gorm:"column:feedback_responses" json:"feedback_responses"`
	FeedbackTotalScore  float64        `gorm:"column:feedback_total_score;default:0" json:"feedback_total_score"` // persentase 0..100
	FeedbackIsCompleted bool           `gorm:"column:feedback_is_completed;not null;default:false" json:"feedback_is_completed"`
	FeedbackSubmittedAt *time.Time     `gorm:"column:feedback_submitted_at" json:"feedback_submitted_at,omitempty"`
	CreatedAt           time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FeedbackModel) TableName() string {
	return "feedbacks"
}

func (m *FeedbackModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeedbackID == uuid.Nil {
		m.FeedbackID = uuid.New()
	}
	return nil
}

// SetResponses serialize daftar jawaban ke kolom JSON.
func (m *FeedbackModel) SetResponses(items []ResponseItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.FeedbackResponses = datatypes.JSON(raw)
	return nil
}

// Responses deserialize kolom JSON; kolom kosong = belum ada jawaban.
func (m *FeedbackModel) Responses() []ResponseItem {
	if len(m.FeedbackResponses) == 0 {
		return nil
	}
	var items []ResponseItem
	if err := json.Unmarshal(m.FeedbackResponses, &items); err != nil {
		return nil
	}
	return items
}
