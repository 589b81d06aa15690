package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// QuestionSetModel: satu set pertanyaan per tipe subject.
// Invariant: maksimal SATU set aktif per question_set_type — dijaga lewat
// transaksi deactivate-siblings + activate-target (lihat controller).
// Urutan elemen question_set_questions = question index di mana-mana.
type QuestionSetModel struct {
	QuestionSetID        uuid.UUID      `gorm:"column:question_set_id;primaryKey;type:uuid" json:"question_set_id"`
	QuestionSetType      string         `gorm:"column:question_set_type;not null;index" json:"question_set_type"` // theory | lab
	QuestionSetQuestions pq.StringArray `gorm:"column:question_set_questions;type:text[];not null" json:"question_set_questions"`
	QuestionSetIsActive  bool           `gorm:"column:question_set_is_active;not null;default:false" json:"question_set_is_active"`
	CreatedAt            time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionSetModel) TableName() string {
	return "question_sets"
}

func (m *QuestionSetModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionSetID == uuid.Nil {
		m.QuestionSetID = uuid.New()
	}
	return nil
}
