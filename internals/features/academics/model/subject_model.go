package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel: mata kuliah per (year, semester, section).
// subject_code = natural key (hasil derive di import alokasi).
type SubjectModel struct {
	SubjectID        uuid.UUID `gorm:"column:subject_id;primaryKey;type:uuid" json:"subject_id"`
	SubjectCode      string    `gorm:"column:subject_code;uniqueIndex;not null" json:"subject_code"`
	SubjectName      string    `gorm:"column:subject_name;not null" json:"subject_name"`
	SubjectType      string    `gorm:"column:subject_type;not null" json:"subject_type"` // theory | lab
	SubjectYear      int       `gorm:"column:subject_year;not null" json:"subject_year"`
	SubjectSemester  int       `gorm:"column:subject_semester;not null" json:"subject_semester"`
	SubjectSection   string    `gorm:"column:subject_section;not null" json:"subject_section"`
	SubjectFacultyID uuid.UUID `gorm:"column:subject_faculty_id;type:uuid;not null;index" json:"subject_faculty_id"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
