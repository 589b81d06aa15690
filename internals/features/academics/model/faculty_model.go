package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacultyModel: dosen/pengajar. faculty_code = natural key untuk upsert import.
type FacultyModel struct {
	FacultyID         uuid.UUID `gorm:"column:faculty_id;primaryKey;type:uuid" json:"faculty_id"`
	FacultyCode       string    `gorm:"column:faculty_code;uniqueIndex;not null" json:"faculty_code"`
	FacultyName       string    `gorm:"column:faculty_name;not null" json:"faculty_name"`
	FacultyDepartment string    `gorm:"column:faculty_department;not null" json:"faculty_department"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FacultyModel) TableName() string {
	return "faculties"
}

func (m *FacultyModel) BeforeCreate(tx *gorm.DB) error {
	if m.FacultyID == uuid.Nil {
		m.FacultyID = uuid.New()
	}
	return nil
}
