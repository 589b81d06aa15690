package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentModel: mahasiswa. student_roll_id = natural key (lookup case-insensitive).
// student_feedback_status hanya cache advisory, bukan sumber kebenaran.
type StudentModel struct {
	StudentID                   uuid.UUID      `gorm:"column:student_id;primaryKey;type:uuid" json:"student_id"`
	StudentRollID               string         `gorm:"column:student_roll_id;uniqueIndex;not null" json:"student_roll_id"`
	StudentName                 string         `gorm:"column:student_name;not null" json:"student_name"`
	StudentYear                 int            `gorm:"column:student_year;not null" json:"student_year"`         // 1..4
	StudentSemester             int            `gorm:"column:student_semester;not null" json:"student_semester"` // 1..8
	StudentSection              string         `gorm:"column:student_section;not null" json:"student_section"`
	StudentDepartment           string         `gorm:"column:student_department;not null" json:"student_department"`
	StudentPassword             string         `gorm:"column:student_password;not null" json:"-"`
	StudentAttendancePercentage float64        `gorm:"column:student_attendance_percentage;default:0" json:"student_attendance_percentage"`
	StudentFeedbackStatus       datatypes.JSON `gorm:"column:student_feedback_status" json:"student_feedback_status,omitempty"`
	CreatedAt                   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}

// FindStudentByRollID: lookup natural key, case-insensitive.
func FindStudentByRollID(db *gorm.DB, rollID string) (*StudentModel, error) {
	var s StudentModel
	if err := db.Where("LOWER(student_roll_id) = LOWER(?)", rollID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
