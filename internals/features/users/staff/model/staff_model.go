package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffModel: akun admin/hod (credential store sederhana).
type StaffModel struct {
	StaffID       uuid.UUID `gorm:"column:staff_id;primaryKey;type:uuid" json:"staff_id"`
	StaffUsername string    `gorm:"column:staff_username;uniqueIndex;not null" json:"staff_username"`
	StaffPassword string    `gorm:"column:staff_password;not null" json:"-"`
	StaffRole     string    `gorm:"column:staff_role;not null" json:"staff_role"` // admin | hod
	StaffName     string    `gorm:"column:staff_name;not null" json:"staff_name"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StaffModel) TableName() string {
	return "staff_accounts"
}

func (m *StaffModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffID == uuid.Nil {
		m.StaffID = uuid.New()
	}
	return nil
}

// FindStaffByUsername: lookup natural key, case-insensitive.
func FindStaffByUsername(db *gorm.DB, username string) (*StaffModel, error) {
	var s StaffModel
	if err := db.Where("LOWER(staff_username) = LOWER(?)", username).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
