package seeds

import (
	"errors"
	"log"

	"campusfeedback_backend/internals/configs"
	"campusfeedback_backend/internals/constants"
	staffmodel "campusfeedback_backend/internals/features/users/staff/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunAllSeeds: dipanggil dari main kalau RUN_SEEDS=true.
func RunAllSeeds(db *gorm.DB) {
	SeedStaffAccounts(db)
}

// SeedStaffAccounts bikin akun admin + hod default kalau belum ada.
// Idempotent: akun yang sudah ada tidak disentuh (password tidak di-reset).
func SeedStaffAccounts(db *gorm.DB) {
	seedStaff(db, constants.RoleAdmin, "admin", "Administrator",
		configs.GetEnv("SEED_ADMIN_PASSWORD", "admin123"))
	seedStaff(db, constants.RoleHod, "hod_aiml", "Head of Department",
		configs.GetEnv("SEED_HOD_PASSWORD", "hod123"))
}

func seedStaff(db *gorm.DB, role, username, name, password string) {
	var existing staffmodel.StaffModel
	err := db.Where("staff_username = ?", username).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] seed staff lookup:", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] seed staff hash:", err)
		return
	}
	staff := staffmodel.StaffModel{
		StaffUsername: username,
		StaffPassword: string(hash),
		StaffRole:     role,
		StaffName:     name,
	}
	if err := db.Create(&staff).Error; err != nil {
		log.Println("[ERROR] seed staff create:", err)
		return
	}
	log.Printf("✅ Seeded staff account %q (%s)", username, role)
}
