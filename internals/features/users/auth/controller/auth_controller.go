package controller

import (
	"errors"
	"log"
	"time"

	"campusfeedback_backend/internals/configs"
	"campusfeedback_backend/internals/constants"
	academicsmodel "campusfeedback_backend/internals/features/academics/model"
	"campusfeedback_backend/internals/features/users/auth/dto"
	staffmodel "campusfeedback_backend/internals/features/users/staff/model"
	helper "campusfeedback_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Umur token akses (login ulang setelah lewat).
const tokenTTL = 30 * 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// =============================
// POST /api/auth/login
// =============================
// Coba sebagai student (roll id) dulu, lalu staff (username). Keduanya
// case-insensitive. Credential salah selalu balas 401 dengan pesan yang
// sama, tanpa bocorin akun mana yang ada.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	if student, err := academicsmodel.FindStudentByRollID(ctrl.DB, req.Username); err == nil {
		if bcrypt.CompareHashAndPassword([]byte(student.StudentPassword), []byte(req.Password)) != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		token, err := signToken(student.StudentID.String(), constants.RoleStudent)
		if err != nil {
			log.Println("[ERROR] sign token:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
		}
		return helper.JsonOK(c, "Login successful", dto.LoginResponse{
			ID:       student.StudentID.String(),
			Username: student.StudentRollID,
			Name:     student.StudentName,
			Role:     constants.RoleStudent,
			Token:    token,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] login student lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}

	staff, err := staffmodel.FindStaffByUsername(ctrl.DB, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		log.Println("[ERROR] login staff lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.StaffPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	token, err := signToken(staff.StaffID.String(), staff.StaffRole)
	if err != nil {
		log.Println("[ERROR] sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to login")
	}
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		ID:       staff.StaffID.String(),
		Username: staff.StaffUsername,
		Name:     staff.StaffName,
		Role:     staff.StaffRole,
		Token:    token,
	})
}

func signToken(id, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
