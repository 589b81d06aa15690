// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusfeedback_backend/internals/configs"
	"campusfeedback_backend/internals/constants"
	academicsModel "campusfeedback_backend/internals/features/academics/model"
	staffModel "campusfeedback_backend/internals/features/users/staff/model"
	helper "campusfeedback_backend/internals/helpers"
)

// AuthMiddleware: verifikasi bearer token & pastikan akunnya masih ada.
// Role dipercaya dari klaim token, tidak di-derive ulang dari record.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, no token")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, token failed")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, token expired")
		}

		userID, role, err := extractIdentity(claims)
		if err != nil {
			log.Println("[ERROR] identity claim:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, invalid token claims")
		}

		// Pastikan akunnya masih ada (student vs staff dilihat dari role klaim)
		if err := ensureAccountExists(db, userID, role); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, user not found")
			}
			log.Println("[ERROR] cek akun:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals("user_id", userID.String())
		c.Locals("userRole", role)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("exp claim missing")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp claim bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractIdentity(claims jwt.MapClaims) (uuid.UUID, string, error) {
	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, "", errors.New("id claim invalid")
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return uuid.Nil, "", errors.New("role claim missing")
	}
	return userID, role, nil
}

func ensureAccountExists(db *gorm.DB, userID uuid.UUID, role string) error {
	if role == constants.RoleStudent {
		var count int64
		if err := db.Model(&academicsModel.StudentModel{}).
			Where("student_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}

	var count int64
	if err := db.Model(&staffModel.StaffModel{}).
		Where("staff_id = ?", userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
