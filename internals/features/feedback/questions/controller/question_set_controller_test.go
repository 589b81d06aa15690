package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusfeedback_backend/internals/features/feedback/questions/model"
)

// Tabel dibuat manual: kolom questions bertipe text[] di Postgres, yang
// tidak dimengerti migrator sqlite. pq.StringArray tetap round-trip lewat
// representasi teksnya.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec(`CREATE TABLE question_sets (
		question_set_id text PRIMARY KEY,
		question_set_type text NOT NULL,
		question_set_questions text NOT NULL,
		question_set_is_active numeric NOT NULL DEFAULT 0,
		created_at datetime,
		updated_at datetime
	)`).Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewQuestionSetController(db)
	app.Get("/questions", ctrl.List)
	app.Post("/questions", ctrl.Create)
	app.Put("/questions/:id", ctrl.Update)
	app.Delete("/questions/:id", ctrl.Delete)
	app.Patch("/questions/:id/activate", ctrl.Activate)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp.StatusCode, payload
}

func activeCount(t *testing.T, db *gorm.DB, setType string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&model.QuestionSetModel{}).
		Where("question_set_type = ? AND question_set_is_active = ?", setType, true).
		Count(&n).Error; err != nil {
		t.Fatalf("count active: %v", err)
	}
	return n
}

func createdID(t *testing.T, payload map[string]any) string {
	t.Helper()
	data, ok := payload["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", payload)
	}
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("response has no id: %v", data)
	}
	return id
}

func TestQuestionSetActivationInvariant(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	// Create aktif pertama.
	status, payload := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "theory", "questions": []string{"Clarity of teaching"}, "isActive": true,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d: %v", status, payload)
	}
	firstID := createdID(t, payload)
	if n := activeCount(t, db, "theory"); n != 1 {
		t.Fatalf("active theory after create = %d, want 1", n)
	}

	// Create aktif kedua: yang pertama harus nonaktif.
	status, payload = doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "theory", "questions": []string{"Punctuality"}, "isActive": true,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d: %v", status, payload)
	}
	if n := activeCount(t, db, "theory"); n != 1 {
		t.Fatalf("active theory after second create = %d, want 1", n)
	}

	// Tipe lain tidak terpengaruh.
	status, payload = doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "lab", "questions": []string{"Lab preparation"}, "isActive": true,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d: %v", status, payload)
	}
	if n := activeCount(t, db, "lab"); n != 1 {
		t.Fatalf("active lab = %d, want 1", n)
	}
	if n := activeCount(t, db, "theory"); n != 1 {
		t.Fatalf("active theory after lab create = %d, want 1", n)
	}

	// Aktivasi eksplisit set pertama: tetap tepat satu aktif.
	status, payload = doJSON(t, app, "PATCH", fmt.Sprintf("/questions/%s/activate", firstID), nil)
	if status != fiber.StatusOK {
		t.Fatalf("activate status = %d: %v", status, payload)
	}
	if n := activeCount(t, db, "theory"); n != 1 {
		t.Fatalf("active theory after activate = %d, want 1", n)
	}

	var active model.QuestionSetModel
	if err := db.Where("question_set_type = ? AND question_set_is_active = ?", "theory", true).
		First(&active).Error; err != nil {
		t.Fatalf("load active set: %v", err)
	}
	if active.QuestionSetID.String() != firstID {
		t.Errorf("active set = %s, want %s", active.QuestionSetID, firstID)
	}
}

func TestQuestionSetUpdateToActive(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	_, p1 := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "theory", "questions": []string{"Q1"}, "isActive": true,
	})
	_, p2 := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "theory", "questions": []string{"Q2"}, "isActive": false,
	})
	secondID := createdID(t, p2)

	status, payload := doJSON(t, app, "PUT", "/questions/"+secondID, fiber.Map{
		"isActive": true,
	})
	if status != fiber.StatusOK {
		t.Fatalf("update status = %d: %v", status, payload)
	}
	if n := activeCount(t, db, "theory"); n != 1 {
		t.Fatalf("active theory after update-to-active = %d, want 1", n)
	}

	var active model.QuestionSetModel
	if err := db.Where("question_set_type = ? AND question_set_is_active = ?", "theory", true).
		First(&active).Error; err != nil {
		t.Fatalf("load active set: %v", err)
	}
	if active.QuestionSetID.String() != secondID {
		t.Errorf("active set = %s, want %s (first was %s)", active.QuestionSetID, secondID, createdID(t, p1))
	}
}

// Set aktif yang pindah tipe harus tetap satu-satunya yang aktif di tipe
// tujuan — saudara di tipe baru dimatikan saat update dipersist.
func TestQuestionSetTypeChangeKeepsInvariant(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	status, p1 := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "theory", "questions": []string{"Q-theory"}, "isActive": true,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create theory status = %d: %v", status, p1)
	}
	theoryID := createdID(t, p1)

	status, p2 := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "lab", "questions": []string{"Q-lab"}, "isActive": true,
	})
	if status != fiber.StatusCreated {
		t.Fatalf("create lab status = %d: %v", status, p2)
	}

	// Pindahkan set theory aktif ke tipe lab.
	status, payload := doJSON(t, app, "PUT", "/questions/"+theoryID, fiber.Map{
		"type": "lab",
	})
	if status != fiber.StatusOK {
		t.Fatalf("type-change status = %d: %v", status, payload)
	}

	if n := activeCount(t, db, "lab"); n != 1 {
		t.Fatalf("active lab sets after type change = %d, want 1", n)
	}
	var active model.QuestionSetModel
	if err := db.Where("question_set_type = ? AND question_set_is_active = ?", "lab", true).
		First(&active).Error; err != nil {
		t.Fatalf("load active lab set: %v", err)
	}
	if active.QuestionSetID.String() != theoryID {
		t.Errorf("active lab set = %s, want the moved set %s", active.QuestionSetID, theoryID)
	}
	if n := activeCount(t, db, "theory"); n != 0 {
		t.Errorf("active theory sets after move = %d, want 0", n)
	}
}

func TestQuestionSetDelete(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	_, payload := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "lab", "questions": []string{"Q1"}, "isActive": false,
	})
	id := createdID(t, payload)

	status, _ := doJSON(t, app, "DELETE", "/questions/"+id, nil)
	if status != fiber.StatusOK {
		t.Fatalf("delete status = %d", status)
	}

	status, _ = doJSON(t, app, "DELETE", "/questions/"+id, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", status)
	}
}

func TestQuestionSetCreateValidation(t *testing.T) {
	db := newTestDB(t)
	app := newTestApp(db)

	status, payload := doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "seminar", "questions": []string{"Q1"},
	})
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("invalid type status = %d, want 422", status)
	}
	if code := payload["error_code"]; code != "VALIDATION_ERROR" {
		t.Errorf("error_code = %v, want VALIDATION_ERROR", code)
	}
	if errs, ok := payload["errors"].(map[string]any); !ok || len(errs) == 0 {
		t.Errorf("errors map missing from payload: %v", payload)
	}

	status, _ = doJSON(t, app, "POST", "/questions", fiber.Map{
		"type": "theory", "questions": []string{},
	})
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("empty questions status = %d, want 422", status)
	}
}
