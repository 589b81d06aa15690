package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	academicsmodel "campusfeedback_backend/internals/features/academics/model"
	questionmodel "campusfeedback_backend/internals/features/feedback/questions/model"
	"campusfeedback_backend/internals/features/feedback/responses/model"
)

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

	if err := db.AutoMigrate(
		&academicsmodel.FacultyModel{},
		&academicsmodel.SubjectModel{},
		&academicsmodel.StudentModel{},
		&model.FeedbackModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Kolom questions bertipe text[] di Postgres; di sqlite tabelnya
	// dibuat manual dan pq.StringArray round-trip sebagai teks.
	if err := db.Exec(`CREATE TABLE question_sets (
		question_set_id text PRIMARY KEY,
		question_set_type text NOT NULL,
		question_set_questions text NOT NULL,
		question_set_is_active numeric NOT NULL DEFAULT 0,
		created_at datetime,
		updated_at datetime
	)`).Error; err != nil {
		t.Fatalf("create question_sets: %v", err)
	}
	return db
}

type testWorld struct {
	db      *gorm.DB
	app     *fiber.App
	ctrl    *StudentFeedbackController
	student academicsmodel.StudentModel
	subject academicsmodel.SubjectModel
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	db := newTestDB(t)

	faculty := academicsmodel.FacultyModel{
		FacultyCode:       "FAC001",
		FacultyName:       "Dr. Meena",
		FacultyDepartment: "AIML",
	}
	if err := db.Create(&faculty).Error; err != nil {
		t.Fatalf("seed faculty: %v", err)
	}
	subject := academicsmodel.SubjectModel{
		SubjectCode:      "ML-2-1-A",
		SubjectName:      "Machine Learning",
		SubjectType:      "theory",
		SubjectYear:      2,
		SubjectSemester:  1,
		SubjectSection:   "A",
		SubjectFacultyID: faculty.FacultyID,
	}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	student := academicsmodel.StudentModel{
		StudentRollID:     "21AI001",
		StudentName:       "Asha",
		StudentYear:       2,
		StudentSemester:   1,
		StudentSection:    "A",
		StudentDepartment: "AIML",
		StudentPassword:   "x",
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	set := questionmodel.QuestionSetModel{
		QuestionSetType:      "theory",
		QuestionSetQuestions: []string{"Clarity", "Punctuality"},
		QuestionSetIsActive:  true,
	}
	if err := db.Create(&set).Error; err != nil {
		t.Fatalf("seed question set: %v", err)
	}

	ctrl := NewStudentFeedbackController(db)
	app := fiber.New()
	withIdentity := func(h fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals("user_id", student.StudentID.String())
			c.Locals("userRole", "student")
			return h(c)
		}
	}
	app.Get("/dashboard", withIdentity(ctrl.Dashboard))
	app.Get("/questions/:subjectId", withIdentity(ctrl.GetQuestions))
	app.Post("/submit-feedback", withIdentity(ctrl.SubmitFeedback))

	return &testWorld{db: db, app: app, ctrl: ctrl, student: student, subject: subject}
}

func (w *testWorld) doJSON(t *testing.T, method, path string, body any) (int, map[string]any) {
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
	resp, err := w.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp.StatusCode, payload
}

func submitBody(subjectID uuid.UUID, ratings ...int) fiber.Map {
	responses := make([]fiber.Map, len(ratings))
	for i, r := range ratings {
		responses[i] = fiber.Map{"questionIndex": i, "rating": r}
	}
	return fiber.Map{"subjectId": subjectID.String(), "responses": responses}
}

func TestSubmitFeedback(t *testing.T) {
	w := newTestWorld(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	w.ctrl.Now = func() time.Time { return base }

	status, payload := w.doJSON(t, "POST", "/submit-feedback", submitBody(w.subject.SubjectID, 3, 4, 5, 2))
	if status != fiber.StatusCreated {
		t.Fatalf("submit status = %d: %v", status, payload)
	}
	data := payload["data"].(map[string]any)
	if score := data["totalScore"].(float64); score != 70 {
		t.Errorf("totalScore = %v, want 70", score)
	}

	var fb model.FeedbackModel
	if err := w.db.Where("feedback_student_id = ?", w.student.StudentID).First(&fb).Error; err != nil {
		t.Fatalf("feedback not persisted: %v", err)
	}
	if !fb.FeedbackIsCompleted || fb.FeedbackSubmittedAt == nil {
		t.Errorf("feedback not marked completed")
	}
	if fb.FeedbackYear != 2 || fb.FeedbackSemester != 1 {
		t.Errorf("slot snapshot = (%d, %d), want (2, 1)", fb.FeedbackYear, fb.FeedbackSemester)
	}
}

func TestSubmitFeedbackCooldown(t *testing.T) {
	w := newTestWorld(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	w.ctrl.Now = func() time.Time { return base }

	if status, p := w.doJSON(t, "POST", "/submit-feedback", submitBody(w.subject.SubjectID, 5, 5)); status != fiber.StatusCreated {
		t.Fatalf("first submit status = %d: %v", status, p)
	}

	// Satu hari kemudian: masih cooldown, sisa 14 hari.
	w.ctrl.Now = func() time.Time { return base.Add(24 * time.Hour) }
	status, payload := w.doJSON(t, "POST", "/submit-feedback", submitBody(w.subject.SubjectID, 1, 1))
	if status != fiber.StatusBadRequest {
		t.Fatalf("resubmit status = %d, want 400: %v", status, payload)
	}
	data, _ := payload["data"].(map[string]any)
	if days := data["daysUntilResubmit"].(float64); days != 14 {
		t.Errorf("daysUntilResubmit = %v, want 14", days)
	}

	// Tepat 15 hari: boleh lagi, dan record yang sama di-update.
	resubmitAt := base.Add(15 * 24 * time.Hour)
	w.ctrl.Now = func() time.Time { return resubmitAt }
	status, payload = w.doJSON(t, "POST", "/submit-feedback", submitBody(w.subject.SubjectID, 1, 1))
	if status != fiber.StatusCreated {
		t.Fatalf("post-cooldown submit status = %d: %v", status, payload)
	}

	var count int64
	w.db.Model(&model.FeedbackModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("feedback rows = %d, want 1 (resubmit must reuse the record)", count)
	}
	var fb model.FeedbackModel
	w.db.First(&fb)
	if fb.FeedbackTotalScore != 20 {
		t.Errorf("totalScore after resubmit = %v, want 20", fb.FeedbackTotalScore)
	}
	if !fb.FeedbackSubmittedAt.Equal(resubmitAt) {
		t.Errorf("submittedAt not refreshed: %v", fb.FeedbackSubmittedAt)
	}
}

func TestDashboard(t *testing.T) {
	w := newTestWorld(t)
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	w.ctrl.Now = func() time.Time { return base }

	status, payload := w.doJSON(t, "GET", "/dashboard", nil)
	if status != fiber.StatusOK {
		t.Fatalf("dashboard status = %d: %v", status, payload)
	}
	data := payload["data"].(map[string]any)
	subjects := data["subjects"].([]any)
	if len(subjects) != 1 {
		t.Fatalf("dashboard subjects = %d, want 1", len(subjects))
	}
	row := subjects[0].(map[string]any)
	if row["status"] != "not submitted" || row["canResubmit"] != true {
		t.Errorf("initial row = %v", row)
	}
	if row["facultyName"] != "Dr. Meena" {
		t.Errorf("facultyName = %v", row["facultyName"])
	}

	// Setelah submit: done + cooldown aktif.
	if status, p := w.doJSON(t, "POST", "/submit-feedback", submitBody(w.subject.SubjectID, 5, 5)); status != fiber.StatusCreated {
		t.Fatalf("submit status = %d: %v", status, p)
	}
	w.ctrl.Now = func() time.Time { return base.Add(24 * time.Hour) }
	_, payload = w.doJSON(t, "GET", "/dashboard", nil)
	row = payload["data"].(map[string]any)["subjects"].([]any)[0].(map[string]any)
	if row["status"] != "done" || row["canResubmit"] != false {
		t.Errorf("post-submit row = %v", row)
	}
	if days := row["daysUntilResubmit"].(float64); days != 14 {
		t.Errorf("daysUntilResubmit = %v, want 14", days)
	}
}

func TestGetQuestions(t *testing.T) {
	w := newTestWorld(t)

	status, payload := w.doJSON(t, "GET", "/questions/"+w.subject.SubjectID.String(), nil)
	if status != fiber.StatusOK {
		t.Fatalf("questions status = %d: %v", status, payload)
	}
	data := payload["data"].(map[string]any)
	questions := data["questions"].([]any)
	if len(questions) != 2 || questions[0] != "Clarity" {
		t.Errorf("questions = %v", questions)
	}
	if existing := data["existingResponses"].([]any); len(existing) != 0 {
		t.Errorf("existingResponses should start empty: %v", existing)
	}

	// Subject tidak dikenal → 404.
	status, _ = w.doJSON(t, "GET", "/questions/"+uuid.NewString(), nil)
	if status != fiber.StatusNotFound {
		t.Errorf("unknown subject status = %d, want 404", status)
	}

	// Tanpa set aktif untuk tipenya → 404.
	w.db.Model(&questionmodel.QuestionSetModel{}).
		Where("question_set_type = ?", "theory").
		Update("question_set_is_active", false)
	status, payload = w.doJSON(t, "GET", "/questions/"+w.subject.SubjectID.String(), nil)
	if status != fiber.StatusNotFound {
		t.Errorf("no active set status = %d: %v", status, payload)
	}
}
