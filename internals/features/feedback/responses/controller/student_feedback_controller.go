package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	academicsmodel "campusfeedback_backend/internals/features/academics/model"
	questionmodel "campusfeedback_backend/internals/features/feedback/questions/model"
	"campusfeedback_backend/internals/features/feedback/responses/dto"
	"campusfeedback_backend/internals/features/feedback/responses/model"
	"campusfeedback_backend/internals/features/feedback/responses/service"
	helper "campusfeedback_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentFeedbackController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Now      func() time.Time // injectable untuk test cooldown
}

func NewStudentFeedbackController(db *gorm.DB) *StudentFeedbackController {
	return &StudentFeedbackController{
		DB:       db,
		Validate: validator.New(),
		Now:      time.Now,
	}
}

// currentStudent ambil StudentModel dari user_id hasil AuthMiddleware.
func (ctrl *StudentFeedbackController) currentStudent(c *fiber.Ctx) (*academicsmodel.StudentModel, error) {
	rawID, _ := c.Locals("user_id").(string)
	studentID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var student academicsmodel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return nil, err
	}
	return &student, nil
}

// =============================
// GET /api/student/dashboard
// =============================
// Daftar subject sesuai (year, semester, section) student, plus status
// feedback per subject dan state cooldown.
func (ctrl *StudentFeedbackController) Dashboard(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	var subjects []academicsmodel.SubjectModel
	if err := ctrl.DB.
		Where("subject_year = ? AND subject_semester = ? AND subject_section = ?",
			student.StudentYear, student.StudentSemester, student.StudentSection).
		Order("subject_code ASC").
		Find(&subjects).Error; err != nil {
		log.Println("[ERROR] dashboard subjects:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	facultyNames, err := ctrl.facultyNames(subjects)
	if err != nil {
		log.Println("[ERROR] dashboard faculties:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	// Satu query untuk semua feedback student, di-map per subject.
	var feedbacks []model.FeedbackModel
	if err := ctrl.DB.
		Where("feedback_student_id = ?", student.StudentID).
		Find(&feedbacks).Error; err != nil {
		log.Println("[ERROR] dashboard feedbacks:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	bySubject := make(map[uuid.UUID]*model.FeedbackModel, len(feedbacks))
	for i := range feedbacks {
		bySubject[feedbacks[i].FeedbackSubjectID] = &feedbacks[i]
	}

	now := ctrl.Now()
	rows := make([]dto.DashboardSubjectResponse, 0, len(subjects))
	for _, subj := range subjects {
		fb := bySubject[subj.SubjectID]
		canResubmit, days := service.CooldownState(fb, now)
		rows = append(rows, dto.DashboardSubjectResponse{
			SubjectID:         subj.SubjectID.String(),
			SubjectCode:       subj.SubjectCode,
			SubjectName:       subj.SubjectName,
			SubjectType:       subj.SubjectType,
			FacultyName:       facultyNames[subj.SubjectFacultyID],
			Status:            service.StatusOf(fb),
			CanResubmit:       canResubmit,
			DaysUntilResubmit: days,
		})
	}

	return helper.JsonOK(c, "Dashboard loaded", fiber.Map{
		"student": fiber.Map{
			"rollId":   student.StudentRollID,
			"name":     student.StudentName,
			"year":     student.StudentYear,
			"semester": student.StudentSemester,
			"section":  student.StudentSection,
		},
		"subjects": rows,
	})
}

// =============================
// GET /api/student/questions/:subjectId
// =============================
// Pertanyaan dari question set aktif sesuai tipe subject, plus jawaban
// lama kalau student pernah submit (prefill form resubmit).
func (ctrl *StudentFeedbackController) GetQuestions(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var subject academicsmodel.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	var set questionmodel.QuestionSetModel
	if err := ctrl.DB.
		Where("question_set_type = ? AND question_set_is_active = ?", subject.SubjectType, true).
		First(&set).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No active questions found for this subject type")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	facultyName := ""
	var faculty academicsmodel.FacultyModel
	if err := ctrl.DB.First(&faculty, "faculty_id = ?", subject.SubjectFacultyID).Error; err == nil {
		facultyName = faculty.FacultyName
	}

	var existing []model.ResponseItem
	var fb model.FeedbackModel
	err = ctrl.DB.
		Where("feedback_student_id = ? AND feedback_subject_id = ?", student.StudentID, subject.SubjectID).
		First(&fb).Error
	if err == nil {
		existing = fb.Responses()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}
	if existing == nil {
		existing = []model.ResponseItem{}
	}

	return helper.JsonOK(c, "Questions loaded", dto.SubjectQuestionsResponse{
		SubjectID:         subject.SubjectID.String(),
		SubjectCode:       subject.SubjectCode,
		SubjectName:       subject.SubjectName,
		SubjectType:       subject.SubjectType,
		FacultyName:       facultyName,
		Questions:         []string(set.QuestionSetQuestions),
		ExistingResponses: existing,
	})
}

// =============================
// POST /api/student/submit-feedback
// =============================
// Upsert ke record (student, subject) yang sama. Resubmit di dalam masa
// cooldown ditolak 400 dengan sisa hari.
func (ctrl *StudentFeedbackController) SubmitFeedback(c *fiber.Ctx) error {
	student, err := ctrl.currentStudent(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}

	var req dto.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMessages(err))
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var subject academicsmodel.SubjectModel
	if err := ctrl.DB.First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}

	now := ctrl.Now()
	items := req.Items()
	score := service.ComputeTotalScore(items)

	var saved model.FeedbackModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var fb model.FeedbackModel
		err := tx.
			Where("feedback_student_id = ? AND feedback_subject_id = ?", student.StudentID, subject.SubjectID).
			First(&fb).Error
		switch {
		case err == nil:
			if canResubmit, days := service.CooldownState(&fb, now); !canResubmit {
				return &cooldownError{Days: days}
			}
			// Record lama dipakai ulang, identitasnya tetap.
			if err := fb.SetResponses(items); err != nil {
				return err
			}
			fb.FeedbackFacultyID = subject.SubjectFacultyID
			fb.FeedbackYear = student.StudentYear
			fb.FeedbackSemester = student.StudentSemester
			fb.FeedbackTotalScore = score
			fb.FeedbackIsCompleted = true
			fb.FeedbackSubmittedAt = &now
			if err := tx.Save(&fb).Error; err != nil {
				return err
			}
			saved = fb
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			fb = model.FeedbackModel{
				FeedbackStudentID:   student.StudentID,
				FeedbackSubjectID:   subject.SubjectID,
				FeedbackFacultyID:   subject.SubjectFacultyID,
				FeedbackYear:        student.StudentYear,
				FeedbackSemester:    student.StudentSemester,
				FeedbackTotalScore:  score,
				FeedbackIsCompleted: true,
				FeedbackSubmittedAt: &now,
			}
			if err := fb.SetResponses(items); err != nil {
				return err
			}
			if err := tx.Create(&fb).Error; err != nil {
				return err
			}
			saved = fb
			return nil
		default:
			return err
		}
	})
	if txErr != nil {
		var ce *cooldownError
		if errors.As(txErr, &ce) {
			return helper.JsonErrorWithData(c, fiber.StatusBadRequest,
				ce.Error(), fiber.Map{"daysUntilResubmit": ce.Days})
		}
		log.Println("[ERROR] submit feedback:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit feedback")
	}

	return helper.JsonCreated(c, "Feedback submitted successfully", dto.SubmitFeedbackResponse{
		FeedbackID:  saved.FeedbackID.String(),
		SubjectID:   subject.SubjectID.String(),
		TotalScore:  saved.FeedbackTotalScore,
		SubmittedAt: now,
	})
}

func (ctrl *StudentFeedbackController) facultyNames(subjects []academicsmodel.SubjectModel) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(subjects))
	seen := make(map[uuid.UUID]bool, len(subjects))
	for _, s := range subjects {
		if !seen[s.SubjectFacultyID] {
			seen[s.SubjectFacultyID] = true
			ids = append(ids, s.SubjectFacultyID)
		}
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var faculties []academicsmodel.FacultyModel
	if err := ctrl.DB.Where("faculty_id IN ?", ids).Find(&faculties).Error; err != nil {
		return nil, err
	}
	for _, f := range faculties {
		names[f.FacultyID] = f.FacultyName
	}
	return names, nil
}

type cooldownError struct {
	Days int
}

func (e *cooldownError) Error() string {
	return fmt.Sprintf("You have already submitted feedback for this subject. You can submit again in %d day(s).", e.Days)
}
