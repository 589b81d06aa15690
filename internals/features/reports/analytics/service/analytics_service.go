package service

import (
	"fmt"
	"sort"

	academicsmodel "campusfeedback_backend/internals/features/academics/model"
	"campusfeedback_backend/internals/features/feedback/responses/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacultyStat: agregat per dosen, hanya dari feedback completed.
type FacultyStat struct {
	FacultyName   string `json:"facultyName"`
	ResponseCount int    `json:"responseCount"`
	AverageScore  string `json:"averageScore"` // "%.2f"
}

// SubjectStat: agregat per mata kuliah.
type SubjectStat struct {
	SubjectCode   string `json:"subjectCode"`
	SubjectName   string `json:"subjectName"`
	SubjectType   string `json:"type"`
	FacultyName   string `json:"facultyName"`
	Year          int    `json:"year"`
	Semester      int    `json:"semester"`
	ResponseCount int    `json:"responseCount"`
	AverageScore  string `json:"averageScore"`
}

// AnalyticsReport: payload analytics HOD sekaligus input renderer export.
// Nama key mengikuti kontrak client yang sudah ada — jangan diganti.
type AnalyticsReport struct {
	Year              *int          `json:"year,omitempty"`
	Semester          *int          `json:"semester,omitempty"`
	TotalStudents     int64         `json:"totalStudents"`
	CompletedCount    int           `json:"completedCount"` // jumlah record feedback completed, bukan student distinct
	NotSubmittedCount int64         `json:"notSubmittedCount"`
	InProgressCount   int           `json:"inProgressCount"` // selalu 0, dipertahankan demi bentuk payload
	FacultyReport     []FacultyStat `json:"facultyReport"`
	SubjectReport     []SubjectStat `json:"subjectReport"`
}

type accumulator struct {
	count int
	sum   float64
}

func (a accumulator) average() string {
	if a.count == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", a.sum/float64(a.count))
}

// Calculate agregasi feedback completed, opsional difilter year/semester.
// Rata-rata dihitung dari total_score yang sudah persentase, diformat dua
// desimal sebagai string supaya stabil di payload dan export.
func Calculate(db *gorm.DB, year, semester *int) (*AnalyticsReport, error) {
	fq := db.Model(&model.FeedbackModel{}).Where("feedback_is_completed = ?", true)
	if year != nil {
		fq = fq.Where("feedback_year = ?", *year)
	}
	if semester != nil {
		fq = fq.Where("feedback_semester = ?", *semester)
	}
	var feedbacks []model.FeedbackModel
	if err := fq.Find(&feedbacks).Error; err != nil {
		return nil, err
	}

	subjects, faculties, err := lookupTables(db, feedbacks)
	if err != nil {
		return nil, err
	}

	byFaculty := map[uuid.UUID]*accumulator{}
	bySubject := map[uuid.UUID]*accumulator{}
	for _, fb := range feedbacks {
		if acc, ok := byFaculty[fb.FeedbackFacultyID]; ok {
			acc.count++
			acc.sum += fb.FeedbackTotalScore
		} else {
			byFaculty[fb.FeedbackFacultyID] = &accumulator{count: 1, sum: fb.FeedbackTotalScore}
		}
		if acc, ok := bySubject[fb.FeedbackSubjectID]; ok {
			acc.count++
			acc.sum += fb.FeedbackTotalScore
		} else {
			bySubject[fb.FeedbackSubjectID] = &accumulator{count: 1, sum: fb.FeedbackTotalScore}
		}
	}

	facultyStats := make([]FacultyStat, 0, len(byFaculty))
	for id, acc := range byFaculty {
		name := "Unknown"
		if f, ok := faculties[id]; ok {
			name = f.FacultyName
		}
		facultyStats = append(facultyStats, FacultyStat{
			FacultyName:   name,
			ResponseCount: acc.count,
			AverageScore:  acc.average(),
		})
	}
	sort.Slice(facultyStats, func(i, j int) bool {
		return facultyStats[i].FacultyName < facultyStats[j].FacultyName
	})

	subjectStats := make([]SubjectStat, 0, len(bySubject))
	for id, acc := range bySubject {
		subj, ok := subjects[id]
		if !ok {
			continue
		}
		facultyName := "Unknown"
		if f, ok := faculties[subj.SubjectFacultyID]; ok {
			facultyName = f.FacultyName
		}
		subjectStats = append(subjectStats, SubjectStat{
			SubjectCode:   subj.SubjectCode,
			SubjectName:   subj.SubjectName,
			SubjectType:   subj.SubjectType,
			FacultyName:   facultyName,
			Year:          subj.SubjectYear,
			Semester:      subj.SubjectSemester,
			ResponseCount: acc.count,
			AverageScore:  acc.average(),
		})
	}
	sort.Slice(subjectStats, func(i, j int) bool {
		return subjectStats[i].SubjectCode < subjectStats[j].SubjectCode
	})

	sq := db.Model(&academicsmodel.StudentModel{})
	if year != nil {
		sq = sq.Where("student_year = ?", *year)
	}
	var totalStudents int64
	if err := sq.Count(&totalStudents).Error; err != nil {
		return nil, err
	}
	// Hitung per record completed, BUKAN per student distinct —
	// notSubmitted turunannya bisa negatif kalau ada multi-subject.
	completed := len(feedbacks)
	notSubmitted := totalStudents - int64(completed)
	if notSubmitted < 0 {
		notSubmitted = 0
	}

	return &AnalyticsReport{
		Year:              year,
		Semester:          semester,
		TotalStudents:     totalStudents,
		CompletedCount:    completed,
		NotSubmittedCount: notSubmitted,
		InProgressCount:   0,
		FacultyReport:     facultyStats,
		SubjectReport:     subjectStats,
	}, nil
}

func lookupTables(db *gorm.DB, feedbacks []model.FeedbackModel) (map[uuid.UUID]academicsmodel.SubjectModel, map[uuid.UUID]academicsmodel.FacultyModel, error) {
	subjectIDs := make([]uuid.UUID, 0, len(feedbacks))
	seenSubject := map[uuid.UUID]bool{}
	for _, fb := range feedbacks {
		if !seenSubject[fb.FeedbackSubjectID] {
			seenSubject[fb.FeedbackSubjectID] = true
			subjectIDs = append(subjectIDs, fb.FeedbackSubjectID)
		}
	}

	subjects := map[uuid.UUID]academicsmodel.SubjectModel{}
	if len(subjectIDs) > 0 {
		var rows []academicsmodel.SubjectModel
		if err := db.Where("subject_id IN ?", subjectIDs).Find(&rows).Error; err != nil {
			return nil, nil, err
		}
		for _, s := range rows {
			subjects[s.SubjectID] = s
		}
	}

	facultyIDs := make([]uuid.UUID, 0)
	seenFaculty := map[uuid.UUID]bool{}
	for _, fb := range feedbacks {
		if !seenFaculty[fb.FeedbackFacultyID] {
			seenFaculty[fb.FeedbackFacultyID] = true
			facultyIDs = append(facultyIDs, fb.FeedbackFacultyID)
		}
	}
	for _, s := range subjects {
		if !seenFaculty[s.SubjectFacultyID] {
			seenFaculty[s.SubjectFacultyID] = true
			facultyIDs = append(facultyIDs, s.SubjectFacultyID)
		}
	}

	faculties := map[uuid.UUID]academicsmodel.FacultyModel{}
	if len(facultyIDs) > 0 {
		var rows []academicsmodel.FacultyModel
		if err := db.Where("faculty_id IN ?", facultyIDs).Find(&rows).Error; err != nil {
			return nil, nil, err
		}
		for _, f := range rows {
			faculties[f.FacultyID] = f
		}
	}
	return subjects, faculties, nil
}
