package service

import (
	"fmt"
	"strconv"
	"time"

	analytics "campusfeedback_backend/internals/features/reports/analytics/service"
)

// Ambang warna skor di semua format export.
const (
	tierGood = 90 // hijau
	tierOK   = 75 // biru
)

// tierRGB: warna skor untuk renderer berbasis RGB (PDF).
func tierRGB(score float64) (int, int, int) {
	switch {
	case score >= tierGood:
		return 0, 128, 0
	case score >= tierOK:
		return 0, 0, 255
	default:
		return 230, 126, 34
	}
}

// tierHex: warna skor untuk renderer berbasis hex (Excel, Word).
func tierHex(score float64) string {
	switch {
	case score >= tierGood:
		return "008000"
	case score >= tierOK:
		return "0000FF"
	default:
		return "E67E22"
	}
}

func parseScore(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Filename untuk attachment, filter kosong jadi "All".
func Filename(report *analytics.AnalyticsReport, ext string) string {
	year := "All"
	if report.Year != nil {
		year = strconv.Itoa(*report.Year)
	}
	semester := "All"
	if report.Semester != nil {
		semester = strconv.Itoa(*report.Semester)
	}
	return fmt.Sprintf("Feedback_Report_Y%s_S%s.%s", year, semester, ext)
}

func filterLine(report *analytics.AnalyticsReport) string {
	year := "All"
	if report.Year != nil {
		year = strconv.Itoa(*report.Year)
	}
	semester := "All"
	if report.Semester != nil {
		semester = strconv.Itoa(*report.Semester)
	}
	return fmt.Sprintf("Year: %s    Semester: %s", year, semester)
}

func generatedLine(now time.Time) string {
	return "Generated: " + now.Format("02 Jan 2006 15:04")
}

func summaryLine(report *analytics.AnalyticsReport) string {
	return fmt.Sprintf("Students: %d    Completed: %d    Not submitted: %d",
		report.TotalStudents, report.CompletedCount, report.NotSubmittedCount)
}

func subjectLine(i int, s analytics.SubjectStat) string {
	return fmt.Sprintf("%d. %s - %s (%s) | Faculty: %s | Responses: %d | Score: %s",
		i+1, s.SubjectCode, s.SubjectName, s.SubjectType, s.FacultyName, s.ResponseCount, s.AverageScore)
}

func facultyLine(i int, f analytics.FacultyStat) string {
	return fmt.Sprintf("%d. %s | Responses: %d | Score: %s",
		i+1, f.FacultyName, f.ResponseCount, f.AverageScore)
}
