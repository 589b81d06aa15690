package service

import (
	"bytes"
	"time"

	analytics "campusfeedback_backend/internals/features/reports/analytics/service"

	"github.com/go-pdf/fpdf"
)

const reportTitle = "Course Feedback Report"

// RenderPDF render laporan ke PDF satu kolom, skor diwarnai per ambang.
func RenderPDF(report *analytics.AnalyticsReport, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, filterLine(report), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, generatedLine(now), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, summaryLine(report), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Faculty Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for i, f := range report.FacultyReport {
		r, g, b := tierRGB(parseScore(f.AverageScore))
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(0, 6, facultyLine(i, f), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Subject Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for i, s := range report.SubjectReport {
		r, g, b := tierRGB(parseScore(s.AverageScore))
		pdf.SetTextColor(r, g, b)
		pdf.CellFormat(0, 6, subjectLine(i, s), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
