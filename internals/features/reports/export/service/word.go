package service

import (
	"bytes"
	"time"

	analytics "campusfeedback_backend/internals/features/reports/analytics/service"

	"github.com/gingfrederik/docx"
)

// RenderWord render laporan ke dokumen Word sederhana, satu paragraf per
// baris, skor diwarnai lewat warna teks.
func RenderWord(report *analytics.AnalyticsReport, now time.Time) ([]byte, error) {
	f := docx.NewFile()

	f.AddParagraph().AddText(reportTitle).Size(16)
	f.AddParagraph().AddText(filterLine(report)).Size(10)
	f.AddParagraph().AddText(generatedLine(now)).Size(10)
	f.AddParagraph().AddText(summaryLine(report)).Size(10)
	f.AddParagraph()

	f.AddParagraph().AddText("Faculty Summary").Size(13)
	for i, fs := range report.FacultyReport {
		f.AddParagraph().
			AddText(facultyLine(i, fs)).
			Size(10).
			Color(tierHex(parseScore(fs.AverageScore)))
	}
	f.AddParagraph()

	f.AddParagraph().AddText("Subject Summary").Size(13)
	for i, ss := range report.SubjectReport {
		f.AddParagraph().
			AddText(subjectLine(i, ss)).
			Size(10).
			Color(tierHex(parseScore(ss.AverageScore)))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
