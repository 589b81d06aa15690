package service

import (
	"fmt"
	"time"

	analytics "campusfeedback_backend/internals/features/reports/analytics/service"

	"github.com/xuri/excelize/v2"
)

// RenderExcel render laporan ke workbook dua sheet (Faculty, Subjects).
func RenderExcel(report *analytics.AnalyticsReport, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const facultySheet = "Faculty"
	const subjectSheet = "Subjects"
	f.SetSheetName("Sheet1", facultySheet)
	if _, err := f.NewSheet(subjectSheet); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	writeHead := func(sheet string) {
		f.SetCellValue(sheet, "A1", reportTitle)
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
		f.SetCellValue(sheet, "A2", filterLine(report))
		f.SetCellValue(sheet, "A3", generatedLine(now))
		f.SetCellValue(sheet, "A4", summaryLine(report))
	}
	writeHead(facultySheet)
	writeHead(subjectSheet)

	// Sheet Faculty
	for col, h := range []string{"#", "Faculty", "Responses", "Average Score"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 6)
		f.SetCellValue(facultySheet, cell, h)
		f.SetCellStyle(facultySheet, cell, cell, headerStyle)
	}
	for i, fs := range report.FacultyReport {
		row := 7 + i
		f.SetCellValue(facultySheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(facultySheet, fmt.Sprintf("B%d", row), fs.FacultyName)
		f.SetCellValue(facultySheet, fmt.Sprintf("C%d", row), fs.ResponseCount)
		scoreCell := fmt.Sprintf("D%d", row)
		f.SetCellValue(facultySheet, scoreCell, fs.AverageScore)
		if style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: tierHex(parseScore(fs.AverageScore))},
		}); err == nil {
			f.SetCellStyle(facultySheet, scoreCell, scoreCell, style)
		}
	}

	// Sheet Subjects
	for col, h := range []string{"#", "Code", "Subject", "Type", "Faculty", "Year", "Semester", "Responses", "Average Score"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 6)
		f.SetCellValue(subjectSheet, cell, h)
		f.SetCellStyle(subjectSheet, cell, cell, headerStyle)
	}
	for i, ss := range report.SubjectReport {
		row := 7 + i
		f.SetCellValue(subjectSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(subjectSheet, fmt.Sprintf("B%d", row), ss.SubjectCode)
		f.SetCellValue(subjectSheet, fmt.Sprintf("C%d", row), ss.SubjectName)
		f.SetCellValue(subjectSheet, fmt.Sprintf("D%d", row), ss.SubjectType)
		f.SetCellValue(subjectSheet, fmt.Sprintf("E%d", row), ss.FacultyName)
		f.SetCellValue(subjectSheet, fmt.Sprintf("F%d", row), ss.Year)
		f.SetCellValue(subjectSheet, fmt.Sprintf("G%d", row), ss.Semester)
		f.SetCellValue(subjectSheet, fmt.Sprintf("H%d", row), ss.ResponseCount)
		scoreCell := fmt.Sprintf("I%d", row)
		f.SetCellValue(subjectSheet, scoreCell, ss.AverageScore)
		if style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: tierHex(parseScore(ss.AverageScore))},
		}); err == nil {
			f.SetCellStyle(subjectSheet, scoreCell, scoreCell, style)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
