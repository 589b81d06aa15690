package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"campusfeedback_backend/internals/constants"
	"campusfeedback_backend/internals/features/academics/imports/parse"
	"campusfeedback_backend/internals/features/academics/model"
)

// Batas baris file alokasi (format sumber tidak pernah lebih).
const allocMaxRows = 100

// AllocRow: satu baris grid A–E file alokasi.
type AllocRow struct {
	SubjectName   string // A
	YearToken     string // B (romawi/angka)
	SemesterToken string // C (romawi/angka)
	Section       string // D (default "A")
	FacultyName   string // E (display name)
}

// importAllocation baca sheet pertama sebagai grid kolom A–E.
// Baris diproses hanya jika A, B, C, dan E terisi; baris header/noise
// ("SUBJECT", "MOOCS") dan token tahun/semester tak dikenal di-skip.
func (im *Importer) importAllocation(wb *parse.Workbook) ImportResult {
	var res ImportResult
	if len(wb.Sheets) == 0 {
		return res
	}
	sheet := wb.Sheets[0]

	for i := 0; i < allocMaxRows; i++ {
		row := AllocRow{
			SubjectName:   strings.TrimSpace(sheet.Cell(i, 0)),
			YearToken:     sheet.Cell(i, 1),
			SemesterToken: sheet.Cell(i, 2),
			Section:       strings.TrimSpace(sheet.Cell(i, 3)),
			FacultyName:   strings.TrimSpace(sheet.Cell(i, 4)),
		}
		if row.SubjectName == "" || row.YearToken == "" || row.SemesterToken == "" || row.FacultyName == "" {
			continue
		}
		if row.SubjectName == "SUBJECT" || row.SubjectName == "MOOCS" {
			continue
		}

		year, ok := parse.RomanToNum(row.YearToken)
		if !ok {
			continue
		}
		semester, ok := parse.RomanToNum(row.SemesterToken)
		if !ok {
			continue
		}
		if row.Section == "" {
			row.Section = "A"
		}

		if err := im.upsertAllocRow(row, year, semester, &res); err != nil {
			log.Printf("[ERROR] alloc row %d (%s): %v", i, row.SubjectName, err)
		}
	}
	return res
}

func (im *Importer) upsertAllocRow(row AllocRow, year, semester int, res *ImportResult) error {
	// Resolve faculty by exact name — tanpa fuzzy matching.
	var faculty model.FacultyModel
	err := im.DB.Where("faculty_name = ?", row.FacultyName).First(&faculty).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		faculty = model.FacultyModel{
			FacultyCode:       im.NewFacultyCode(),
			FacultyName:       row.FacultyName,
			FacultyDepartment: constants.DefaultDepartment,
		}
		if err := im.DB.Create(&faculty).Error; err != nil {
			return err
		}
		res.Faculty++
	case err != nil:
		return err
	}

	subjectType := constants.SubjectTypeTheory
	if strings.Contains(strings.ToUpper(row.SubjectName), "LAB") {
		subjectType = constants.SubjectTypeLab
	}
	code := SubjectCode(row.SubjectName, year, semester, row.Section)

	var subject model.SubjectModel
	err = im.DB.Where("subject_code = ?", code).First(&subject).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		subject = model.SubjectModel{
			SubjectCode:      code,
			SubjectName:      row.SubjectName,
			SubjectType:      subjectType,
			SubjectYear:      year,
			SubjectSemester:  semester,
			SubjectSection:   row.Section,
			SubjectFacultyID: faculty.FacultyID,
		}
		if err := im.DB.Create(&subject).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		subject.SubjectName = row.SubjectName
		subject.SubjectType = subjectType
		subject.SubjectYear = year
		subject.SubjectSemester = semester
		subject.SubjectSection = row.Section
		subject.SubjectFacultyID = faculty.FacultyID
		if err := im.DB.Save(&subject).Error; err != nil {
			return err
		}
	}
	res.Subjects++
	return nil
}

// SubjectCode derive kode subject yang reproducible dari nama + slot:
// tiga huruf pertama (uppercase) + year + semester + section, dipisah strip.
func SubjectCode(name string, year, semester int, section string) string {
	prefix := strings.ToUpper(name)
	if runes := []rune(prefix); len(runes) > 3 {
		prefix = string(runes[:3])
	}
	return fmt.Sprintf("%s-%d-%d-%s", prefix, year, semester, section)
}
