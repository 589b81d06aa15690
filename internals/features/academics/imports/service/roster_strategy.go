package service

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campusfeedback_backend/internals/constants"
	"campusfeedback_backend/internals/features/academics/imports/parse"
	"campusfeedback_backend/internals/features/academics/model"
)

// Kolom persentase kehadiran default untuk file XLS yang dikenal;
// dioverride kalau ketemu header yang memuat "percentage".
const defaultAttendanceCol = 5

// RosterRow: satu mahasiswa hasil parse baris roster.
type RosterRow struct {
	RollID     string
	Name       string
	Year       int
	Semester   int
	Section    string
	Attendance float64
}

// importRoster proses semua sheet sebagai grid mentah. Tidak ada asumsi
// struktural soal header: baris yang tidak mengandung pola roll number
// otomatis terbuang — begitu pula baris header dan kosong.
func (im *Importer) importRoster(wb *parse.Workbook) ImportResult {
	var res ImportResult
	year := rosterYearFromFilename(wb.Filename)

	for _, sheet := range wb.Sheets {
		section := detectSection(sheet.Name, wb.Filename)
		attendanceCol := defaultAttendanceCol
		headerFound := false

		for r := range sheet.Rows {
			// Cari kolom persentase di baris header (sekali per sheet).
			if !headerFound {
				if idx, ok := findPercentageCol(sheet.Rows[r]); ok {
					attendanceCol = idx
					headerFound = true
					continue
				}
			}

			// Roll number bisa di cell 1 atau cell 0, tergantung format file.
			rollIdx := -1
			roll := ""
			if v, ok := parse.ExtractRollID(sheet.Cell(r, 1)); ok {
				rollIdx, roll = 1, v
			} else if v, ok := parse.ExtractRollID(sheet.Cell(r, 0)); ok {
				rollIdx, roll = 0, v
			}
			if rollIdx == -1 {
				continue
			}

			name := strings.TrimSpace(sheet.Cell(r, rollIdx+1))
			if name == "" {
				name = "Student " + roll
			}

			semester := 1
			if year >= 2 {
				semester = 2
			}

			attendance := 0.0
			if v, err := strconv.ParseFloat(strings.TrimSpace(sheet.Cell(r, attendanceCol)), 64); err == nil {
				attendance = v
			}

			row := RosterRow{
				RollID:     roll,
				Name:       name,
				Year:       year,
				Semester:   semester,
				Section:    section,
				Attendance: attendance,
			}
			if err := im.upsertRosterRow(row, &res); err != nil {
				log.Printf("[ERROR] roster row %s: %v", roll, err)
			}
		}
	}
	return res
}

// upsertRosterRow: create kalau belum ada (password default di-hash);
// kalau sudah ada, sinkronkan data penempatan — upload roster bersifat
// re-sync idempoten, bukan append-only. Password existing tidak disentuh.
func (im *Importer) upsertRosterRow(row RosterRow, res *ImportResult) error {
	student, err := model.FindStudentByRollID(im.DB, row.RollID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := bcrypt.GenerateFromPassword([]byte(constants.DefaultStudentPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		created := model.StudentModel{
			StudentRollID:               row.RollID,
			StudentName:                 row.Name,
			StudentYear:                 row.Year,
			StudentSemester:             row.Semester,
			StudentSection:              row.Section,
			StudentDepartment:           constants.DefaultDepartment,
			StudentPassword:             string(hashed),
			StudentAttendancePercentage: row.Attendance,
		}
		if err := im.DB.Create(&created).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		student.StudentName = row.Name
		student.StudentYear = row.Year
		student.StudentSemester = row.Semester
		student.StudentSection = row.Section
		student.StudentAttendancePercentage = row.Attendance
		if err := im.DB.Save(student).Error; err != nil {
			return err
		}
	}
	res.Students++
	return nil
}

func rosterYearFromFilename(filename string) int {
	upper := strings.ToUpper(filename)
	switch {
	case strings.HasPrefix(upper, "IV"):
		return 4
	case strings.HasPrefix(upper, "III"):
		return 3
	case strings.HasPrefix(upper, "II"):
		return 2
	default:
		return 2
	}
}

// detectSection: heuristik nama sheet dulu, fallback ke nama file.
// Ini aturan normatifnya — sumber aslinya memang sheet-name-first.
func detectSection(sheetName, filename string) string {
	s := strings.ToUpper(sheetName)
	switch {
	case strings.Contains(s, "SEC-C"), strings.HasSuffix(s, " C"), strings.Contains(s, "-C"):
		return "C"
	case strings.Contains(s, "SEC-B"), strings.HasSuffix(s, " B"), strings.Contains(s, "-B"):
		return "B"
	case strings.Contains(s, "SEC-A"), strings.HasSuffix(s, " A"), strings.Contains(s, "-A"):
		return "A"
	}

	f := strings.ToUpper(filename)
	switch {
	case strings.Contains(f, "-C"):
		return "C"
	case strings.Contains(f, "-B"):
		return "B"
	default:
		return "A"
	}
}

func findPercentageCol(row []string) (int, bool) {
	for i, cell := range row {
		if strings.Contains(strings.ToLower(cell), "percentage") {
			return i, true
		}
	}
	return 0, false
}
