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

// importTemplate proses template standar: sheet "Faculty", "Students",
// "Subjects" (header-keyed, baris pertama = nama field). Faculty diproses
// duluan karena Subjects butuh referensinya.
func (im *Importer) importTemplate(wb *parse.Workbook) ImportResult {
	var res ImportResult

	if sheet, ok := wb.SheetByName("Faculty"); ok {
		for _, row := range headerRows(sheet) {
			if err := im.upsertTemplateFaculty(row, &res); err != nil {
				log.Printf("[ERROR] template faculty %s: %v", row["facultyId"], err)
			}
		}
	}

	if sheet, ok := wb.SheetByName("Students"); ok {
		for _, row := range headerRows(sheet) {
			if err := im.upsertTemplateStudent(row, &res); err != nil {
				log.Printf("[ERROR] template student %s: %v", row["rollId"], err)
			}
		}
	}

	if sheet, ok := wb.SheetByName("Subjects"); ok {
		for _, row := range headerRows(sheet) {
			if err := im.upsertTemplateSubject(row, &res); err != nil {
				log.Printf("[ERROR] template subject %s: %v", row["subjectCode"], err)
			}
		}
	}
	return res
}

func (im *Importer) upsertTemplateFaculty(row map[string]string, res *ImportResult) error {
	code := strings.TrimSpace(row["facultyId"])
	if code == "" {
		return nil
	}

	var faculty model.FacultyModel
	err := im.DB.Where("faculty_code = ?", code).First(&faculty).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		faculty = model.FacultyModel{
			FacultyCode:       code,
			FacultyName:       strings.TrimSpace(row["name"]),
			FacultyDepartment: strings.TrimSpace(row["department"]),
		}
		if err := im.DB.Create(&faculty).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		faculty.FacultyName = strings.TrimSpace(row["name"])
		faculty.FacultyDepartment = strings.TrimSpace(row["department"])
		if err := im.DB.Save(&faculty).Error; err != nil {
			return err
		}
	}
	res.Faculty++
	return nil
}

func (im *Importer) upsertTemplateStudent(row map[string]string, res *ImportResult) error {
	roll := strings.TrimSpace(row["rollId"])
	if roll == "" {
		return nil
	}
	year, _ := strconv.Atoi(strings.TrimSpace(row["year"]))
	semester, _ := strconv.Atoi(strings.TrimSpace(row["semester"]))

	student, err := model.FindStudentByRollID(im.DB, roll)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Password dari sheet kalau ada; kalau tidak, default placeholder.
		// Dua-duanya di-hash sebelum disimpan.
		password := strings.TrimSpace(row["password"])
		if password == "" {
			password = constants.DefaultStudentPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		created := model.StudentModel{
			StudentRollID:     roll,
			StudentName:       strings.TrimSpace(row["name"]),
			StudentYear:       year,
			StudentSemester:   semester,
			StudentSection:    strings.TrimSpace(row["section"]),
			StudentDepartment: constants.DefaultDepartment,
			StudentPassword:   string(hashed),
		}
		if err := im.DB.Create(&created).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		student.StudentName = strings.TrimSpace(row["name"])
		student.StudentYear = year
		student.StudentSemester = semester
		student.StudentSection = strings.TrimSpace(row["section"])
		// Password existing tidak pernah disentuh lewat path ini,
		// kecuali sheet secara eksplisit menyuplai password baru.
		if password := strings.TrimSpace(row["password"]); password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			student.StudentPassword = string(hashed)
		}
		if err := im.DB.Save(student).Error; err != nil {
			return err
		}
	}
	res.Students++
	return nil
}

func (im *Importer) upsertTemplateSubject(row map[string]string, res *ImportResult) error {
	code := strings.TrimSpace(row["subjectCode"])
	if code == "" {
		return nil
	}

	// Faculty harus sudah ada; kalau tidak, baris di-skip dan TIDAK dihitung.
	var faculty model.FacultyModel
	if err := im.DB.Where("faculty_code = ?", strings.TrimSpace(row["facultyId"])).First(&faculty).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	year, _ := strconv.Atoi(strings.TrimSpace(row["year"]))
	semester, _ := strconv.Atoi(strings.TrimSpace(row["semester"]))

	var subject model.SubjectModel
	err := im.DB.Where("subject_code = ?", code).First(&subject).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		subject = model.SubjectModel{
			SubjectCode:      code,
			SubjectName:      strings.TrimSpace(row["subjectName"]),
			SubjectType:      strings.TrimSpace(row["type"]),
			SubjectYear:      year,
			SubjectSemester:  semester,
			SubjectSection:   strings.TrimSpace(row["section"]),
			SubjectFacultyID: faculty.FacultyID,
		}
		if err := im.DB.Create(&subject).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		subject.SubjectName = strings.TrimSpace(row["subjectName"])
		subject.SubjectType = strings.TrimSpace(row["type"])
		subject.SubjectYear = year
		subject.SubjectSemester = semester
		subject.SubjectSection = strings.TrimSpace(row["section"])
		subject.SubjectFacultyID = faculty.FacultyID
		if err := im.DB.Save(&subject).Error; err != nil {
			return err
		}
	}
	res.Subjects++
	return nil
}

// headerRows ubah sheet jadi baris ber-key header (baris pertama = header).
func headerRows(sheet parse.Sheet) []map[string]string {
	if len(sheet.Rows) < 2 {
		return nil
	}
	headers := make([]string, len(sheet.Rows[0]))
	for i, h := range sheet.Rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]map[string]string, 0, len(sheet.Rows)-1)
	for _, r := range sheet.Rows[1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" || i >= len(r) {
				continue
			}
			row[h] = r[i]
			if strings.TrimSpace(r[i]) != "" {
				empty = false
			}
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out
}
