package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"campusfeedback_backend/internals/features/academics/imports/parse"
)

// ImportResult: ringkasan baris yang berhasil ditulis, untuk feedback operator.
// Error per-baris cuma di-log — partial success adalah mode penyelesaian normal.
type ImportResult struct {
	Students int `json:"students"`
	Faculty  int `json:"faculty"`
	Subjects int `json:"subjects"`
}

// Importer menjalankan pipeline ingestion spreadsheet.
// NewFacultyCode bisa di-inject deterministik untuk test.
type Importer struct {
	DB             *gorm.DB
	NewFacultyCode func() string
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{
		DB:             db,
		NewFacultyCode: defaultFacultyCode,
	}
}

// defaultFacultyCode: kode sintetis unik per proses untuk faculty yang
// sumbernya cuma punya nama (file alokasi).
func defaultFacultyCode() string {
	return "F" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// Run dispatch workbook ke strategi hasil klasifikasi nama file.
// Baris diproses sekuensial & independen; tidak ada transaksi batch —
// satu baris gagal tidak membatalkan baris sebelumnya.
func (im *Importer) Run(wb *parse.Workbook) ImportResult {
	switch Classify(wb.Filename) {
	case StrategyAllocation:
		return im.importAllocation(wb)
	case StrategyRoster:
		return im.importRoster(wb)
	default:
		return im.importTemplate(wb)
	}
}
