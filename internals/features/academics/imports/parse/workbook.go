package parse

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet: grid mentah satu worksheet. Baris/kolom bisa pendek (trailing cell
// kosong tidak dijamin ada) — akses lewat Cell() yang aman.
type Sheet struct {
	Name string
	Rows [][]string
}

// Cell baca sel (row, col); di luar grid = string kosong.
func (s Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Workbook: bentuk netral hasil baca file upload, supaya strategi import
// bisa dites tanpa file Excel.
type Workbook struct {
	Filename string
	Sheets   []Sheet
}

// LoadWorkbook baca workbook XLSX dari buffer upload via excelize.
func LoadWorkbook(filename string, r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("gagal buka file Excel: %w", err)
	}
	defer f.Close()

	wb := &Workbook{Filename: filename}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("gagal baca sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}

// SheetByName cari sheet persis (case-sensitive, sesuai template standar).
func (w *Workbook) SheetByName(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}
