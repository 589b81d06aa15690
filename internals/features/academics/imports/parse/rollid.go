package parse

import "regexp"

// Pola roll number: digit, huruf, digit, opsional huruf + alfanumerik
// (contoh: 21AI051, 21AI05A). Sengaja permisif — match substring pertama
// di tengah teks apa pun, karena sel spreadsheet sumber tidak bersih.
var rollPattern = regexp.MustCompile(`[0-9]+[A-Z]+[0-9]+[A-Z]?[A-Z0-9]*`)

// ExtractRollID ambil roll number pertama dari teks sel bebas.
// ok=false kalau tidak ada yang match (baris header/kosong).
func ExtractRollID(cell string) (string, bool) {
	match := rollPattern.FindString(cell)
	if match == "" {
		return "", false
	}
	return match, true
}
