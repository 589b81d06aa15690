package parse

import (
	"strconv"
	"strings"
)

// RomanToNum konversi token tahun/semester: "I".."IV" (exact, case-insensitive)
// atau angka desimal. ok=false artinya token tidak dikenal dan barisnya
// harus di-skip oleh pemanggil — bukan nol, bukan error.
func RomanToNum(token string) (int, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return 0, false
	}

	switch token {
	case "I":
		return 1, true
	case "II":
		return 2, true
	case "III":
		return 3, true
	case "IV":
		return 4, true
	}

	n, err := strconv.Atoi(token)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}
