package service

import (
	"regexp"
	"strings"
)

// Strategy: hasil klasifikasi bentuk file upload.
type Strategy int

const (
	StrategyAllocation Strategy = iota // file alokasi subject-faculty
	StrategyRoster                     // file absensi/roster mahasiswa
	StrategyTemplate                   // template standar (sheet Faculty/Students/Subjects)
)

func (s Strategy) String() string {
	switch s {
	case StrategyAllocation:
		return "allocation"
	case StrategyRoster:
		return "roster"
	default:
		return "template"
	}
}

// File roster: nama diawali romawi tahun lalu strip, mis. "III-B.xls".
var rosterFilePattern = regexp.MustCompile(`^(II|III|IV)-.*\.XLS`)

// Classify pilih strategi ingestion dari nama file. Aturan tertutup dan
// berurutan — first match wins:
//  1. mengandung "alloc"            → allocation
//  2. ^(II|III|IV)-...\.xls  atau mengandung "attendance" → roster
//  3. sisanya                        → template standar
func Classify(filename string) Strategy {
	upper := strings.ToUpper(filename)

	if strings.Contains(upper, "ALLOC") {
		return StrategyAllocation
	}
	if rosterFilePattern.MatchString(upper) || strings.Contains(upper, "ATTENDANCE") {
		return StrategyRoster
	}
	return StrategyTemplate
}
