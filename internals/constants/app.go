package constants

// Satu departemen untuk seluruh aplikasi (import tanpa kolom departemen
// memakai nilai ini).
const DefaultDepartment = "AIML"

// Password awal untuk student hasil import roster; di-hash bcrypt saat simpan.
const DefaultStudentPassword = "1234"

// Role yang dikenal sistem.
const (
	RoleAdmin   = "admin"
	RoleHod     = "hod"
	RoleStudent = "student"
)

// Tipe subject / question set.
const (
	SubjectTypeTheory = "theory"
	SubjectTypeLab    = "lab"
)
