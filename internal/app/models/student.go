package models

// StudentProfile defines the student model based on the 'student_profiles'
// table. Exactly one profile exists per STUDENT account.
type StudentProfile struct {
	ID         int64   `json:"id" db:"id"`
	AccountID  int64   `json:"accountId" db:"account_id"`
	RollNo     string  `json:"rollNo" db:"roll_no"`
	Department string  `json:"department" db:"department"`
	Skills     string  `json:"skills" db:"skills"`
	ResumeFile *string `json:"resumeFile,omitempty" db:"resume_file"` // stored filename, nullable

	Account *Account `json:"account,omitempty"` // relation, no db tag
}
