package models

import "time"

// StatusApplied is the initial status of every application. Later statuses
// are free text chosen by an administrator; only the latest value is kept.
const StatusApplied = "Applied"

// Application links one StudentProfile to one JobPosting, based on the
// 'applications' table. UNIQUE(student_profile_id, job_posting_id) backs the
// one-application-per-job rule at the storage layer.
type Application struct {
	ID               int64     `json:"id" db:"id"`
	StudentProfileID int64     `json:"studentProfileId" db:"student_profile_id"`
	JobPostingID     int64     `json:"jobPostingId" db:"job_posting_id"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`

	Student *StudentProfile `json:"student,omitempty"` // relation, no db tag
	Job     *JobPosting     `json:"job,omitempty"`     // relation, no db tag
}
