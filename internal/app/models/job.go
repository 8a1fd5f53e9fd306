package models

import "time"

// JobPosting defines an open position listed by an administrator, based on
// the 'job_postings' table. Postings are never updated or deleted.
type JobPosting struct {
	ID          int64     `json:"id" db:"id"`
	CompanyName string    `json:"companyName" db:"company_name"`
	Role        string    `json:"role" db:"role"`
	Salary      string    `json:"salary" db:"salary"`
	Eligibility string    `json:"eligibility" db:"eligibility"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
