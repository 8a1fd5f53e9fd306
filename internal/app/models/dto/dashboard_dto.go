package dto

import "github.com/campusworks/placementcell/internal/app/models"

// StudentDashboard is everything the student landing view shows: the
// student's own profile, every open posting, and the student's applications.
type StudentDashboard struct {
	Profile      *models.StudentProfile `json:"profile"`
	Jobs         []*models.JobPosting   `json:"jobs"`
	Applications []*ApplicationView     `json:"applications"`
}

// AdminDashboard summarizes the placement-cell overview counts.
type AdminDashboard struct {
	JobPostings  int64 `json:"jobPostings"`
	Students     int64 `json:"students"`
	Applications int64 `json:"applications"`
}

// StudentListResponse wraps the admin student listing
type StudentListResponse struct {
	Students []*models.StudentProfile `json:"students"`
}
