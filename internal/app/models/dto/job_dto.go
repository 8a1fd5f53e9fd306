package dto

import "github.com/campusworks/placementcell/internal/app/models"

// PostJobRequest represents the job posting form. Company name and role are
// the only required fields; the rest is free text.
type PostJobRequest struct {
	CompanyName string `form:"company_name" binding:"required"`
	Role        string `form:"role" binding:"required"`
	Salary      string `form:"salary"`
	Eligibility string `form:"eligibility"`
	Location    string `form:"location"`
}

// JobListResponse wraps the full posting list
type JobListResponse struct {
	Jobs []*models.JobPosting `json:"jobs"`
}
