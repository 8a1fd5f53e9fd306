package dto

// UpdateStatusRequest represents the track-applications form. Status is
// free text; no transition set is enforced.
type UpdateStatusRequest struct {
	ApplicationID int64  `form:"application_id" binding:"required"`
	Status        string `form:"status" binding:"required"`
}

// ApplicationView is the joined display row for application listings: the
// application plus the student and posting it connects.
type ApplicationView struct {
	ID           int64  `json:"id"`
	Status       string `json:"status"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	RollNo       string `json:"rollNo"`
	CompanyName  string `json:"companyName"`
	JobRole      string `json:"jobRole"`
}

// StatusUpdateResult reports both halves of a status change: the committed
// transition and the best-effort notification that followed it.
type StatusUpdateResult struct {
	ApplicationID int64  `json:"applicationId"`
	Status        string `json:"status"`
	EmailSent     bool   `json:"emailSent"`
	EmailError    string `json:"emailError,omitempty"`
}
