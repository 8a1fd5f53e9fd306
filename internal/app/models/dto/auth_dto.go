package dto

// RegisterStudentRequest represents the student registration form. The
// resume upload travels alongside as a multipart file part named "resume".
type RegisterStudentRequest struct {
	Username   string `form:"username" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Password   string `form:"password" binding:"required"`
	RollNo     string `form:"roll_no" binding:"required"`
	Department string `form:"department" binding:"required"`
	Skills     string `form:"skills"`
}

// RegisterAdminRequest represents the placement-cell registration form
type RegisterAdminRequest struct {
	Username   string `form:"username" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Password   string `form:"password" binding:"required"`
	Department string `form:"department" binding:"required"`
}

// LoginRequest represents the login form. Role selects the identity scope
// the credentials are checked against.
type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
	Role     string `form:"role" binding:"required,oneof=student admin"`
}

// SessionResponse carries the signed session token returned after a
// successful registration or login.
type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn"`
	AccountID int64  `json:"accountId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}
