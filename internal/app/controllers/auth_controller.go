// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/services"
	"github.com/campusworks/placementcell/internal/middleware"
)

// AuthController handles registration, login, logout and account deletion
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterStudentForm handles GET /student_register by describing the
// fields the registration form submits.
func (c *AuthController) RegisterStudentForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{
		"fields": []string{"username", "email", "password", "roll_no", "department", "skills", "resume"},
	}))
}

// RegisterStudent handles POST /student_register. The form is multipart to
// carry the optional resume file.
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid student registration form")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Please fill required fields")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Resume is optional; a missing file part is not an error
	resume, err := ctx.FormFile("resume")
	if err != nil {
		resume = nil
	}

	session, err := c.authService.RegisterStudent(ctx.Request.Context(), &req, resume)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Registration successful! Welcome.", session).
		WithRedirect("/student_dashboard"))
}

// RegisterAdminForm handles GET /admin_register
func (c *AuthController) RegisterAdminForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{
		"fields": []string{"username", "email", "password", "department"},
	}))
}

// RegisterAdmin handles POST /admin_register
func (c *AuthController) RegisterAdmin(ctx *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid admin registration form")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Please fill required fields")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.authService.RegisterAdmin(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Admin registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Placement cell registered and logged in!", session).
		WithRedirect("/admin_dashboard"))
}

// LoginForm handles GET /login
func (c *AuthController) LoginForm(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{
		"fields": []string{"email", "password", "role"},
		"roles":  []string{"student", "admin"},
	}))
}

// Login handles POST /login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Email, password and role are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	redirect := "/student_dashboard"
	if session.Role == "ADMIN" {
		redirect = "/admin_dashboard"
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful!", session).WithRedirect(redirect))
}

// Logout handles GET /logout. Sessions live in the signed token the client
// holds, so logout is a client-side discard; the endpoint confirms it.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logged out successfully!", nil).WithRedirect("/"))
}

// DeleteAccount handles POST /delete_account for the authenticated student
func (c *AuthController) DeleteAccount(ctx *gin.Context) {
	accountID, ok := middleware.AccountID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Please log in first")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail).WithRedirect("/login"))
		return
	}

	if err := c.authService.DeleteStudentAccount(ctx.Request.Context(), accountID); err != nil {
		c.logger.Error().Err(err).Int64("accountID", accountID).Msg("Account deletion failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Your account and data have been permanently deleted.", nil).
		WithRedirect("/"))
}
