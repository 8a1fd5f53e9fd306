package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/placementcell/internal/app/models/dto"
)

// PagesController serves the public informational endpoints.
type PagesController struct{}

// NewPagesController creates a new PagesController
func NewPagesController() *PagesController {
	return &PagesController{}
}

// Home handles GET /
func (c *PagesController) Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Welcome to the Placement Cell", gin.H{
		"pages": []string{"/about", "/terms", "/contact", "/login", "/student_register", "/admin_register"},
	}))
}

// About handles GET /about
func (c *PagesController) About(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{
		"about": "The placement cell connects students with recruiting companies and tracks every application from submission to offer.",
	}))
}

// Terms handles GET /terms
func (c *PagesController) Terms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{
		"terms": "Accounts are personal. Uploaded resumes are shared with the placement cell and recruiting companies only.",
	}))
}
