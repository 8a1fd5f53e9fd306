package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/services"
	"github.com/campusworks/placementcell/internal/middleware"
)

// ContactController handles the public contact form
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Form handles GET /contact
func (c *ContactController) Form(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("", gin.H{
		"fields": []string{"name", "email", "message"},
	}))
}

// Submit handles POST /contact
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "All fields are required!")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.contactService.Submit(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Your message has been sent successfully!", nil).
		WithRedirect("/contact"))
}
