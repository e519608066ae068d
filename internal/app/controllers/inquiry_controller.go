package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/middleware"
)

// InquiryController handles the public student inquiry endpoints
type InquiryController struct {
	inquiryService services.InquiryService
}

// NewInquiryController creates a new InquiryController
func NewInquiryController(inquiryService services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: inquiryService}
}

// CreateInquiry handles inquiry submission
// @Summary Submit a student inquiry
// @Tags queries
// @Accept json
// @Produce json
// @Param request body dto.CreateInquiryRequest true "Inquiry"
// @Success 200 {object} dto.InquiryCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /queries [post]
func (c *InquiryController) CreateInquiry(ctx *gin.Context) {
	var req dto.CreateInquiryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inquiry, err := c.inquiryService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to submit query")
		return
	}

	ctx.JSON(http.StatusOK, dto.InquiryCreatedResponse{
		Success: true,
		Message: "Query submitted successfully! We'll contact you soon.",
		QueryID: inquiry.ID,
	})
}

// GetAllInquiries lists inquiries, newest first
// @Summary List student inquiries
// @Tags queries
// @Produce json
// @Success 200 {object} dto.InquiryListResponse
// @Router /queries [get]
func (c *InquiryController) GetAllInquiries(ctx *gin.Context) {
	inquiries, err := c.inquiryService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch queries")
		return
	}

	ctx.JSON(http.StatusOK, dto.InquiryListResponse{
		Success: true,
		Queries: inquiries,
		Count:   len(inquiries),
	})
}

// GetInquiry returns one inquiry
// @Summary Get a student inquiry
// @Tags queries
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} dto.InquiryResponse
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /queries/{id} [get]
func (c *InquiryController) GetInquiry(ctx *gin.Context) {
	inquiry, err := c.inquiryService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch query")
		return
	}

	ctx.JSON(http.StatusOK, dto.InquiryResponse{Success: true, Query: inquiry})
}

// UpdateInquiry applies a partial update
// @Summary Update fields of a student inquiry
// @Tags queries
// @Accept json
// @Produce json
// @Param id path string true "Query ID"
// @Param request body dto.UpdateInquiryRequest true "Fields to change"
// @Success 200 {object} dto.InquiryResponse
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /queries/{id} [patch]
func (c *InquiryController) UpdateInquiry(ctx *gin.Context) {
	var req dto.UpdateInquiryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	inquiry, err := c.inquiryService.Update(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update query")
		return
	}

	ctx.JSON(http.StatusOK, dto.InquiryResponse{Success: true, Query: inquiry})
}

// UpdateInquiryStatus moves an inquiry to a new status
// @Summary Change the status of a student inquiry
// @Tags queries
// @Produce json
// @Param id path string true "Query ID"
// @Param status query string true "new, contacted or closed"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /queries/{id}/status [patch]
func (c *InquiryController) UpdateInquiryStatus(ctx *gin.Context) {
	var req dto.UpdateInquiryStatusRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	if err := c.inquiryService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update status")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Status updated"))
}

// DeleteInquiry removes an inquiry
// @Summary Delete a student inquiry
// @Tags queries
// @Produce json
// @Param id path string true "Query ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Query not found"
// @Router /queries/{id} [delete]
func (c *InquiryController) DeleteInquiry(ctx *gin.Context) {
	if err := c.inquiryService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete query")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Query deleted"))
}
