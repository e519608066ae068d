package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/middleware"
	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

// ConsultantController handles the consultant-facing endpoints: login,
// reports, call logs and the consultant's own admissions.
type ConsultantController struct {
	credentials      services.CredentialService
	reportService    services.ReportService
	callService      services.CallService
	admissionService services.AdmissionService
}

// NewConsultantController creates a new ConsultantController
func NewConsultantController(
	credentials services.CredentialService,
	reportService services.ReportService,
	callService services.CallService,
	admissionService services.AdmissionService,
) *ConsultantController {
	return &ConsultantController{
		credentials:      credentials,
		reportService:    reportService,
		callService:      callService,
		admissionService: admissionService,
	}
}

// Login checks consultant credentials
// @Summary Consultant login
// @Tags consultant
// @Produce json
// @Param user_id query string true "Consultant ID"
// @Param password query string true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /consultant/login [post]
func (c *ConsultantController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	name, ok := c.credentials.Verify(req.UserID, req.Password)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.NewUnauthorizedError("Invalid credentials"), "Login failed")
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success:        true,
		ConsultantID:   req.UserID,
		ConsultantName: name,
	})
}

// CreateReport stores a consultant report and logs a successful call
// @Summary Submit a consultant report
// @Tags consultant
// @Accept json
// @Produce json
// @Param consultant_id query string true "Consultant ID"
// @Param request body dto.CreateReportRequest true "Report"
// @Success 200 {object} dto.ReportCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid interest scope"
// @Failure 401 {object} dto.ErrorResponse "Invalid consultant ID"
// @Router /consultant/reports [post]
func (c *ConsultantController) CreateReport(ctx *gin.Context) {
	var who dto.ConsultantIDQuery
	if !middleware.BindQuery(ctx, &who) {
		return
	}
	var req dto.CreateReportRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	report, err := c.reportService.Create(ctx.Request.Context(), who.ConsultantID, services.ReportInput{
		StudentName:               req.StudentName,
		ContactNumber:             req.ContactNumber,
		InstitutionName:           req.InstitutionName,
		CompetitiveExamPreference: req.CompetitiveExamPreference,
		CareerInterest:            req.CareerInterest,
		CollegeInterest:           req.CollegeInterest,
		InterestScope:             req.InterestScope,
		OtherRemarks:              req.OtherRemarks,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to submit report")
		return
	}

	ctx.JSON(http.StatusOK, dto.ReportCreatedResponse{
		Success:  true,
		Message:  "Report submitted successfully",
		ReportID: report.ID,
	})
}

// GetReports lists one consultant's reports
// @Summary List a consultant's reports
// @Tags consultant
// @Produce json
// @Param consultant_id path string true "Consultant ID"
// @Success 200 {object} dto.ReportListResponse
// @Router /consultant/reports/{consultant_id} [get]
func (c *ConsultantController) GetReports(ctx *gin.Context) {
	reports, err := c.reportService.ListForConsultant(ctx.Request.Context(), ctx.Param("consultant_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch reports")
		return
	}

	ctx.JSON(http.StatusOK, dto.ReportListResponse{Success: true, Reports: reports, Count: len(reports)})
}

// DeleteReport removes a report
// @Summary Delete a consultant report
// @Tags consultant
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /consultant/reports/{id} [delete]
func (c *ConsultantController) DeleteReport(ctx *gin.Context) {
	if err := c.reportService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete report")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Report deleted"))
}

// LogCall records a quick call log
// @Summary Log a call
// @Tags consultant
// @Produce json
// @Param consultant_id query string true "Consultant ID"
// @Param call_type query string false "attempted (default), successful or failed"
// @Param student_name query string false "Student name"
// @Param contact_number query string false "Contact number"
// @Param remarks query string false "Remarks"
// @Success 200 {object} dto.CallLoggedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid call type"
// @Failure 401 {object} dto.ErrorResponse "Invalid consultant ID"
// @Router /consultant/calls [post]
func (c *ConsultantController) LogCall(ctx *gin.Context) {
	var req dto.LogCallRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	call, err := c.callService.Log(ctx.Request.Context(), services.CallInput{
		ConsultantID:  req.ConsultantID,
		CallType:      req.CallType,
		StudentName:   req.StudentName,
		ContactNumber: req.ContactNumber,
		Remarks:       req.Remarks,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to log call")
		return
	}

	ctx.JSON(http.StatusOK, dto.CallLoggedResponse{
		Success: true,
		Message: "Call logged successfully",
		CallID:  call.ID,
	})
}

// GetCalls returns a consultant's calls and call statistics
// @Summary Call statistics for a consultant
// @Tags consultant
// @Produce json
// @Param consultant_id path string true "Consultant ID"
// @Success 200 {object} dto.ConsultantCallsResponse
// @Router /consultant/calls/{consultant_id} [get]
func (c *ConsultantController) GetCalls(ctx *gin.Context) {
	result, err := c.callService.ForConsultant(ctx.Request.Context(), ctx.Param("consultant_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch call stats")
		return
	}

	ctx.JSON(http.StatusOK, dto.ConsultantCallsResponse{
		Success: true,
		Stats:   result.Stats,
		Calls:   result.Calls,
	})
}

// GetAdmissions lists admissions credited to a consultant
// @Summary A consultant's admissions
// @Tags consultant
// @Produce json
// @Param consultant_id path string true "Consultant ID"
// @Success 200 {object} dto.AdmissionListResponse
// @Router /consultant/admissions/{consultant_id} [get]
func (c *ConsultantController) GetAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.ListForConsultant(ctx.Request.Context(), ctx.Param("consultant_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch admissions")
		return
	}

	ctx.JSON(http.StatusOK, dto.AdmissionListResponse{Success: true, Admissions: admissions, Count: len(admissions)})
}
