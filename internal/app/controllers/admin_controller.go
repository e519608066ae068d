package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/middleware"
)

// xlsxContentType is the media type of exported workbooks
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminController handles the admin dashboard endpoints
type AdminController struct {
	adminService     services.AdminService
	credentials      services.CredentialService
	reportService    services.ReportService
	callService      services.CallService
	admissionService services.AdmissionService
	exportService    services.ExportService
}

// NewAdminController creates a new AdminController
func NewAdminController(
	adminService services.AdminService,
	credentials services.CredentialService,
	reportService services.ReportService,
	callService services.CallService,
	admissionService services.AdmissionService,
	exportService services.ExportService,
) *AdminController {
	return &AdminController{
		adminService:     adminService,
		credentials:      credentials,
		reportService:    reportService,
		callService:      callService,
		admissionService: admissionService,
		exportService:    exportService,
	}
}

// VerifyPassword checks the shared admin secret
// @Summary Verify the admin password
// @Tags admin
// @Produce json
// @Param password query string true "Admin password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Router /admin/verify-password [post]
func (c *AdminController) VerifyPassword(ctx *gin.Context) {
	var req dto.AdminPasswordQuery
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	if err := c.adminService.VerifyPassword(req.Password); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to verify password")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password verified"))
}

// BulkDelete removes records across collections
// @Summary Bulk delete records
// @Tags admin
// @Produce json
// @Param password query string true "Admin password"
// @Param delete_type query string true "reports, calls, queries, admissions or all"
// @Param consultant_id query string false "Only this consultant's records"
// @Param start_date query string false "YYYY-MM-DD, inclusive"
// @Param end_date query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} dto.BulkDeleteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid delete type or date"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Router /admin/bulk-delete [post]
func (c *AdminController) BulkDelete(ctx *gin.Context) {
	var req dto.BulkDeleteRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	counts, err := c.adminService.BulkDelete(ctx.Request.Context(), services.BulkDeleteRequest{
		Password:     req.Password,
		Kind:         req.DeleteType,
		ConsultantID: req.ConsultantID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete records")
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	ctx.JSON(http.StatusOK, dto.BulkDeleteResponse{
		Success:       true,
		Message:       fmt.Sprintf("Deleted %d records", total),
		DeletedCounts: counts,
	})
}

// DeleteConsultantCalls removes every call log of one consultant
// @Summary Reset a consultant's call statistics
// @Tags admin
// @Produce json
// @Param consultant_id path string true "Consultant ID"
// @Param password query string true "Admin password"
// @Success 200 {object} dto.DeletedCountResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Router /admin/calls/{consultant_id} [delete]
func (c *AdminController) DeleteConsultantCalls(ctx *gin.Context) {
	var req dto.AdminPasswordQuery
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	consultantID := ctx.Param("consultant_id")
	n, err := c.adminService.DeleteConsultantCalls(ctx.Request.Context(), req.Password, consultantID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete calls")
		return
	}

	ctx.JSON(http.StatusOK, dto.DeletedCountResponse{
		Success:      true,
		Message:      fmt.Sprintf("Deleted %d calls for %s", n, consultantID),
		DeletedCount: n,
	})
}

// GetAllCalls returns overall and per-consultant call statistics
// @Summary Call statistics for all consultants
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AllCallStatsResponse
// @Router /admin/calls [get]
func (c *AdminController) GetAllCalls(ctx *gin.Context) {
	stats, err := c.callService.AllStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch call stats")
		return
	}

	ctx.JSON(http.StatusOK, dto.AllCallStatsResponse{
		Success:         true,
		OverallStats:    stats.Overall,
		ConsultantStats: stats.ByConsultant,
	})
}

// GetAllReports lists every report, also grouped by consultant
// @Summary All consultant reports
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AllReportsResponse
// @Router /admin/consultant-reports [get]
func (c *AdminController) GetAllReports(ctx *gin.Context) {
	reports, grouped, err := c.reportService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch reports")
		return
	}

	ctx.JSON(http.StatusOK, dto.AllReportsResponse{
		Success:             true,
		Reports:             reports,
		ReportsByConsultant: grouped,
		Count:               len(reports),
	})
}

// GetConsultants lists the roster
// @Summary List consultants
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ConsultantListResponse
// @Router /admin/consultants [get]
func (c *AdminController) GetConsultants(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewConsultantListResponse(c.credentials.List()))
}

// CreateConsultant adds a consultant
// @Summary Add a consultant
// @Tags admin
// @Produce json
// @Param user_id query string true "Consultant ID"
// @Param name query string true "Display name"
// @Param password query string true "Password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 409 {object} dto.ErrorResponse "Consultant ID already exists"
// @Router /admin/consultants [post]
func (c *AdminController) CreateConsultant(ctx *gin.Context) {
	var req dto.CreateConsultantRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	if err := c.credentials.Add(ctx.Request.Context(), req.UserID, req.Name, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to add consultant")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Consultant added successfully"))
}

// UpdateConsultant changes a consultant's ID and/or password. The name is fixed.
// @Summary Update a consultant's login
// @Tags admin
// @Produce json
// @Param user_id path string true "Current consultant ID"
// @Param new_user_id query string false "New consultant ID"
// @Param password query string false "New password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Consultant not found"
// @Failure 409 {object} dto.ErrorResponse "New consultant ID already exists"
// @Router /admin/consultants/{user_id} [put]
func (c *AdminController) UpdateConsultant(ctx *gin.Context) {
	var req dto.UpdateConsultantRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	err := c.credentials.Rename(ctx.Request.Context(), ctx.Param("user_id"), models.ConsultantRename{
		NewUserID:   req.NewUserID,
		NewPassword: req.Password,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update consultant")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Consultant updated successfully"))
}

// DeleteConsultant removes a consultant from the roster
// @Summary Remove a consultant
// @Tags admin
// @Produce json
// @Param user_id path string true "Consultant ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Consultant not found"
// @Router /admin/consultants/{user_id} [delete]
func (c *AdminController) DeleteConsultant(ctx *gin.Context) {
	if err := c.credentials.Remove(ctx.Request.Context(), ctx.Param("user_id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete consultant")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Consultant deleted successfully"))
}

// CreateAdmission records an admission
// @Summary Record an admission
// @Tags admin
// @Produce json
// @Param student_name query string true "Student name"
// @Param course query string true "Course"
// @Param college query string true "College"
// @Param admission_date query string true "Admission date"
// @Param consultant_id query string true "Consultant ID"
// @Param consultant_name query string false "Consultant name, resolved from the roster when omitted"
// @Param payout_amount query number false "Payout amount"
// @Param payout_status query string false "Payout status"
// @Success 200 {object} dto.AdmissionCreatedResponse
// @Router /admin/admissions [post]
func (c *AdminController) CreateAdmission(ctx *gin.Context) {
	var req dto.CreateAdmissionRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	admission, err := c.admissionService.Create(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to add admission")
		return
	}

	ctx.JSON(http.StatusOK, dto.AdmissionCreatedResponse{
		Success:     true,
		Message:     "Admission added successfully",
		AdmissionID: admission.ID,
	})
}

// GetAdmissions lists every admission
// @Summary List admissions
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdmissionListResponse
// @Router /admin/admissions [get]
func (c *AdminController) GetAdmissions(ctx *gin.Context) {
	admissions, err := c.admissionService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch admissions")
		return
	}

	ctx.JSON(http.StatusOK, dto.AdmissionListResponse{Success: true, Admissions: admissions, Count: len(admissions)})
}

// UpdateAdmission applies a partial update
// @Summary Update an admission
// @Tags admin
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.AdmissionResponse
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Router /admin/admissions/{id} [put]
func (c *AdminController) UpdateAdmission(ctx *gin.Context) {
	var req dto.UpdateAdmissionRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}

	admission, err := c.admissionService.Update(ctx.Request.Context(), ctx.Param("id"), req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update admission")
		return
	}

	ctx.JSON(http.StatusOK, dto.AdmissionResponse{
		Success:   true,
		Message:   "Admission updated successfully",
		Admission: admission,
	})
}

// DeleteAdmission removes an admission
// @Summary Delete an admission
// @Tags admin
// @Produce json
// @Param id path string true "Admission ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Admission not found"
// @Router /admin/admissions/{id} [delete]
func (c *AdminController) DeleteAdmission(ctx *gin.Context) {
	if err := c.admissionService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete admission")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Admission deleted successfully"))
}

// Export downloads a collection as an xlsx workbook
// @Summary Export records to Excel
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "queries, reports, calls or admissions"
// @Param password query string true "Admin password"
// @Success 200 {file} file
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Router /admin/export/{kind} [get]
func (c *AdminController) Export(ctx *gin.Context) {
	var req dto.AdminPasswordQuery
	if !middleware.BindQuery(ctx, &req) {
		return
	}
	if err := c.adminService.VerifyPassword(req.Password); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to export")
		return
	}

	data, filename, err := c.exportService.Export(ctx.Request.Context(), ctx.Param("kind"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to export")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, data)
}
