package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/controllers"
	"github.com/eduadvisor/backoffice/internal/pkg/metrics"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	inquiryController *controllers.InquiryController,
	consultantController *controllers.ConsultantController,
	adminController *controllers.AdminController,
	advisorController *controllers.AdvisorController,
	catalogController *controllers.CatalogController,
	healthController *controllers.HealthController,
) {
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	api.GET("/health", healthController.Health)

	// --- Public inquiry intake ---
	queries := api.Group("/queries")
	{
		queries.POST("", inquiryController.CreateInquiry)
		queries.GET("", inquiryController.GetAllInquiries)
		queries.GET("/:id", inquiryController.GetInquiry)
		queries.PATCH("/:id", inquiryController.UpdateInquiry)
		queries.PATCH("/:id/status", inquiryController.UpdateInquiryStatus)
		queries.DELETE("/:id", inquiryController.DeleteInquiry)
	}

	// --- Catalog (read-only) ---
	api.GET("/colleges", catalogController.GetAllColleges)
	api.GET("/colleges/:id", catalogController.GetCollege)
	api.GET("/courses", catalogController.GetAllCourses)
	api.GET("/courses/:id", catalogController.GetCourse)

	// --- Consultant portal ---
	consultant := api.Group("/consultant")
	{
		consultant.POST("/login", consultantController.Login)

		consultant.POST("/reports", consultantController.CreateReport)
		consultant.GET("/reports/:consultant_id", consultantController.GetReports)
		consultant.DELETE("/reports/:id", consultantController.DeleteReport)

		consultant.POST("/calls", consultantController.LogCall)
		consultant.GET("/calls/:consultant_id", consultantController.GetCalls)

		consultant.GET("/admissions/:consultant_id", consultantController.GetAdmissions)
	}

	// --- Admin dashboard ---
	// Destructive bulk operations check the admin password themselves.
	admin := api.Group("/admin")
	{
		admin.POST("/verify-password", adminController.VerifyPassword)
		admin.POST("/bulk-delete", adminController.BulkDelete)

		admin.GET("/consultant-reports", adminController.GetAllReports)

		admin.GET("/calls", adminController.GetAllCalls)
		admin.DELETE("/calls/:consultant_id", adminController.DeleteConsultantCalls)

		admin.GET("/consultants", adminController.GetConsultants)
		admin.POST("/consultants", adminController.CreateConsultant)
		admin.PUT("/consultants/:user_id", adminController.UpdateConsultant)
		admin.DELETE("/consultants/:user_id", adminController.DeleteConsultant)

		admin.POST("/admissions", adminController.CreateAdmission)
		admin.GET("/admissions", adminController.GetAdmissions)
		admin.PUT("/admissions/:id", adminController.UpdateAdmission)
		admin.DELETE("/admissions/:id", adminController.DeleteAdmission)

		admin.GET("/export/:kind", adminController.Export)
	}

	// --- Advisor chat ---
	buddy := api.Group("/edu-buddy")
	{
		buddy.POST("/chat", advisorController.Chat)
		buddy.GET("/popular-queries", advisorController.GetPopularQueries)
		buddy.POST("/analyze-student", advisorController.AnalyzeStudent)
	}
}
