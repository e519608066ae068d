package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/knowledge"
	"github.com/eduadvisor/backoffice/internal/middleware"
)

// AdvisorController handles the advisory chat endpoints
type AdvisorController struct {
	advisorService services.AdvisorService
}

// NewAdvisorController creates a new AdvisorController
func NewAdvisorController(advisorService services.AdvisorService) *AdvisorController {
	return &AdvisorController{advisorService: advisorService}
}

// Chat relays a message to the completion service
// @Summary Ask the advisor
// @Tags edu-buddy
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to get response"
// @Router /edu-buddy/chat [post]
func (c *AdvisorController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	reply, err := c.advisorService.Chat(ctx.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to get response")
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Success: true, Response: reply, SessionID: req.SessionID})
}

// GetPopularQueries returns the canned question list
// @Summary Popular advisor questions
// @Tags edu-buddy
// @Produce json
// @Success 200 {object} dto.PopularQueriesResponse
// @Router /edu-buddy/popular-queries [get]
func (c *AdvisorController) GetPopularQueries(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.PopularQueriesResponse{Success: true, Queries: c.advisorService.PopularQueries()})
}

// AnalyzeStudent asks the completion service for course recommendations
// @Summary Analyze a student profile
// @Tags edu-buddy
// @Produce json
// @Param subjects query string true "12th subjects"
// @Param marks_percentage query number true "Marks percentage"
// @Param entrance_exams query string false "Entrance exams planned"
// @Param interests query string false "Career interests"
// @Param category query string false "Reservation category" default(General)
// @Success 200 {object} dto.AnalysisResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to analyze"
// @Router /edu-buddy/analyze-student [post]
func (c *AdvisorController) AnalyzeStudent(ctx *gin.Context) {
	var req dto.AnalyzeStudentRequest
	if !middleware.BindQuery(ctx, &req) {
		return
	}
	if req.Category == "" {
		req.Category = "General"
	}

	profile := knowledge.StudentProfile{
		Subjects:      req.Subjects,
		Marks:         *req.MarksPercentage,
		EntranceExams: req.EntranceExams,
		Interests:     req.Interests,
		Category:      req.Category,
	}
	analysis, err := c.advisorService.Analyze(ctx.Request.Context(), profile)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to analyze")
		return
	}

	ctx.JSON(http.StatusOK, dto.AnalysisResponse{
		Success:  true,
		Analysis: analysis,
		StudentProfile: dto.StudentProfileView{
			Subjects:  profile.Subjects,
			Marks:     profile.Marks,
			Exams:     profile.EntranceExams,
			Interests: profile.Interests,
			Category:  profile.Category,
		},
	})
}
