package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduadvisor/backoffice/internal/app/models/dto"
	"github.com/eduadvisor/backoffice/internal/app/services"
	"github.com/eduadvisor/backoffice/internal/middleware"
)

// CatalogController serves the read-only college and course catalog
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetAllColleges lists colleges
// @Summary List colleges
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CollegeListResponse
// @Router /colleges [get]
func (c *CatalogController) GetAllColleges(ctx *gin.Context) {
	colleges, err := c.catalogService.ListColleges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch colleges")
		return
	}
	ctx.JSON(http.StatusOK, dto.CollegeListResponse{Success: true, Colleges: colleges, Count: len(colleges)})
}

// GetCollege returns one college by ID
// @Summary Get a college
// @Tags catalog
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} dto.CollegeResponse
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Router /colleges/{id} [get]
func (c *CatalogController) GetCollege(ctx *gin.Context) {
	college, err := c.catalogService.GetCollege(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch college")
		return
	}
	ctx.JSON(http.StatusOK, dto.CollegeResponse{Success: true, College: college})
}

// GetAllCourses lists courses
// @Summary List courses
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.CourseListResponse
// @Router /courses [get]
func (c *CatalogController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch courses")
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseListResponse{Success: true, Courses: courses, Count: len(courses)})
}

// GetCourse returns one course by ID or by name, ignoring case
// @Summary Get a course
// @Tags catalog
// @Produce json
// @Param id path string true "Course ID or name"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	course, err := c.catalogService.FindCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch course")
		return
	}
	ctx.JSON(http.StatusOK, dto.CourseResponse{Success: true, Course: course})
}
