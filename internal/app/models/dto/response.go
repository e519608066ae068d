package dto

import (
	"github.com/eduadvisor/backoffice/internal/app/models"
	"github.com/eduadvisor/backoffice/internal/knowledge"
)

// SuccessResponse represents a plain acknowledgement
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewSuccessResponse creates an acknowledgement with a message
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

// InquiryCreatedResponse is returned after an inquiry is submitted
type InquiryCreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	QueryID string `json:"query_id"`
}

// InquiryListResponse lists inquiries, newest first
type InquiryListResponse struct {
	Success bool                    `json:"success"`
	Queries []models.StudentInquiry `json:"queries"`
	Count   int                     `json:"count"`
}

// InquiryResponse wraps a single inquiry
type InquiryResponse struct {
	Success bool                   `json:"success"`
	Query   *models.StudentInquiry `json:"query"`
}

// LoginResponse confirms a consultant login
type LoginResponse struct {
	Success        bool   `json:"success"`
	ConsultantID   string `json:"consultant_id"`
	ConsultantName string `json:"consultant_name"`
}

// ReportCreatedResponse is returned after a report is stored
type ReportCreatedResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ReportID string `json:"report_id"`
}

// ReportListResponse lists one consultant's reports
type ReportListResponse struct {
	Success bool                      `json:"success"`
	Reports []models.ConsultantReport `json:"reports"`
	Count   int                       `json:"count"`
}

// AllReportsResponse lists every report, also grouped by consultant name
type AllReportsResponse struct {
	Success             bool                                 `json:"success"`
	Reports             []models.ConsultantReport            `json:"reports"`
	ReportsByConsultant map[string][]models.ConsultantReport `json:"reports_by_consultant"`
	Count               int                                  `json:"count"`
}

// CallLoggedResponse is returned after a quick call log
type CallLoggedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CallID  string `json:"call_id"`
}

// ConsultantCallsResponse carries one consultant's calls and their counts
type ConsultantCallsResponse struct {
	Success bool             `json:"success"`
	Stats   models.CallStats `json:"stats"`
	Calls   []models.CallLog `json:"calls"`
}

// AllCallStatsResponse is the admin view of call activity
type AllCallStatsResponse struct {
	Success         bool                                   `json:"success"`
	OverallStats    models.CallStats                       `json:"overall_stats"`
	ConsultantStats map[string]*models.ConsultantCallStats `json:"consultant_stats"`
}

// ConsultantView is a roster entry as shown to the admin dashboard
type ConsultantView struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ConsultantListResponse lists the roster
type ConsultantListResponse struct {
	Success     bool             `json:"success"`
	Consultants []ConsultantView `json:"consultants"`
}

// NewConsultantListResponse builds the roster listing
func NewConsultantListResponse(roster []models.Consultant) ConsultantListResponse {
	views := make([]ConsultantView, 0, len(roster))
	for _, c := range roster {
		views = append(views, ConsultantView{UserID: c.UserID, Name: c.Name, Password: c.Password})
	}
	return ConsultantListResponse{Success: true, Consultants: views}
}

// AdmissionCreatedResponse is returned after an admission is recorded
type AdmissionCreatedResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AdmissionID string `json:"admission_id"`
}

// AdmissionListResponse lists admissions
type AdmissionListResponse struct {
	Success    bool               `json:"success"`
	Admissions []models.Admission `json:"admissions"`
	Count      int                `json:"count"`
}

// AdmissionResponse wraps a single admission
type AdmissionResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Admission *models.Admission `json:"admission"`
}

// BulkDeleteResponse reports how many records each collection lost
type BulkDeleteResponse struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	DeletedCounts map[string]int64 `json:"deleted_counts"`
}

// DeletedCountResponse reports a single deletion count
type DeletedCountResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// ChatResponse carries the advisor's reply
type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// PopularQueriesResponse lists canned advisor questions
type PopularQueriesResponse struct {
	Success bool                     `json:"success"`
	Queries []knowledge.PopularQuery `json:"queries"`
}

// StudentProfileView echoes the analysed profile back to the client
type StudentProfileView struct {
	Subjects  string  `json:"subjects"`
	Marks     float64 `json:"marks"`
	Exams     *string `json:"exams"`
	Interests *string `json:"interests"`
	Category  string  `json:"category"`
}

// AnalysisResponse carries a profile analysis
type AnalysisResponse struct {
	Success        bool               `json:"success"`
	Analysis       string             `json:"analysis"`
	StudentProfile StudentProfileView `json:"student_profile"`
}

// CollegeListResponse lists the college catalog
type CollegeListResponse struct {
	Success  bool             `json:"success"`
	Colleges []models.College `json:"colleges"`
	Count    int              `json:"count"`
}

// CollegeResponse wraps a single college
type CollegeResponse struct {
	Success bool            `json:"success"`
	College *models.College `json:"college"`
}

// CourseListResponse lists the course catalog
type CourseListResponse struct {
	Success bool            `json:"success"`
	Courses []models.Course `json:"courses"`
	Count   int             `json:"count"`
}

// CourseResponse wraps a single course
type CourseResponse struct {
	Success bool           `json:"success"`
	Course  *models.Course `json:"course"`
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
