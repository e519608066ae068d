package dto

import "github.com/eduadvisor/backoffice/internal/app/models"

// CreateInquiryRequest is the public intake form
type CreateInquiryRequest struct {
	Name               string `json:"name" binding:"required"`
	Phone              string `json:"phone" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	CurrentInstitution string `json:"current_institution" binding:"required"`
	Course             string `json:"course" binding:"required"`
	Message            string `json:"message"`
}

// ToModel maps the request onto a new inquiry
func (r CreateInquiryRequest) ToModel() *models.StudentInquiry {
	return &models.StudentInquiry{
		Name:               r.Name,
		Phone:              r.Phone,
		Email:              r.Email,
		CurrentInstitution: r.CurrentInstitution,
		Course:             r.Course,
		Message:            r.Message,
	}
}

// UpdateInquiryRequest is a partial inquiry update; absent fields are left as they are
type UpdateInquiryRequest struct {
	Name               *string `json:"name" binding:"omitempty,min=1"`
	Phone              *string `json:"phone" binding:"omitempty,min=1"`
	Email              *string `json:"email" binding:"omitempty,email"`
	CurrentInstitution *string `json:"current_institution"`
	Course             *string `json:"course"`
	Message            *string `json:"message"`
}

// ToPatch converts the request into a model patch
func (r UpdateInquiryRequest) ToPatch() models.InquiryPatch {
	return models.InquiryPatch{
		Name:               r.Name,
		Phone:              r.Phone,
		Email:              r.Email,
		CurrentInstitution: r.CurrentInstitution,
		Course:             r.Course,
		Message:            r.Message,
	}
}

// UpdateInquiryStatusRequest carries the new status as a query parameter
type UpdateInquiryStatusRequest struct {
	Status string `form:"status" binding:"required"`
}

// LoginRequest carries consultant credentials as query parameters
type LoginRequest struct {
	UserID   string `form:"user_id" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ConsultantIDQuery identifies the acting consultant
type ConsultantIDQuery struct {
	ConsultantID string `form:"consultant_id" binding:"required"`
}

// CreateReportRequest is the body of a consultant report
type CreateReportRequest struct {
	StudentName               string `json:"student_name" binding:"required"`
	ContactNumber             string `json:"contact_number" binding:"required"`
	InstitutionName           string `json:"institution_name" binding:"required"`
	CompetitiveExamPreference string `json:"competitive_exam_preference" binding:"required"`
	CareerInterest            string `json:"career_interest" binding:"required"`
	CollegeInterest           string `json:"college_interest"`
	InterestScope             string `json:"interest_scope" binding:"required"`
	OtherRemarks              string `json:"other_remarks"`
}

// LogCallRequest is a quick call log, sent as query parameters
type LogCallRequest struct {
	ConsultantID  string `form:"consultant_id" binding:"required"`
	CallType      string `form:"call_type"`
	StudentName   string `form:"student_name"`
	ContactNumber string `form:"contact_number"`
	Remarks       string `form:"remarks"`
}

// CreateConsultantRequest adds a consultant to the roster
type CreateConsultantRequest struct {
	UserID   string `form:"user_id" binding:"required"`
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// UpdateConsultantRequest changes a consultant's ID and/or password
type UpdateConsultantRequest struct {
	NewUserID string `form:"new_user_id"`
	Password  string `form:"password"`
}

// CreateAdmissionRequest records an admission, sent as query parameters
type CreateAdmissionRequest struct {
	StudentName    string  `form:"student_name" binding:"required"`
	Course         string  `form:"course" binding:"required"`
	College        string  `form:"college" binding:"required"`
	AdmissionDate  string  `form:"admission_date" binding:"required"`
	ConsultantID   string  `form:"consultant_id" binding:"required"`
	ConsultantName string  `form:"consultant_name"`
	PayoutAmount   float64 `form:"payout_amount" binding:"gte=0"`
	PayoutStatus   string  `form:"payout_status"`
}

// ToModel maps the request onto a new admission
func (r CreateAdmissionRequest) ToModel() models.Admission {
	return models.Admission{
		StudentName:    r.StudentName,
		Course:         r.Course,
		College:        r.College,
		AdmissionDate:  r.AdmissionDate,
		ConsultantID:   r.ConsultantID,
		ConsultantName: r.ConsultantName,
		PayoutAmount:   r.PayoutAmount,
		PayoutStatus:   r.PayoutStatus,
	}
}

// UpdateAdmissionRequest is a partial admission update, sent as query parameters
type UpdateAdmissionRequest struct {
	StudentName    *string  `form:"student_name"`
	Course         *string  `form:"course"`
	College        *string  `form:"college"`
	AdmissionDate  *string  `form:"admission_date"`
	ConsultantID   *string  `form:"consultant_id"`
	ConsultantName *string  `form:"consultant_name"`
	PayoutAmount   *float64 `form:"payout_amount" binding:"omitempty,gte=0"`
	PayoutStatus   *string  `form:"payout_status"`
}

// ToPatch converts the request into a model patch
func (r UpdateAdmissionRequest) ToPatch() models.AdmissionPatch {
	return models.AdmissionPatch{
		StudentName:    r.StudentName,
		Course:         r.Course,
		College:        r.College,
		AdmissionDate:  r.AdmissionDate,
		ConsultantID:   r.ConsultantID,
		ConsultantName: r.ConsultantName,
		PayoutAmount:   r.PayoutAmount,
		PayoutStatus:   r.PayoutStatus,
	}
}

// AdminPasswordQuery carries the shared admin secret
type AdminPasswordQuery struct {
	Password string `form:"password" binding:"required"`
}

// BulkDeleteRequest selects the records removed by a bulk delete
type BulkDeleteRequest struct {
	Password     string `form:"password" binding:"required"`
	DeleteType   string `form:"delete_type" binding:"required"`
	ConsultantID string `form:"consultant_id"`
	StartDate    string `form:"start_date" binding:"omitempty,isodate"`
	EndDate      string `form:"end_date" binding:"omitempty,isodate"`
}

// ChatRequest is one advisory chat message
type ChatRequest struct {
	Message      string `json:"message" binding:"required"`
	SessionID    string `json:"session_id" binding:"required"`
	ConsultantID string `json:"consultant_id"`
}

// AnalyzeStudentRequest is a student profile, sent as query parameters
type AnalyzeStudentRequest struct {
	Subjects        string   `form:"subjects" binding:"required"`
	MarksPercentage *float64 `form:"marks_percentage" binding:"required,gte=0,lte=100"`
	EntranceExams   *string  `form:"entrance_exams"`
	Interests       *string  `form:"interests"`
	Category        string   `form:"category"`
}
