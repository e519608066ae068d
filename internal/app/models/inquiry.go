package models

import "time"

// InquiryStatus is the lifecycle state of a student inquiry
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusContacted InquiryStatus = "contacted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// InquiryStatuses lists every accepted inquiry status.
var InquiryStatuses = []InquiryStatus{InquiryStatusNew, InquiryStatusContacted, InquiryStatusClosed}

// ParseInquiryStatus validates s against the closed status set.
func ParseInquiryStatus(s string) (InquiryStatus, error) {
	return parseEnum("status", s, InquiryStatuses)
}

// StudentInquiry is a query submitted through the public intake form.
type StudentInquiry struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Phone              string        `json:"phone"`
	Email              string        `json:"email"`
	CurrentInstitution string        `json:"current_institution"`
	Course             string        `json:"course"`
	Message            string        `json:"message"`
	Status             InquiryStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// InquiryPatch holds the fields to overwrite on an inquiry. Nil fields are left untouched.
type InquiryPatch struct {
	Name               *string
	Phone              *string
	Email              *string
	CurrentInstitution *string
	Course             *string
	Message            *string
	Status             *InquiryStatus
}

// Columns maps the set fields to their column names.
func (p InquiryPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "name", p.Name)
	setString(cols, "phone", p.Phone)
	setString(cols, "email", p.Email)
	setString(cols, "current_institution", p.CurrentInstitution)
	setString(cols, "course", p.Course)
	setString(cols, "message", p.Message)
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}

// ApplyTo copies the set fields onto q.
func (p InquiryPatch) ApplyTo(q *StudentInquiry) {
	applyString(&q.Name, p.Name)
	applyString(&q.Phone, p.Phone)
	applyString(&q.Email, p.Email)
	applyString(&q.CurrentInstitution, p.CurrentInstitution)
	applyString(&q.Course, p.Course)
	applyString(&q.Message, p.Message)
	if p.Status != nil {
		q.Status = *p.Status
	}
}

func setString(cols map[string]interface{}, name string, v *string) {
	if v != nil {
		cols[name] = *v
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
