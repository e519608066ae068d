package models

import "time"

// Payout statuses seen in practice. The field is open; other values are stored as given.
const (
	PayoutNotCredited    = "PAYOUT NOT CREDITED YET"
	PayoutReflected      = "PAYOUT REFLECTED"
	PayoutCommissionPaid = "CONSULTANT'S COMMISION GIVEN"
)

// Admission is a completed admission and its commission settlement state.
type Admission struct {
	ID             string    `json:"id"`
	StudentName    string    `json:"student_name"`
	Course         string    `json:"course"`
	College        string    `json:"college"`
	AdmissionDate  string    `json:"admission_date"`
	ConsultantID   string    `json:"consultant_id"`
	ConsultantName string    `json:"consultant_name"`
	PayoutAmount   float64   `json:"payout_amount"`
	PayoutStatus   string    `json:"payout_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AdmissionPatch holds the fields to overwrite on an admission. Nil fields are left untouched.
type AdmissionPatch struct {
	StudentName    *string
	Course         *string
	College        *string
	AdmissionDate  *string
	ConsultantID   *string
	ConsultantName *string
	PayoutAmount   *float64
	PayoutStatus   *string
}

// IsEmpty reports whether no field is set.
func (p AdmissionPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns maps the set fields to their column names.
func (p AdmissionPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	setString(cols, "student_name", p.StudentName)
	setString(cols, "course", p.Course)
	setString(cols, "college", p.College)
	setString(cols, "admission_date", p.AdmissionDate)
	setString(cols, "consultant_id", p.ConsultantID)
	setString(cols, "consultant_name", p.ConsultantName)
	if p.PayoutAmount != nil {
		cols["payout_amount"] = *p.PayoutAmount
	}
	setString(cols, "payout_status", p.PayoutStatus)
	return cols
}

// ApplyTo copies the set fields onto a.
func (p AdmissionPatch) ApplyTo(a *Admission) {
	applyString(&a.StudentName, p.StudentName)
	applyString(&a.Course, p.Course)
	applyString(&a.College, p.College)
	applyString(&a.AdmissionDate, p.AdmissionDate)
	applyString(&a.ConsultantID, p.ConsultantID)
	applyString(&a.ConsultantName, p.ConsultantName)
	if p.PayoutAmount != nil {
		a.PayoutAmount = *p.PayoutAmount
	}
	applyString(&a.PayoutStatus, p.PayoutStatus)
}
