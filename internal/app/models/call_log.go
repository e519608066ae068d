package models

import (
	"fmt"
	"time"
)

// CallType is the outcome of an outreach call.
type CallType string

const (
	CallTypeAttempted  CallType = "attempted"
	CallTypeSuccessful CallType = "successful"
	CallTypeFailed     CallType = "failed"
)

// CallTypes lists every accepted call type.
var CallTypes = []CallType{CallTypeAttempted, CallTypeSuccessful, CallTypeFailed}

// ParseCallType validates s against the closed call type set. Empty means attempted.
func ParseCallType(s string) (CallType, error) {
	if s == "" {
		return CallTypeAttempted, nil
	}
	return parseEnum("call_type", s, CallTypes)
}

// CallLog is a write-once outreach event.
type CallLog struct {
	ID             string    `json:"id"`
	ConsultantID   string    `json:"consultant_id"`
	ConsultantName string    `json:"consultant_name"`
	CallType       CallType  `json:"call_type"`
	StudentName    string    `json:"student_name"`
	ContactNumber  string    `json:"contact_number"`
	Remarks        string    `json:"remarks"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCallLogID derives a call log id from the consultant and the creation time.
func NewCallLogID(consultantID string, at time.Time) string {
	return fmt.Sprintf("%s_%d", consultantID, at.UnixNano())
}

// CallStats counts calls by outcome. Total always equals the sum of the others.
type CallStats struct {
	Total      int `json:"total_calls"`
	Successful int `json:"successful_calls"`
	Failed     int `json:"failed_calls"`
	Attempted  int `json:"attempted_calls"`
}

// Add counts one call. Unknown types land in Attempted.
func (s *CallStats) Add(t CallType) {
	s.Total++
	switch t {
	case CallTypeSuccessful:
		s.Successful++
	case CallTypeFailed:
		s.Failed++
	default:
		s.Attempted++
	}
}

// ConsultantCallStats is CallStats for one consultant.
type ConsultantCallStats struct {
	ConsultantName string `json:"consultant_name"`
	CallStats
}
