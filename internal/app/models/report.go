package models

import "time"

// InterestScope classifies how engaged a prospective student is.
type InterestScope string

const (
	InterestActivelyInterested     InterestScope = "ACTIVELY INTERESTED"
	InterestLessInterested         InterestScope = "LESS INTERESTED"
	InterestRecallingNeeded        InterestScope = "RECALLING NEEDED"
	InterestDropoutThisYear        InterestScope = "DROPOUT THIS YEAR"
	InterestAlreadyCollegeSelected InterestScope = "ALREADY COLLEGE SELECTED"
	InterestNotInterested          InterestScope = "NOT INTERESTED"
)

// InterestScopes lists every accepted interest scope.
var InterestScopes = []InterestScope{
	InterestActivelyInterested,
	InterestLessInterested,
	InterestRecallingNeeded,
	InterestDropoutThisYear,
	InterestAlreadyCollegeSelected,
	InterestNotInterested,
}

// ParseInterestScope validates s against the closed interest scope set.
func ParseInterestScope(s string) (InterestScope, error) {
	return parseEnum("interest_scope", s, InterestScopes)
}

// ConsultantReport records one counselling interaction. ConsultantName is the
// name at write time and is not updated when the consultant changes.
type ConsultantReport struct {
	ID                        string        `json:"id"`
	ConsultantID              string        `json:"consultant_id"`
	ConsultantName            string        `json:"consultant_name"`
	StudentName               string        `json:"student_name"`
	ContactNumber             string        `json:"contact_number"`
	InstitutionName           string        `json:"institution_name"`
	CompetitiveExamPreference string        `json:"competitive_exam_preference"`
	CareerInterest            string        `json:"career_interest"`
	CollegeInterest           string        `json:"college_interest"`
	InterestScope             InterestScope `json:"interest_scope"`
	OtherRemarks              string        `json:"other_remarks"`
	CreatedAt                 time.Time     `json:"created_at"`
	UpdatedAt                 time.Time     `json:"updated_at"`
}
