package models

// CollegeOffering is a college recommended for a course.
type CollegeOffering struct {
	CollegeName      string   `json:"college_name"`
	AveragePlacement string   `json:"average_placement"`
	TopCompanies     []string `json:"top_companies"`
	Specialization   string   `json:"specialization"`
	WhyRecommended   string   `json:"why_recommended"`
}

// Course is read-only catalog data.
type Course struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	FullName         string            `json:"full_name"`
	Type             string            `json:"type"`
	Duration         string            `json:"duration"`
	Description      string            `json:"description"`
	CareerProspects  []string          `json:"career_prospects"`
	WhyChoose        string            `json:"why_choose"`
	CollegesOffering []CollegeOffering `json:"colleges_offering"`
}
