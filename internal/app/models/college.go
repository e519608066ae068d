package models

// PlacementStats summarises a college's placement record.
type PlacementStats struct {
	AveragePackage string `json:"average_package"`
	HighestPackage string `json:"highest_package"`
	PlacementRate  string `json:"placement_rate"`
}

// College is read-only catalog data.
type College struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Logo            string         `json:"logo"`
	Description     string         `json:"description"`
	Website         string         `json:"website"`
	NIRFRank        int            `json:"nirf_rank"`
	NAACGrade       string         `json:"naac_grade"`
	Location        string         `json:"location"`
	EstablishedYear int            `json:"established_year"`
	Specializations []string       `json:"specializations"`
	PlacementStats  PlacementStats `json:"placement_stats"`
	Facilities      []string       `json:"facilities"`
	TopRecruiters   []string       `json:"top_recruiters"`
}
