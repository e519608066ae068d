package services

import "github.com/eduadvisor/backoffice/internal/app/models"

// SummarizeCalls counts calls by outcome.
func SummarizeCalls(calls []models.CallLog) models.CallStats {
	var stats models.CallStats
	for _, c := range calls {
		stats.Add(c.CallType)
	}
	return stats
}

// SummarizeCallsByConsultant returns overall counts and counts per consultant ID.
// The consultant name is the one recorded on the first call seen.
func SummarizeCallsByConsultant(calls []models.CallLog) (models.CallStats, map[string]*models.ConsultantCallStats) {
	var overall models.CallStats
	byConsultant := map[string]*models.ConsultantCallStats{}
	for _, c := range calls {
		overall.Add(c.CallType)

		entry, ok := byConsultant[c.ConsultantID]
		if !ok {
			entry = &models.ConsultantCallStats{ConsultantName: c.ConsultantName}
			byConsultant[c.ConsultantID] = entry
		}
		entry.Add(c.CallType)
	}
	return overall, byConsultant
}

// GroupReportsByConsultantName buckets reports by their recorded consultant
// name, keeping the input order within each bucket.
func GroupReportsByConsultantName(reports []models.ConsultantReport) map[string][]models.ConsultantReport {
	grouped := map[string][]models.ConsultantReport{}
	for _, r := range reports {
		grouped[r.ConsultantName] = append(grouped[r.ConsultantName], r)
	}
	return grouped
}
