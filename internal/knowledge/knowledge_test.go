package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt()

	assert.Contains(t, prompt, "KNOWLEDGE BASE:")
	assert.Contains(t, prompt, "GUIDELINES:")
	assert.Contains(t, prompt, "RESPONSE FORMAT:")
	assert.NotEmpty(t, Text())
	assert.Contains(t, prompt, Text()[:40])
}

func TestAnalysisPrompt(t *testing.T) {
	exams := "JEE Main"
	prompt := AnalysisPrompt(StudentProfile{Subjects: "PCM", Marks: 87.5, EntranceExams: &exams, Category: "General"})

	assert.Contains(t, prompt, "- 12th Subjects: PCM")
	assert.Contains(t, prompt, "- Marks Percentage: 87.5%")
	assert.Contains(t, prompt, "- Entrance Exams Planning: JEE Main")
	assert.Contains(t, prompt, "- Career Interests: Not specified")
	assert.Contains(t, prompt, "- Category: General")
}

func TestAnalysisSessionID(t *testing.T) {
	assert.Equal(t, "analysis-90", AnalysisSessionID(90))
	assert.Equal(t, "analysis-72.25", AnalysisSessionID(72.25))
}

func TestPopularQueries(t *testing.T) {
	qs := PopularQueries()
	assert.Len(t, qs, 12)

	qs[0].Question = "mutated"
	assert.NotEqual(t, "mutated", PopularQueries()[0].Question)
}
