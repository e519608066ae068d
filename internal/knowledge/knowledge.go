// Package knowledge holds the static advisory content sent to the completion service.
package knowledge

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed knowledge.txt
var baseText string

// PopularQuery is a canned question offered to consultants.
type PopularQuery struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

var popularQueries = []PopularQuery{
	{Question: "What's the expected NEET cut-off for government MBBS?", Category: "Medical"},
	{Question: "JEE Main percentile required for NIT CSE?", Category: "Engineering"},
	{Question: "Best private engineering colleges with fees under 10 lakhs?", Category: "Engineering"},
	{Question: "Career options for PCM students with low JEE score?", Category: "Career Guidance"},
	{Question: "WBJEE rank needed for Jadavpur University?", Category: "State Exams"},
	{Question: "Private medical college fees structure?", Category: "Medical"},
	{Question: "Best courses after 12th Commerce?", Category: "Career Guidance"},
	{Question: "Scope of B.Pharm vs Pharm.D?", Category: "Pharmacy"},
	{Question: "Cut-off for SC/ST category in NEET?", Category: "Reservations"},
	{Question: "Top MBA colleges with good placements?", Category: "Management"},
	{Question: "Engineering vs Medical - which is better?", Category: "Career Guidance"},
	{Question: "Best colleges for BCA in India?", Category: "Computer Applications"},
}

// PopularQueries returns a copy of the canned question list.
func PopularQueries() []PopularQuery {
	return append([]PopularQuery(nil), popularQueries...)
}

// Text returns the raw knowledge base.
func Text() string { return baseText }

const systemPromptTemplate = `You are EDU BUDDY, an expert educational counselling assistant for Edu Advisor consultancy in India.

Your role is to help consultants provide accurate information to students about:
1. Entrance exam cut-offs (NEET, JEE Main, JEE Advanced, WBJEE, State CETs)
2. Course recommendations based on student's 12th marks, subjects, and interests
3. College suggestions with approximate fee structures
4. Career guidance and counselling

KNOWLEDGE BASE:
%s

GUIDELINES:
- Always provide accurate, helpful information based on the knowledge base
- When discussing cut-offs, mention they are approximate and can vary year to year
- For fee structures, mention these are approximate and subject to change
- Be encouraging but realistic about student's options
- If asked about something not in your knowledge, provide general guidance
- Format responses clearly with bullet points when listing multiple items
- Keep responses concise but informative (suitable for phone conversations)
- Always suggest backup options along with primary recommendations

RESPONSE FORMAT:
- Use clear sections and bullet points
- Highlight important numbers (ranks, percentiles, fees)
- End with actionable advice when appropriate
`

// SystemPrompt assembles the fixed system instruction from the knowledge base.
func SystemPrompt() string {
	return fmt.Sprintf(systemPromptTemplate, strings.TrimSpace(baseText))
}

// StudentProfile is the input to a profile analysis.
type StudentProfile struct {
	Subjects      string  `json:"subjects"`
	Marks         float64 `json:"marks"`
	EntranceExams *string `json:"exams"`
	Interests     *string `json:"interests"`
	Category      string  `json:"category"`
}

// AnalysisPrompt renders the recommendation request for a profile.
func AnalysisPrompt(p StudentProfile) string {
	var b strings.Builder
	b.WriteString("Analyze this student profile and provide course recommendations:\n\n")
	b.WriteString("STUDENT PROFILE:\n")
	fmt.Fprintf(&b, "- 12th Subjects: %s\n", p.Subjects)
	fmt.Fprintf(&b, "- Marks Percentage: %s%%\n", formatMarks(p.Marks))
	fmt.Fprintf(&b, "- Entrance Exams Planning: %s\n", orNotSpecified(p.EntranceExams))
	fmt.Fprintf(&b, "- Career Interests: %s\n", orNotSpecified(p.Interests))
	fmt.Fprintf(&b, "- Category: %s\n\n", p.Category)
	b.WriteString(`Based on this profile, provide:
1. Top 5 recommended courses with reasons
2. Best colleges for each course (with approximate fees)
3. Required entrance exams and expected cut-offs
4. Alternative career paths if main goal isn't achieved
5. Action plan for the student

Be specific and practical in your recommendations.
`)
	return b.String()
}

// AnalysisSessionID is the session key used for profile analyses.
func AnalysisSessionID(marks float64) string {
	return "analysis-" + formatMarks(marks)
}

func formatMarks(m float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", m), "0"), ".")
}

func orNotSpecified(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "Not specified"
	}
	return *s
}
