package services

import (
	"sort"
	"strings"

	"naukriedge/internal/models"
)

// ScoreService backs the free marketing tools. Pure static-data heuristics,
// no LLM involvement and no persistence.
type ScoreService struct{}

func NewScoreService() *ScoreService { return &ScoreService{} }

var roleKeywords = map[string][]string{
	"software engineer": {"java", "python", "golang", "javascript", "sql", "api", "microservices", "aws", "docker", "git", "agile", "ci/cd"},
	"data analyst":      {"sql", "excel", "python", "tableau", "power bi", "statistics", "dashboards", "reporting", "data cleaning", "a/b testing"},
	"data scientist":    {"python", "machine learning", "sql", "pandas", "tensorflow", "statistics", "nlp", "deep learning", "model deployment"},
	"product manager":   {"roadmap", "stakeholder", "user research", "analytics", "prioritization", "agile", "metrics", "go-to-market", "a/b testing"},
	"digital marketing": {"seo", "sem", "google ads", "content marketing", "social media", "email marketing", "analytics", "conversion", "campaigns"},
	"sales":             {"crm", "salesforce", "pipeline", "quota", "prospecting", "negotiation", "b2b", "lead generation", "account management"},
}

var genericKeywords = []string{"communication", "leadership", "teamwork", "problem solving", "project management"}

var resumeSections = []string{"experience", "education", "skills", "projects"}

// ATSScore estimates how an ATS would rank the resume for a role: keyword
// coverage carries 70 points, section structure the remaining 30.
func (s *ScoreService) ATSScore(req models.ATSScoreRequest) models.ATSScoreResponse {
	resume := strings.ToLower(req.ResumeText)

	keywords, ok := roleKeywords[strings.ToLower(strings.TrimSpace(req.Role))]
	if !ok {
		keywords = genericKeywords
	}

	var matched, missing []string
	for _, kw := range keywords {
		if strings.Contains(resume, kw) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := 0
	if len(keywords) > 0 {
		score = 70 * len(matched) / len(keywords)
	}

	var tips []string
	sectionPts := 30 / len(resumeSections)
	for _, sec := range resumeSections {
		if strings.Contains(resume, sec) {
			score += sectionPts
		} else {
			tips = append(tips, "add a clear '"+sec+"' section")
		}
	}
	if len(missing) > 0 {
		top := missing
		if len(top) > 3 {
			top = top[:3]
		}
		tips = append(tips, "work these keywords into your bullets: "+strings.Join(top, ", "))
	}

	if score > 100 {
		score = 100
	}

	verdict := "needs work"
	switch {
	case score >= 75:
		verdict = "strong"
	case score >= 50:
		verdict = "average"
	}

	sort.Strings(matched)
	sort.Strings(missing)

	return models.ATSScoreResponse{
		Score:           score,
		Verdict:         verdict,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Tips:            tips,
	}
}

type salaryBand struct {
	minLPA float64
	maxLPA float64
}

var roleBands = map[string]salaryBand{
	"software engineer": {4.5, 18},
	"data analyst":      {3.5, 12},
	"data scientist":    {6, 25},
	"product manager":   {8, 30},
	"digital marketing": {3, 10},
	"sales":             {3, 12},
}

var defaultBand = salaryBand{3, 10}

var cityMultiplier = map[string]float64{
	"bangalore": 1.20,
	"bengaluru": 1.20,
	"mumbai":    1.15,
	"delhi":     1.10,
	"gurgaon":   1.10,
	"noida":     1.08,
	"hyderabad": 1.05,
	"pune":      1.05,
	"chennai":   1.02,
}

// SalaryEstimate returns a static band adjusted by city and experience.
// Marketing-grade numbers, not a compensation survey.
func (s *ScoreService) SalaryEstimate(req models.SalaryRequest) models.SalaryResponse {
	role := strings.ToLower(strings.TrimSpace(req.Role))
	city := strings.ToLower(strings.TrimSpace(req.City))

	band, ok := roleBands[role]
	if !ok {
		band = defaultBand
	}

	mult := 1.0
	if m, ok := cityMultiplier[city]; ok {
		mult = m
	}

	years := req.YearsExperience
	if years < 0 {
		years = 0
	}
	if years > 15 {
		years = 15
	}
	expFactor := 1 + 0.07*float64(years)

	minLPA := round1(band.minLPA * mult * expFactor)
	maxLPA := round1(band.maxLPA * mult * expFactor)

	return models.SalaryResponse{
		Role:      role,
		City:      city,
		MinLPA:    minLPA,
		MedianLPA: round1((minLPA + maxLPA) / 2),
		MaxLPA:    maxLPA,
		Currency:  "INR",
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
