package models

// swagger:model ATSScoreRequest
type ATSScoreRequest struct {
	ResumeText string `json:"resumeText"`
	Role       string `json:"role" example:"software engineer"`
}

// swagger:model ATSScoreResponse
type ATSScoreResponse struct {
	Score           int      `json:"score"`
	Verdict         string   `json:"verdict"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Tips            []string `json:"tips,omitempty"`
}

// swagger:model SalaryRequest
type SalaryRequest struct {
	Role            string `json:"role" example:"data analyst"`
	City            string `json:"city" example:"bangalore"`
	YearsExperience int    `json:"yearsExperience" example:"3"`
}

// swagger:model SalaryResponse
type SalaryResponse struct {
	Role      string  `json:"role"`
	City      string  `json:"city"`
	MinLPA    float64 `json:"minLpa"`
	MedianLPA float64 `json:"medianLpa"`
	MaxLPA    float64 `json:"maxLpa"`
	Currency  string  `json:"currency"`
}
