package models

type CustomizeResponse struct {
	CustomizedResume string `json:"customized_resume"`
	ResumeText       string `json:"resume_text"`
	JDText           string `json:"jd_text"`
	OverallScore     int    `json:"overall_score"`
	SkillsMatch      int    `json:"skills_match"`
	ExperienceMatch  int    `json:"experience_match"`
	KeywordsMatch    int    `json:"keywords_match"`
	MatchSummary     string `json:"match_summary"`
}

type InterviewRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	JDText     string `json:"jd_text" validate:"required"`
}

type InterviewResponse struct {
	Questions string `json:"questions"`
}

type ChatRequest struct {
	ResumeText string     `json:"resume_text" validate:"required"`
	History    []ChatTurn `json:"history"`
	Message    string     `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
