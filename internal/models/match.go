package models

// MatchScore holds the heuristic comparison between a resume and a job
// description. All percentages are integers in [0, 100].
type MatchScore struct {
	Overall    int    `json:"overall_score"`
	Skills     int    `json:"skills_match"`
	Experience int    `json:"experience_match"`
	Keywords   int    `json:"keywords_match"`
	Summary    string `json:"match_summary"`
}

// ChatTurn is one prior exchange in a coaching conversation. The
// caller owns the transcript; the service replays it verbatim.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
