package services

import (
	"fmt"
	"regexp"
	"strconv"

	"alfredoptarigan/resume-tailor/internal/models"
)

type MatchService interface {
	Score(resumeText, jdText string) models.MatchScore
}

type matchService struct{}

func NewMatchService() MatchService {
	return &matchService{}
}

// yearsPattern matches the first "<N> years" / "<N> yrs" mention in a
// resume. Only the first match counts; later mentions are ignored so
// that scoring stays compatible with existing output.
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs)`)

// Score implements MatchService. It is a pure function of its inputs:
// keyword overlap, skill-catalog overlap, a years-of-experience
// heuristic, and a professional-tone component folded into the overall
// weighting (0.4 skills, 0.3 experience, 0.2 keywords, 0.1 tone). All
// percentages truncate toward zero.
func (m *matchService) Score(resumeText, jdText string) models.MatchScore {
	resumeSet := KeywordSet(ExtractKeywords(resumeText))
	jdSet := KeywordSet(ExtractKeywords(jdText))

	if len(jdSet) == 0 {
		return models.MatchScore{Summary: "Unable to analyze"}
	}

	matched := intersect(jdSet, resumeSet)
	keywordsMatch := int(float64(len(matched)) / float64(len(jdSet)) * 100)

	jdSkills := intersect(jdSet, techSkills)
	resumeSkills := intersect(resumeSet, techSkills)
	skillsMatch := 0
	if len(jdSkills) > 0 {
		matchedSkills := intersect(jdSkills, resumeSkills)
		skillsMatch = int(float64(len(matchedSkills)) / float64(len(jdSkills)) * 100)
	}

	experienceMatch := 0
	if sub := yearsPattern.FindStringSubmatch(resumeText); sub != nil {
		years, err := strconv.Atoi(sub[1])
		if err == nil && years > 0 {
			experienceMatch = int(float64(years) / 10 * 100)
			if experienceMatch > 100 {
				experienceMatch = 100
			}
		}
	}

	// Tone feeds the overall score only, it is never reported on its own.
	profInResume := intersect(resumeSet, professionalTerms)
	toneMatch := int(float64(len(profInResume)) / float64(len(professionalTerms)) * 100)

	overall := int(float64(skillsMatch)*0.4 + float64(experienceMatch)*0.3 +
		float64(keywordsMatch)*0.2 + float64(toneMatch)*0.1)

	summary := fmt.Sprintf("Your resume matches %d%% of job keywords with %d%% skill alignment.",
		keywordsMatch, skillsMatch)

	return models.MatchScore{
		Overall:    overall,
		Skills:     skillsMatch,
		Experience: experienceMatch,
		Keywords:   keywordsMatch,
		Summary:    summary,
	}
}
