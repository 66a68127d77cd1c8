package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyJobDescriptionKeywords(t *testing.T) {
	m := NewMatchService()

	// JD that reduces to nothing after stop-word filtering
	score := m.Score("Python developer with 10 years of experience", "the and for a")

	assert.Equal(t, 0, score.Overall)
	assert.Equal(t, 0, score.Skills)
	assert.Equal(t, 0, score.Experience)
	assert.Equal(t, 0, score.Keywords)
	assert.Equal(t, "Unable to analyze", score.Summary)
}

func TestScore_ComponentsAndWeighting(t *testing.T) {
	m := NewMatchService()

	// jdSet = {python, aws, docker, engineer}, jdSkills = {python, aws, docker}
	jd := "python aws docker engineer"
	// resumeSet = {achieved, results, python, aws, over, years}
	resume := "Achieved results with Python and AWS over 5 years"

	score := m.Score(resume, jd)

	assert.Equal(t, 50, score.Keywords, "2 of 4 JD keywords matched")
	assert.Equal(t, 66, score.Skills, "2 of 3 JD skills matched, truncated")
	assert.Equal(t, 50, score.Experience, "5 years of 10")
	// tone = 1/14*100 = 7, overall = trunc(66*0.4 + 50*0.3 + 50*0.2 + 7*0.1)
	assert.Equal(t, 52, score.Overall)
	assert.Equal(t, "Your resume matches 50% of job keywords with 66% skill alignment.", score.Summary)
}

func TestScore_ExperienceBoundaries(t *testing.T) {
	m := NewMatchService()
	jd := "python developer"

	tests := []struct {
		name   string
		resume string
		want   int
	}{
		{"ten years is full score", "I have 10 years of experience", 100},
		{"capped at 100", "I have 20 years", 100},
		{"zero years", "I have 0 years", 0},
		{"no pattern", "I am experienced", 0},
		{"yrs variant", "3 yrs as backend engineer", 30},
		{"first match wins", "2 years at ACME then 9 years at Initech", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := m.Score(tt.resume, jd)
			assert.Equal(t, tt.want, score.Experience)
		})
	}
}

func TestScore_SkillsZeroWhenJDHasNoCatalogTerms(t *testing.T) {
	m := NewMatchService()

	score := m.Score("python docker expert", "looking for friendly team player")
	assert.Equal(t, 0, score.Skills)
}

func TestScore_IsPure(t *testing.T) {
	m := NewMatchService()
	resume := "Python engineer, 7 years, led and delivered AWS migrations"
	jd := "python aws platform engineer"

	first := m.Score(resume, jd)
	second := m.Score(resume, jd)
	assert.Equal(t, first, second)
}
