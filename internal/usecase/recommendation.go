package usecase

import (
	"sort"
	"strings"

	"go-internship-backend/internal/domain"
)

const DefaultRecommendationLimit = 5

// LocationScore checks state before city: a listing in the candidate's state
// scores 3 even when the city differs, and a same-city listing only scores 2
// when the state does not match.
func LocationScore(c *domain.Candidate, i *domain.Internship) int {
	if i.State != nil && *i.State == c.State {
		return 3
	}
	if i.City != nil && *i.City == c.City {
		return 2
	}
	return 1
}

// SkillsScore is 3 when the listing's required skills contain the candidate's
// first skill (case-sensitive), 1 when the listing records no requirement and
// 0 otherwise. An empty first skill is contained in every recorded requirement.
func SkillsScore(c *domain.Candidate, i *domain.Internship) int {
	if i.SkillsRequired == nil {
		return 1
	}
	if strings.Contains(*i.SkillsRequired, c.FirstSkill()) {
		return 3
	}
	return 0
}

// ScoreInternship computes the relevance of one listing for a candidate.
func ScoreInternship(c *domain.Candidate, i domain.Internship) domain.ScoredInternship {
	location := LocationScore(c, &i)
	skills := SkillsScore(c, &i)
	return domain.ScoredInternship{
		Internship:    i,
		Score:         location + skills,
		LocationScore: location,
		SkillsScore:   skills,
	}
}

// Recommend ranks listings by score then stipend, both descending, and keeps
// at most limit of them. A non-positive limit means DefaultRecommendationLimit.
func Recommend(c *domain.Candidate, internships []domain.Internship, limit int) []domain.ScoredInternship {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	scored := make([]domain.ScoredInternship, 0, len(internships))
	for _, i := range internships {
		scored = append(scored, ScoreInternship(c, i))
	}

	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].Score != scored[b].Score {
			return scored[a].Score > scored[b].Score
		}
		return scored[a].Internship.Stipend > scored[b].Internship.Stipend
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
