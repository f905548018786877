package services

import (
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

// overlapScorer is the plain skill-intersection strategy: the share of the
// job's declared skills that were also extracted from the resume.
type overlapScorer struct{}

func NewOverlapScorer() Scorer {
	return overlapScorer{}
}

func (overlapScorer) Name() string { return ScorerOverlap }

func (overlapScorer) Score(candidate Candidate, job *models.Job) ScoreResult {
	profile := job.SkillProfile()
	if len(profile) == 0 {
		return ScoreResult{Score: 0, MatchedSkills: []string{}}
	}

	required := make(map[string]struct{}, len(profile))
	for _, skill := range profile {
		required[skill] = struct{}{}
	}

	matched := []string{}
	for _, skill := range candidate.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if _, ok := required[skill]; !ok {
			continue
		}
		matched = append(matched, skill)
		// Count each declared skill once even if the candidate repeats it.
		delete(required, skill)
	}

	return ScoreResult{
		Score:         clampScore(ratioPoints(100, len(matched), len(profile))),
		MatchedSkills: matched,
	}
}
