package services

import (
	"fmt"
	"math"

	"alfredoptarigan/resume-matcher/internal/models"
)

const (
	ScorerOverlap  = "overlap"
	ScorerWeighted = "weighted"
)

// Candidate is what a scorer knows about a resume.
type Candidate struct {
	Text   string
	Skills []string
}

type ScoreResult struct {
	Score         int
	MatchedSkills []string
	Reasons       []string
}

// Scorer rates one candidate against one job on a 0..100 scale.
// Implementations are pure and safe for concurrent use.
type Scorer interface {
	Name() string
	Score(candidate Candidate, job *models.Job) ScoreResult
}

// NewScorer returns the named strategy with its default configuration.
func NewScorer(name string) (Scorer, error) {
	switch name {
	case ScorerOverlap:
		return NewOverlapScorer(), nil
	case ScorerWeighted:
		return NewWeightedScorer(DefaultWeightedConfig()), nil
	default:
		return nil, fmt.Errorf("unknown scorer %q", name)
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ratioPoints is round(points * part / whole); whole must be positive.
func ratioPoints(points, part, whole int) int {
	return int(math.Round(float64(points) * float64(part) / float64(whole)))
}
