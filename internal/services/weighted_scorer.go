package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-matcher/internal/models"
)

type KeywordWeight struct {
	Keyword string
	Weight  int
}

// WeightedConfig holds the caps and keyword tables of the weighted scorer.
// Tables are ordered; reasons list keywords in table order.
type WeightedConfig struct {
	SkillCap      int
	ExperienceCap int
	EducationCap  int

	Experience []KeywordWeight
	Education  []KeywordWeight

	// A resume longer than FloorMinLength scoring under FloorScore is lifted to FloorScore.
	FloorScore     int
	FloorMinLength int

	// ReasonKeywordLimit caps how many experience keywords a reason names.
	ReasonKeywordLimit int
}

func DefaultWeightedConfig() WeightedConfig {
	return WeightedConfig{
		SkillCap:      50,
		ExperienceCap: 30,
		EducationCap:  20,
		Experience: []KeywordWeight{
			{Keyword: "intern", Weight: 10},
			{Keyword: "senior", Weight: 15},
			{Keyword: "lead", Weight: 15},
			{Keyword: "engineer", Weight: 10},
			{Keyword: "developer", Weight: 10},
			{Keyword: "years", Weight: 5},
			{Keyword: "experience", Weight: 5},
			{Keyword: "project", Weight: 5},
			{Keyword: "internship", Weight: 10},
		},
		Education: []KeywordWeight{
			{Keyword: "phd", Weight: 20},
			{Keyword: "master", Weight: 15},
			{Keyword: "bachelor", Weight: 10},
			{Keyword: "university", Weight: 5},
			{Keyword: "college", Weight: 5},
			{Keyword: "graduate", Weight: 5},
		},
		FloorScore:         15,
		FloorMinLength:     100,
		ReasonKeywordLimit: 3,
	}
}

type weightedScorer struct {
	cfg WeightedConfig
}

// NewWeightedScorer builds the three-component heuristic: declared skills
// found in the resume text, experience keywords and education keywords,
// each capped, then summed.
func NewWeightedScorer(cfg WeightedConfig) Scorer {
	// Copy the tables so callers cannot change them afterwards.
	cfg.Experience = append([]KeywordWeight(nil), cfg.Experience...)
	cfg.Education = append([]KeywordWeight(nil), cfg.Education...)
	return &weightedScorer{cfg: cfg}
}

func (w *weightedScorer) Name() string { return ScorerWeighted }

func (w *weightedScorer) Score(candidate Candidate, job *models.Job) ScoreResult {
	text := strings.ToLower(candidate.Text)
	reasons := []string{}

	skillPoints, matched, skillReason := w.skillComponent(text, job.SkillProfile())
	reasons = append(reasons, skillReason)

	expPoints, expFound := sumKeywords(text, w.cfg.Experience, w.cfg.ExperienceCap)
	if len(expFound) > 0 {
		shown := expFound
		if w.cfg.ReasonKeywordLimit > 0 && len(shown) > w.cfg.ReasonKeywordLimit {
			shown = shown[:w.cfg.ReasonKeywordLimit]
		}
		reasons = append(reasons, fmt.Sprintf("Experience indicators: %s (+%d pts)", strings.Join(shown, ", "), expPoints))
	}

	eduPoints, eduFound := sumKeywords(text, w.cfg.Education, w.cfg.EducationCap)
	if len(eduFound) > 0 {
		reasons = append(reasons, fmt.Sprintf("Education indicators: %s (+%d pts)", strings.Join(eduFound, ", "), eduPoints))
	}

	total := skillPoints + expPoints + eduPoints

	if total < w.cfg.FloorScore && utf8.RuneCountInString(candidate.Text) > w.cfg.FloorMinLength {
		total = w.cfg.FloorScore
		reasons = append(reasons, "Base score granted for submission length")
	}

	return ScoreResult{
		Score:         clampScore(total),
		MatchedSkills: matched,
		Reasons:       reasons,
	}
}

func (w *weightedScorer) skillComponent(text string, profile []string) (int, []string, string) {
	matched := []string{}
	if len(profile) == 0 {
		return 0, matched, "No specific skills required for this job"
	}

	for _, skill := range profile {
		if strings.Contains(text, skill) {
			matched = append(matched, skill)
		}
	}

	if len(matched) == 0 {
		return 0, matched, "No matching skills found"
	}

	points := ratioPoints(w.cfg.SkillCap, len(matched), len(profile))
	if points > w.cfg.SkillCap {
		points = w.cfg.SkillCap
	}
	return points, matched, fmt.Sprintf("Matched skills: %s (+%d pts)", strings.Join(matched, ", "), points)
}

// sumKeywords adds the weight of every keyword contained in text, capped.
func sumKeywords(text string, table []KeywordWeight, limit int) (int, []string) {
	total := 0
	var found []string
	for _, kw := range table {
		if strings.Contains(text, kw.Keyword) {
			total += kw.Weight
			found = append(found, kw.Keyword)
		}
	}
	if total > limit {
		total = limit
	}
	return total, found
}
