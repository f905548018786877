package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

const (
	DefaultTopN = 3

	noActiveJobsMessage = "No active jobs available for matching right now"
)

type Recommender interface {
	// Recommend ranks jobs for a resume. With a jobID only that job is scored;
	// otherwise every active job is.
	Recommend(ctx context.Context, doc *models.RawDocument, jobID string) (*models.RecommendResponse, error)
}

type recommender struct {
	jobs      repositories.JobRepository
	extractor TextExtractor
	skills    SkillExtractor
	scorer    Scorer
	topN      int
	log       *zap.Logger
}

func NewRecommender(
	jobs repositories.JobRepository,
	extractor TextExtractor,
	skills SkillExtractor,
	scorer Scorer,
	topN int,
	log *zap.Logger,
) Recommender {
	if topN < 1 {
		topN = DefaultTopN
	}
	return &recommender{
		jobs:      jobs,
		extractor: extractor,
		skills:    skills,
		scorer:    scorer,
		topN:      topN,
		log:       log,
	}
}

func (r *recommender) Recommend(ctx context.Context, doc *models.RawDocument, jobID string) (*models.RecommendResponse, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: resume file required", ErrValidation)
	}

	text, err := r.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	candidate := Candidate{
		Text:   text,
		Skills: r.skills.ExtractSkills(text),
	}

	r.log.Debug("resume extracted",
		zap.String("filename", doc.Filename),
		zap.Int("text_length", len(text)),
		zap.String("preview", logger.Truncate(text, 120)),
		zap.Strings("skills", candidate.Skills),
	)

	jobs, err := r.candidateJobs(ctx, jobID)
	if err != nil {
		return nil, err
	}

	response := &models.RecommendResponse{
		ResumeSkills: candidate.Skills,
		BestMatches:  []models.MatchResult{},
	}

	if len(jobs) == 0 {
		response.Message = noActiveJobsMessage
		return response, nil
	}

	matches := make([]models.MatchResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		result := r.scorer.Score(candidate, job)
		matches = append(matches, models.MatchResult{
			JobID:         job.ID.String(),
			Title:         job.Title,
			Company:       job.Company,
			Score:         result.Score,
			MatchedSkills: result.MatchedSkills,
			Reasons:       result.Reasons,
		})
	}

	// Ties keep the store's job order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > r.topN {
		matches = matches[:r.topN]
	}
	response.BestMatches = matches

	r.log.Info("recommendations computed",
		zap.String("scorer", r.scorer.Name()),
		zap.Int("jobs_scored", len(jobs)),
		zap.Int("returned", len(matches)),
	)

	return response, nil
}

func (r *recommender) candidateJobs(ctx context.Context, jobID string) ([]models.Job, error) {
	if jobID == "" {
		jobs, err := r.jobs.FindActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load active jobs: %w", err)
		}
		return jobs, nil
	}

	job, err := r.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return []models.Job{*job}, nil
}
