package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

// ApplicationScorer computes the AI match score stored on an application.
type ApplicationScorer interface {
	ScoreApplication(ctx context.Context, appID uuid.UUID) error
}

type applicationScorer struct {
	appRepo   repositories.ApplicationRepository
	docRepo   repositories.DocumentRepository
	jobRepo   repositories.JobRepository
	extractor TextExtractor
	skills    SkillExtractor
	scorer    Scorer
	log       *zap.Logger
}

func NewApplicationScorer(
	appRepo repositories.ApplicationRepository,
	docRepo repositories.DocumentRepository,
	jobRepo repositories.JobRepository,
	extractor TextExtractor,
	skills SkillExtractor,
	scorer Scorer,
	log *zap.Logger,
) ApplicationScorer {
	return &applicationScorer{
		appRepo:   appRepo,
		docRepo:   docRepo,
		jobRepo:   jobRepo,
		extractor: extractor,
		skills:    skills,
		scorer:    scorer,
		log:       log,
	}
}

func (a *applicationScorer) ScoreApplication(ctx context.Context, appID uuid.UUID) error {
	if err := a.appRepo.UpdateStatus(ctx, appID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log := a.log.With(zap.String("application_id", appID.String()))
	log.Info("🔄 Scoring application")

	app, err := a.appRepo.FindByID(ctx, appID)
	if err != nil {
		return a.fail(ctx, appID, "failed to get application", err)
	}

	job, err := a.jobRepo.FindByID(ctx, app.JobID.String())
	if err != nil {
		return a.fail(ctx, appID, "job not found", err)
	}

	doc, err := a.docRepo.FindByID(ctx, app.DocumentID)
	if err != nil {
		return a.fail(ctx, appID, "resume document not found", err)
	}

	log.Debug("📄 Extracting resume", zap.String("storage_key", doc.StorageKey))
	text, err := a.extractor.ExtractFile(ctx, doc.StorageKey)
	if err != nil {
		return a.fail(ctx, appID, "failed to read resume", err)
	}

	result := a.scorer.Score(Candidate{Text: text, Skills: a.skills.ExtractSkills(text)}, job)

	update := &repositories.ApplicationUpdateData{
		Score:         result.Score,
		Reasons:       result.Reasons,
		MatchedSkills: result.MatchedSkills,
	}
	if err := a.appRepo.UpdateResult(ctx, appID, update); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Info("✅ Application scored",
		zap.Int("score", result.Score),
		zap.String("scorer", a.scorer.Name()),
	)
	return nil
}

// fail records the error on the application and returns it wrapped.
func (a *applicationScorer) fail(ctx context.Context, appID uuid.UUID, msg string, cause error) error {
	if err := a.appRepo.UpdateError(ctx, appID, fmt.Sprintf("%s: %v", msg, cause)); err != nil {
		a.log.Warn("failed to record application error",
			zap.String("application_id", appID.String()),
			zap.Error(err),
		)
	}
	return fmt.Errorf("%s: %w", msg, cause)
}
