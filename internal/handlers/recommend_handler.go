package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type RecommendHandler struct {
	recommender services.Recommender
	// detailed scores a single job with reasons.
	detailed    services.Recommender
	maxFileSize int64
}

func NewRecommendHandler(recommender, detailed services.Recommender, maxFileSize int64) *RecommendHandler {
	return &RecommendHandler{
		recommender: recommender,
		detailed:    detailed,
		maxFileSize: maxFileSize,
	}
}

// HandleRecommend handles POST /recommend
func (h *RecommendHandler) HandleRecommend(c *fiber.Ctx) error {
	doc, err := h.readResume(c)
	if err != nil {
		return respondError(c, err)
	}

	jobID := strings.TrimSpace(c.FormValue("job_id"))

	resp, err := h.recommender.Recommend(c.UserContext(), doc, jobID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(resp)
}

// HandleScore handles POST /jobs/:id/score
func (h *RecommendHandler) HandleScore(c *fiber.Ctx) error {
	doc, err := h.readResume(c)
	if err != nil {
		return respondError(c, err)
	}

	jobID := c.Params("id")
	resp, err := h.detailed.Recommend(c.UserContext(), doc, jobID)
	if err != nil {
		return respondError(c, err)
	}

	if len(resp.BestMatches) == 0 {
		return respondError(c, fmt.Errorf("%w: job %s", services.ErrNotFound, jobID))
	}

	match := resp.BestMatches[0]
	return c.JSON(models.ScoreResponse{
		JobID:         match.JobID,
		Score:         match.Score,
		Reasons:       match.Reasons,
		MatchedSkills: match.MatchedSkills,
	})
}

// readResume returns nil without error when no file was sent; the
// recommender reports that as a validation error.
func (h *RecommendHandler) readResume(c *fiber.Ctx) (*models.RawDocument, error) {
	file, err := c.FormFile(resumeField)
	if err != nil {
		return nil, nil
	}

	if h.maxFileSize > 0 && file.Size > h.maxFileSize {
		return nil, fmt.Errorf("%w: resume file too large, max size %d bytes", services.ErrValidation, h.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return models.NewRawDocument(file.Filename, data), nil
}
