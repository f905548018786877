package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

type ApplicationHandler struct {
	appRepo repositories.ApplicationRepository
	docRepo repositories.DocumentRepository
	jobRepo repositories.JobRepository
	worker  services.Worker
	log     *zap.Logger
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	docRepo repositories.DocumentRepository,
	jobRepo repositories.JobRepository,
	worker services.Worker,
	log *zap.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo: appRepo,
		docRepo: docRepo,
		jobRepo: jobRepo,
		worker:  worker,
		log:     log,
	}
}

// HandleApply handles POST /applications
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_id is required",
		})
	}

	if req.DocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_id is required",
		})
	}

	// Parse UUIDs
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document_id format",
		})
	}

	ctx := c.UserContext()

	if _, err := h.jobRepo.FindByID(ctx, jobID.String()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return respondError(c, err)
	}

	if _, err := h.docRepo.FindByID(ctx, docID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}
		return respondError(c, err)
	}

	application := &models.Application{
		ID:             uuid.New(),
		JobID:          jobID,
		DocumentID:     docID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Status:         models.StatusQueued,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.appRepo.Create(ctx, application); err != nil {
		h.log.Error("failed to create application", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create application",
		})
	}

	h.worker.EnqueueApplication(application.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ApplyResponse{
		ID:     application.ID.String(),
		Status: string(models.StatusQueued),
	})
}

// HandleGetApplication handles GET /applications/:id
func (h *ApplicationHandler) HandleGetApplication(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.appRepo.FindByID(c.UserContext(), appID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(toResultResponse(app))
}

// HandleListJobApplications handles GET /jobs/:id/applications
func (h *ApplicationHandler) HandleListJobApplications(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	apps, err := h.appRepo.FindByJob(c.UserContext(), jobID)
	if err != nil {
		return respondError(c, err)
	}

	results := make([]models.ApplicationResultResponse, 0, len(apps))
	for i := range apps {
		results = append(results, toResultResponse(&apps[i]))
	}

	return c.JSON(fiber.Map{
		"job_id":       jobID.String(),
		"applications": results,
	})
}

func toResultResponse(app *models.Application) models.ApplicationResultResponse {
	response := models.ApplicationResultResponse{
		ID:     app.ID.String(),
		JobID:  app.JobID.String(),
		Status: string(app.Status),
	}

	if app.Status == models.StatusCompleted && app.AIScore != nil {
		reasons := app.AIReasons
		if reasons == nil {
			reasons = []string{}
		}
		matched := app.MatchedSkills
		if matched == nil {
			matched = []string{}
		}
		response.Result = &models.ApplicationResult{
			Score:         *app.AIScore,
			Reasons:       reasons,
			MatchedSkills: matched,
		}
	}

	if app.Status == models.StatusFailed && app.ErrorMessage != nil {
		response.ErrorMessage = app.ErrorMessage
	}

	return response
}
