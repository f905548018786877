package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
)

type applicationFixture struct {
	app    *fiber.App
	apps   *stubApplicationRepository
	worker *stubWorker
	job    models.Job
	doc    *models.Document
}

func newApplicationFixture() *applicationFixture {
	job := models.Job{ID: uuid.New(), Title: "Backend", Skills: "python", Status: models.JobStatusActive}
	doc := &models.Document{ID: uuid.New(), Filename: "resume_1.pdf", StorageKey: "resume_1.pdf"}

	f := &applicationFixture{
		apps:   &stubApplicationRepository{},
		worker: &stubWorker{},
		job:    job,
		doc:    doc,
	}

	h := NewApplicationHandler(
		f.apps,
		&stubDocumentRepository{docs: map[uuid.UUID]*models.Document{doc.ID: doc}},
		&stubJobRepository{jobs: []models.Job{job}},
		f.worker,
		zap.NewNop(),
	)

	f.app = fiber.New()
	f.app.Post("/api/v1/applications", h.HandleApply)
	f.app.Get("/api/v1/applications/:id", h.HandleGetApplication)
	f.app.Get("/api/v1/jobs/:id/applications", h.HandleListJobApplications)
	return f
}

func TestHandleApply_Queues(t *testing.T) {
	f := newApplicationFixture()

	var body models.ApplyResponse
	status := doRequest(t, f.app, jsonRequest(t, http.MethodPost, "/api/v1/applications", models.ApplyRequest{
		JobID:          f.job.ID.String(),
		DocumentID:     f.doc.ID.String(),
		CandidateName:  "Ayu",
		CandidateEmail: "ayu@example.com",
	}), &body)

	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Equal(t, string(models.StatusQueued), body.Status)

	id, err := uuid.Parse(body.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, f.worker.enqueued)

	stored := f.apps.apps[id]
	require.NotNil(t, stored)
	assert.Equal(t, f.job.ID, stored.JobID)
	assert.Equal(t, "Ayu", stored.CandidateName)
}

func TestHandleApply_Rejections(t *testing.T) {
	f := newApplicationFixture()

	tests := []struct {
		name   string
		req    models.ApplyRequest
		status int
	}{
		{name: "missing job", req: models.ApplyRequest{DocumentID: f.doc.ID.String()}, status: fiber.StatusBadRequest},
		{name: "missing document", req: models.ApplyRequest{JobID: f.job.ID.String()}, status: fiber.StatusBadRequest},
		{name: "malformed job", req: models.ApplyRequest{JobID: "nope", DocumentID: f.doc.ID.String()}, status: fiber.StatusBadRequest},
		{name: "malformed document", req: models.ApplyRequest{JobID: f.job.ID.String(), DocumentID: "nope"}, status: fiber.StatusBadRequest},
		{name: "unknown job", req: models.ApplyRequest{JobID: uuid.NewString(), DocumentID: f.doc.ID.String()}, status: fiber.StatusNotFound},
		{name: "unknown document", req: models.ApplyRequest{JobID: f.job.ID.String(), DocumentID: uuid.NewString()}, status: fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			status := doRequest(t, f.app, jsonRequest(t, http.MethodPost, "/api/v1/applications", tt.req), &body)

			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body["error"])
		})
	}

	assert.Empty(t, f.worker.enqueued)
	assert.Empty(t, f.apps.apps)
}

func TestHandleGetApplication(t *testing.T) {
	f := newApplicationFixture()

	score := 62
	completed := &models.Application{
		ID:            uuid.New(),
		JobID:         f.job.ID,
		Status:        models.StatusCompleted,
		AIScore:       &score,
		AIReasons:     []string{"Matched skills: python (+50 pts)"},
		MatchedSkills: []string{"python"},
	}
	msg := "failed to read resume: extraction error"
	failed := &models.Application{
		ID:           uuid.New(),
		JobID:        f.job.ID,
		Status:       models.StatusFailed,
		ErrorMessage: &msg,
	}
	f.apps.apps = map[uuid.UUID]*models.Application{completed.ID: completed, failed.ID: failed}

	var done models.ApplicationResultResponse
	status := doRequest(t, f.app, httptest.NewRequest(http.MethodGet, "/api/v1/applications/"+completed.ID.String(), nil), &done)
	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, done.Result)
	assert.Equal(t, 62, done.Result.Score)
	assert.Equal(t, []string{"python"}, done.Result.MatchedSkills)
	assert.Nil(t, done.ErrorMessage)

	var broken models.ApplicationResultResponse
	status = doRequest(t, f.app, httptest.NewRequest(http.MethodGet, "/api/v1/applications/"+failed.ID.String(), nil), &broken)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, broken.Result)
	require.NotNil(t, broken.ErrorMessage)
	assert.Equal(t, msg, *broken.ErrorMessage)

	status = doRequest(t, f.app, httptest.NewRequest(http.MethodGet, "/api/v1/applications/not-a-uuid", nil), nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = doRequest(t, f.app, httptest.NewRequest(http.MethodGet, "/api/v1/applications/"+uuid.NewString(), nil), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandleListJobApplications(t *testing.T) {
	f := newApplicationFixture()
	queued := &models.Application{ID: uuid.New(), JobID: f.job.ID, Status: models.StatusQueued}
	other := &models.Application{ID: uuid.New(), JobID: uuid.New(), Status: models.StatusQueued}
	f.apps.apps = map[uuid.UUID]*models.Application{queued.ID: queued, other.ID: other}

	var body struct {
		JobID        string                             `json:"job_id"`
		Applications []models.ApplicationResultResponse `json:"applications"`
	}
	status := doRequest(t, f.app, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+f.job.ID.String()+"/applications", nil), &body)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, f.job.ID.String(), body.JobID)
	require.Len(t, body.Applications, 1)
	assert.Equal(t, queued.ID.String(), body.Applications[0].ID)
	assert.Equal(t, "queued", body.Applications[0].Status)

	status = doRequest(t, f.app, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/bad/applications", nil), nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
