package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

// multipartRequest builds a POST with an optional resume file and form fields.
func multipartRequest(t *testing.T, target, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if filename != "" {
		part, err := writer.CreateFormFile(resumeField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request, out interface{}) int {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

type stubJobRepository struct {
	jobs []models.Job
}

func (s *stubJobRepository) FindByID(_ context.Context, id string) (*models.Job, error) {
	for i := range s.jobs {
		if s.jobs[i].ID.String() == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", id, repositories.ErrNotFound)
}

func (s *stubJobRepository) FindActive(_ context.Context) ([]models.Job, error) {
	return s.jobs, nil
}

func (s *stubJobRepository) Create(_ context.Context, job *models.Job) error {
	s.jobs = append(s.jobs, *job)
	return nil
}

type stubDocumentRepository struct {
	docs      map[uuid.UUID]*models.Document
	createErr error
}

func (s *stubDocumentRepository) Create(_ context.Context, doc *models.Document) error {
	if s.createErr != nil {
		return s.createErr
	}
	if s.docs == nil {
		s.docs = map[uuid.UUID]*models.Document{}
	}
	s.docs[doc.ID] = doc
	return nil
}

func (s *stubDocumentRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, repositories.ErrNotFound)
	}
	return doc, nil
}

type stubApplicationRepository struct {
	apps map[uuid.UUID]*models.Application
}

func (s *stubApplicationRepository) Create(_ context.Context, app *models.Application) error {
	if s.apps == nil {
		s.apps = map[uuid.UUID]*models.Application{}
	}
	s.apps[app.ID] = app
	return nil
}

func (s *stubApplicationRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, repositories.ErrNotFound)
	}
	return app, nil
}

func (s *stubApplicationRepository) FindByJob(_ context.Context, jobID uuid.UUID) ([]models.Application, error) {
	apps := []models.Application{}
	for _, app := range s.apps {
		if app.JobID == jobID {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (s *stubApplicationRepository) UpdateStatus(context.Context, uuid.UUID, models.ApplicationStatus) error {
	return nil
}

func (s *stubApplicationRepository) UpdateResult(context.Context, uuid.UUID, *repositories.ApplicationUpdateData) error {
	return nil
}

func (s *stubApplicationRepository) UpdateError(context.Context, uuid.UUID, string) error {
	return nil
}

func (s *stubApplicationRepository) FindQueued(context.Context, int) ([]models.Application, error) {
	return nil, nil
}

type stubWorker struct {
	mu       sync.Mutex
	enqueued []uuid.UUID
}

func (w *stubWorker) Start(context.Context) {}

func (w *stubWorker) Stop() {}

func (w *stubWorker) EnqueueApplication(appID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.enqueued = append(w.enqueued, appID)
}
