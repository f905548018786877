package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/repositories"
)

type stubJobRepository struct {
	jobs []models.Job

	mu         sync.Mutex
	findByID   int
	findActive int
	findErr    error
	activeErr  error
}

func (s *stubJobRepository) FindByID(_ context.Context, id string) (*models.Job, error) {
	s.mu.Lock()
	s.findByID++
	s.mu.Unlock()

	if s.findErr != nil {
		return nil, s.findErr
	}
	for i := range s.jobs {
		if s.jobs[i].ID.String() == id {
			job := s.jobs[i]
			return &job, nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", id, repositories.ErrNotFound)
}

func (s *stubJobRepository) FindActive(_ context.Context) ([]models.Job, error) {
	s.mu.Lock()
	s.findActive++
	s.mu.Unlock()

	if s.activeErr != nil {
		return nil, s.activeErr
	}
	active := []models.Job{}
	for _, job := range s.jobs {
		if job.Status == models.JobStatusActive {
			active = append(active, job)
		}
	}
	return active, nil
}

func (s *stubJobRepository) Create(_ context.Context, job *models.Job) error {
	s.jobs = append(s.jobs, *job)
	return nil
}

func (s *stubJobRepository) lookups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findByID + s.findActive
}

type stubDocumentRepository struct {
	docs map[uuid.UUID]*models.Document
}

func (s *stubDocumentRepository) Create(_ context.Context, doc *models.Document) error {
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
	mu     sync.Mutex
	apps   map[uuid.UUID]*models.Application
	queued []models.Application
	scored chan uuid.UUID
}

func newStubApplicationRepository(apps ...*models.Application) *stubApplicationRepository {
	repo := &stubApplicationRepository{apps: map[uuid.UUID]*models.Application{}}
	for _, app := range apps {
		repo.apps[app.ID] = app
	}
	return repo
}

func (s *stubApplicationRepository) Create(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[app.ID] = app
	return nil
}

func (s *stubApplicationRepository) FindByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, repositories.ErrNotFound)
	}
	copied := *app
	return &copied, nil
}

func (s *stubApplicationRepository) FindByJob(_ context.Context, jobID uuid.UUID) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apps := []models.Application{}
	for _, app := range s.apps {
		if app.JobID == jobID {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (s *stubApplicationRepository) UpdateStatus(_ context.Context, id uuid.UUID, status models.ApplicationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return fmt.Errorf("application %s: %w", id, repositories.ErrNotFound)
	}
	app.Status = status
	return nil
}

func (s *stubApplicationRepository) UpdateResult(_ context.Context, id uuid.UUID, data *repositories.ApplicationUpdateData) error {
	s.mu.Lock()
	app, ok := s.apps[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("application %s: %w", id, repositories.ErrNotFound)
	}
	score := data.Score
	app.Status = models.StatusCompleted
	app.AIScore = &score
	app.AIReasons = data.Reasons
	app.MatchedSkills = data.MatchedSkills
	s.mu.Unlock()

	if s.scored != nil {
		select {
		case s.scored <- id:
		default:
		}
	}
	return nil
}

func (s *stubApplicationRepository) UpdateError(_ context.Context, id uuid.UUID, errorMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return fmt.Errorf("application %s: %w", id, repositories.ErrNotFound)
	}
	app.Status = models.StatusFailed
	app.ErrorMessage = &errorMsg
	return nil
}

func (s *stubApplicationRepository) FindQueued(_ context.Context, limit int) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queued) > limit {
		return s.queued[:limit], nil
	}
	return s.queued, nil
}

func (s *stubApplicationRepository) get(id uuid.UUID) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.apps[id]
}

// stubExtractor returns fixed text regardless of the document.
type stubExtractor struct {
	text  string
	err   error
	files map[string]string
}

func (s *stubExtractor) Extract(_ *models.RawDocument) (string, error) {
	return s.text, s.err
}

func (s *stubExtractor) ExtractFile(_ context.Context, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if text, ok := s.files[key]; ok {
		return text, nil
	}
	return s.text, nil
}

// fixedScorer scores jobs from a table keyed by job title.
type fixedScorer map[string]int

func (fixedScorer) Name() string { return "fixed" }

func (f fixedScorer) Score(_ Candidate, job *models.Job) ScoreResult {
	return ScoreResult{Score: f[job.Title], MatchedSkills: []string{}}
}

func newJob(title, skills string) models.Job {
	return models.Job{
		ID:     uuid.New(),
		Title:  title,
		Skills: skills,
		Status: models.JobStatusActive,
	}
}
