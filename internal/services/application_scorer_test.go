package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
)

type applicationFixture struct {
	app     *models.Application
	apps    *stubApplicationRepository
	docs    *stubDocumentRepository
	jobs    *stubJobRepository
	extract *stubExtractor
}

func newApplicationFixture() *applicationFixture {
	job := newJob("Backend", "python, django, postgres")
	doc := &models.Document{ID: uuid.New(), Filename: "resume_1.pdf", StorageKey: "resume_1.pdf"}
	app := &models.Application{
		ID:         uuid.New(),
		JobID:      job.ID,
		DocumentID: doc.ID,
		Status:     models.StatusQueued,
	}

	return &applicationFixture{
		app:  app,
		apps: newStubApplicationRepository(app),
		docs: &stubDocumentRepository{docs: map[uuid.UUID]*models.Document{doc.ID: doc}},
		jobs: &stubJobRepository{jobs: []models.Job{job}},
		extract: &stubExtractor{files: map[string]string{
			"resume_1.pdf": "senior python engineer with a master's degree, 5 years experience",
		}},
	}
}

func (f *applicationFixture) scorer() ApplicationScorer {
	return NewApplicationScorer(
		f.apps,
		f.docs,
		f.jobs,
		f.extract,
		NewSkillExtractor(nil),
		NewWeightedScorer(DefaultWeightedConfig()),
		zap.NewNop(),
	)
}

func TestApplicationScorer_Completes(t *testing.T) {
	f := newApplicationFixture()

	require.NoError(t, f.scorer().ScoreApplication(context.Background(), f.app.ID))

	app := f.apps.get(f.app.ID)
	assert.Equal(t, models.StatusCompleted, app.Status)
	require.NotNil(t, app.AIScore)
	assert.Equal(t, 62, *app.AIScore)
	assert.Equal(t, []string{"python"}, app.MatchedSkills)
	assert.Len(t, app.AIReasons, 3)
}

func TestApplicationScorer_MissingJobFails(t *testing.T) {
	f := newApplicationFixture()
	f.jobs.jobs = nil

	err := f.scorer().ScoreApplication(context.Background(), f.app.ID)
	require.Error(t, err)

	app := f.apps.get(f.app.ID)
	assert.Equal(t, models.StatusFailed, app.Status)
	require.NotNil(t, app.ErrorMessage)
	assert.Contains(t, *app.ErrorMessage, "job not found")
}

func TestApplicationScorer_ExtractionFails(t *testing.T) {
	f := newApplicationFixture()
	f.extract.err = errors.Join(ErrExtraction, errors.New("bad pdf"))

	err := f.scorer().ScoreApplication(context.Background(), f.app.ID)
	assert.ErrorIs(t, err, ErrExtraction)

	app := f.apps.get(f.app.ID)
	assert.Equal(t, models.StatusFailed, app.Status)
	require.NotNil(t, app.ErrorMessage)
	assert.Contains(t, *app.ErrorMessage, "failed to read resume")
}

func TestApplicationScorer_UnknownApplication(t *testing.T) {
	f := newApplicationFixture()

	err := f.scorer().ScoreApplication(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestWorker_ScoresEnqueuedApplications(t *testing.T) {
	f := newApplicationFixture()
	f.apps.scored = make(chan uuid.UUID, 1)

	w := NewWorker(f.apps, f.scorer(), 2, time.Hour, zap.NewNop())
	w.Start(context.Background())
	defer w.Stop()

	w.EnqueueApplication(f.app.ID)

	select {
	case id := <-f.apps.scored:
		assert.Equal(t, f.app.ID, id)
	case <-time.After(5 * time.Second):
		t.Fatal("application was not scored")
	}

	assert.Equal(t, models.StatusCompleted, f.apps.get(f.app.ID).Status)
}

func TestWorker_PollsQueuedApplications(t *testing.T) {
	f := newApplicationFixture()
	f.apps.scored = make(chan uuid.UUID, 1)
	f.apps.queued = []models.Application{*f.app}

	w := NewWorker(f.apps, f.scorer(), 1, 20*time.Millisecond, zap.NewNop())
	w.Start(context.Background())
	defer w.Stop()

	select {
	case id := <-f.apps.scored:
		assert.Equal(t, f.app.ID, id)
	case <-time.After(5 * time.Second):
		t.Fatal("queued application was not picked up")
	}
}

func TestWorker_StopIsIdempotent(t *testing.T) {
	f := newApplicationFixture()
	w := NewWorker(f.apps, f.scorer(), 1, time.Hour, zap.NewNop())
	w.Start(context.Background())

	w.Stop()
	w.Stop()

	// Enqueueing after stop must not block, panic or park ids in the queue.
	for i := 0; i < 50; i++ {
		w.EnqueueApplication(uuid.New())
	}

	stopped := w.(*worker)
	assert.Len(t, stopped.jobQueue, 0)
	stopped.mu.Lock()
	assert.Empty(t, stopped.pending)
	stopped.mu.Unlock()
}
