package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/repositories"
)

const queueSize = 100

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueApplication(appID uuid.UUID)
}

type worker struct {
	appRepo      repositories.ApplicationRepository
	scorer       ApplicationScorer
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	log          *zap.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]struct{}

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewWorker(
	appRepo repositories.ApplicationRepository,
	scorer ApplicationScorer,
	concurrency int,
	pollInterval time.Duration,
	log *zap.Logger,
) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	return &worker{
		appRepo:      appRepo,
		scorer:       scorer,
		jobQueue:     make(chan uuid.UUID, queueSize),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		log:          log,
		pending:      make(map[uuid.UUID]struct{}),
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.Info("🚀 Starting worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processApplications(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollQueued(ctx)
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.log.Info("🛑 Stopping worker...")
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("✅ Worker stopped")
	})
}

// EnqueueApplication implements Worker. It never blocks: when the queue is
// full the application stays queued in the database for the poller.
func (w *worker) EnqueueApplication(appID uuid.UUID) {
	w.mu.Lock()
	if _, ok := w.pending[appID]; ok {
		w.mu.Unlock()
		return
	}
	w.pending[appID] = struct{}{}
	w.mu.Unlock()

	select {
	case <-w.stopChan:
		w.done(appID)
		w.log.Warn("worker stopped, cannot enqueue application", zap.String("application_id", appID.String()))
		return
	default:
	}

	select {
	case w.jobQueue <- appID:
		w.log.Debug("📥 Application enqueued", zap.String("application_id", appID.String()))
	default:
		w.done(appID)
		w.log.Warn("queue full, leaving application for the poller", zap.String("application_id", appID.String()))
	}
}

func (w *worker) done(appID uuid.UUID) {
	w.mu.Lock()
	delete(w.pending, appID)
	w.mu.Unlock()
}

func (w *worker) processApplications(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.log.Debug("worker stopped", zap.Int("worker", workerID))
			return
		case <-ctx.Done():
			return
		case appID := <-w.jobQueue:
			if err := w.scorer.ScoreApplication(ctx, appID); err != nil {
				w.log.Error("❌ Failed to score application",
					zap.Int("worker", workerID),
					zap.String("application_id", appID.String()),
					zap.Error(err),
				)
			}
			w.done(appID)
		}
	}
}

func (w *worker) pollQueued(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			queued, err := w.appRepo.FindQueued(ctx, 10)
			if err != nil {
				w.log.Warn("⚠️  Failed to fetch queued applications", zap.Error(err))
				continue
			}

			if len(queued) > 0 {
				w.log.Info("📋 Found queued applications", zap.Int("count", len(queued)))
			}

			for _, app := range queued {
				w.EnqueueApplication(app.ID)
			}
		}
	}
}
