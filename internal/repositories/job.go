package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-matcher/internal/models"
)

// JobRepository is the read side of the job store used for matching.
// Create exists for seeding; job management lives elsewhere.
type JobRepository interface {
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindActive(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// FindByID implements JobRepository. A malformed id resolves to ErrNotFound.
func (r *jobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", id, ErrNotFound)
	}

	var job models.Job
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return &job, nil
}

// FindActive implements JobRepository. Jobs come back in creation order.
func (r *jobRepository) FindActive(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("status = ?", models.JobStatusActive).
		Order("created_at ASC").
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find active jobs: %w", err)
	}

	return jobs, nil
}

// Create implements JobRepository.
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}

	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}
