package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alfredoptarigan/resume-matcher/internal/models"
)

// jobDocument is the stored shape of a job in MongoDB. The id is kept as a
// uuid string so both stores hand out the same identifiers.
type jobDocument struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Company     string    `bson:"company"`
	Description string    `bson:"description,omitempty"`
	Location    string    `bson:"location,omitempty"`
	Skills      string    `bson:"skills,omitempty"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d jobDocument) toModel() (models.Job, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.Job{}, fmt.Errorf("job _id %q is not a uuid: %w", d.ID, err)
	}
	return models.Job{
		ID:          id,
		Title:       d.Title,
		Company:     d.Company,
		Description: d.Description,
		Location:    d.Location,
		Skills:      d.Skills,
		Status:      models.JobStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

// toModels converts stored jobs, skipping documents written outside this
// repository whose _id is not a uuid.
func toModels(docs []jobDocument) []models.Job {
	jobs := make([]models.Job, 0, len(docs))
	for _, doc := range docs {
		job, err := doc.toModel()
		if err != nil {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs
}

type mongoJobRepository struct {
	collection *mongo.Collection
}

func NewMongoJobRepository(db *mongo.Database) JobRepository {
	return &mongoJobRepository{collection: db.Collection("jobs")}
}

// FindByID implements JobRepository.
func (r *mongoJobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", id, ErrNotFound)
	}

	var doc jobDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": jobID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	job, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindActive implements JobRepository.
func (r *mongoJobRepository) FindActive(ctx context.Context) ([]models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"status": string(models.JobStatusActive)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find active jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []jobDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode active jobs: %w", err)
	}

	return toModels(docs), nil
}

// Create implements JobRepository.
func (r *mongoJobRepository) Create(ctx context.Context, job *models.Job) error {
	now := time.Now()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	doc := jobDocument{
		ID:          job.ID.String(),
		Title:       job.Title,
		Company:     job.Company,
		Description: job.Description,
		Location:    job.Location,
		Skills:      job.Skills,
		Status:      string(job.Status),
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}
