package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusQueued     ApplicationStatus = "queued"
	StatusProcessing ApplicationStatus = "processing"
	StatusCompleted  ApplicationStatus = "completed"
	StatusFailed     ApplicationStatus = "failed"
)

type Application struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"job_id"`
	DocumentID     uuid.UUID         `gorm:"type:uuid;not null" json:"document_id"`
	CandidateName  string            `gorm:"type:text" json:"candidate_name"`
	CandidateEmail string            `gorm:"type:text" json:"candidate_email"`
	Status         ApplicationStatus `gorm:"not null;default:'queued'" json:"status"`
	AIScore        *int              `gorm:"type:integer" json:"ai_score,omitempty"`
	AIReasons      []string          `gorm:"serializer:json;type:jsonb" json:"ai_reasons,omitempty"`
	MatchedSkills  []string          `gorm:"serializer:json;type:jsonb" json:"matched_skills,omitempty"`
	ErrorMessage   *string           `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// JobID is not a foreign key: jobs may live in the document store.
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
