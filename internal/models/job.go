package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Company     string    `gorm:"type:text" json:"company"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"type:text" json:"location"`
	// Skills is the recruiter's comma separated list, stored as typed.
	Skills    string    `gorm:"type:text;not null;default:''" json:"skills"`
	Status    JobStatus `gorm:"type:text;not null;default:'active';index" json:"status"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// SkillProfile splits the declared skills into trimmed, lowercased tokens.
// A job without skills returns an empty, non-nil slice.
func (j *Job) SkillProfile() []string {
	return ParseSkillList(j.Skills)
}

func ParseSkillList(raw string) []string {
	profile := []string{}
	seen := make(map[string]struct{})

	for _, part := range strings.Split(raw, ",") {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		profile = append(profile, skill)
	}

	return profile
}
