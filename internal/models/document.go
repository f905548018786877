package models

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	DocumentTypePDF     DocumentType = "pdf"
	DocumentTypeDOCX    DocumentType = "docx"
	DocumentTypeUnknown DocumentType = ""
)

// DocumentTypeFromName derives the media type from a file name or storage key.
func DocumentTypeFromName(name string) DocumentType {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return DocumentTypePDF
	case ".docx":
		return DocumentTypeDOCX
	default:
		return DocumentTypeUnknown
	}
}

// RawDocument is an uploaded resume held in memory for a single extraction.
type RawDocument struct {
	Filename string
	Type     DocumentType
	Data     []byte
}

func NewRawDocument(filename string, data []byte) *RawDocument {
	return &RawDocument{
		Filename: filename,
		Type:     DocumentTypeFromName(filename),
		Data:     data,
	}
}

type Document struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string       `gorm:"type:text" json:"filename"`
	OriginalFileName string       `gorm:"type:text" json:"original_filename"`
	MediaType        DocumentType `gorm:"type:text" json:"media_type"`
	StorageKey       string       `gorm:"type:text" json:"storage_key"`
	CreatedAt        time.Time    `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (d *Document) TableName() string {
	return "documents"
}
