package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileReader yields the raw bytes of a stored file.
type FileReader interface {
	ReadFile(ctx context.Context, key string) ([]byte, error)
}

type StorageService interface {
	FileReader
	SaveFile(ctx context.Context, file *multipart.FileHeader, prefix string) (filename string, key string, err error)
	DeleteFile(ctx context.Context, key string) error
	EnsureReady(ctx context.Context) error
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// uniqueFilename validates the upload's extension and returns a collision-free name.
func uniqueFilename(original, prefix string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: invalid file extension %q, only .pdf and .docx are accepted", ErrValidation, ext)
	}

	return fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext), nil
}

type localStorage struct {
	uploadPath string
}

func NewLocalStorage(uploadPath string) StorageService {
	return &localStorage{
		uploadPath: uploadPath,
	}
}

func (s *localStorage) EnsureReady(_ context.Context) error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *localStorage) SaveFile(_ context.Context, file *multipart.FileHeader, prefix string) (string, string, error) {
	filename, err := uniqueFilename(file.Filename, prefix)
	if err != nil {
		return "", "", err
	}

	// Open source file
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Create destination file
	dst, err := os.Create(s.path(filename))
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	// Copy file
	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	// Local keys are the bare file name.
	return filename, filename, nil
}

func (s *localStorage) ReadFile(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (s *localStorage) DeleteFile(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// path confines keys to the upload directory.
func (s *localStorage) path(key string) string {
	return filepath.Join(s.uploadPath, filepath.Base(key))
}
