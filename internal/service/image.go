package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Nirvaan05/Ez-Cooking/config"
)

// UploadService stores uploaded recipe images. Files always land in the
// local uploads directory (the vision call reads them from disk); when an
// S3 bucket is configured a copy is put there and its object URL is served
// back instead of the local relative URL.
type UploadService struct {
	dir     string
	maxSize int64
	allowed map[string]bool
	s3      *config.S3Config
}

// NewUploadService creates a new UploadService instance
func NewUploadService(cfg *config.Config, s3cfg *config.S3Config) *UploadService {
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}
	return &UploadService{
		dir:     cfg.UploadDir,
		maxSize: cfg.MaxUploadSize,
		allowed: allowed,
		s3:      s3cfg,
	}
}

// Allowed reports whether the filename carries a permitted image extension
func (s *UploadService) Allowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	return ext != "" && s.allowed[ext]
}

// MaxSize returns the configured upload size limit in bytes
func (s *UploadService) MaxSize() int64 {
	return s.maxSize
}

// Save writes the uploaded file under a sanitized unique filename and
// returns the local path plus the URL to serve it from.
func (s *UploadService) Save(ctx context.Context, file *multipart.FileHeader) (localPath, publicURL string, err error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	name := uuid.New().String() + "_" + SecureFilename(file.Filename)
	localPath = filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(localPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	publicURL = "/uploads/" + name

	if s.s3 != nil {
		if url, err := s.putS3(ctx, localPath, name); err != nil {
			// Local copy is intact; fall back to serving it directly
			log.Printf("[UploadService] S3 upload failed, serving local copy: %v", err)
		} else {
			publicURL = url
		}
	}

	return localPath, publicURL, nil
}

func (s *UploadService) putS3(ctx context.Context, localPath, name string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := "uploads/" + name
	_, err = s.s3.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.s3.BucketName),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", err
	}

	return s.s3.ObjectURL(key), nil
}

// SecureFilename strips path components and reduces the name to a safe
// character set.
func SecureFilename(filename string) string {
	base := filepath.Base(filename)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "._")
	if name == "" {
		name = "upload"
	}
	return name
}
