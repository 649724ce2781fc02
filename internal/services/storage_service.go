package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string // e.g. https://cdn.example.com/bucket
}

type StorageServiceInterface interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type StorageService struct {
	cfg    StorageConfig
	client *minio.Client
}

func NewStorageService(cfg StorageConfig) (StorageServiceInterface, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &StorageService{cfg: cfg, client: client}, nil
}

var allowedImageExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// UploadImage stores the file under a random object name and returns
// the public URL.
func (s *StorageService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := allowedImageExt[ext]
	if !ok {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectName := uuid.New().String() + ext
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, objectName, src, file.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("object storage: %w", err)
	}

	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + objectName, nil
}
