package storage_fx

import (
	"os"

	"go.uber.org/fx"

	"phka/internal/services"
)

var Module = fx.Provide(provideStorageService)

func provideStorageService() (services.StorageServiceInterface, error) {
	return services.NewStorageService(services.StorageConfig{
		Endpoint:      os.Getenv("S3_ENDPOINT"),
		AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		SecretKey:     os.Getenv("S3_SECRET_KEY"),
		Bucket:        os.Getenv("S3_BUCKET"),
		UseSSL:        os.Getenv("S3_USE_SSL") == "true",
		PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	})
}
