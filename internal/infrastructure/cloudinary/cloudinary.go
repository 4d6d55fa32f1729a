// Package cloudinary uploads pet profile images to Cloudinary and returns
// their hosted URLs.
package cloudinary

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Config holds Cloudinary credentials
type Config struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
}

// NewConfigFromEnv reads Cloudinary credentials from the environment. All
// three credential variables are required.
func NewConfigFromEnv() (*Config, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("missing required Cloudinary environment variables (CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET)")
	}

	uploadFolder := os.Getenv("CLOUDINARY_UPLOAD_FOLDER")
	if uploadFolder == "" {
		uploadFolder = "rifq-petcare"
	}

	return &Config{
		CloudName:    cloudName,
		APIKey:       apiKey,
		APISecret:    apiSecret,
		UploadFolder: uploadFolder,
	}, nil
}

// Service uploads images
type Service struct {
	cld          *cloudinary.Cloudinary
	uploadFolder string
}

// NewService creates a Cloudinary upload service
func NewService(config *Config) (*Service, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &Service{
		cld:          cld,
		uploadFolder: config.UploadFolder,
	}, nil
}

// UploadPetImage uploads a pet photo and returns its secure URL. The image is
// stored under the configured folder, keyed by pet id so re-uploads replace
// the previous photo.
func (s *Service) UploadPetImage(ctx context.Context, petID string, file io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.uploadFolder + "/pets",
		PublicID:       petID,
		Overwrite:      api.Bool(true),
		UniqueFilename: api.Bool(false),
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload pet image: %w", err)
	}
	return result.SecureURL, nil
}
