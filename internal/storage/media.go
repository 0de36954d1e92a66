package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"resto-backend/internal/config"
)

// MediaStore uploads menu-item images to R2 (S3-compatible) storage.
// A nil MediaStore is valid and means media storage is not configured;
// uploads then fail with a clear error instead of panicking.
type MediaStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewMediaStore(cfg *config.Config) *MediaStore {
	if cfg.Media.Endpoint == "" || cfg.Media.AccessKey == "" {
		log.Println("[Media] R2 credentials not set, image uploads disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Media.AccessKey,
			cfg.Media.SecretKey,
			"",
		)),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		log.Printf("[Media] Failed to configure R2 client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Media.Endpoint)
	})

	return &MediaStore{
		client:    client,
		bucket:    cfg.Media.Bucket,
		publicURL: cfg.Media.PublicURL,
	}
}

// UploadMenuImage stores an image under menu/{restaurantID}/{itemID} and
// returns the public URL to save on the menu item.
func (m *MediaStore) UploadMenuImage(ctx context.Context, restaurantID, itemID string, data []byte, contentType string) (string, error) {
	if m == nil {
		return "", fmt.Errorf("media storage not configured")
	}

	key := fmt.Sprintf("menu/%s/%s", restaurantID, itemID)
	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s", m.publicURL, key), nil
}
