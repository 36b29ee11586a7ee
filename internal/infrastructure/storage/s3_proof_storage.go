package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"phicoffee/internal/usecase/interfaces"
)

const proofKeyPrefix = "payment-proofs/"

// S3ProofStorage stores payment proof images in an S3 bucket and hands back
// the public URL the client submits with the order. There is no compensating
// delete if the later sheet append fails; the proof stays orphaned.
type S3ProofStorage struct {
	client    *s3.Client
	bucket    string
	region    string
	publicURL string
}

var _ interfaces.IProofStorage = (*S3ProofStorage)(nil)

// NewS3ProofStorageFromEnv creates the storage using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000)
//   - PAYMENT_PROOFS_BUCKET (default: payment-proofs)
//   - S3_PUBLIC_URL (optional; public base URL when serving behind an endpoint)
func NewS3ProofStorageFromEnv(ctx context.Context) (*S3ProofStorage, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("S3_ENDPOINT")

	// Local object stores do not validate credentials, but the AWS SDK
	// requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ProofStorage{
		client:    client,
		bucket:    getenvDefault("PAYMENT_PROOFS_BUCKET", "payment-proofs"),
		region:    region,
		publicURL: strings.TrimRight(os.Getenv("S3_PUBLIC_URL"), "/"),
	}, nil
}

func (s *S3ProofStorage) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	key := proofKeyPrefix + fileName
	log.Printf("[proof][storage] upload start key=%s content_type=%s", key, contentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[proof][storage] upload failed key=%s err=%v", key, err)
		return "", err
	}

	url := s.objectURL(key)
	log.Printf("[proof][storage] upload success key=%s url=%s", key, url)
	return url, nil
}

func (s *S3ProofStorage) objectURL(key string) string {
	if s.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
