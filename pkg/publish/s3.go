package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/core"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

// S3Config holds the settings for an S3-compatible bucket
type S3Config struct {
	Endpoint  string // Optional custom endpoint (MinIO, R2, Spaces); empty uses AWS
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix for uploaded renders
}

// S3ConfigFromEnv reads the S3_* environment variables
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Prefix:    os.Getenv("S3_PREFIX"),
	}
}

// Validate reports every missing required setting
func (c S3Config) Validate() error {
	var errs []error
	if c.Bucket == "" {
		errs = append(errs, errors.New("S3_BUCKET is not set"))
	}
	if c.Region == "" {
		errs = append(errs, errors.New("S3_REGION is not set"))
	}
	if c.AccessKey == "" {
		errs = append(errs, errors.New("S3_ACCESS_KEY is not set"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("S3_SECRET_KEY is not set"))
	}
	return errors.Join(errs...)
}

// S3Uploader publishes rendered images to a bucket
type S3Uploader struct {
	client s3iface.S3API
	config S3Config
	logger core.Logger
}

// NewS3Uploader creates an uploader from a validated config
func NewS3Uploader(config S3Config, logger core.Logger) (*S3Uploader, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid S3 configuration: %w", err)
	}

	awsConfig := &aws.Config{
		Credentials: credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Region:      aws.String(config.Region),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return newS3Uploader(s3.New(sess), config, logger), nil
}

func newS3Uploader(client s3iface.S3API, config S3Config, logger core.Logger) *S3Uploader {
	return &S3Uploader{client: client, config: config, logger: logger}
}

// Key returns the object key for name under the configured prefix
func (u *S3Uploader) Key(name string) string {
	prefix := strings.Trim(u.config.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Upload stores data under name and returns the object key
func (u *S3Uploader) Upload(ctx context.Context, data []byte, name, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(name)
	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.config.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	u.logger.Printf("Uploaded %s to s3://%s (%d bytes)\n", key, u.config.Bucket, size)
	return key, nil
}

// UploadFile uploads a file from disk, keyed by its base name
func (u *S3Uploader) UploadFile(ctx context.Context, filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return u.Upload(ctx, data, filepath.Base(filename), contentTypeFor(filename))
}

// contentTypeFor guesses a MIME type from the file extension
func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".ppm" {
		return "image/x-portable-pixmap"
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
