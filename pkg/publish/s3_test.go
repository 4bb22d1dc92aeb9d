package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-pathtracer/pkg/core"
)

// fakeS3 records PutObject calls
type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("upload without deadline")
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func validConfig() S3Config {
	return S3Config{
		Region:    "us-east-1",
		Bucket:    "renders",
		AccessKey: "key",
		SecretKey: "secret",
	}
}

func TestS3Config_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *S3Config)
		missing []string
	}{
		{"complete", func(c *S3Config) {}, nil},
		{"endpoint is optional", func(c *S3Config) { c.Endpoint = "" }, nil},
		{"missing bucket", func(c *S3Config) { c.Bucket = "" }, []string{"S3_BUCKET"}},
		{"missing credentials", func(c *S3Config) { c.AccessKey, c.SecretKey = "", "" }, []string{"S3_ACCESS_KEY", "S3_SECRET_KEY"}},
		{"empty", func(c *S3Config) { *c = S3Config{} }, []string{"S3_BUCKET", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)

			err := config.Validate()
			if len(tt.missing) == 0 {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			for _, name := range tt.missing {
				if !strings.Contains(err.Error(), name) {
					t.Errorf("Expected %s in error %q", name, err)
				}
			}
		})
	}
}

func TestS3ConfigFromEnv(t *testing.T) {
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_BUCKET", "bucket")
	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")
	t.Setenv("S3_PREFIX", "renders/")

	expected := S3Config{
		Endpoint:  "http://localhost:9000",
		Region:    "eu-west-1",
		Bucket:    "bucket",
		AccessKey: "ak",
		SecretKey: "sk",
		Prefix:    "renders/",
	}
	if got := S3ConfigFromEnv(); got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestNewS3Uploader_RejectsInvalidConfig(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{}, core.NopLogger{}); err == nil {
		t.Error("Expected error for empty config")
	}

	config := validConfig()
	config.Endpoint = "http://localhost:9000"
	if _, err := NewS3Uploader(config, core.NopLogger{}); err != nil {
		t.Errorf("Expected uploader for valid config, got %v", err)
	}
}

func TestS3Uploader_Key(t *testing.T) {
	tests := []struct {
		prefix   string
		expected string
	}{
		{"", "render.png"},
		{"renders", "renders/render.png"},
		{"/renders/2024/", "renders/2024/render.png"},
	}

	for _, tt := range tests {
		config := validConfig()
		config.Prefix = tt.prefix
		uploader := newS3Uploader(&fakeS3{}, config, core.NopLogger{})
		if got := uploader.Key("render.png"); got != tt.expected {
			t.Errorf("Key with prefix %q = %q, expected %q", tt.prefix, got, tt.expected)
		}
	}
}

func TestS3Uploader_UploadFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "render.png")
	if err := os.WriteFile(filename, []byte("png bytes"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	client := &fakeS3{}
	config := validConfig()
	config.Prefix = "out"
	uploader := newS3Uploader(client, config, core.NopLogger{})

	key, err := uploader.UploadFile(context.Background(), filename)
	if err != nil {
		t.Fatalf("UploadFile failed: %v", err)
	}
	if key != "out/render.png" {
		t.Errorf("Expected key out/render.png, got %s", key)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("Expected 1 PutObject call, got %d", len(client.inputs))
	}
	input := client.inputs[0]
	if aws.StringValue(input.Bucket) != "renders" || aws.StringValue(input.ContentType) != "image/png" {
		t.Errorf("Unexpected bucket/content type: %s %s", aws.StringValue(input.Bucket), aws.StringValue(input.ContentType))
	}
	if aws.Int64Value(input.ContentLength) != 9 || string(client.bodies[0]) != "png bytes" {
		t.Errorf("Unexpected body %q (length %d)", client.bodies[0], aws.Int64Value(input.ContentLength))
	}
}

func TestS3Uploader_UploadErrors(t *testing.T) {
	uploader := newS3Uploader(&fakeS3{err: errors.New("access denied")}, validConfig(), core.NopLogger{})

	if _, err := uploader.Upload(context.Background(), []byte("x"), "a.png", "image/png"); err == nil || !strings.Contains(err.Error(), "access denied") {
		t.Errorf("Expected wrapped client error, got %v", err)
	}
	if _, err := uploader.UploadFile(context.Background(), filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := map[string]string{
		"a.png":  "image/png",
		"a.JPG":  "image/jpeg",
		"a.ppm":  "image/x-portable-pixmap",
		"a.zzzz": "application/octet-stream",
	}
	for filename, expected := range tests {
		if got := contentTypeFor(filename); got != expected {
			t.Errorf("contentTypeFor(%q) = %q, expected %q", filename, got, expected)
		}
	}
}
