package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const publicBaseURL = "https://storage.googleapis.com"

// imageExtensions lists the reference image types accepted for upload.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func IsSupportedImage(contentType string) bool {
	_, ok := imageExtensions[contentType]
	return ok
}

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadReferenceImage stores an inspiration image for a project request and
// returns its public URL.
func (c *CloudStorageClient) UploadReferenceImage(ctx context.Context, requestID, contentType string, file io.Reader) (string, error) {
	name := referenceObjectName(requestID, contentType, uuid.NewString(), time.Now())

	obj := c.client.Bucket(c.bucketName).Object(name)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %w", err)
	}

	return publicURL(c.bucketName, name), nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

func referenceObjectName(requestID, contentType, unique string, now time.Time) string {
	ext, ok := imageExtensions[contentType]
	if !ok {
		ext = ".bin"
	}
	return fmt.Sprintf("public/requests/%s/%s-%s%s", requestID, unique, now.UTC().Format("20060102150405"), ext)
}

func publicURL(bucket, object string) string {
	return fmt.Sprintf("%s/%s/%s", publicBaseURL, bucket, object)
}
