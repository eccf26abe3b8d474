package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	errorvalues "github.com/rpillai/daytrack/internal/error_values"
	"github.com/rpillai/daytrack/pkg/entity"
)

// MaxFileSize caps uploads to the external backend at 10 MiB.
const MaxFileSize = 10 << 20

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/jpg":          {},
	"image/png":          {},
	"image/gif":          {},
	"image/webp":         {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Backend streams bytes to an S3 bucket and serves them back through a
// public base URL (the bucket endpoint or a CDN in front of it).
type S3Backend struct {
	client    ObjectClient
	bucket    string
	publicURL string
}

func NewS3Backend(client ObjectClient, bucket, publicURL string) *S3Backend {
	return &S3Backend{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}
}

// Store validates the declared MIME type and the byte size before any
// network call, then uploads under a unique key inside folder.
func (sb *S3Backend) Store(ctx context.Context, data []byte, mimeType, folder string) (entity.BlobRef, error) {
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return entity.BlobRef{}, errorvalues.ErrFileTypeNotAllowed
	}
	if len(data) > MaxFileSize {
		return entity.BlobRef{}, errorvalues.ErrFileTooLarge
	}

	ext := mimetype.Detect(data).Extension()
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	_, err := sb.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(sb.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return entity.BlobRef{}, errors.New("uploading blob to s3 error: " + err.Error())
	}

	return entity.BlobRef{
		URL: fmt.Sprintf("%s/%s", sb.publicURL, key),
		Key: key,
	}, nil
}

func (sb *S3Backend) Destroy(ctx context.Context, ref entity.BlobRef) error {
	if ref.Key == "" {
		return nil
	}
	_, err := sb.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(sb.bucket),
		Key:    aws.String(ref.Key),
	})
	if err != nil {
		return errors.New("deleting blob from s3 error: " + err.Error())
	}
	return nil
}
