// Package storage provides object storage adapters for course documents.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	appcfg "github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// s3API is the subset of the S3 client used by the store. Tests substitute a
// fake implementation.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3DocumentStore implements service.DocumentStore backed by an S3 bucket.
type s3DocumentStore struct {
	client    s3API
	bucket    string
	keyPrefix string
	publicURL string
}

// NewS3DocumentStore builds the store from the application config. Credentials
// come from the default AWS provider chain; BaseEndpoint supports
// S3-compatible stores such as MinIO.
func NewS3DocumentStore(cfg *appcfg.Config) (service.DocumentStore, error) {
	docs := cfg.Documents
	if docs == nil || docs.Bucket == "" {
		return nil, errors.New("documents bucket must be configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(docs.Region),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if docs.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(docs.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := docs.BaseEndpoint
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", docs.Bucket)
	} else {
		publicURL = strings.TrimSuffix(publicURL, "/") + "/" + docs.Bucket
	}

	return &s3DocumentStore{
		client:    client,
		bucket:    docs.Bucket,
		keyPrefix: strings.Trim(docs.KeyPrefix, "/"),
		publicURL: publicURL,
	}, nil
}

// Upload writes the object and returns its public address. The address embeds
// the object key so Remove can recover it later.
func (s *s3DocumentStore) Upload(ctx context.Context, name string, body io.Reader) (string, error) {
	key := path.Base(name)
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload document")
	}

	return s.publicURL + "/" + key, nil
}

// Remove deletes the object addressed by a URL previously returned by Upload.
// Addresses outside this store's bucket are rejected.
func (s *s3DocumentStore) Remove(ctx context.Context, address string) error {
	key, ok := strings.CutPrefix(address, s.publicURL+"/")
	if !ok || key == "" {
		return errors.Errorf("address %q does not belong to this store", address)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove document")
	}

	return nil
}
