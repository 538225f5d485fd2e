package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	putInput    *s3.PutObjectInput
	deleteInput *s3.DeleteObjectInput
	putErr      error
	deleteErr   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = params
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func newTestStore(fake *fakeS3) *s3DocumentStore {
	return &s3DocumentStore{
		client:    fake,
		bucket:    "course-docs",
		keyPrefix: "documents",
		publicURL: "https://course-docs.s3.amazonaws.com",
	}
}

func TestS3DocumentStore_UploadBuildsAddress(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	address, err := store.Upload(context.Background(), "syllabus.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.Equal(t, "https://course-docs.s3.amazonaws.com/documents/syllabus.pdf", address)
	require.NotNil(t, fake.putInput)
	assert.Equal(t, "course-docs", aws.ToString(fake.putInput.Bucket))
	assert.Equal(t, "documents/syllabus.pdf", aws.ToString(fake.putInput.Key))

	body, err := io.ReadAll(fake.putInput.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
}

func TestS3DocumentStore_UploadStripsPathSegments(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	_, err := store.Upload(context.Background(), "../../etc/syllabus.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, "documents/syllabus.pdf", aws.ToString(fake.putInput.Key))
}

func TestS3DocumentStore_RemoveRecoversKey(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	err := store.Remove(context.Background(), "https://course-docs.s3.amazonaws.com/documents/syllabus.pdf")
	require.NoError(t, err)

	require.NotNil(t, fake.deleteInput)
	assert.Equal(t, "documents/syllabus.pdf", aws.ToString(fake.deleteInput.Key))
}

func TestS3DocumentStore_RemoveRejectsForeignAddress(t *testing.T) {
	fake := &fakeS3{}
	store := newTestStore(fake)

	err := store.Remove(context.Background(), "https://other-bucket.s3.amazonaws.com/doc.pdf")
	assert.Error(t, err)
	assert.Nil(t, fake.deleteInput)
}
