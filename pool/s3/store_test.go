package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/seedselect/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func objectOutput(data []byte) *s3.GetObjectOutput {
	n := int64(len(data))
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(n),
		ContentRange:  aws.String(fmt.Sprintf("bytes 0-%d/%d", n-1, n)),
	}
}

func TestStore_Open(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "prefix")

	t.Run("NotFound", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "prefix/foo"
		})).Return(nil, &types.NotFound{}).Once()

		_, err := store.Open(context.Background(), "foo")
		assert.Equal(t, pool.ErrNotFound, err)
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
			return *input.Key == "prefix/gone"
		})).Return(nil, &types.NoSuchKey{}).Once()

		_, err := store.Open(context.Background(), "gone")
		assert.ErrorIs(t, err, pool.ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		var data bytes.Buffer
		ids := [][]byte{[]byte("peer1"), []byte("peer2"), []byte("peer3")}
		require.NoError(t, pool.Encode(&data, ids, pool.FormatLines, pool.CompressionLZ4))

		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "prefix/bar"
		})).Return(&s3.HeadObjectOutput{
			ContentLength: aws.Int64(int64(data.Len())),
		}, nil).Once()
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "prefix/bar"
		})).Return(objectOutput(data.Bytes()), nil).Once()

		got, err := pool.Load(context.Background(), store, "bar", pool.FormatLines)
		require.NoError(t, err)
		assert.Equal(t, ids, got)
	})

	t.Run("Empty", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(input *s3.HeadObjectInput) bool {
			return *input.Key == "prefix/empty"
		})).Return(&s3.HeadObjectOutput{ContentLength: aws.Int64(0)}, nil).Once()

		rc, err := store.Open(context.Background(), "empty")
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Empty(t, b)
	})

	mockClient.AssertExpectations(t)
}

func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("Skipping S3 integration test: S3_BUCKET not set")
	}
	name := os.Getenv("S3_POOL")
	if name == "" {
		t.Skip("Skipping S3 integration test: S3_POOL not set")
	}

	ctx := context.Background()
	store, err := New(ctx, bucket, WithPrefix(os.Getenv("S3_PREFIX")))
	require.NoError(t, err)

	ids, err := pool.Load(ctx, store, name, pool.FormatLines)
	require.NoError(t, err)
	assert.NotEmpty(t, ids)
}
