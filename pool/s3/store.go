package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/seedselect/pool"
)

// Client is the subset of the S3 API used by Store.
type Client interface {
	manager.DownloadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// Store implements pool.Store for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	partSize int64
}

// Option configures New.
type Option func(*storeOptions)

type storeOptions struct {
	prefix   string
	region   string
	partSize int64
}

// WithPrefix sets the key prefix prepended to all pool names.
func WithPrefix(prefix string) Option {
	return func(o *storeOptions) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the default AWS configuration.
func WithRegion(region string) Option {
	return func(o *storeOptions) {
		o.region = region
	}
}

// WithPartSize sets the ranged download part size in bytes.
// Values below the transfer manager minimum are ignored.
func WithPartSize(size int64) Option {
	return func(o *storeOptions) {
		o.partSize = size
	}
}

// New creates a Store using the default AWS credential chain.
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	var o storeOptions
	for _, fn := range optFns {
		fn(&o)
	}

	var cfgOpts []func(*config.LoadOptions) error
	if o.region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(o.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, err
	}

	s := NewStore(s3.NewFromConfig(cfg), bucket, o.prefix)
	if o.partSize >= manager.MinUploadPartSize {
		s.partSize = o.partSize
	}
	return s, nil
}

// NewStore creates a new S3 pool store.
// rootPrefix is prepended to all keys (e.g. "pools/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client:   client,
		bucket:   bucket,
		prefix:   rootPrefix,
		partSize: manager.DefaultDownloadPartSize,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open downloads the pool object and returns a reader over its contents.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, pool.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, pool.ErrNotFound
		}
		return nil, err
	}

	size := aws.ToInt64(head.ContentLength)
	if size == 0 {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}

	buf := manager.NewWriteAtBuffer(make([]byte, 0, size))
	downloader := manager.NewDownloader(s.client, func(d *manager.Downloader) {
		d.PartSize = s.partSize
	})

	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}
