package cli

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/hupe1980/seedselect/pool"
	miniopool "github.com/hupe1980/seedselect/pool/minio"
	s3pool "github.com/hupe1980/seedselect/pool/s3"
)

// S3Flags configure s3:// pool locations.
type S3Flags struct {
	Region string `env:"SEEDSELECT_S3_REGION" help:"AWS region override"`
}

// MinioFlags configure minio:// pool locations.
type MinioFlags struct {
	Endpoint  string `default:"localhost:9000" env:"SEEDSELECT_MINIO_ENDPOINT" help:"MinIO endpoint (host:port)"`
	AccessKey string `env:"SEEDSELECT_MINIO_ACCESS_KEY" help:"MinIO access key"`
	SecretKey string `env:"SEEDSELECT_MINIO_SECRET_KEY" help:"MinIO secret key"`
	Secure    bool   `env:"SEEDSELECT_MINIO_SECURE" help:"Use TLS"`
}

// openStore resolves a pool location into a store and the pool name within it.
func openStore(ctx context.Context, location string, s3f *S3Flags, mf *MinioFlags) (pool.Store, string, error) {
	scheme, rest, ok := strings.Cut(location, "://")
	if !ok {
		return pool.NewLocalStore(filepath.Dir(location)), filepath.Base(location), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("pool location %q: %w", location, err)
	}

	switch scheme {
	case "file":
		return pool.NewLocalStore(filepath.Dir(rest)), filepath.Base(rest), nil
	case "s3", "minio":
	default:
		return nil, "", fmt.Errorf("pool location %q: unsupported scheme %q", location, scheme)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, "", fmt.Errorf("pool location %q: want %s://bucket/key", location, scheme)
	}

	if scheme == "s3" {
		var opts []s3pool.Option
		if s3f.Region != "" {
			opts = append(opts, s3pool.WithRegion(s3f.Region))
		}
		store, err := s3pool.New(ctx, u.Host, opts...)
		if err != nil {
			return nil, "", err
		}
		return store, key, nil
	}

	store, err := miniopool.Dial(mf.Endpoint, mf.AccessKey, mf.SecretKey, mf.Secure, u.Host, "")
	if err != nil {
		return nil, "", err
	}
	return store, key, nil
}
