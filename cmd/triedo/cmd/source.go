package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/triedo/blobstore"
	"github.com/hupe1980/triedo/blobstore/minio"
	"github.com/hupe1980/triedo/blobstore/s3"
	"github.com/hupe1980/triedo/config"
)

// parseSource splits "scheme://bucket/prefix". A source without a scheme is
// a local directory and yields an empty scheme.
func parseSource(source string) (scheme, bucket, prefix string, err error) {
	scheme, rest, ok := strings.Cut(source, "://")
	if !ok {
		return "", "", source, nil
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", "", fmt.Errorf("source %q: missing bucket", source)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return scheme, bucket, prefix, nil
}

// openSource returns the blob store batch jobs are read from and written to.
func openSource(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	scheme, bucket, prefix, err := parseSource(cfg.Batch.Source)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case "":
		return blobstore.NewLocalStore(prefix), nil
	case "s3":
		var opts []s3.Option
		opts = append(opts, s3.WithPrefix(prefix))
		if cfg.S3.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.S3.Endpoint))
		}
		return s3.New(ctx, bucket, opts...)
	case "minio":
		if cfg.Minio.Endpoint == "" {
			return nil, fmt.Errorf("source %q: minio.endpoint is not configured", cfg.Batch.Source)
		}
		return minio.Dial(minio.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			UseSSL:    cfg.Minio.UseSSL,
			Region:    cfg.Minio.Region,
			Bucket:    bucket,
			Prefix:    prefix,
		})
	default:
		return nil, fmt.Errorf("source %q: unsupported scheme %q (want s3 or minio)", cfg.Batch.Source, scheme)
	}
}
