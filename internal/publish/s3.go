package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cruciblehq/relpack/internal/config"
	"github.com/cruciblehq/relpack/internal/fault"
)

// The subset of the S3 client the publisher needs.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploads files to a bucket under a fixed key prefix.
type S3 struct {
	client Uploader // S3 API client.
	bucket string   // Destination bucket.
	prefix string   // Key prefix, without leading or trailing slashes.
}

// Creates an [S3] publisher from the publish settings.
//
// The AWS configuration is loaded from the default chain; a non-empty region
// or endpoint in cfg overrides it.
func NewS3(ctx context.Context, cfg config.Publish) (*S3, error) {
	if !cfg.Enabled() {
		return nil, fault.Wrapf(ErrPublish, "no bucket configured")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fault.Wrap(ErrPublish, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.PathStyle
	})

	return NewS3WithClient(client, cfg), nil
}

// Creates an [S3] publisher that uploads through client.
func NewS3WithClient(client Uploader, cfg config.Publish) *S3 {
	return &S3{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
	}
}

// Returns the object key for a file name.
func (p *S3) Key(name string) string {
	if p.prefix == "" {
		return name
	}
	return path.Join(p.prefix, name)
}

// Uploads the file at file under its base name and returns its s3:// URL.
//
// Existing objects with the same key are overwritten.
func (p *S3) Upload(ctx context.Context, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fault.Wrap(ErrPublish, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fault.Wrap(ErrPublish, err)
	}

	key := p.Key(filepath.Base(file))

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          f,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String(contentType(file)),
	})
	if err != nil {
		return "", fault.Wrapf(ErrPublish, "put object %s: %w", key, err)
	}

	url := fmt.Sprintf("s3://%s/%s", p.bucket, key)
	slog.Debug("published", "url", url, "size", info.Size())

	return url, nil
}

func contentType(file string) string {
	switch {
	case strings.HasSuffix(file, ".tar.gz"), strings.HasSuffix(file, ".tgz"):
		return "application/gzip"
	case strings.HasSuffix(file, ".sha256"):
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
