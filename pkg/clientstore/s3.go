// Package clientstore fetches published client executables ("movies",
// "the movie") from an S3-compatible bucket, keyed by build version,
// so the extractor can run against a historical archive of builds
// instead of only a local file.
package clientstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/oryxlabs/realmcore/internal/bytesize"
	"github.com/oryxlabs/realmcore/internal/logger"
	"github.com/oryxlabs/realmcore/internal/telemetry"
)

// ErrBuildNotFound is returned when no object exists for the requested
// build version.
var ErrBuildNotFound = errors.New("clientstore: build not found")

// ErrObjectTooLarge is returned when a build's movie object exceeds the
// configured MaxObjectSize, most likely a misconfigured bucket key
// rather than a genuine client binary.
var ErrObjectTooLarge = errors.New("clientstore: object exceeds max size")

// Config configures the S3-compatible bucket client binaries are
// fetched from.
type Config struct {
	Bucket         string
	Region         string
	Endpoint       string
	KeyPrefix      string
	ForcePathStyle bool
	MaxRetries     int
	MaxObjectSize  bytesize.ByteSize
}

// Store fetches client binaries from S3 by build version.
type Store struct {
	client        *s3.Client
	bucket        string
	keyPrefix     string
	maxRetries    int
	maxObjectSize bytesize.ByteSize
}

// NewFromConfig builds an AWS SDK config (region, optional custom
// endpoint, path-style addressing for S3-compatible services such as
// MinIO/Localstack) and returns a Store backed by it.
func NewFromConfig(ctx context.Context, cfg Config) (*Store, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("clientstore: load aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.ForcePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	maxObjectSize := cfg.MaxObjectSize
	if maxObjectSize == 0 {
		maxObjectSize = 64 * bytesize.MiB
	}

	return &Store{
		client:        s3.NewFromConfig(awsCfg, s3Opts...),
		bucket:        cfg.Bucket,
		keyPrefix:     cfg.KeyPrefix,
		maxRetries:    maxRetries,
		maxObjectSize: maxObjectSize,
	}, nil
}

// objectKey returns the bucket key for a build version: the configured
// prefix followed by the build version verbatim (build versions are
// extractor-trusted strings, e.g. "1.7.3.0.0").
func (s *Store) objectKey(buildVersion string) string {
	return s.keyPrefix + buildVersion
}

// Fetch downloads the movie for buildVersion and returns its full
// contents. Transient errors (throttling, 5xx, network resets) are
// retried with exponential backoff; a missing object is not retried
// and surfaces as ErrBuildNotFound.
func (s *Store) Fetch(ctx context.Context, buildVersion string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := s.objectKey(buildVersion)

	ctx, span := telemetry.StartContentSpan(ctx, "read", buildVersion,
		telemetry.Bucket(s.bucket), telemetry.StorageKey(key))
	defer span.End()

	var result *s3.GetObjectOutput
	var lastErr error
	attempts := 0

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := backoffFor(attempt - 1)
			logger.Debug("clientstore: retrying fetch", "build_version", buildVersion, "attempt", attempt, "backoff", backoff)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		attempts++
		result, lastErr = s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if lastErr == nil {
			break
		}
		if isNotFound(lastErr) {
			return nil, fmt.Errorf("%w: %s", ErrBuildNotFound, buildVersion)
		}
		if !isRetryable(lastErr) {
			break
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("clientstore: fetch %s after %d attempts: %w", key, attempts, lastErr)
	}
	defer result.Body.Close()

	limit := int64(s.maxObjectSize)
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(result.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("clientstore: read body for %s: %w", key, err)
	}
	if n > limit {
		return nil, fmt.Errorf("%w: %s exceeds %s", ErrObjectTooLarge, key, s.maxObjectSize)
	}
	return buf.Bytes(), nil
}

func backoffFor(attempt int) time.Duration {
	backoff := 200 * time.Millisecond
	for i := 0; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > 5*time.Second {
		backoff = 5 * time.Second
	}
	return backoff
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound" || code == "404"
	}
	return strings.Contains(err.Error(), "NoSuchKey") || strings.Contains(err.Error(), "NotFound")
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "Throttling", "ThrottlingException", "RequestThrottled", "SlowDown",
			"InternalError", "ServiceUnavailable", "ServiceException":
			return true
		case "AccessDenied", "Forbidden", "InvalidRequest":
			return false
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "500")
}
