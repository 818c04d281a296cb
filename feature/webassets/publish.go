package webassets

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gallery-build/core/storage"
	"gallery-build/feature/webassets/checks"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// PublishReport lists the outcome of a publish run.
type PublishReport struct {
	Bucket   string   `json:"bucket"`
	Uploaded []string `json:"uploaded"`
	Skipped  []string `json:"skipped"`
	Failed   []string `json:"failed"`
	Bytes    int64    `json:"bytes"`
}

// Publisher uploads the data directory to an object storage bucket.
type Publisher struct {
	client   storage.Client
	bucket   string
	region   string
	prefix   string
	patterns []string
	logger   *zap.Logger
}

// NewPublisher validates the include globs and creates a publisher.
func NewPublisher(client storage.Client, storageCfg storage.Config, cfg PublishConfig, logger *zap.Logger) (*Publisher, error) {
	patterns := cfg.IncludePatterns()
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no include patterns configured")
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid include pattern %q", p)
		}
	}
	return &Publisher{
		client:   client,
		bucket:   storageCfg.Bucket,
		region:   storageCfg.Region,
		prefix:   strings.Trim(cfg.Prefix, "/"),
		patterns: patterns,
		logger:   logger,
	}, nil
}

// Publish uploads every matching file of dataDir. Upload failures are
// recorded per file; only bucket and directory errors abort the run.
func (p *Publisher) Publish(ctx context.Context, dataDir string) (*PublishReport, error) {
	if err := p.ensureBucket(ctx); err != nil {
		return nil, err
	}

	report := &PublishReport{Bucket: p.bucket}
	err := filepath.WalkDir(dataDir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dataDir, file)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !p.matches(rel) {
			report.Skipped = append(report.Skipped, rel)
			return nil
		}

		size, err := p.upload(ctx, file, rel)
		if err != nil {
			p.logger.Error("Failed to upload web file", zap.String("file", rel), zap.Error(err))
			report.Failed = append(report.Failed, rel)
			return nil
		}
		p.logger.Info("Uploaded web file", zap.String("file", rel), zap.String("key", p.objectKey(rel)))
		report.Uploaded = append(report.Uploaded, rel)
		report.Bytes += size
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("failed to walk data directory %s: %w", dataDir, err)
	}
	return report, nil
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	p.logger.Info("Creating bucket", zap.String("bucket", p.bucket))
	if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
	}
	return nil
}

func (p *Publisher) matches(rel string) bool {
	for _, pattern := range p.patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func (p *Publisher) objectKey(rel string) string {
	if p.prefix == "" {
		return rel
	}
	return path.Join(p.prefix, rel)
}

func (p *Publisher) upload(ctx context.Context, file, rel string) (int64, error) {
	f, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	_, err = p.client.PutObject(ctx, p.bucket, p.objectKey(rel), f, info.Size(), objectOptions(rel))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// objectOptions stores .gz siblings with the type of the original file so
// that HTTP clients decode them transparently.
func objectOptions(rel string) minio.PutObjectOptions {
	opts := minio.PutObjectOptions{}
	name := rel
	if trimmed, ok := strings.CutSuffix(rel, checks.GzipSuffix); ok && path.Ext(trimmed) != "" {
		name = trimmed
		opts.ContentEncoding = "gzip"
	}
	opts.ContentType = mime.TypeByExtension(path.Ext(name))
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}
	return opts
}
