package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"career-connector/internal/domain/catalog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrMalformedRow  = errors.New("malformed row")
	ErrInvalidSource = errors.New("invalid dataset source")
)

var requiredColumns = []string{"domain", "job role", "skills", "personality"}

// S3Getter is the subset of *s3.Client the loader needs.
type S3Getter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Loader struct {
	logger *log.Logger
	s3     S3Getter
}

func NewLoader(logger *log.Logger, s3Client S3Getter) *Loader {
	return &Loader{logger: logger, s3: s3Client}
}

// Load reads the catalog from a file path or an s3://bucket/key object. Any
// failure is logged and yields an empty catalog.
func (l *Loader) Load(ctx context.Context, source string) []catalog.Entry {
	entries, err := l.load(ctx, strings.TrimSpace(source))
	if err != nil {
		l.logf("[Catalog] dataset unavailable | source=%s err=%v", source, err)
		return []catalog.Entry{}
	}
	if len(entries) == 0 {
		l.logf("[Catalog] dataset unavailable | source=%s err=no rows", source)
		return []catalog.Entry{}
	}
	l.logf("[Catalog] loaded | source=%s entries=%d", source, len(entries))
	return entries
}

func (l *Loader) load(ctx context.Context, source string) ([]catalog.Entry, error) {
	if source == "" {
		return nil, ErrInvalidSource
	}

	if strings.HasPrefix(source, s3Scheme) {
		bucket, key, err := splitS3URI(source)
		if err != nil {
			return nil, err
		}
		body, err := l.download(ctx, bucket, key)
		if err != nil {
			return nil, err
		}
		return Parse(bytes.NewReader(body))
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func (l *Loader) download(ctx context.Context, bucket, key string) ([]byte, error) {
	if l.s3 == nil {
		return nil, fmt.Errorf("%w: no s3 client configured", ErrInvalidSource)
	}
	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("read object body: %w", err)
	}
	return buf.Bytes(), nil
}

func (l *Loader) logf(format string, args ...any) {
	if l != nil && l.logger != nil {
		l.logger.Printf(format, args...)
	}
}

func splitS3URI(uri string) (string, string, error) {
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidSource, uri)
	}
	return bucket, key, nil
}

// Parse reads a catalog CSV. The header is matched case-insensitively and
// extra columns are ignored. Short rows are padded with empty fields; rows
// wider than the header are rejected.
func Parse(r io.Reader) ([]catalog.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []catalog.Entry{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		name := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	entries := make([]catalog.Entry, 0)
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if len(rec) > len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrMalformedRow, line, len(rec), len(header))
		}
		if isBlank(rec) {
			continue
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}

		entries = append(entries, catalog.Entry{
			Domain:      strings.TrimSpace(rec[idx["domain"]]),
			JobRole:     strings.TrimSpace(rec[idx["job role"]]),
			Skills:      strings.TrimSpace(rec[idx["skills"]]),
			Personality: strings.TrimSpace(rec[idx["personality"]]),
		})
	}
	return entries, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// NewS3Client builds a client from the default credential chain. endpoint is
// optional and targets S3-compatible stores.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if region = strings.TrimSpace(region); region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
