package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
)

// s3GetObjectAPI é o subconjunto do cliente S3 que a fonte utiliza.
type s3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Fetcher mantém um cache de config/cliente por perfil.
type s3Fetcher struct {
	profile     string
	cfgCache    map[string]aws.Config
	clientCache map[string]s3GetObjectAPI
	mu          sync.Mutex
}

func newS3Fetcher() *s3Fetcher {
	return &s3Fetcher{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]s3GetObjectAPI),
	}
}

func (f *s3Fetcher) getAWSConfig(ctx context.Context) (aws.Config, error) {
	if cfg, ok := f.cfgCache[f.profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if f.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(f.profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", f.profile, err)
	}

	f.cfgCache[f.profile] = cfg
	return cfg, nil
}

func (f *s3Fetcher) client(ctx context.Context) (s3GetObjectAPI, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.clientCache[f.profile]; ok {
		return c, nil
	}

	cfg, err := f.getAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(cfg)
	f.clientCache[f.profile] = c
	return c, nil
}

func parseS3Location(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 location: %w", err)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q: expected s3://bucket/key", location)
	}
	return bucket, key, nil
}

func (f *s3Fetcher) fetch(ctx context.Context, location string) ([]entity.Transaction, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}

	format, err := formatFromName(key)
	if err != nil {
		return nil, err
	}

	c, err := f.client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := readLimited(out.Body, maxBodySize)
	if err != nil {
		return nil, fmt.Errorf("error reading S3 object: %w", err)
	}

	return decode(data, format)
}
