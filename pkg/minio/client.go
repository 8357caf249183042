// Package minio stores uploaded files in an S3-compatible bucket and hands
// out public URLs for them.
package minio

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the externally reachable base, e.g. a CDN. Defaults to
	// the endpoint.
	PublicURL string
}

// publicPrefixes are readable without credentials.
var publicPrefixes = []string{"avatars/"}

type Store struct {
	client    *minioSDK.Client
	bucket    string
	publicURL string
}

// New connects to the server and makes sure the bucket exists with public
// read on the upload prefixes.
func New(ctx context.Context, cfg Config) (*Store, error) {
	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		log.Printf("[minio] bucket created: %s", cfg.Bucket)
	}

	if err := client.SetBucketPolicy(ctx, cfg.Bucket, readPolicy(cfg.Bucket, publicPrefixes)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	base := cfg.PublicURL
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}

	return &Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(base, "/"),
	}, nil
}

// PutObject uploads r under key and returns the object's public URL.
func (s *Store) PutObject(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return PublicURL(s.publicURL, s.bucket, key), nil
}

// PublicURL joins base, bucket and key in path style.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}

func readPolicy(bucket string, prefixes []string) string {
	resources := make([]string, len(prefixes))
	for i, p := range prefixes {
		resources[i] = fmt.Sprintf("%q", "arn:aws:s3:::"+bucket+"/"+p+"*")
	}
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":[%s]}]}`,
		strings.Join(resources, ","))
}
