package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"ojtsystem_backend/internals/configs"
)

// ossStorage keeps the Alibaba OSS backend available for deployments that
// already run on it.
type ossStorage struct {
	bucket    *oss.Bucket
	publicFmt string
}

func NewOSSStorage() (ObjectStorage, error) {
	if configs.OSSEndpoint == "" || configs.OSSKeyID == "" || configs.OSSKeySecret == "" || configs.OSSBucket == "" {
		return nil, errors.New("oss storage configuration is missing")
	}
	client, err := oss.New(configs.OSSEndpoint, configs.OSSKeyID, configs.OSSKeySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(configs.OSSBucket)
	if err != nil {
		return nil, err
	}
	endpoint := strings.TrimPrefix(strings.TrimPrefix(configs.OSSEndpoint, "https://"), "http://")
	return &ossStorage{
		bucket:    bucket,
		publicFmt: fmt.Sprintf("https://%s.%s/", configs.OSSBucket, endpoint),
	}, nil
}

func (s *ossStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := []oss.Option{oss.WithContext(ctx)}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.publicFmt + key, nil
}

func (s *ossStorage) Delete(ctx context.Context, key string) error {
	return s.bucket.DeleteObject(key, oss.WithContext(ctx))
}

func (s *ossStorage) KeyFromPublicURL(publicURL string) string {
	if !strings.HasPrefix(publicURL, s.publicFmt) {
		return ""
	}
	return strings.TrimPrefix(publicURL, s.publicFmt)
}
