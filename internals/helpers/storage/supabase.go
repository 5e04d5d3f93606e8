package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ojtsystem_backend/internals/configs"
)

const supabaseTimeout = 20 * time.Second

// supabaseStorage talks to the Supabase storage REST API with a service-role
// bearer key. This is the backend the production deployment uses.
type supabaseStorage struct {
	baseURL string
	key     string
	bucket  string
	client  *http.Client
}

func NewSupabaseStorage() (ObjectStorage, error) {
	if configs.SupabaseURL == "" || configs.SupabaseKey == "" || configs.SupabaseBucket == "" {
		return nil, errors.New("supabase storage configuration is missing")
	}
	return &supabaseStorage{
		baseURL: strings.TrimRight(configs.SupabaseURL, "/"),
		key:     configs.SupabaseKey,
		bucket:  configs.SupabaseBucket,
		client:  &http.Client{Timeout: supabaseTimeout},
	}, nil
}

func (s *supabaseStorage) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("supabase upload status %d: %s", resp.StatusCode, body)
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key), nil
}

func (s *supabaseStorage) Delete(ctx context.Context, key string) error {
	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("supabase delete status %d", resp.StatusCode)
	}
	return nil
}

func (s *supabaseStorage) KeyFromPublicURL(publicURL string) string {
	prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(publicURL, prefix)
}
