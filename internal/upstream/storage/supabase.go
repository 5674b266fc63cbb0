// Package storage persists generated media bytes in Supabase Storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"

	"omnidesk/internal/domain"
)

// ObjectStore uploads a blob and returns its public URL. Abstracted so
// the media service can be tested without a Supabase instance.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// SupabaseStore implements ObjectStore on a Supabase Storage bucket.
// The bucket is expected to exist and be public.
type SupabaseStore struct {
	client    *supabase.Client
	publicURL string
	bucket    string
}

// NewSupabaseStore creates a store backed by the given bucket.
func NewSupabaseStore(supabaseURL, serviceKey, bucket string) (*SupabaseStore, error) {
	client, err := supabase.NewClient(supabaseURL, serviceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseStore{
		client:    client,
		publicURL: strings.TrimSuffix(supabaseURL, "/"),
		bucket:    bucket,
	}, nil
}

// Upload stores the blob and returns the public object URL.
// ctx is accepted for interface symmetry; the underlying SDK call does
// not take one.
func (s *SupabaseStore) Upload(_ context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.Storage.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", &domain.UpstreamError{Upstream: "supabase-storage", Message: err.Error()}
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.publicURL, s.bucket, path), nil
}
