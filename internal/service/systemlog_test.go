package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/services"
)

// fakeSystemLogRepo stores entries in memory
type fakeSystemLogRepo struct {
	entries  []*models.SystemLog
	gotLevel string
	gotLimit int
}

func (f *fakeSystemLogRepo) Create(ctx context.Context, entry *models.SystemLog) error {
	entry.ID = fmt.Sprintf("log-%d", len(f.entries)+1)
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeSystemLogRepo) ListRecent(ctx context.Context, level string, limit int) ([]models.SystemLog, error) {
	f.gotLevel = level
	f.gotLimit = limit
	return nil, nil
}

func TestSystemLogService_Ingest(t *testing.T) {
	repo := &fakeSystemLogRepo{}
	svc := NewSystemLogService(repo, testLogger())

	userID := "user-1"
	entry, err := svc.Ingest(context.Background(), &services.IngestLogRequest{
		UserID:  &userID,
		Level:   models.LogLevelError,
		Message: "widget failed to load",
		Context: map[string]interface{}{"page": "/pricing"},
	})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if entry.ID == "" {
		t.Error("entry not persisted")
	}
	if entry.Level != models.LogLevelError {
		t.Errorf("level = %q", entry.Level)
	}
}

func TestSystemLogService_IngestValidation(t *testing.T) {
	svc := NewSystemLogService(&fakeSystemLogRepo{}, testLogger())

	tests := []struct {
		name string
		req  *services.IngestLogRequest
	}{
		{"unknown level", &services.IngestLogRequest{Level: "fatal", Message: "m"}},
		{"missing level", &services.IngestLogRequest{Message: "m"}},
		{"missing message", &services.IngestLogRequest{Level: models.LogLevelInfo}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Ingest(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestSystemLogService_ListRecentLimits(t *testing.T) {
	repo := &fakeSystemLogRepo{}
	svc := NewSystemLogService(repo, testLogger())

	ctx := context.Background()

	if _, err := svc.ListRecent(ctx, "", 0); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.gotLimit != 100 {
		t.Errorf("default limit = %d, want 100", repo.gotLimit)
	}

	if _, err := svc.ListRecent(ctx, models.LogLevelWarn, 9000); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.gotLimit != 500 {
		t.Errorf("capped limit = %d, want 500", repo.gotLimit)
	}
	if repo.gotLevel != models.LogLevelWarn {
		t.Errorf("level = %q", repo.gotLevel)
	}

	if _, err := svc.ListRecent(ctx, "verbose", 10); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("unknown level error = %v, want validation error", err)
	}
}
