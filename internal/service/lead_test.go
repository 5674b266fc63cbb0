package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/services"
)

const testAgentID = "3f2c8a1e-0b44-4a7d-9c3e-5d6f7a8b9c0d"

// fakeAgentRepo serves agents from a map
type fakeAgentRepo struct {
	agents map[string]*models.Agent
}

func (f *fakeAgentRepo) Create(ctx context.Context, agent *models.Agent) error {
	f.agents[agent.ID] = agent
	return nil
}

func (f *fakeAgentRepo) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	agent, ok := f.agents[id]
	if !ok {
		return nil, fmt.Errorf("agent %s: %w", id, domain.ErrNotFound)
	}
	return agent, nil
}

func (f *fakeAgentRepo) List(ctx context.Context, userID string) ([]models.Agent, error) {
	var out []models.Agent
	for _, a := range f.agents {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

// fakeLeadRepo stores created leads in memory
type fakeLeadRepo struct {
	leads     []*models.Lead
	createErr error
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	lead.ID = fmt.Sprintf("lead-%d", len(f.leads)+1)
	f.leads = append(f.leads, lead)
	return nil
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	for _, l := range f.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("lead %s: %w", id, domain.ErrNotFound)
}

func (f *fakeLeadRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Lead, error) {
	var out []models.Lead
	for _, l := range f.leads {
		if l.AgentID == agentID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (f *fakeLeadRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	lead, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lead.Status = status
	return lead, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLeadFixture() (services.LeadService, *fakeLeadRepo, *fakeAgentRepo) {
	agentRepo := &fakeAgentRepo{agents: map[string]*models.Agent{
		testAgentID: {ID: testAgentID, UserID: "user-1", Name: "Support bot"},
	}}
	leadRepo := &fakeLeadRepo{}
	svc := NewLeadService(leadRepo, agentRepo, testLogger())
	return svc, leadRepo, agentRepo
}

func TestLeadService_CreateLead(t *testing.T) {
	svc, _, _ := newLeadFixture()

	lead, err := svc.CreateLead(context.Background(), &services.CreateLeadRequest{
		AgentID:        testAgentID,
		Name:           "  Ada Lovelace  ",
		Email:          "ada@example.com",
		InitialMessage: "I'd like a demo",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", lead.Name)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, models.LeadSourceWidget, lead.Source)
	assert.NotEmpty(t, lead.ID)
}

func TestLeadService_CreateLeadInvalidEmail(t *testing.T) {
	svc, leadRepo, _ := newLeadFixture()

	_, err := svc.CreateLead(context.Background(), &services.CreateLeadRequest{
		AgentID: testAgentID,
		Name:    "Ada",
		Email:   "bad",
	})
	require.Error(t, err)

	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.True(t, strings.HasSuffix(err.Error(), "Invalid email format"))
	assert.Empty(t, leadRepo.leads, "invalid lead must not be stored")
}

func TestLeadService_CreateLeadEmailFormats(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"ada@example.com", true},
		{"a@b.com", true},
		{"x@y.co", true},
		{"bad", false},
		{"a@", false},
		{"@b.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			svc, _, _ := newLeadFixture()

			_, err := svc.CreateLead(context.Background(), &services.CreateLeadRequest{
				AgentID: testAgentID,
				Name:    "A",
				Email:   tt.email,
			})
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, strings.HasSuffix(err.Error(), "Invalid email format"))
			}
		})
	}
}

func TestLeadService_CreateLeadMissingFields(t *testing.T) {
	svc, _, _ := newLeadFixture()

	tests := []struct {
		name  string
		req   *services.CreateLeadRequest
		field string
	}{
		{
			name:  "missing name",
			req:   &services.CreateLeadRequest{AgentID: testAgentID, Email: "a@b.com"},
			field: "Name",
		},
		{
			name:  "missing email",
			req:   &services.CreateLeadRequest{AgentID: testAgentID, Name: "Ada"},
			field: "Email",
		},
		{
			name:  "missing agent_id",
			req:   &services.CreateLeadRequest{Name: "Ada", Email: "a@b.com"},
			field: "AgentID",
		},
		{
			name:  "malformed agent_id",
			req:   &services.CreateLeadRequest{AgentID: "not-a-uuid", Name: "Ada", Email: "a@b.com"},
			field: "AgentID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateLead(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLeadService_CreateLeadUnknownAgent(t *testing.T) {
	svc, _, _ := newLeadFixture()

	_, err := svc.CreateLead(context.Background(), &services.CreateLeadRequest{
		AgentID: "7d4e5f6a-1b2c-4d3e-8f9a-0b1c2d3e4f5a",
		Name:    "Ada",
		Email:   "ada@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLeadService_ListLeadsForeignAgent(t *testing.T) {
	svc, _, _ := newLeadFixture()

	_, err := svc.ListLeads(context.Background(), testAgentID, "someone-else")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestLeadService_UpdateStatus(t *testing.T) {
	svc, _, _ := newLeadFixture()

	lead, err := svc.CreateLead(context.Background(), &services.CreateLeadRequest{
		AgentID: testAgentID,
		Name:    "Ada",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), lead.ID, "user-1", &services.UpdateLeadStatusRequest{
		Status: models.LeadStatusQualified,
	})
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusQualified, updated.Status)

	// Unknown status rejected
	_, err = svc.UpdateStatus(context.Background(), lead.ID, "user-1", &services.UpdateLeadStatusRequest{
		Status: "archived",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	// Someone else's lead rejected
	_, err = svc.UpdateStatus(context.Background(), lead.ID, "intruder", &services.UpdateLeadStatusRequest{
		Status: models.LeadStatusClosed,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
