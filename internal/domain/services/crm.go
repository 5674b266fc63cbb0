package services

import "context"

// CRMQueryRequest forwards a question to an agent's CRM workspace
type CRMQueryRequest struct {
	AgentID  string `json:"agent_id"`
	Question string `json:"question"`
}

// CRMQueryResponse is the workspace's answer
type CRMQueryResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}

// CRMService defines CRM querying through an agent's workspace
type CRMService interface {
	Query(ctx context.Context, userID string, req *CRMQueryRequest) (*CRMQueryResponse, error)
}
