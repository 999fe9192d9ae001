package agents

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrymomot/deskkit/pkg/apiclient"
)

// ErrNilClient is returned when constructing a Service without an API client.
var ErrNilClient = errors.New("agents: nil api client")

// Agent is a support agent account.
type Agent struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	CategoryID string    `json:"categoryId,omitempty"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Category is an agent assignment category.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// SaveRequest is the payload for creating or updating an agent.
type SaveRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
}

// ListParams controls paging and search for List.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// ListResult is a page of agents with pagination metadata.
type ListResult struct {
	Agents     []Agent
	Pagination apiclient.Pagination
}

// ExportResult is the backend's pre-shaped export payload.
type ExportResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Count   int     `json:"count"`
	Data    []Agent `json:"data"`
}

// Service wraps the agent management endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates an agents service over the shared API client.
func New(client *apiclient.Client) (*Service, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Service{client: client}, nil
}

// List returns a page of agents, optionally filtered by search.
func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var resp apiclient.PagedEnvelope[Agent]
	if err := s.client.Get(ctx, "/agents", query, &resp, "Failed to fetch agents"); err != nil {
		return nil, err
	}
	return &ListResult{Agents: resp.Data, Pagination: resp.Pagination}, nil
}

// Get fetches a single agent by ID.
func (s *Service) Get(ctx context.Context, id string) (*Agent, error) {
	var agent Agent
	if err := s.client.Get(ctx, "/agents/"+id, nil, &agent, "Failed to fetch agent"); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Create registers a new agent.
func (s *Service) Create(ctx context.Context, req SaveRequest) (*Agent, error) {
	var agent Agent
	if err := s.client.Post(ctx, "/agents", req, &agent, "Failed to create agent"); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Update modifies an existing agent.
func (s *Service) Update(ctx context.Context, id string, req SaveRequest) (*Agent, error) {
	var agent Agent
	if err := s.client.Put(ctx, "/agents/"+id, req, &agent, "Failed to update agent"); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Delete removes an agent.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/agents/"+id, nil, "Failed to delete agent")
}

// Categories returns the agent assignment categories.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.client.Get(ctx, "/agents/categorylist", nil, &categories, "Failed to fetch categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

// ToggleStatus flips an agent's active flag and returns the updated record.
func (s *Service) ToggleStatus(ctx context.Context, id string) (*Agent, error) {
	var agent Agent
	if err := s.client.Put(ctx, "/agents/"+id+"/toggle-status", nil, &agent, "Failed to toggle agent status"); err != nil {
		return nil, err
	}
	return &agent, nil
}

// Export fetches the backend-shaped export payload, optionally filtered by search.
func (s *Service) Export(ctx context.Context, search string) (*ExportResult, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	var resp ExportResult
	if err := s.client.Get(ctx, "/agents/export", query, &resp, "Failed to export agents"); err != nil {
		return nil, err
	}
	return &resp, nil
}
