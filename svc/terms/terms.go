package terms

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/dmitrymomot/deskkit/pkg/apiclient"
)

// DocType distinguishes the two policy document families the backend serves.
type DocType string

const (
	DocTypeTerms         DocType = "terms"
	DocTypePrivacyPolicy DocType = "privacy-policy"
)

// ErrNilClient is returned when constructing a Service without an API client.
var ErrNilClient = errors.New("terms: nil api client")

// Terms is a published terms-and-conditions or privacy-policy document.
type Terms struct {
	ID          string     `json:"_id"`
	Type        DocType    `json:"type"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Version     string     `json:"version"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SaveRequest is the payload for creating or updating a document.
type SaveRequest struct {
	Type    DocType `json:"type,omitempty"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Version string  `json:"version,omitempty"`
}

// Service wraps the terms/policy endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a terms service over the shared API client.
func New(client *apiclient.Client) (*Service, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Service{client: client}, nil
}

// Latest fetches the latest published terms. No authentication required.
func (s *Service) Latest(ctx context.Context) (*Terms, error) {
	var resp apiclient.Envelope[Terms]
	if err := s.client.Get(ctx, "/terms/latest", nil, &resp, "Failed to fetch latest terms"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// List returns all documents of the given type.
func (s *Service) List(ctx context.Context, docType DocType) ([]Terms, error) {
	query := url.Values{}
	if docType != "" {
		query.Set("type", string(docType))
	}

	var resp apiclient.Envelope[[]Terms]
	if err := s.client.Get(ctx, "/terms", query, &resp, "Failed to fetch terms"); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create publishes a new document of the given type.
func (s *Service) Create(ctx context.Context, docType DocType, req SaveRequest) (*Terms, error) {
	var resp apiclient.Envelope[Terms]
	if err := s.client.Post(ctx, docPath(docType), req, &resp, "Failed to create document"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update replaces the current document of the given type.
func (s *Service) Update(ctx context.Context, docType DocType, req SaveRequest) (*Terms, error) {
	var resp apiclient.Envelope[Terms]
	if err := s.client.Put(ctx, docPath(docType), req, &resp, "Failed to update document"); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// docPath selects the endpoint family per document type: privacy policies
// live under their own sub-path.
func docPath(docType DocType) string {
	if docType == DocTypePrivacyPolicy {
		return "/terms/privacy-policy"
	}
	return "/terms"
}
