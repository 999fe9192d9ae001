package profile

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/dmitrymomot/deskkit/pkg/apiclient"
)

// ErrNilClient is returned when constructing a Service without an API client.
var ErrNilClient = errors.New("profile: nil api client")

// User is the authenticated account's profile.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UpdateRequest is the payload for updating the own profile.
type UpdateRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Service wraps the user-profile endpoints.
type Service struct {
	client *apiclient.Client
}

// New creates a profile service over the shared API client.
func New(client *apiclient.Client) (*Service, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Service{client: client}, nil
}

// Me fetches the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*User, error) {
	var user User
	if err := s.client.Get(ctx, "/profile/me", nil, &user, "Failed to fetch profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update modifies the authenticated user's profile.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*User, error) {
	var user User
	if err := s.client.Put(ctx, "/profile/update", req, &user, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadImage replaces the profile image via multipart upload.
func (s *Service) UploadImage(ctx context.Context, filename string, r io.Reader) (*User, error) {
	var user User
	if err := s.client.Upload(ctx, "/profile/profile-image", "profileImage", filename, r, &user, "Failed to upload profile image"); err != nil {
		return nil, err
	}
	return &user, nil
}
