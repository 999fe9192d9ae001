package apiclient

// Envelope is the backend's standard success wrapper.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// Pagination describes a paged listing response.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// PagedEnvelope is the backend's wrapper for paged collections.
type PagedEnvelope[T any] struct {
	Success    bool       `json:"success"`
	Pagination Pagination `json:"pagination"`
	Data       []T        `json:"data"`
}
