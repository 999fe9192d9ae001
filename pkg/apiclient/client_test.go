package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deskkit/pkg/apiclient"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing base URL fails before any network call", func(t *testing.T) {
		t.Parallel()

		_, err := apiclient.New(apiclient.Config{})
		assert.ErrorIs(t, err, apiclient.ErrMissingBaseURL)
	})

	t.Run("trailing slash trimmed from base URL", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL + "/"})
		require.NoError(t, err)

		require.NoError(t, client.Get(context.Background(), "/terms/latest", nil, nil, ""))
		assert.Equal(t, "/terms/latest", gotPath)
	})
}

func TestClientAuth(t *testing.T) {
	t.Parallel()

	t.Run("bearer header attached when token present", func(t *testing.T) {
		t.Parallel()

		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := apiclient.MustNew(
			apiclient.Config{BaseURL: srv.URL},
			apiclient.WithTokenProvider(staticTokens("tok-123")),
		)

		require.NoError(t, client.Get(context.Background(), "/profile/me", nil, nil, ""))
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("header omitted entirely when no token", func(t *testing.T) {
		t.Parallel()

		var hasAuth bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasAuth = r.Header["Authorization"]
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := apiclient.MustNew(
			apiclient.Config{BaseURL: srv.URL},
			apiclient.WithTokenProvider(staticTokens("")),
		)

		require.NoError(t, client.Get(context.Background(), "/terms/latest", nil, nil, ""))
		assert.False(t, hasAuth)
	})
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	router.Get("/with-message", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"X"}`))
	})
	router.Get("/no-body", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	router.Get("/not-json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := apiclient.MustNew(apiclient.Config{BaseURL: srv.URL})

	t.Run("message from body becomes error text verbatim", func(t *testing.T) {
		t.Parallel()

		err := client.Get(context.Background(), "/with-message", nil, nil, "fallback")
		require.Error(t, err)
		assert.Equal(t, "X", err.Error())

		var apiErr *apiclient.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("fallback used when body has no message", func(t *testing.T) {
		t.Parallel()

		err := client.Get(context.Background(), "/no-body", nil, nil, "Failed to fetch data")
		require.Error(t, err)
		assert.Equal(t, "Failed to fetch data", err.Error())
	})

	t.Run("non-JSON body treated as empty object", func(t *testing.T) {
		t.Parallel()

		err := client.Get(context.Background(), "/not-json", nil, nil, "Failed to fetch data")
		require.Error(t, err)
		assert.Equal(t, "Failed to fetch data", err.Error())
	})

	t.Run("status text used when no fallback given", func(t *testing.T) {
		t.Parallel()

		err := client.Get(context.Background(), "/no-body", nil, nil, "")
		require.Error(t, err)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Error())
	})
}

func TestClientRequests(t *testing.T) {
	t.Parallel()

	t.Run("query parameters encoded", func(t *testing.T) {
		t.Parallel()

		var gotQuery url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := apiclient.MustNew(apiclient.Config{BaseURL: srv.URL})

		query := url.Values{}
		query.Set("page", "2")
		query.Set("search", "smith & co")
		require.NoError(t, client.Get(context.Background(), "/agents", query, nil, ""))

		assert.Equal(t, "2", gotQuery.Get("page"))
		assert.Equal(t, "smith & co", gotQuery.Get("search"))
	})

	t.Run("post encodes JSON body and decodes response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			_, _ = w.Write([]byte(`{"name":"Jordan"}`))
		}))
		defer srv.Close()

		client := apiclient.MustNew(apiclient.Config{BaseURL: srv.URL})

		var out struct {
			Name string `json:"name"`
		}
		err := client.Post(context.Background(), "/agents", map[string]string{"name": "Jordan"}, &out, "")
		require.NoError(t, err)
		assert.Equal(t, "Jordan", out.Name)
	})

	t.Run("upload sends multipart with transport-set boundary", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, header, err := r.FormFile("profileImage")
			require.NoError(t, err)
			defer func() { _ = file.Close() }()

			assert.Equal(t, "avatar.png", header.Filename)
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := apiclient.MustNew(apiclient.Config{BaseURL: srv.URL})

		err := client.Upload(context.Background(), "/profile/profile-image", "profileImage", "avatar.png",
			strings.NewReader("fake-image-bytes"), nil, "Failed to upload image")
		require.NoError(t, err)
	})
}
