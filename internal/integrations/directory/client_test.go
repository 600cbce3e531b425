package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-token", 2*time.Second, 3, nopLogger{})
}

func TestGetProvider(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var gotAuth, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"id":7,"fullName":"Dr. Smith","title":"Cardiologist"}]}`))
		}))
		defer server.Close()

		provider, err := newTestClient(server.URL).GetProvider(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, int64(7), provider.ID)
		assert.Equal(t, "Dr. Smith", provider.FullName)
		require.NotNil(t, provider.Title)
		assert.Equal(t, "Cardiologist", *provider.Title)

		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "filter[id]=7", gotQuery)
	})

	t.Run("empty data means not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetProvider(context.Background(), 404)
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("non-200 means unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetProvider(context.Background(), 7)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("malformed body means unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>gateway error</html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GetProvider(context.Background(), 7)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("connection refused means unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).GetProvider(context.Background(), 7)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("timeout means unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-token", 50*time.Millisecond, 3, nopLogger{})
		_, err := client.GetProvider(context.Background(), 7)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}

func TestListProviders(t *testing.T) {
	t.Run("returns all providers", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"data":[{"id":1,"fullName":"Dr. Smith"},{"id":2,"fullName":"Dr. Jones"}]}`))
		}))
		defer server.Close()

		providers, err := newTestClient(server.URL).ListProviders(context.Background())
		require.NoError(t, err)

		require.Len(t, providers, 2)
		assert.Equal(t, int64(1), providers[0].ID)
		assert.Equal(t, int64(2), providers[1].ID)
		assert.Equal(t, "/providers", gotPath)
	})

	t.Run("empty directory", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		providers, err := newTestClient(server.URL).ListProviders(context.Background())
		require.NoError(t, err)
		assert.Empty(t, providers)
	})

	t.Run("redirect loop means unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, r.URL.String(), http.StatusFound)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).ListProviders(context.Background())
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}
