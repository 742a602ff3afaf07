package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/gurl/packages/core/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_WithDefaultHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gurl", r.Header.Get("X-Powered-By"))
		assert.Equal(t, "gurl/test", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithDefaultHeaders(map[string]string{
		"X-Powered-By": "gurl",
		"User-Agent":   "gurl/test",
	}))
	resp, err := client.Execute(context.Background(), request.Get{URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestClient_DefaultHeadersOnEveryMethod(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-Id"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithDefaultHeader("X-Request-Id", "fixed"))

	_, err := client.Execute(context.Background(), request.Get{URL: server.URL})
	require.NoError(t, err)
	_, err = client.Execute(context.Background(), request.Post{URL: server.URL})
	require.NoError(t, err)

	assert.Equal(t, []string{"fixed", "fixed"}, seen)
}

func TestClient_WithTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(WithTimeout(50 * time.Millisecond))
	_, err := client.Execute(context.Background(), request.Get{URL: server.URL})

	assert.Error(t, err)
}

func TestClient_FollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/final" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`final`))
			return
		}
		http.Redirect(w, r, "/final", http.StatusFound)
	}))
	defer server.Close()

	client := NewClient(WithFollowRedirects(true))
	resp, err := client.Execute(context.Background(), request.Get{URL: server.URL + "/redirect"})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "final", resp.BodyString())
}

func TestClient_NoFollowRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer server.Close()

	client := NewClient(WithFollowRedirects(false))
	resp, err := client.Execute(context.Background(), request.Get{URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
}

func TestClient_ConnectionFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient()
	_, err := client.Execute(context.Background(), request.Get{URL: server.URL})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClient_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := NewClient()
	resp, err := client.Execute(context.Background(), request.Get{URL: server.URL})

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "boom", resp.BodyString())
}
