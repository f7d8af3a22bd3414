package hyperstack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestClient creates a Client pointed at an httptest server running
// the given handler. The server is closed when the test finishes.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

// jsonHandler responds with the given value encoded as JSON.
func jsonHandler(t *testing.T, response any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			t.Errorf("failed to encode test response: %v", err)
		}
	}
}

// decodeRequestBody decodes the request body into a generic map.
func decodeRequestBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("failed to read request body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("failed to decode request body %q: %v", data, err)
	}
	return body
}

func intPtr(n int) *int { return &n }

func TestNew_MissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := New("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNew_WhitespaceKeyRejected(t *testing.T) {
	t.Setenv(EnvAPIKey, "   ")

	_, err := New("  ")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNew_KeyFromEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	client, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.apiKey != "env-key" {
		t.Errorf("apiKey = %q, want %q", client.apiKey, "env-key")
	}
}

func TestNew_ExplicitKeyWinsOverEnvironment(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	client, err := New("explicit-key")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.apiKey != "explicit-key" {
		t.Errorf("apiKey = %q, want %q", client.apiKey, "explicit-key")
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("k")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
}

func TestWithBaseURL_TrimsTrailingSlash(t *testing.T) {
	client, err := New("k", WithBaseURL("http://example.test/v1/"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if client.BaseURL() != "http://example.test/v1" {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), "http://example.test/v1")
	}
}

func TestDo_SetsAPIKeyHeader(t *testing.T) {
	var gotHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("api_key")
		w.Write([]byte(`{}`))
	})

	if _, err := client.GetFlavors(context.Background()); err != nil {
		t.Fatalf("GetFlavors failed: %v", err)
	}
	if gotHeader != "test-key" {
		t.Errorf("api_key header = %q, want %q", gotHeader, "test-key")
	}
}

func TestDo_DecodesJSONResponse(t *testing.T) {
	client := newTestClient(t, jsonHandler(t, map[string]any{
		"flavors": []any{map[string]any{"name": "n1-RTX-A6000x1"}},
	}))

	got, err := client.GetFlavors(context.Background())
	if err != nil {
		t.Fatalf("GetFlavors failed: %v", err)
	}

	want := map[string]any{
		"flavors": []any{map[string]any{"name": "n1-RTX-A6000x1"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestDo_NonJSONBodyReturnedAsText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not json"))
	})

	got, err := client.GetImages(context.Background())
	if err != nil {
		t.Fatalf("GetImages failed: %v", err)
	}
	if got != "plain text, not json" {
		t.Errorf("response = %v, want raw text passthrough", got)
	}
}

func TestDo_EmptyBodyReturnsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	got, err := client.DeleteEnvironment(context.Background(), "123")
	if err != nil {
		t.Fatalf("DeleteEnvironment failed: %v", err)
	}
	if got != nil {
		t.Errorf("response = %v, want nil for empty body", got)
	}
}

func TestDo_NonSuccessStatusReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid api key"}`))
	})

	_, err := client.GetFlavors(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusUnauthorized)
	}
	if apiErr.Path != "/core/flavors" {
		t.Errorf("Path = %q, want %q", apiErr.Path, "/core/flavors")
	}
	if apiErr.Body != `{"message":"invalid api key"}` {
		t.Errorf("Body = %q, want the response body passed through", apiErr.Body)
	}
}

func TestDo_TransportErrorWrapped(t *testing.T) {
	client, err := New("k", WithBaseURL("http://127.0.0.1:0"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := client.GetFlavors(context.Background()); err == nil {
		t.Fatal("expected a transport error, got nil")
	}
}
