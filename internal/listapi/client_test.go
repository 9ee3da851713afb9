package listapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/listcraft/listcraft/internal/urls"
)

const mockListsResponse = `{
  "b": [{"id":"2","name":"Dog","scientific_name":"Canis lupus familiaris","list_number":2}],
  "a": [{"id":"1","name":"Cat","scientific_name":"Felis catus","list_number":1}]
}`

func TestNewClient(t *testing.T) {
	client := NewClient("http://lists.test/lists")

	if client.BaseURL != "http://lists.test/lists" {
		t.Errorf("BaseURL = %s, want http://lists.test/lists", client.BaseURL)
	}
	if client.HTTPClient == nil {
		t.Error("HTTPClient should not be nil")
	}
	if client.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", client.Timeout, DefaultTimeout)
	}
	if !strings.HasPrefix(client.UserAgent, "listcraft/") {
		t.Errorf("UserAgent = %q, want listcraft/ prefix", client.UserAgent)
	}
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	client := NewClient("")
	if client.BaseURL != urls.DefaultListsEndpoint {
		t.Errorf("BaseURL = %s, want %s", client.BaseURL, urls.DefaultListsEndpoint)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient("")
	client.SetTimeout(5 * time.Second)

	if client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.Timeout)
	}
}

func TestFetchLists_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "listcraft/") {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(mockListsResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.FetchLists(context.Background())
	if err != nil {
		t.Fatalf("FetchLists() error = %v", err)
	}

	if diff := cmp.Diff([]string{"b", "a"}, resp.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got := resp.Groups[1].Items[0].Name; got != "Cat" {
		t.Errorf("second group item = %q, want Cat", got)
	}
}

func TestFetchLists_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FetchLists(context.Background())
	if err == nil {
		t.Fatal("FetchLists() expected error")
	}

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Type != ErrTypeHTTP || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("got %v status %d, want HTTP 503", apiErr.Type, apiErr.StatusCode)
	}
	if !IsRetryable(err) {
		t.Error("503 should be retryable")
	}
}

func TestFetchLists_ParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FetchLists(context.Background())
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Type != ErrTypeParse {
		t.Errorf("Type = %v, want %v", apiErr.Type, ErrTypeParse)
	}
}

func TestFetchLists_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL)
	client.SetTimeout(50 * time.Millisecond)

	_, err := client.FetchLists(context.Background())
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Type != ErrTypeTimeout {
		t.Errorf("Type = %v, want %v", apiErr.Type, ErrTypeTimeout)
	}
}

func TestFetchLists_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := NewClient(server.URL).FetchLists(ctx)
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Type != ErrTypeCanceled {
		t.Errorf("Type = %v, want %v", apiErr.Type, ErrTypeCanceled)
	}
}

func TestFetchLists_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := NewClient(addr).FetchLists(context.Background())
	if err == nil {
		t.Fatal("FetchLists() expected error against closed server")
	}
	if !IsNetworkError(err) {
		t.Errorf("expected network error, got %v", err)
	}
}

func TestFetchLists_CoalescesConcurrentCalls(t *testing.T) {
	var hits atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = w.Write([]byte(mockListsResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var wg sync.WaitGroup
	results := make([]*Response, 3)
	errs := make([]error, 3)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = client.FetchLists(context.Background())
	}()

	<-started
	for i := 1; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = client.FetchLists(context.Background())
		}(i)
	}

	// Give the followers time to join the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d error = %v", i, err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
	if results[0] != results[1] || results[1] != results[2] {
		t.Error("all callers should share the same response")
	}
}
