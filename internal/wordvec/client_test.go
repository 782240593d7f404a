package wordvec

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	"resty.dev/v3"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := &HTTPClient{
		httpClient:       resty.New().SetBaseURL(server.URL),
		limiter:          rate.NewLimiter(rate.Inf, 1),
		maxRetryAttempts: 2,
		retryDelay:       time.Millisecond,
	}
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestHTTPClient_FetchModel(t *testing.T) {
	tests := []struct {
		name         string
		word         string
		handler      func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request)
		wantBody     string
		wantErr      error
		wantRequests int32
	}{
		{
			name: "known word",
			word: "dog",
			handler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/model2/cat/dog", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"vec":[0.1,0.2],"percentile":5}`))
			},
			wantBody:     `{"vec":[0.1,0.2],"percentile":5}`,
			wantRequests: 1,
		},
		{
			name: "spaces are sent as underscores",
			word: "hot dog",
			handler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/model2/cat/hot_dog", r.URL.Path)
				_, _ = w.Write([]byte(`{"vec":[1]}`))
			},
			wantBody:     `{"vec":[1]}`,
			wantRequests: 1,
		},
		{
			name: "unknown word",
			word: "qwzx",
			handler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr:      ErrNotFound,
			wantRequests: 1,
		},
		{
			name: "server error is retried",
			word: "dog",
			handler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				if calls == 1 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				_, _ = w.Write([]byte(`{"vec":[0.3]}`))
			},
			wantBody:     `{"vec":[0.3]}`,
			wantRequests: 2,
		},
		{
			name: "server keeps failing",
			word: "dog",
			handler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr:      ErrLookupFailed,
			wantRequests: 3,
		},
		{
			name: "client error is not retried",
			word: "dog",
			handler: func(t *testing.T, calls int32, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			wantErr:      ErrLookupFailed,
			wantRequests: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls := requests.Add(1)
				tt.handler(t, calls, w, r)
			})

			got, err := client.FetchModel(context.Background(), "cat", tt.word)
			assert.Equal(t, tt.wantRequests, requests.Load())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(got))
		})
	}
}

func TestHTTPClient_FetchModel_timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.FetchModel(ctx, "cat", "dog")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestHTTPClient_FetchNearby(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantBody string
		wantErr  bool
	}{
		{
			name: "json payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/nearby/dog", r.URL.Path)
				_, _ = w.Write([]byte(`[["puppy", 0.81], ["cat", 0.76]]`))
			},
			wantBody: `[["puppy", 0.81], ["cat", 0.76]]`,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html></html>`))
			},
			wantErr: true,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			got, err := client.FetchNearby(context.Background(), "dog")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(got))
		})
	}
}

func TestHTTPClient_FetchSimilarityStory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/similarity/cat", r.URL.Path)
		_, _ = w.Write([]byte(`{"top": 0.76, "top10": 0.55, "rest": 0.21}`))
	})

	got, err := client.FetchSimilarityStory(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, SimilarityStory{Top: 0.76, Top10: 0.55, Rest: 0.21}, got)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server error", err: &statusError{statusCode: 500}, want: true},
		{name: "rate limited", err: &statusError{statusCode: 429}, want: true},
		{name: "bad request", err: &statusError{statusCode: 400}, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
