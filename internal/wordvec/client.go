package wordvec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/time/rate"
	"resty.dev/v3"
)

const (
	DefaultTimeout            = 10 * time.Second
	DefaultRateLimitPerSecond = 5.0

	defaultRetryDelay = 200 * time.Millisecond
)

// HTTPClient is a rate-limited client for the word-vector service.
type HTTPClient struct {
	httpClient       *resty.Client
	limiter          *rate.Limiter
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewHTTPClient(baseURL string, timeout time.Duration, retryAttempts uint, rateLimitPerSecond float64) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if rateLimitPerSecond <= 0 {
		rateLimitPerSecond = DefaultRateLimitPerSecond
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &HTTPClient{
		httpClient:       client,
		limiter:          rate.NewLimiter(rate.Limit(rateLimitPerSecond), 1),
		maxRetryAttempts: retryAttempts,
		retryDelay:       defaultRetryDelay,
	}
}

func (client *HTTPClient) Close() error {
	return client.httpClient.Close()
}

// statusError is a non-2xx answer from the service.
type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.statusCode, e.body)
}

// isRetryableError reports whether a failed request is worth repeating.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.statusCode >= http.StatusInternalServerError ||
			statusErr.statusCode == http.StatusTooManyRequests
	}
	// transport errors: connection refused, resets, client timeouts
	return true
}

// get performs one GET with retries. It returns (nil, nil) on 404.
func (client *HTTPClient) get(ctx context.Context, path string, pathParams map[string]string) ([]byte, error) {
	var body []byte
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			if attempt > 1 {
				slog.Default().Info("Retrying word vector request",
					"attempt", attempt,
					"path", path,
				)
			}
			if err := client.limiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(fmt.Errorf("limiter.Wait > %w", err))
			}

			response, err := client.httpClient.R().
				SetContext(ctx).
				SetPathParams(pathParams).
				Get(path)
			if err != nil {
				err = fmt.Errorf("httpClient.Get > %w", err)
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			if response.StatusCode() == http.StatusNotFound {
				body = nil
				return nil
			}
			if response.IsError() {
				err := &statusError{statusCode: response.StatusCode(), body: response.String()}
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = []byte(response.String())
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s > %v", ErrLookupFailed, path, err)
	}
	return body, nil
}

// FetchModel requests the vector and percentile of word relative to secret.
// Spaces in the word are sent as underscores, matching the model's phrase tokens.
func (client *HTTPClient) FetchModel(ctx context.Context, secret, word string) ([]byte, error) {
	body, err := client.get(ctx, "/model2/{secret}/{word}", map[string]string{
		"secret": secret,
		"word":   strings.ReplaceAll(word, " ", "_"),
	})
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	return body, nil
}

// FetchNearby returns the nearby-words payload as-is.
func (client *HTTPClient) FetchNearby(ctx context.Context, word string) (json.RawMessage, error) {
	body, err := client.get(ctx, "/nearby/{word}", map[string]string{
		"word": word,
	})
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: nearby response for %s is not JSON", ErrNotFound, word)
	}
	return json.RawMessage(body), nil
}

func (client *HTTPClient) FetchSimilarityStory(ctx context.Context, secret string) (SimilarityStory, error) {
	var story SimilarityStory
	body, err := client.get(ctx, "/similarity/{secret}", map[string]string{
		"secret": secret,
	})
	if err != nil {
		return story, err
	}
	if body == nil {
		return story, fmt.Errorf("%w: similarity story for %s", ErrNotFound, secret)
	}
	if err := json.Unmarshal(body, &story); err != nil {
		return story, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return story, nil
}
