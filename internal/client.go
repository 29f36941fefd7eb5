package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// SearchTimeout bounds a single search request. On expiry the call
	// resolves to a TIMEOUT error instead of hanging.
	SearchTimeout = 15 * time.Second

	// DefaultBaseURL points at a locally running flight search service.
	DefaultBaseURL = "http://localhost:8080"
)

// Error kinds produced by the client itself. Kinds supplied by a structured
// service error body are passed through verbatim and are not listed here.
const (
	KindTimeout      = "TIMEOUT"
	KindNetworkError = "NETWORK_ERROR"
	KindServerError  = "SERVER_ERROR"
	KindUnknown      = "UNKNOWN"
)

// APIError is the sole failure shape that crosses the remote-client boundary.
// No raw transport error is allowed past it. StatusCode is 0 when no
// response was received.
type APIError struct {
	Kind       string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse is the structured error body the service returns on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Client performs the two outbound calls to the flight search service.
// It makes a single attempt per call; there is no retry policy.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client bound to the given service base URL, with the
// search timeout budget applied to every request.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: SearchTimeout},
	}
}

// FetchAirports loads the airport directory. The call is best-effort:
// callers are expected to swallow a failure and fall back to syntax-only
// validation.
func (c *Client) FetchAirports(ctx context.Context) ([]Airport, error) {
	body, err := c.get(ctx, "/api/airports", nil)
	if err != nil {
		return nil, fmt.Errorf("fetchAirports: %w", err)
	}

	var airports []Airport
	if err := json.Unmarshal(body, &airports); err != nil {
		return nil, fmt.Errorf("fetchAirports: failed to decode response: %w", err)
	}

	return airports, nil
}

// SearchFlights runs one itinerary search. Every possible failure is
// translated into exactly one *APIError before it is returned.
func (c *Client) SearchFlights(ctx context.Context, origin, destination, date string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("date", date)

	body, err := c.get(ctx, "/api/flights/search", params)
	if err != nil {
		return nil, classify(err)
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &APIError{Kind: KindUnknown, Message: "An unexpected error occurred.", StatusCode: 0}
	}

	// The itinerary list is authoritative; a count mismatch is a
	// data-integrity warning, not an error.
	if result.Count != len(result.Itineraries) {
		slog.Warn("search response count disagrees with itinerary list",
			slog.Int("count", result.Count),
			slog.Int("itineraries", len(result.Itineraries)))
	}

	return &result, nil
}

// httpStatusError marks a response that was received but carried a
// non-success status. It keeps the body so the caller can look for a
// structured error payload.
type httpStatusError struct {
	status int
	body   []byte
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("non-OK response status %d", e.status)
}

// get sends an HTTP GET request and returns the response body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	targetURL := c.BaseURL + path
	if len(params) > 0 {
		targetURL += "?" + params.Encode()
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("get: invalid request: %s: %w", targetURL, reqErr)
	}

	resp, respErr := c.HTTPClient.Do(req)
	if respErr != nil {
		return nil, fmt.Errorf("get: failed to send GET request: %s: %w", targetURL, respErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("get: error while closing response body", slog.Any("error", closeErr))
		}
	}()

	body, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, fmt.Errorf("get: failed to read response body: %w", bodyErr)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &httpStatusError{status: resp.StatusCode, body: body}
	}

	return body, nil
}

// classify translates a failed search into the error taxonomy.
// Precedence, first match wins: structured error body, timeout, no response,
// unstructured non-success response, anything else.
func classify(err error) *APIError {
	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		var body ErrorResponse
		if jsonErr := json.Unmarshal(statusErr.body, &body); jsonErr == nil && body.Error != "" {
			return &APIError{Kind: body.Error, Message: body.Message, StatusCode: body.StatusCode}
		}

		return &APIError{
			Kind:       KindServerError,
			Message:    fmt.Sprintf("Server returned %d. Please try again later.", statusErr.status),
			StatusCode: statusErr.status,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return &APIError{
				Kind:       KindTimeout,
				Message:    "The request timed out. Please try again.",
				StatusCode: 0,
			}
		}

		return &APIError{
			Kind:       KindNetworkError,
			Message:    "Unable to reach the server. Please check your connection and try again.",
			StatusCode: 0,
		}
	}

	return &APIError{Kind: KindUnknown, Message: "An unexpected error occurred.", StatusCode: 0}
}
