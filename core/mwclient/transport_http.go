package mwclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/meshwallet/sdk-go/core/types"
	"github.com/meshwallet/sdk-go/core/walletapi"
)

// DefaultRequestTimeout bounds a single status fetch independently of any
// polling deadline, so one slow request cannot stall a wait loop silently.
const DefaultRequestTimeout = 30 * time.Second

// HTTPTransport is the default Transport over standard net/http.
//
// It owns request construction for the wallet service: JSON bodies, auth
// and API-key headers merged with any per-client extras, a per-request
// timeout, and translation of every failure into the SDK's normalized
// error type.
type HTTPTransport struct {
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

var _ walletapi.Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates an HTTP transport. A nil httpClient gets a
// default client with DefaultRequestTimeout; extra headers override the
// defaults on key collisions.
func NewHTTPTransport(apiKey string, httpClient *http.Client, headers map[string]string) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultRequestTimeout}
	}
	return &HTTPTransport{
		httpClient: httpClient,
		apiKey:     apiKey,
		headers:    headers,
	}
}

// Get issues a GET to url and decodes the 2xx JSON body into out.
func (t *HTTPTransport) Get(ctx context.Context, url string, out any) error {
	return t.do(ctx, http.MethodGet, url, nil, out)
}

// Post issues a POST with body serialized as JSON and decodes the 2xx JSON
// body into out.
func (t *HTTPTransport) Post(ctx context.Context, url string, body any, out any) error {
	return t.do(ctx, http.MethodPost, url, body, out)
}

func (t *HTTPTransport) do(ctx context.Context, method, url string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return types.NewTransportError(errors.Wrap(err, "failed to marshal request body"))
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return types.NewTransportError(errors.Wrap(err, "failed to create request"))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
		req.Header.Set("x-mesh-api-key", t.apiKey)
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return types.NewTimeoutError("request to %s timed out", url)
		}
		return types.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.NewTransportError(errors.Wrap(err, "failed to read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mapResponseError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return types.NewTransportError(errors.Wrap(err, "failed to decode response body"))
		}
	}

	return nil
}

// errorBody covers both non-2xx shapes the service produces: a plain
// {error} body and the 422 {message, errors} validation payload.
type errorBody struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// mapResponseError translates a non-2xx response into the tagged error
// type: 404 becomes a distinct not-found error, 422 a validation error
// preserving the per-field map, everything else a request error that
// defaults its message to "Request failed with status N".
func mapResponseError(statusCode int, body []byte) *types.Error {
	if statusCode == http.StatusNotFound {
		return types.NewNotFoundError()
	}

	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	if statusCode == http.StatusUnprocessableEntity {
		return types.NewValidationError(parsed.Message, parsed.Errors)
	}

	message := parsed.Error
	if message == "" {
		message = parsed.Message
	}
	return types.NewRequestError(statusCode, message)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *neturl.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
