// Package rest provides a small GET-only client for plain HTTP/REST APIs.
// It sits on top of a retryablehttp.Client and returns the raw status code
// and body of every response, leaving their interpretation to the caller.
package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrUnexpectedStatus indicates that the remote server answered with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// maxErrorBodyLength caps how much of a response body is quoted in an error message.
const maxErrorBodyLength = 128

// Response is the raw outcome of a request.
type Response struct {
	StatusCode int    // HTTP status code returned by the server
	Body       []byte // Full response body
}

// OK reports whether the response carries a 2xx status code.
func (r Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Err returns an error wrapping ErrUnexpectedStatus if the response is not OK.
// The error message includes the status code and the beginning of the body.
func (r Response) Err() error {
	if r.OK() {
		return nil
	}

	body := strings.TrimSpace(string(r.Body))
	if len(body) > maxErrorBodyLength {
		body = body[:maxErrorBodyLength] + "..."
	}

	return fmt.Errorf("%w: [%d] - %s", ErrUnexpectedStatus, r.StatusCode, body)
}

// Client defines the interface for a REST client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Get sends a GET request for the given path, relative to the client's base URL.
	// It returns an error only when the request could not be completed; non-2xx
	// responses are returned as-is.
	Get(ctx context.Context, path string) (Response, error)
}

// client is the default implementation of the Client interface.
type client struct {
	baseURL    string                // Base URL every path is appended to
	httpClient *retryablehttp.Client // The HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Get implements the Client interface.
func (c *client) Get(ctx context.Context, path string) (Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("Accept", "application/json, text/plain")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, err
	}

	return Response{StatusCode: res.StatusCode, Body: body}, nil
}

// NewClient constructs and returns a Client that will send requests
// to paths under baseURL using the given HTTP client.
//
// httpClient: the HTTP client to use for sending requests.
// baseURL: scheme and host of the server, a trailing slash is ignored.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}
