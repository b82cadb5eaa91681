package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/log"
)

const (
	apiPrefix = "/api"

	categoriesEndpoint      = apiPrefix + "/categories"
	categoriesOrderEndpoint = apiPrefix + "/categories/order"
	sitesEndpoint           = apiPrefix + "/sites"
	siteTitleEndpoint       = apiPrefix + "/sites/title"

	// DefaultTimeout is used when New is called without an HTTP client.
	DefaultTimeout = 10 * time.Second

	// maxResponseSize bounds how much of a response body is read.
	maxResponseSize = 4 << 20
)

// HTTPDoer is the part of *http.Client used by Client. Tests inject their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the quick-nav REST API.
//
// A Client holds no state besides its configuration and is safe for
// concurrent use.
type Client struct {
	httpClient HTTPDoer
	baseURL    string
}

// New creates a client for the API served at baseURL (e.g. "http://localhost:8080").
//
// If httpClient is nil, an *http.Client with DefaultTimeout is used.
func New(baseURL string, httpClient HTTPDoer) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// NewWithTimeout creates a client using a default *http.Client with the given timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	return New(baseURL, &http.Client{Timeout: timeout})
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// response is a completed 2xx exchange.
type response struct {
	status int
	body   []byte
}

// do sends one request and returns the 2xx response or a typed error.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body interface{}) (*response, error) {
	op := method + " " + endpoint

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewInternalError(fmt.Sprintf("failed to encode %s body", op), err)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to build %s request", op), err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("%s: failed to read response body", op), err)
	}

	log.Debugf("%s - %d (%v)", op, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewStatusError(op, resp.StatusCode, errorMessage(data))
	}

	return &response{status: resp.StatusCode, body: data}, nil
}

// errorMessage extracts the message from the server error envelope.
// Both {"error":"msg"} and {"error":{"message":"msg"}} are understood.
func errorMessage(body []byte) string {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return strings.TrimSpace(string(body))
	}

	var msg string
	if err := json.Unmarshal(envelope.Error, &msg); err == nil {
		return msg
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &structured); err == nil && structured.Message != "" {
		return structured.Message
	}

	return string(envelope.Error)
}

// fetchAndDeserialize issues a GET and decodes the JSON body into T.
// An empty body or malformed JSON is a decode error.
func fetchAndDeserialize[T any](ctx context.Context, c *Client, endpoint string, query url.Values) (T, error) {
	var result T

	resp, err := c.do(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(resp.body, &result); err != nil {
		return result, errors.NewDecodeError("GET "+endpoint, err)
	}

	return result, nil
}

// idQuery builds the ?id=N query used by DELETE and title endpoints.
func idQuery(id int) url.Values {
	return url.Values{"id": []string{strconv.Itoa(id)}}
}
