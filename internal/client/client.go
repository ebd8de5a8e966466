// Package client is a Go client for the linx HTTP API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-resty/resty/v2"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("server responded %d", e.StatusCode)
	}

	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Detail)
}

// Unwrap lets callers match on ErrBadRequest, ErrConflict and ErrNotFound.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrBadRequest
	case http.StatusConflict:
		return ErrConflict
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// Link is a created short link.
type Link struct {
	Code     string `json:"code"`
	ShortURL string `json:"short_url"`
	URL      string `json:"url"`
}

type shortenRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

// Client talks to a linx server.
type Client struct {
	inner *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.inner.SetTimeout(d)
	}
}

// New creates a client for the server at baseURL. Redirects are never
// followed so Resolve can read the Location header.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		inner: resty.New().SetBaseURL(strings.TrimSuffix(baseURL, "/")),
	}

	for _, opt := range options {
		opt(c)
	}

	c.inner.SetRedirectPolicy(
		resty.RedirectPolicyFunc(func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}),
	)

	return c
}

// Shorten creates a short link for url. An empty code asks the server to
// generate one.
func (c *Client) Shorten(ctx context.Context, url, code string) (*Link, error) {
	var (
		link    Link
		problem huma.ErrorModel
	)

	resp, err := c.inner.R().
		SetContext(ctx).
		SetBody(shortenRequest{URL: url, Code: code}).
		SetResult(&link).
		SetError(&problem).
		Post("/shorten")
	if err != nil {
		return nil, fmt.Errorf("shorten: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("shorten: %w", &APIError{StatusCode: resp.StatusCode(), Detail: problem.Detail})
	}

	return &link, nil
}

// Resolve returns the URL a code redirects to.
func (c *Client) Resolve(ctx context.Context, code string) (string, error) {
	var problem huma.ErrorModel

	resp, err := c.inner.R().
		SetContext(ctx).
		SetPathParam("code", code).
		SetError(&problem).
		Get("/{code}")
	if err != nil {
		return "", fmt.Errorf("resolve: %w", err)
	}

	if resp.StatusCode() != http.StatusMovedPermanently {
		return "", fmt.Errorf("resolve: %w", &APIError{StatusCode: resp.StatusCode(), Detail: problem.Detail})
	}

	return resp.Header().Get("Location"), nil
}
