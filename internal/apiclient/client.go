// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package apiclient talks to the portfolio REST backend.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Client configuration constants
const (
	DefaultTimeout  = 30 * time.Second // Per-request timeout
	MaxResponseLen  = 4 << 20          // Maximum response body to decode (4MB)
	MaxErrorBodyLen = 512              // Maximum error body kept in StatusError
	UserAgent       = "portfolio-go/1.0"
)

// Backend paths
const (
	pathProjects        = "/projects"
	pathCertificates    = "/certificates"
	pathAccomplishments = "/accomplishments"
)

// Client is a REST client for the portfolio backend. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a client for the API rooted at baseURL,
// e.g. "http://localhost:5000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListProjects fetches GET /projects.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var out []model.Project
	if err := c.do(ctx, "list_projects", http.MethodGet, pathProjects, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// CreateProject posts p (without id) and returns the stored project.
func (c *Client) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	p.ID = ""
	var out model.Project
	if err := c.do(ctx, "create_project", http.MethodPost, pathProjects, p, &out); err != nil {
		return model.Project{}, err
	}
	if out.ID.IsZero() {
		return model.Project{}, fmt.Errorf("POST %s: response has no id", pathProjects)
	}
	return out, nil
}

// UpdateProject replaces the project with the given id and returns the
// stored project. A response without an id keeps the requested one.
func (c *Client) UpdateProject(ctx context.Context, id model.ID, p model.Project) (model.Project, error) {
	p.ID = ""
	var out model.Project
	if err := c.do(ctx, "update_project", http.MethodPut, projectPath(id), p, &out); err != nil {
		return model.Project{}, err
	}
	if out.ID.IsZero() {
		out.ID = id
	}
	return out, nil
}

// DeleteProject issues DELETE /projects/{id}. Any response body is ignored.
func (c *Client) DeleteProject(ctx context.Context, id model.ID) error {
	return c.do(ctx, "delete_project", http.MethodDelete, projectPath(id), nil, nil)
}

// ListCertificates fetches GET /certificates.
func (c *Client) ListCertificates(ctx context.Context) ([]model.Certificate, error) {
	var out []model.Certificate
	if err := c.do(ctx, "list_certificates", http.MethodGet, pathCertificates, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// ListAccomplishments fetches GET /accomplishments.
func (c *Client) ListAccomplishments(ctx context.Context) ([]model.Accomplishment, error) {
	var out []model.Accomplishment
	if err := c.do(ctx, "list_accomplishments", http.MethodGet, pathAccomplishments, nil, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

func projectPath(id model.ID) string {
	return pathProjects + "/" + url.PathEscape(id.String())
}

// do performs one request. body is JSON-encoded when non-nil; out is
// decoded from a 2xx response when non-nil.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() { observeRequest(operation, err, time.Since(start)) }()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyLen))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(msg)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseLen))
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseLen)).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func isStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
