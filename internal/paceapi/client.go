// Package paceapi talks to the platform's pacing-configuration API.
// After a seeding run the pacing schedule that shaped the synthetic
// history is pushed here, so the dashboard's pacing view matches the
// seeded events.
package paceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ModulePace is one module's slice of the lookback window.
type ModulePace struct {
	ModuleID string `json:"module_id"`

	// DayOffsets are the working-day offsets (days before now, newest
	// first) allocated to this module.
	DayOffsets []int `json:"day_offsets"`
}

// PushRequest is the payload for a pacing push.
type PushRequest struct {
	GroupID     string       `json:"group_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Modules     []ModulePace `json:"modules"`
}

// StatusError reports a non-2xx response from the pacing API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pacing API returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client is an HTTP client for the pacing API.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	log     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the given base URL. The token may be empty
// for unauthenticated local instances.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset deletes any pacing configuration stored for the group. A 404 is
// treated as success since an unconfigured group needs no reset.
func (c *Client) Reset(ctx context.Context, groupID string) error {
	url := fmt.Sprintf("%s/v1/groups/%s/pace", c.baseURL, groupID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("reset pace for %s: %w", groupID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if err := checkStatus(resp); err != nil {
		return err
	}

	c.log.Debug("pacing configuration reset", zap.String("group", groupID))
	return nil
}

// Push uploads the group's pacing schedule.
func (c *Client) Push(ctx context.Context, push PushRequest) error {
	body, err := json.Marshal(push)
	if err != nil {
		return fmt.Errorf("encode pace push: %w", err)
	}

	url := fmt.Sprintf("%s/v1/groups/%s/pace", c.baseURL, push.GroupID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push pace for %s: %w", push.GroupID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return err
	}

	c.log.Debug("pacing configuration pushed",
		zap.String("group", push.GroupID),
		zap.Int("modules", len(push.Modules)))
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
