package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"timelog/internal/domain"
	"timelog/internal/ports"
)

// TimestampLayout is the format Jira uses for worklog start times
// (e.g. 2021-01-17T12:34:00.000+0000)
const TimestampLayout = "2006-01-02T15:04:05.000-0700"

// Client implements ports.TicketTracker against the Jira REST API v2
type Client struct {
	host       string
	user       string
	pass       string
	httpClient *http.Client
}

// Ensure Client implements TicketTracker
var _ ports.TicketTracker = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Jira client authenticating with basic auth
func NewClient(host, user, pass string, opts ...Option) *Client {
	c := &Client{
		host:       strings.TrimSuffix(host, "/"),
		user:       user,
		pass:       pass,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from Jira
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira error (status %d): %s", e.StatusCode, e.Body)
}

type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Summary     string  `json:"summary"`
		Description *string `json:"description"`
		Creator     struct {
			DisplayName string `json:"displayName"`
		} `json:"creator"`
		TimeTracking struct {
			OriginalEstimate *string `json:"originalEstimate"`
		} `json:"timetracking"`
	} `json:"fields"`
}

type worklog struct {
	ID               string `json:"id,omitempty"`
	Comment          string `json:"comment"`
	Started          string `json:"started"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
}

type worklogsResponse struct {
	Worklogs []worklog `json:"worklogs"`
}

func issueURI(key string) string {
	return "/rest/api/2/issue/" + url.PathEscape(key)
}

func worklogURI(key string) string {
	return issueURI(key) + "/worklog"
}

// FetchTicket retrieves an issue by key
func (c *Client) FetchTicket(ctx context.Context, key string) (*domain.Ticket, error) {
	var issue issueResponse
	if err := c.do(ctx, http.MethodGet, issueURI(key), nil, nil, &issue); err != nil {
		return nil, err
	}

	t := &domain.Ticket{
		Key:     issue.Key,
		Summary: issue.Fields.Summary,
		Creator: issue.Fields.Creator.DisplayName,
	}
	if t.Key == "" {
		t.Key = key
	}
	if issue.Fields.Description != nil {
		t.Description = *issue.Fields.Description
	}
	if issue.Fields.TimeTracking.OriginalEstimate != nil {
		t.OriginalEstimate = *issue.Fields.TimeTracking.OriginalEstimate
	}
	return t, nil
}

// ListWorklogs returns the worklogs already recorded on an issue
func (c *Client) ListWorklogs(ctx context.Context, key string) ([]domain.RemoteWorklog, error) {
	var resp worklogsResponse
	if err := c.do(ctx, http.MethodGet, worklogURI(key), nil, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]domain.RemoteWorklog, 0, len(resp.Worklogs))
	for _, w := range resp.Worklogs {
		started, err := time.Parse(TimestampLayout, w.Started)
		if err != nil {
			return nil, fmt.Errorf("parse worklog %s start %q: %w", w.ID, w.Started, err)
		}
		out = append(out, domain.RemoteWorklog{
			ID:               w.ID,
			Started:          started.In(time.Local),
			TimeSpentSeconds: w.TimeSpentSeconds,
		})
	}
	return out, nil
}

// AddWorklog records one closed range on the issue
func (c *Client) AddWorklog(ctx context.Context, entry domain.SyncEntry) error {
	body := worklog{
		Started:          entry.Started.In(time.Local).Format(TimestampLayout),
		TimeSpentSeconds: entry.DurationSeconds,
	}
	query := url.Values{
		"notifyUsers":          {"false"},
		"adjustEstimate":       {"auto"},
		"overrideEditableFlag": {"false"},
	}
	return c.do(ctx, http.MethodPost, worklogURI(entry.TicketKey), query, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		jsonBody, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.user, c.pass)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
