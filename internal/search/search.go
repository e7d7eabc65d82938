// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the CORE works search API
// (https://api.core.ac.uk/v3/search/works) for paper records. It fetches a
// single page per call; the scroll identifier is surfaced but never
// followed.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/research-gaps/internal/httputil"
	"github.com/pdiddy/research-gaps/pkg/types"
)

// ErrMissingAPIKey is returned when the client has no API key to send.
var ErrMissingAPIKey = errors.New("CORE API key not configured")

// ErrEmptyQuery is returned for a blank query.
var ErrEmptyQuery = errors.New("query is empty")

// maxErrorBody bounds how much of a non-200 body is kept for the error.
const maxErrorBody = 512

// StatusError reports a non-200 response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("CORE API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("CORE API returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Query holds the parameters of one search request.
type Query struct {
	// Text is the CORE query string, e.g. `healthcare` or
	// `fullText:"limitations" AND fullText:"future work"`.
	Text string

	// Limit is the page size. Zero uses the client default.
	Limit int

	// ScrollID continues a scrolled search from a previous response.
	ScrollID string
}

// Response is one page of search results.
type Response struct {
	TotalHits int           `json:"totalHits" yaml:"total_hits"`
	Limit     int           `json:"limit" yaml:"limit"`
	Offset    int           `json:"offset" yaml:"offset"`
	ScrollID  string        `json:"scrollId,omitempty" yaml:"scroll_id,omitempty"`
	Results   []types.Paper `json:"results" yaml:"results"`

	// Elapsed is the wall-clock time of the request, retries included.
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// WithFullText returns the papers that carry full text, in result order.
func (r Response) WithFullText() []types.Paper {
	var papers []types.Paper
	for _, p := range r.Results {
		if p.HasFullText() {
			papers = append(papers, p)
		}
	}
	return papers
}

// Client queries the CORE API.
type Client struct {
	HTTP   *http.Client
	Config types.CoreConfig

	// UserAgent is sent with every request.
	UserAgent string

	// MaxRetries bounds retries on HTTP 429/503. Zero uses the default.
	MaxRetries int

	Logger *zap.Logger
}

// NewClient returns a client configured from cfg with defaults applied.
func NewClient(cfg types.Config, log *zap.Logger) *Client {
	cfg = cfg.WithDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.HTTP.Timeout},
		Config:     cfg.Core,
		UserAgent:  cfg.HTTP.UserAgent,
		MaxRetries: cfg.HTTP.MaxRetries,
		Logger:     log,
	}
}

// Search runs q against the CORE API and returns one page of results.
func (c *Client) Search(ctx context.Context, q Query) (Response, error) {
	if strings.TrimSpace(q.Text) == "" {
		return Response{}, ErrEmptyQuery
	}
	if c.Config.APIKey == "" {
		return Response{}, ErrMissingAPIKey
	}

	reqURL := c.buildURL(q)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Config.APIKey)
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	log := c.logger()
	log.Debug("querying CORE", zap.String("query", q.Text), zap.Bool("scroll", q.ScrollID != ""))

	start := time.Now()
	resp, err := httputil.DoWithRetry(ctx, c.client(), req, c.MaxRetries, log)
	if err != nil {
		return Response{}, fmt.Errorf("CORE API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Response{}, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("parsing CORE response: %w", err)
	}
	out.Elapsed = time.Since(start)

	log.Debug("CORE query done",
		zap.Int("total_hits", out.TotalHits),
		zap.Int("results", len(out.Results)),
		zap.Duration("elapsed", out.Elapsed),
	)
	return out, nil
}

// buildURL appends the query parameters to the configured base URL, using
// "&" when the base already carries a query string. A fresh search asks the
// API to open a scroll; a continued one passes the scroll identifier.
func (c *Client) buildURL(q Query) string {
	base := c.Config.BaseURL
	if base == "" {
		base = types.DefaultCoreBaseURL
	}

	limit := q.Limit
	if limit <= 0 {
		limit = c.Config.Limit
	}
	if limit <= 0 {
		limit = types.DefaultCoreLimit
	}

	params := url.Values{
		"q":     {q.Text},
		"limit": {strconv.Itoa(limit)},
	}
	if q.ScrollID != "" {
		params.Set("scrollId", q.ScrollID)
	} else {
		params.Set("scroll", "true")
	}

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}

func (c *Client) client() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
