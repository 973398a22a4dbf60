// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qiita

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	qerrors "github.com/sotoiwa/qiita-checker/internal/errors"
	"github.com/sotoiwa/qiita-checker/pkg/version"
)

// maxResponseSize caps how much of any response body is read (10MB).
const maxResponseSize = 10 * 1024 * 1024

// RESTClient implements the Qiita Client interface against the REST API v2.
// It is configured with:
//   - Authentication via the provided token
//   - Custom API endpoint URL (e.g., for Qiita Team domains)
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Optimized connection pooling for API performance
//
// It performs no retries: the first failing request aborts the run.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// NewRESTClient creates a new Qiita REST client with the provided token and
// endpoint. The endpoint is the API root, e.g. "https://qiita.com/api/v2".
func NewRESTClient(endpoint, token string, log *slog.Logger) *RESTClient {
	// Create optimized transport with connection pooling
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}

	return &RESTClient{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(endpoint, "/"),
		log:        log,
	}
}

// FetchArticles retrieves one page of the authenticated user's articles.
// An empty pageURL starts at the canonical list endpoint; the next page URL
// is taken from the Link response header and returned on the page, empty
// when pagination is done.
func (c *RESTClient) FetchArticles(ctx context.Context, pageURL string, opts FetchOptions) (*ArticlePage, error) {
	if pageURL == "" {
		pageURL = c.baseURL + "/authenticated_user/items"
		if opts.PageSize > 0 {
			pageURL += "?per_page=" + strconv.Itoa(opts.PageSize)
		}
	}

	body, header, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	var articles []Article
	if err := json.Unmarshal(body, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode article list: %w", err)
	}

	return &ArticlePage{
		Articles:    articles,
		NextPageURL: nextPageURL(header.Get("link")),
	}, nil
}

// FetchArticle retrieves a single article, including its authoritative
// page_views_count.
func (c *RESTClient) FetchArticle(ctx context.Context, id string) (*Article, error) {
	body, _, err := c.get(ctx, c.itemURL(id))
	if err != nil {
		return nil, err
	}

	var article Article
	if err := json.Unmarshal(body, &article); err != nil {
		return nil, fmt.Errorf("failed to decode article %s: %w", id, err)
	}

	return &article, nil
}

// FetchStockers retrieves the users who stocked the given article.
func (c *RESTClient) FetchStockers(ctx context.Context, id string) ([]User, error) {
	body, _, err := c.get(ctx, c.itemURL(id)+"/stockers")
	if err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode stockers of %s: %w", id, err)
	}

	return users, nil
}

// FetchLikers retrieves the users who liked the given article. The likes
// endpoint nests the user object inside each like record, so the response
// is unwrapped to plain users here.
func (c *RESTClient) FetchLikers(ctx context.Context, id string) ([]User, error) {
	body, _, err := c.get(ctx, c.itemURL(id)+"/likes")
	if err != nil {
		return nil, err
	}

	var likes []struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(body, &likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes of %s: %w", id, err)
	}

	users := make([]User, 0, len(likes))
	for _, like := range likes {
		users = append(users, like.User)
	}

	return users, nil
}

// itemURL builds the per-item endpoint URL, escaping the id.
func (c *RESTClient) itemURL(id string) string {
	return c.baseURL + "/items/" + url.PathEscape(id)
}

// get issues an authenticated GET and returns the body and response headers.
// Any non-2xx status is surfaced as a *StatusError wrapping the matching
// sentinel error.
func (c *RESTClient) get(ctx context.Context, rawURL string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}

	c.log.Info("GET", slog.String("url", rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("GET %s: %w: %v", rawURL, qerrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, newStatusError(resp.StatusCode, rawURL)
	}

	return body, resp.Header, nil
}

// StatusError reports a non-success HTTP status from the Qiita API.
// It wraps a sentinel error so callers can classify it with errors.Is.
type StatusError struct {
	Code int
	URL  string
	err  error
}

// newStatusError maps an HTTP status code to the matching sentinel error.
func newStatusError(code int, url string) *StatusError {
	var sentinel error
	switch code {
	case http.StatusUnauthorized:
		sentinel = qerrors.ErrInvalidToken
	case http.StatusNotFound:
		sentinel = qerrors.ErrNotFound
	case http.StatusForbidden, http.StatusTooManyRequests:
		sentinel = qerrors.ErrRateLimited
	}
	return &StatusError{Code: code, URL: url, err: sentinel}
}

func (e *StatusError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("GET %s returned status %d: %s", e.URL, e.Code, e.err)
	}
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.Code)
}

func (e *StatusError) Unwrap() error {
	return e.err
}

// authTransport adds authentication header and safety limits to HTTP requests
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", fmt.Sprintf("qiita-checker/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Apply response size limit
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseSize,
		}
	}

	return resp, nil
}

// limitedReader wraps a ReadCloser and fails once the size limit is exceeded,
// protecting against unexpectedly large responses.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}
