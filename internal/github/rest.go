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

package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sirseerhq/sirseer-scout/internal/console"
	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/internal/ratelimit"
	"github.com/sirseerhq/sirseer-scout/pkg/version"
)

// Defaults applied when ClientOptions leaves a field zero.
const (
	defaultPageSize    = 100
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
	defaultPageDelay   = 100 * time.Millisecond
	defaultTimeout     = 10 * time.Second
)

// Recorder receives fetch-layer events for run accounting. All methods
// must be cheap; they are called on the hot path.
type Recorder interface {
	// RecordRequest notes one HTTP request issued, retries included.
	RecordRequest()
	// RecordPage notes one non-empty listing page and its entry count.
	RecordPage(count int)
	// RecordTopicFailure notes one topics fetch that degraded to empty.
	RecordTopicFailure()
}

// nopRecorder keeps the fetch path free of nil checks when no accounting
// is wired in.
type nopRecorder struct{}

func (nopRecorder) RecordRequest()      {}
func (nopRecorder) RecordPage(int)      {}
func (nopRecorder) RecordTopicFailure() {}

// ClientOptions configures a RESTClient. Zero fields fall back to the
// package defaults; Reporter falls back to a silent reporter.
type ClientOptions struct {
	// Endpoint is the API base URL, e.g. https://api.github.com.
	Endpoint string

	// Token is the optional bearer token. Empty means unauthenticated,
	// subject to the stricter public rate limits.
	Token string

	// PageSize is the listing page size. The API caps it at 100.
	PageSize int

	// PageDelay is the pacing pause between listing pages, tuned to stay
	// under the secondary rate limit.
	PageDelay time.Duration

	// MaxAttempts bounds retries for genuine failures. Waits for a
	// depleted rate-limit window never count against it.
	MaxAttempts int

	// BaseDelay is the flat retry pause and the seed of the exponential
	// backoff sequence.
	BaseDelay time.Duration

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// Reporter receives progress and warning lines.
	Reporter *console.Reporter

	// Recorder receives run accounting events. Optional.
	Recorder Recorder
}

// RESTClient implements Client against the GitHub REST API using resty.
// All requests flow through a single resilient fetch loop that handles
// rate limiting and transient failures.
type RESTClient struct {
	http        *resty.Client
	reporter    *console.Reporter
	recorder    Recorder
	pageSize    int
	pageDelay   time.Duration
	maxAttempts int
	baseDelay   time.Duration

	// sleep and now are swappable so tests can observe requested delays
	// without waiting them out.
	sleep func(ctx context.Context, d time.Duration) error
	now   func() time.Time
}

// NewRESTClient creates a client for the given endpoint. The underlying
// HTTP client is configured with the request timeout, a stable User-Agent,
// and bearer authentication when a token is supplied.
func NewRESTClient(opts ClientOptions) *RESTClient {
	if opts.PageSize <= 0 || opts.PageSize > 100 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = defaultBaseDelay
	}
	if opts.PageDelay <= 0 {
		opts.PageDelay = defaultPageDelay
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Reporter == nil {
		opts.Reporter = console.New(console.Options{Quiet: true, Writer: io.Discard})
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.Endpoint, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", fmt.Sprintf("sirseer-scout/%s", version.Version))
	if opts.Token != "" {
		httpClient.SetAuthToken(opts.Token)
	}

	return &RESTClient{
		http:        httpClient,
		reporter:    opts.Reporter,
		recorder:    opts.Recorder,
		pageSize:    opts.PageSize,
		pageDelay:   opts.PageDelay,
		maxAttempts: opts.MaxAttempts,
		baseDelay:   opts.BaseDelay,
		sleep:       sleepContext,
		now:         time.Now,
	}
}

// do issues one GET through the resilient fetch loop. Only a 200 or 404
// response escapes the loop; 404 is terminal data, not a failure. The
// attempt counter advances on transport errors, secondary throttling, and
// unexpected statuses; a depleted primary window pauses until the window
// resets without consuming an attempt, however often it recurs.
func (c *RESTClient) do(ctx context.Context, path string, query, headers map[string]string) (*resty.Response, error) {
	attempt := 1
	for attempt <= c.maxAttempts {
		req := c.http.R().SetContext(ctx)
		if len(query) > 0 {
			req.SetQueryParams(query)
		}
		for k, v := range headers {
			req.SetHeader(k, v)
		}

		c.recorder.RecordRequest()
		resp, err := req.Get(path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.reporter.Warnf("Request error on %s: %v. Attempt %d/%d", path, err, attempt, c.maxAttempts)
			if err := c.sleep(ctx, c.baseDelay); err != nil {
				return nil, err
			}
			attempt++
			continue
		}

		status := resp.StatusCode()
		if status == http.StatusOK || status == http.StatusNotFound {
			return resp, nil
		}

		info := ratelimit.Detect(resp.Header(), c.now())
		switch {
		case status == http.StatusTooManyRequests || status == http.StatusForbidden:
			switch {
			case info.RetryAfter > 0:
				c.reporter.Warnf("Secondary rate limit on %s. Honoring Retry-After of %v. Attempt %d/%d",
					path, info.RetryAfter, attempt, c.maxAttempts)
				if err := c.sleep(ctx, info.RetryAfter); err != nil {
					return nil, err
				}
				attempt++
			case info.Depleted() && !info.Reset.IsZero():
				pause := info.ResetPause(c.now())
				c.reporter.Warnf("Rate limit exhausted on %s. Waiting %v for the window to reset", path, pause)
				if err := c.sleep(ctx, pause); err != nil {
					return nil, err
				}
			default:
				backoff := ratelimit.Backoff(c.baseDelay, attempt)
				c.reporter.Warnf("Secondary rate limit on %s. Backing off %v. Attempt %d/%d",
					path, backoff, attempt, c.maxAttempts)
				if err := c.sleep(ctx, backoff); err != nil {
					return nil, err
				}
				attempt++
			}
		case info.Depleted():
			pause := info.ResetPause(c.now())
			c.reporter.Warnf("Rate limit exhausted on %s. Waiting %v for the window to reset", path, pause)
			if err := c.sleep(ctx, pause); err != nil {
				return nil, err
			}
		default:
			c.reporter.Warnf("HTTP %d from %s. Attempt %d/%d", status, path, attempt, c.maxAttempts)
			if err := c.sleep(ctx, c.baseDelay); err != nil {
				return nil, err
			}
			attempt++
		}
	}

	return nil, fmt.Errorf("GET %s: %w after %d attempts", path, scouterrors.ErrExhausted, c.maxAttempts)
}

// sleepContext pauses for d or until ctx is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
