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
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	scouterrors "github.com/sirseerhq/sirseer-scout/internal/errors"
	"github.com/sirseerhq/sirseer-scout/internal/ratelimit"
)

// Compile-time check that RESTClient implements Client
var _ Client = (*RESTClient)(nil)

// sleepRecorder captures requested sleep durations instead of waiting
// them out, keeping rate-limit tests instant.
type sleepRecorder struct {
	durations []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.durations = append(s.durations, d)
	return nil
}

// captureRecorder counts fetch-layer accounting events.
type captureRecorder struct {
	requests      int
	pages         []int
	topicFailures int
}

func (r *captureRecorder) RecordRequest()      { r.requests++ }
func (r *captureRecorder) RecordPage(n int)    { r.pages = append(r.pages, n) }
func (r *captureRecorder) RecordTopicFailure() { r.topicFailures++ }

// newTestClient builds a RESTClient against server with instant sleeps.
func newTestClient(server *httptest.Server, opts ClientOptions) (*RESTClient, *sleepRecorder) {
	opts.Endpoint = server.URL
	client := NewRESTClient(opts)
	rec := &sleepRecorder{}
	client.sleep = rec.sleep
	return client, rec
}

func TestDoReturnsSuccessImmediately(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Authorization = %q, want Bearer test-token", auth)
		}
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("missing User-Agent header")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, rec := newTestClient(server, ClientOptions{Token: "test-token"})

	resp, err := client.do(context.Background(), "/users/octocat", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode())
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	if len(rec.durations) != 0 {
		t.Errorf("unexpected sleeps: %v", rec.durations)
	}
}

func TestDoReturns404WithoutRetrying(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer server.Close()

	client, rec := newTestClient(server, ClientOptions{})

	resp, err := client.do(context.Background(), "/users/ghost", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode())
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1: 404 is terminal data, not a retry", requests)
	}
	if len(rec.durations) != 0 {
		t.Errorf("unexpected sleeps: %v", rec.durations)
	}
}

func TestDoWaitsOutDepletedWindowThenRetries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reset := now.Add(5 * time.Second)

	var requests int
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		paths = append(paths, r.URL.Path)
		if requests == 1 {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	// MaxAttempts of 1 proves the pause consumes no attempt: a bounded
	// branch would have exhausted instead of retrying.
	client, rec := newTestClient(server, ClientOptions{MaxAttempts: 1})
	client.now = func() time.Time { return now }

	resp, err := client.do(context.Background(), "/users/octocat/repos", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("status = %d, want 200 after the pause", resp.StatusCode())
	}
	if requests != 2 {
		t.Fatalf("requests = %d, want 2", requests)
	}
	if paths[0] != paths[1] {
		t.Errorf("retried a different request: %s then %s", paths[0], paths[1])
	}
	if len(rec.durations) != 1 {
		t.Fatalf("sleeps = %v, want exactly one pause", rec.durations)
	}
	if rec.durations[0] < 5*time.Second || rec.durations[0] > 6*time.Second {
		t.Errorf("pause = %v, want reset-now+1 (between 5s and 6s)", rec.durations[0])
	}
}

func TestDoDepletedWindowWithoutResetUsesFallbackPause(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, rec := newTestClient(server, ClientOptions{MaxAttempts: 1})

	if _, err := client.do(context.Background(), "/users/octocat", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if len(rec.durations) != 1 || rec.durations[0] != ratelimit.DefaultResetPause {
		t.Errorf("sleeps = %v, want one %v fallback pause", rec.durations, ratelimit.DefaultResetPause)
	}
}

func TestDoHonorsRetryAfterExactly(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, rec := newTestClient(server, ClientOptions{MaxAttempts: 3})

	if _, err := client.do(context.Background(), "/repos/octocat/Hello-World/topics", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
	if len(rec.durations) != 1 || rec.durations[0] != 7*time.Second {
		t.Errorf("sleeps = %v, want exactly [7s]", rec.durations)
	}
}

func TestDoExponentialBackoffOnThrottle(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests <= 3 {
			// 403 with a healthy remaining count and no Retry-After:
			// secondary throttling with no server hint.
			w.Header().Set("X-RateLimit-Remaining", "42")
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, rec := newTestClient(server, ClientOptions{MaxAttempts: 4, BaseDelay: 2 * time.Second})

	if _, err := client.do(context.Background(), "/users/octocat", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 4 {
		t.Errorf("requests = %d, want 4", requests)
	}
	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}
	if len(rec.durations) != len(want) {
		t.Fatalf("sleeps = %v, want %v", rec.durations, want)
	}
	for i, d := range want {
		if rec.durations[i] != d {
			t.Errorf("sleep %d = %v, want %v", i, rec.durations[i], d)
		}
	}
}

func TestDoFlatDelayOnUnexpectedStatus(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, rec := newTestClient(server, ClientOptions{MaxAttempts: 3, BaseDelay: time.Second})

	if _, err := client.do(context.Background(), "/users/octocat", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 3 {
		t.Errorf("requests = %d, want 3", requests)
	}
	want := []time.Duration{time.Second, time.Second}
	if len(rec.durations) != len(want) {
		t.Fatalf("sleeps = %v, want %v", rec.durations, want)
	}
	for i, d := range want {
		if rec.durations[i] != d {
			t.Errorf("sleep %d = %v, want flat %v", i, rec.durations[i], d)
		}
	}
}

func TestDoExhaustsAttemptsIntoDefinitiveFailure(t *testing.T) {
	recorder := &captureRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, _ := newTestClient(server, ClientOptions{MaxAttempts: 3, Recorder: recorder})

	_, err := client.do(context.Background(), "/users/octocat", nil, nil)
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if !errors.Is(err, scouterrors.ErrExhausted) {
		t.Errorf("error = %v, want wrapping ErrExhausted", err)
	}
	if recorder.requests != 3 {
		t.Errorf("requests = %d, want 3", recorder.requests)
	}
}

func TestDoRetriesTransportErrors(t *testing.T) {
	recorder := &captureRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // every request now fails at the transport level

	client, rec := newTestClient(server, ClientOptions{MaxAttempts: 3, BaseDelay: time.Second, Recorder: recorder})

	_, err := client.do(context.Background(), "/users/octocat", nil, nil)
	if err == nil {
		t.Fatal("expected error from unreachable server")
	}
	if !errors.Is(err, scouterrors.ErrExhausted) {
		t.Errorf("error = %v, want wrapping ErrExhausted", err)
	}
	if recorder.requests != 3 {
		t.Errorf("requests = %d, want 3", recorder.requests)
	}
	if len(rec.durations) != 3 {
		t.Errorf("sleeps = %v, want a flat delay after each failed attempt", rec.durations)
	}
}

func TestDoStopsWhenContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRESTClient(ClientOptions{
		Endpoint:    server.URL,
		MaxAttempts: 5,
		BaseDelay:   100 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.do(ctx, "/users/octocat", nil, nil)
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("cancellation took %v, want prompt return", elapsed)
	}
}
