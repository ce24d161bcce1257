// Package ratelimit parses GitHub rate-limit response headers and computes
// the delays the fetch layer must observe. It distinguishes a depleted
// primary window (X-RateLimit-Remaining: 0), which requires waiting until
// the window resets, from secondary throttling (429/403), which is paced by
// Retry-After or exponential backoff.
package ratelimit

import (
	"net/http"
	"strconv"
	"time"
)

// DefaultResetPause is the pause applied when a depleted window carries no
// usable X-RateLimit-Reset header.
const DefaultResetPause = 60 * time.Second

// Info describes the rate-limit posture of a single API response.
type Info struct {
	// Remaining is the parsed X-RateLimit-Remaining value, or -1 when the
	// header is absent or unreadable. Only an explicit 0 means depleted.
	Remaining int

	// Reset is the window reset instant from X-RateLimit-Reset (epoch
	// seconds). Zero when the header is absent or unreadable.
	Reset time.Time

	// RetryAfter is the server-mandated pause from the Retry-After header,
	// resolved against the detection time. Zero when absent.
	RetryAfter time.Duration
}

// Detect extracts rate-limit information from response headers. now anchors
// the resolution of HTTP-date Retry-After values.
func Detect(h http.Header, now time.Time) Info {
	info := Info{Remaining: -1}

	if v := h.Get("X-RateLimit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			info.Remaining = n
		}
	}

	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil && sec > 0 {
			info.Reset = time.Unix(sec, 0)
		}
	}

	info.RetryAfter = parseRetryAfter(h.Get("Retry-After"), now)

	return info
}

// Depleted reports whether the primary quota window is exhausted. An absent
// header never counts as depleted.
func (i Info) Depleted() bool {
	return i.Remaining == 0
}

// ResetPause returns how long to wait for a depleted window to reset: one
// second past the advertised reset instant, clamped at zero if the window
// already reset, or DefaultResetPause when no reset time was advertised.
func (i Info) ResetPause(now time.Time) time.Duration {
	if i.Reset.IsZero() {
		return DefaultResetPause
	}
	if d := i.Reset.Sub(now) + time.Second; d > 0 {
		return d
	}
	return 0
}

// Backoff returns the exponential delay for the given retry attempt
// (1-based): base doubled once per prior attempt.
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return base * time.Duration(1<<uint(attempt-1))
}

// parseRetryAfter handles both forms the API sends: delay-seconds and
// HTTP-date. Unreadable or past values yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if sec, err := strconv.Atoi(v); err == nil {
		if sec < 0 {
			return 0
		}
		return time.Duration(sec) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
