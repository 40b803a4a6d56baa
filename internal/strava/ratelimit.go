package strava

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Strava enforces 100 requests per 15 minutes and 1000 per day.
// The limiter paces requests and tracks usage reported by the API's
// X-RateLimit-* headers. It waits; it never retries.

// RateLimiter paces requests against the Strava API quota
type RateLimiter struct {
	mu sync.Mutex

	shortLimit    int
	shortUsage    int
	shortResetsAt time.Time

	dailyLimit int
	dailyUsage int

	minInterval time.Duration
	lastRequest time.Time
}

// NewRateLimiter creates a limiter preloaded with Strava's published quota
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		shortLimit:    100,
		shortResetsAt: time.Now().Add(15 * time.Minute),
		dailyLimit:    1000,
		minInterval:   150 * time.Millisecond,
	}
}

// Wait blocks until a request can be made without blowing the quota
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.After(r.shortResetsAt) {
		r.shortUsage = 0
		r.shortResetsAt = now.Add(15 * time.Minute)
	}

	if r.shortUsage >= r.shortLimit {
		wait := time.Until(r.shortResetsAt)
		r.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
		r.shortUsage = 0
		r.shortResetsAt = time.Now().Add(15 * time.Minute)
	}

	if elapsed := time.Since(r.lastRequest); elapsed < r.minInterval {
		wait := r.minInterval - elapsed
		r.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			r.mu.Lock()
			return ctx.Err()
		}
		r.mu.Lock()
	}

	r.shortUsage++
	r.dailyUsage++
	r.lastRequest = time.Now()
	return nil
}

// UpdateFromHeaders syncs usage with what the API reports.
// Strava sends X-RateLimit-Limit: "100,1000" and X-RateLimit-Usage: "34,512".
func (r *RateLimiter) UpdateFromHeaders(h http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if short, daily, ok := splitPair(h.Get("X-RateLimit-Usage")); ok {
		r.shortUsage = short
		r.dailyUsage = daily
	}
	if short, daily, ok := splitPair(h.Get("X-RateLimit-Limit")); ok {
		r.shortLimit = short
		r.dailyLimit = daily
	}
}

// Remaining reports how many requests are left in each window
func (r *RateLimiter) Remaining() (short, daily int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shortLimit - r.shortUsage, r.dailyLimit - r.dailyUsage
}

func splitPair(v string) (first, second int, ok bool) {
	parts := strings.Split(v, ",")
	if len(parts) < 2 {
		return 0, 0, false
	}
	first, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	second, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return first, second, true
}
