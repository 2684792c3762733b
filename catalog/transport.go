package catalog

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Transport is a rate-limited [auth.Doer]. The provider throttles bursty
// clients with 429s; pacing requests client-side keeps long library scans
// from tripping it.
type Transport struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewTransport wraps client with the given limiter. A nil client falls back
// to http.DefaultClient; a nil limiter disables pacing.
func NewTransport(client *http.Client, limiter *rate.Limiter) *Transport {
	if client == nil {
		client = http.DefaultClient
	}
	return &Transport{client: client, limiter: limiter}
}

// DefaultTransport paces requests at 10 per second with small bursts.
func DefaultTransport() *Transport {
	return NewTransport(nil, rate.NewLimiter(rate.Every(100*time.Millisecond), 5))
}

// Do waits for the limiter, then executes the request.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}
	return t.client.Do(req)
}
