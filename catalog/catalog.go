package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/thornlake/spotline/auth"
)

const defaultBaseURL = "https://api.spotify.com/v1"

// Client performs catalog and library operations with tokens supplied by an
// [auth.Manager].
type Client struct {
	mgr     *auth.Manager
	client  auth.Doer
	baseURL string
	logger  *log.Logger
}

// ClientOpts configures a Client. Manager is required.
type ClientOpts struct {
	Manager *auth.Manager
	Client  auth.Doer // defaults to DefaultTransport
	BaseURL string    // defaults to the provider API base URL
	Logger  *log.Logger
}

// NewClient creates a catalog client.
func NewClient(opts ClientOpts) *Client {
	if opts.Client == nil {
		opts.Client = DefaultTransport()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Client{
		mgr:     opts.Manager,
		client:  opts.Client,
		baseURL: opts.BaseURL,
		logger:  opts.Logger,
	}
}

// do runs one gated request: acquire a valid token, build the request, send
// it, and decode the body into result when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, result any) error {
	return c.mgr.WithValidToken(ctx, func(tok auth.Token) error {
		req, err := c.newRequest(ctx, method, path, query, tok)
		if err != nil {
			return err
		}

		c.logger.Debug("dispatching request", "method", method, "path", path)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRequestFailed, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
		}

		if result == nil {
			return nil
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}

		switch target := result.(type) {
		case *[]byte:
			*target = body
		default:
			if err := json.Unmarshal(body, result); err != nil {
				return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
			}
		}
		return nil
	})
}

// newRequest builds a provider API request with the standard headers.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, tok auth.Token) (*http.Request, error) {
	apiURL := c.baseURL + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
