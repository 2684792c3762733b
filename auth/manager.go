package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests and
// hosts inject their own transport (rate limiting, recording, stubs).
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Store durably keeps the current token. Load reports absence or corruption
// as nil rather than an error; Save may fail and the Manager's WritePolicy
// decides whether that failure is surfaced.
type Store interface {
	Load() *Token
	Save(*Token) error
}

// WritePolicy controls how persistence write failures are handled.
type WritePolicy int

const (
	// FireAndForget logs a failed save and carries on: the in-memory token
	// stays authoritative for the rest of the process lifetime.
	FireAndForget WritePolicy = iota
	// PropagateWrites surfaces a failed save to the caller of the mutation
	// that triggered it.
	PropagateWrites
)

// Opts configures a Manager. Application is required for any network
// operation; everything else has a usable default.
type Opts struct {
	Application *Application
	Store       Store
	Client      Doer
	Endpoints   Endpoints
	Scopes      []Scope
	Policy      WritePolicy
	Logger      *log.Logger
}

// Manager owns the process's single token and orchestrates the
// authorization-code exchange, the refresh protocol, and gated execution.
type Manager struct {
	app       *Application
	store     Store
	client    Doer
	endpoints Endpoints
	scopes    []Scope
	policy    WritePolicy
	logger    *log.Logger

	mu    sync.Mutex
	token *Token
}

// NewManager constructs a Manager and adopts a persisted token from the
// store when one is present and valid.
func NewManager(opts Opts) *Manager {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Endpoints == (Endpoints{}) {
		opts.Endpoints = DefaultEndpoints()
	}
	if opts.Scopes == nil {
		opts.Scopes = DefaultScopes()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := &Manager{
		app:       opts.Application,
		store:     opts.Store,
		client:    opts.Client,
		endpoints: opts.Endpoints,
		scopes:    opts.Scopes,
		policy:    opts.Policy,
		logger:    opts.Logger,
	}

	if m.store != nil {
		if tok := m.store.Load(); tok.Valid() {
			m.token = tok
			m.logger.Debug("adopted persisted token", "token_type", tok.TokenType, "expires_in", tok.ExpiresIn)
		}
	}

	return m
}

// Token returns a copy of the currently held token, or nil when none is held.
func (m *Manager) Token() *Token {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == nil {
		return nil
	}
	copied := *m.token
	return &copied
}

// AuthURL builds the provider's authorization URL with response type "code",
// the configured scopes, and the application's redirect URI.
func (m *Manager) AuthURL(state string) (string, error) {
	if m.app == nil {
		return "", ErrNoApplication
	}
	return m.app.oauthConfig(m.endpoints, m.scopes).AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Authorize hands the authorization URL to an external opener (typically a
// browser). Purely a side effect; the code comes back out-of-band through
// the host's redirect handling.
func (m *Manager) Authorize(state string, open func(url string) error) error {
	authURL, err := m.AuthURL(state)
	if err != nil {
		return err
	}
	return open(authURL)
}

// Exchange trades an authorization code for a new token. On success the new
// token replaces any held token and is persisted; on failure existing state
// is untouched.
func (m *Manager) Exchange(ctx context.Context, code string) (*Token, error) {
	if m.app == nil {
		return nil, ErrNoApplication
	}

	form := url.Values{
		"grant_type":    {GrantAuthorizationCode.String()},
		"code":          {code},
		"redirect_uri":  {m.app.RedirectURI},
		"client_id":     {m.app.ClientID},
		"client_secret": {m.app.ClientSecret},
	}

	rec, err := m.postTokenForm(ctx, form, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}

	tok := FromRecord(rec)
	if !tok.Valid() {
		return nil, fmt.Errorf("%w: response carried an incomplete token", ErrExchangeFailed)
	}

	m.mu.Lock()
	m.token = tok
	m.mu.Unlock()

	m.logger.Info("authorization code exchanged", "token_type", tok.TokenType, "expires_in", tok.ExpiresIn)

	if err := m.persist(tok); err != nil {
		return tok, err
	}
	return tok, nil
}

// Refresh obtains a new access token using the held refresh token. The
// request authenticates with HTTP Basic using the application credentials.
// On success the held token is mutated in place and persisted; on failure
// it is left expired until the next refresh or a fresh exchange.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshLocked(ctx)
}

func (m *Manager) refreshLocked(ctx context.Context) error {
	if m.app == nil {
		return ErrNoApplication
	}
	if m.token == nil {
		return ErrNoToken
	}
	if m.token.RefreshToken == "" {
		return ErrNoRefreshToken
	}

	form := url.Values{
		"grant_type":    {GrantRefreshToken.String()},
		"refresh_token": {m.token.RefreshToken},
	}

	rec, err := m.postTokenForm(ctx, form, basicAuth(m.app.ClientID, m.app.ClientSecret))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}
	if rec.AccessToken == "" {
		return fmt.Errorf("%w: response carried no access token", ErrRefreshFailed)
	}

	m.token.ApplyRefresh(rec.AccessToken)
	m.logger.Info("token refreshed", "token_type", m.token.TokenType, "expires_in", m.token.ExpiresIn)

	return m.persist(m.token)
}

// WithValidToken runs op with a token that is guaranteed not to be expired
// at dispatch time. An expired token triggers exactly one refresh attempt;
// op runs only if it succeeds. Refreshes are serialized per Manager, so
// concurrent callers racing an expired token share a single refresh.
//
// op receives a value copy: mutating it has no effect on the held token.
func (m *Manager) WithValidToken(ctx context.Context, op func(Token) error) error {
	if m.app == nil {
		return ErrNoApplication
	}

	m.mu.Lock()
	if m.token == nil {
		m.mu.Unlock()
		return ErrNoToken
	}
	if m.token.Expired() {
		if err := m.refreshLocked(ctx); err != nil {
			m.mu.Unlock()
			return err
		}
	}
	tok := *m.token
	m.mu.Unlock()

	return op(tok)
}

// persist writes the token through the store, honoring the write policy.
func (m *Manager) persist(t *Token) error {
	if m.store == nil {
		return nil
	}

	if err := m.store.Save(t); err != nil {
		if m.policy == PropagateWrites {
			return fmt.Errorf("%w: %v", ErrStoreWrite, err)
		}
		m.logger.Warn("token save failed, keeping in-memory token", "error", err)
	}
	return nil
}

// postTokenForm posts a form to the token endpoint and decodes the token
// record from a 2xx response.
func (m *Manager) postTokenForm(ctx context.Context, form url.Values, authorization string) (Record, error) {
	var rec Record

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoints.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return rec, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return rec, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rec, fmt.Errorf("token endpoint error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return rec, fmt.Errorf("failed to decode token response: %w", err)
	}

	return rec, nil
}

func basicAuth(clientID, clientSecret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(clientID+":"+clientSecret))
}
