package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingDoer wraps a Doer and counts round-trips.
type countingDoer struct {
	inner Doer
	calls int
}

func (c *countingDoer) Do(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.inner.Do(req)
}

// memStore is an in-memory Store that records save calls.
type memStore struct {
	token   *Token
	saves   int
	saveErr error
}

func (s *memStore) Load() *Token { return s.token }

func (s *memStore) Save(t *Token) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *t
	s.token = &copied
	return nil
}

func tokenEndpoint(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Endpoints) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, Endpoints{AuthURL: srv.URL + "/authorize", TokenURL: srv.URL + "/api/token"}
}

func testApp() *Application {
	return &Application{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		RedirectURI:  "http://localhost:8080/callback",
	}
}

func TestManagerExchange(t *testing.T) {
	t.Run("successful exchange persists once", func(t *testing.T) {
		var gotGrant, gotCode, gotRedirect string
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				t.Fatalf("failed to parse form: %v", err)
			}
			gotGrant = r.PostFormValue("grant_type")
			gotCode = r.PostFormValue("code")
			gotRedirect = r.PostFormValue("redirect_uri")

			json.NewEncoder(w).Encode(Record{
				AccessToken:  "A",
				ExpiresIn:    3600,
				RefreshToken: "R",
				TokenType:    "Bearer",
			})
		})

		store := &memStore{}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

		tok, err := mgr.Exchange(context.Background(), "XYZ")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !tok.Valid() {
			t.Errorf("expected valid token, got %+v", tok)
		}
		if gotGrant != "authorization_code" {
			t.Errorf("expected grant_type authorization_code, got %s", gotGrant)
		}
		if gotCode != "XYZ" {
			t.Errorf("expected code XYZ, got %s", gotCode)
		}
		if gotRedirect != "http://localhost:8080/callback" {
			t.Errorf("unexpected redirect_uri %s", gotRedirect)
		}
		if store.saves != 1 {
			t.Errorf("expected exactly one persistence write, got %d", store.saves)
		}
	})

	t.Run("failed exchange leaves state untouched", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad code", http.StatusBadRequest)
		})

		store := &memStore{}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

		if _, err := mgr.Exchange(context.Background(), "bogus"); !errors.Is(err, ErrExchangeFailed) {
			t.Errorf("expected ErrExchangeFailed, got %v", err)
		}
		if mgr.Token() != nil {
			t.Error("expected no token after failed exchange")
		}
		if store.saves != 0 {
			t.Errorf("expected no persistence write, got %d", store.saves)
		}
	})

	t.Run("incomplete token response is rejected", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})

		store := &memStore{}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

		if _, err := mgr.Exchange(context.Background(), "XYZ"); !errors.Is(err, ErrExchangeFailed) {
			t.Errorf("expected ErrExchangeFailed, got %v", err)
		}
		if mgr.Token() != nil {
			t.Error("expected no token after rejected exchange")
		}
		if store.saves != 0 {
			t.Errorf("expected no persistence write, got %d", store.saves)
		}
	})

	t.Run("without application", func(t *testing.T) {
		mgr := NewManager(Opts{})
		if _, err := mgr.Exchange(context.Background(), "XYZ"); !errors.Is(err, ErrNoApplication) {
			t.Errorf("expected ErrNoApplication, got %v", err)
		}
	})
}

func TestManagerRefresh(t *testing.T) {
	t0 := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

	t.Run("uses basic auth and mutates in place", func(t *testing.T) {
		var gotAuth, gotGrant, gotRefresh string
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			r.ParseForm()
			gotGrant = r.PostFormValue("grant_type")
			gotRefresh = r.PostFormValue("refresh_token")

			json.NewEncoder(w).Encode(Record{AccessToken: "A2", ExpiresIn: 3600, TokenType: "Bearer"})
		})

		freezeClock(t, t0)
		store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer")}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

		if err := mgr.Refresh(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if gotAuth != basicAuth("test_client_id", "test_client_secret") {
			t.Errorf("expected basic auth header, got %q", gotAuth)
		}
		if gotGrant != "refresh_token" {
			t.Errorf("expected grant_type refresh_token, got %s", gotGrant)
		}
		if gotRefresh != "R1" {
			t.Errorf("expected refresh token R1, got %s", gotRefresh)
		}

		tok := mgr.Token()
		if tok.AccessToken != "A2" {
			t.Errorf("expected refreshed access token, got %s", tok.AccessToken)
		}
		if tok.RefreshToken != "R1" || tok.TokenType != "Bearer" || tok.ExpiresIn != 3600 {
			t.Errorf("refresh touched fields it must not: %+v", tok)
		}
		if store.saves != 1 {
			t.Errorf("expected one persistence write, got %d", store.saves)
		}
	})

	t.Run("without token", func(t *testing.T) {
		mgr := NewManager(Opts{Application: testApp()})
		if err := mgr.Refresh(context.Background()); !errors.Is(err, ErrNoToken) {
			t.Errorf("expected ErrNoToken, got %v", err)
		}
	})

	t.Run("write policy", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(Record{AccessToken: "A2", ExpiresIn: 3600, TokenType: "Bearer"})
		})

		t.Run("fire and forget swallows save failures", func(t *testing.T) {
			store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer"), saveErr: errors.New("disk full")}
			mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

			if err := mgr.Refresh(context.Background()); err != nil {
				t.Errorf("expected save failure to be swallowed, got %v", err)
			}
			if mgr.Token().AccessToken != "A2" {
				t.Error("in-memory token should stay authoritative after failed save")
			}
		})

		t.Run("propagate surfaces save failures", func(t *testing.T) {
			store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer"), saveErr: errors.New("disk full")}
			mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints, Policy: PropagateWrites})

			if err := mgr.Refresh(context.Background()); !errors.Is(err, ErrStoreWrite) {
				t.Errorf("expected ErrStoreWrite, got %v", err)
			}
		})
	})
}

func TestWithValidToken(t *testing.T) {
	t0 := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

	t.Run("valid token runs op once with no network call", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no network call expected")
		})

		freezeClock(t, t0)
		doer := &countingDoer{inner: http.DefaultClient}
		store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer")}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Client: doer, Endpoints: endpoints})

		invocations := 0
		err := mgr.WithValidToken(context.Background(), func(tok Token) error {
			invocations++
			if tok.AccessToken != "A1" {
				t.Errorf("expected held token, got %s", tok.AccessToken)
			}
			return nil
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if invocations != 1 {
			t.Errorf("expected op invoked exactly once, got %d", invocations)
		}
		if doer.calls != 0 {
			t.Errorf("expected zero network calls, got %d", doer.calls)
		}
	})

	t.Run("expired token refreshes then runs op", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(Record{AccessToken: "A2", ExpiresIn: 3600, TokenType: "Bearer"})
		})

		freezeClock(t, t0)
		store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer")}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

		freezeClock(t, t0.Add(2*time.Hour))

		invocations := 0
		err := mgr.WithValidToken(context.Background(), func(tok Token) error {
			invocations++
			if tok.AccessToken != "A2" {
				t.Errorf("expected post-refresh token, got %s", tok.AccessToken)
			}
			return nil
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if invocations != 1 {
			t.Errorf("expected op invoked exactly once, got %d", invocations)
		}
	})

	t.Run("failed refresh never runs op", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "revoked", http.StatusBadRequest)
		})

		freezeClock(t, t0)
		store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer")}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Endpoints: endpoints})

		freezeClock(t, t0.Add(2*time.Hour))

		err := mgr.WithValidToken(context.Background(), func(tok Token) error {
			t.Error("op must not run after failed refresh")
			return nil
		})

		if !errors.Is(err, ErrRefreshFailed) {
			t.Errorf("expected ErrRefreshFailed, got %v", err)
		}
	})

	t.Run("no token never runs op or dials", func(t *testing.T) {
		doer := &countingDoer{inner: http.DefaultClient}
		mgr := NewManager(Opts{Application: testApp(), Client: doer})

		err := mgr.WithValidToken(context.Background(), func(tok Token) error {
			t.Error("op must not run without a token")
			return nil
		})

		if !errors.Is(err, ErrNoToken) {
			t.Errorf("expected ErrNoToken, got %v", err)
		}
		if doer.calls != 0 {
			t.Errorf("expected zero network calls, got %d", doer.calls)
		}
	})

	t.Run("no application is a permanent no-op", func(t *testing.T) {
		mgr := NewManager(Opts{})
		err := mgr.WithValidToken(context.Background(), func(tok Token) error {
			t.Error("op must not run without application credentials")
			return nil
		})
		if !errors.Is(err, ErrNoApplication) {
			t.Errorf("expected ErrNoApplication, got %v", err)
		}
	})

	t.Run("concurrent callers share a single refresh", func(t *testing.T) {
		_, endpoints := tokenEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(Record{AccessToken: "A2", ExpiresIn: 3600, TokenType: "Bearer"})
		})

		freezeClock(t, t0)
		doer := &countingDoer{inner: http.DefaultClient}
		store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer")}
		mgr := NewManager(Opts{Application: testApp(), Store: store, Client: doer, Endpoints: endpoints})

		freezeClock(t, t0.Add(2*time.Hour))

		var invocations atomic.Int32
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := mgr.WithValidToken(context.Background(), func(tok Token) error {
					invocations.Add(1)
					if tok.AccessToken != "A2" {
						t.Errorf("expected post-refresh token, got %s", tok.AccessToken)
					}
					return nil
				})
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}()
		}
		wg.Wait()

		if got := invocations.Load(); got != 8 {
			t.Errorf("expected all ops to run, got %d", got)
		}
		if doer.calls != 1 {
			t.Errorf("expected exactly one refresh round-trip, got %d", doer.calls)
		}
	})

	t.Run("op error propagates", func(t *testing.T) {
		freezeClock(t, t0)
		store := &memStore{token: NewToken("A1", 3600, "R1", "Bearer")}
		mgr := NewManager(Opts{Application: testApp(), Store: store})

		wantErr := errors.New("decode failed")
		if err := mgr.WithValidToken(context.Background(), func(Token) error { return wantErr }); !errors.Is(err, wantErr) {
			t.Errorf("expected op error to propagate, got %v", err)
		}
	})
}

func TestManagerAuthURL(t *testing.T) {
	mgr := NewManager(Opts{Application: testApp()})

	authURL, err := mgr.AuthURL("test_state")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, want := range []string{"accounts.spotify.com", "test_client_id", "test_state", "response_type=code"} {
		if !strings.Contains(authURL, want) {
			t.Errorf("auth URL missing %q: %s", want, authURL)
		}
	}

	t.Run("authorize hands URL to opener", func(t *testing.T) {
		var opened string
		if err := mgr.Authorize("s", func(u string) error { opened = u; return nil }); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if opened == "" {
			t.Error("expected opener to receive the auth URL")
		}
	})

	t.Run("without application", func(t *testing.T) {
		mgr := NewManager(Opts{})
		if _, err := mgr.AuthURL("s"); !errors.Is(err, ErrNoApplication) {
			t.Errorf("expected ErrNoApplication, got %v", err)
		}
	})
}
