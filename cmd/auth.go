package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/thornlake/spotline/internal/server"
	"github.com/thornlake/spotline/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin performs the OAuth2 authorization-code flow.
//
// Starts a local HTTP server for the redirect, opens the browser for user
// authorization, and exchanges the captured code for a token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	code, err := r.doOAuth(ctx)
	if err != nil {
		return err
	}

	token, err := r.manager.Exchange(ctx, code)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("Token type: %s, expires in %d seconds\n\n", token.TokenType, token.ExpiresIn)
	r.writePlain("You can now use: spotline search <keyword>\n")

	return nil
}

// AuthStatus reports the held token's validity and expiry.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	token := r.manager.Token()
	if token == nil {
		return r.writePlain("✗ Not authorized. Run: spotline auth login\n")
	}

	r.writePlain("✓ Authorized\n")
	r.writePlain("Token type: %s\n", token.TokenType)
	r.writePlain("Issued at: %s\n", token.IssuedAt.Format(time.RFC3339))
	if token.Expired() {
		r.writePlain("State: expired (will refresh on next use)\n")
	} else {
		remaining := time.Until(token.IssuedAt.Add(time.Duration(token.ExpiresIn) * time.Second))
		r.writePlain("State: valid for another %s\n", remaining.Round(time.Second))
	}

	return nil
}

// AuthRefresh forces a refresh of the held token.
func (r *Runner) AuthRefresh(ctx context.Context, cmd *cli.Command) error {
	if err := r.manager.Refresh(ctx); err != nil {
		return err
	}

	token := r.manager.Token()
	r.writePlainln("✓ Token refreshed")
	return r.writePlain("Issued at: %s\n", token.IssuedAt.Format(time.RFC3339))
}

// doOAuth runs the authorize round-trip: serve the redirect, open the
// browser, and wait for the callback to deliver an authorization code.
func (r *Runner) doOAuth(ctx context.Context) (string, error) {
	state := shared.GenerateState()

	authURL, err := r.manager.AuthURL(state)
	if err != nil {
		return "", err
	}

	callbackHandler := server.NewCallbackHandler(state)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: server.NewMux(callbackHandler),
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for authorization...\n")
	if err := r.manager.Authorize(state, shared.OpenBrowser); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.CallbackResult

	select {
	case result = <-callbackHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return "", fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return "", fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return "", fmt.Errorf("authorization failed: %w", result.Error())
	}

	return result.Code, nil
}
