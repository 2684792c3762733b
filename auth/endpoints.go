package auth

import "golang.org/x/oauth2"

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// Endpoints holds the provider's accounts-service URLs. Tests point these
// at an httptest server; production code uses [DefaultEndpoints].
type Endpoints struct {
	AuthURL  string
	TokenURL string
}

// DefaultEndpoints returns the Spotify accounts service endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{AuthURL: spotifyAuthURL, TokenURL: spotifyTokenURL}
}

// Application identifies the registered developer application. Immutable
// once constructed; supplied by the host or loaded from a credentials file.
type Application struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// oauthConfig builds the [oauth2.Config] used for authorization-URL
// construction. Exchange and refresh are done by the Manager itself so the
// token lifecycle stays under its control.
func (a *Application) oauthConfig(e Endpoints, scopes []Scope) *oauth2.Config {
	names := make([]string, len(scopes))
	for i, s := range scopes {
		names[i] = s.String()
	}

	return &oauth2.Config{
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
		RedirectURL:  a.RedirectURI,
		Scopes:       names,
		Endpoint: oauth2.Endpoint{
			AuthURL:  e.AuthURL,
			TokenURL: e.TokenURL,
		},
	}
}
