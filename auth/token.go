package auth

import "time"

// now is swapped out in tests to control expiry arithmetic.
var now = time.Now

// Record is the wire and persistence shape of a token. The key names are
// fixed by the provider's token endpoint and must not change.
type Record struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Token is an access/refresh token pair with expiry bookkeeping.
//
// A Token is mutated in place by [Token.ApplyRefresh] and otherwise only
// replaced wholesale by a new authorization-code exchange. The Manager is
// the sole owner of the live instance; everything else sees value copies.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int // lifetime in seconds, counted from IssuedAt
	IssuedAt     time.Time
}

// NewToken constructs a Token issued at the current time.
func NewToken(accessToken string, expiresIn int, refreshToken, tokenType string) *Token {
	return &Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenType,
		ExpiresIn:    expiresIn,
		IssuedAt:     now(),
	}
}

// FromRecord rebuilds a Token from its persisted form. Missing fields stay
// zero-valued; the issue time is re-stamped because it is not part of the
// persistence contract. FromRecord never fails — validity is checked
// separately via [Token.Valid].
func FromRecord(rec Record) *Token {
	return NewToken(rec.AccessToken, rec.ExpiresIn, rec.RefreshToken, rec.TokenType)
}

// Record produces the fixed-key representation used by the persistence
// backends and matching the token endpoint's response body.
func (t *Token) Record() Record {
	return Record{
		AccessToken:  t.AccessToken,
		ExpiresIn:    t.ExpiresIn,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
	}
}

// Valid reports whether all four primary fields are populated.
func (t *Token) Valid() bool {
	return t != nil &&
		t.AccessToken != "" &&
		t.RefreshToken != "" &&
		t.TokenType != "" &&
		t.ExpiresIn != 0
}

// Expired reports whether the token's lifetime has elapsed since IssuedAt.
func (t *Token) Expired() bool {
	return now().Sub(t.IssuedAt) > time.Duration(t.ExpiresIn)*time.Second
}

// ApplyRefresh installs a freshly issued access token and re-stamps the
// issue time. The refresh token, token type, and lifetime are untouched:
// the provider does not rotate them on refresh in this flow.
func (t *Token) ApplyRefresh(accessToken string) {
	t.AccessToken = accessToken
	t.IssuedAt = now()
}
