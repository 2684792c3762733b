package auth

// Scope is a named permission requested during authorization.
type Scope int

const (
	ScopeUserReadPrivate Scope = iota
	ScopeUserReadEmail
	ScopeUserLibraryRead
	ScopeUserLibraryModify
	ScopePlaylistReadPrivate
	ScopePlaylistReadCollaborative
)

// String returns the canonical provider spelling of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeUserReadPrivate:
		return "user-read-private"
	case ScopeUserReadEmail:
		return "user-read-email"
	case ScopeUserLibraryRead:
		return "user-library-read"
	case ScopeUserLibraryModify:
		return "user-library-modify"
	case ScopePlaylistReadPrivate:
		return "playlist-read-private"
	case ScopePlaylistReadCollaborative:
		return "playlist-read-collaborative"
	default:
		return "unknown"
	}
}

// DefaultScopes covers every operation the catalog client exposes.
func DefaultScopes() []Scope {
	return []Scope{
		ScopeUserReadPrivate,
		ScopeUserLibraryRead,
		ScopeUserLibraryModify,
		ScopePlaylistReadPrivate,
		ScopePlaylistReadCollaborative,
	}
}

// GrantType selects the token endpoint protocol variant.
type GrantType int

const (
	GrantAuthorizationCode GrantType = iota
	GrantRefreshToken
)

// String returns the grant_type form value.
func (g GrantType) String() string {
	switch g {
	case GrantAuthorizationCode:
		return "authorization_code"
	case GrantRefreshToken:
		return "refresh_token"
	default:
		return "unknown"
	}
}
