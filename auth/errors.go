package auth

import "fmt"

var (
	// Configuration errors
	ErrNoApplication      = fmt.Errorf("no application credentials configured")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Token lifecycle errors
	ErrNoToken        = fmt.Errorf("no token held")
	ErrNoRefreshToken = fmt.Errorf("no refresh token available")
	ErrExchangeFailed = fmt.Errorf("authorization code exchange failed")
	ErrRefreshFailed  = fmt.Errorf("token refresh failed")

	// Persistence errors
	ErrStoreWrite = fmt.Errorf("token store write failed")
)
