package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thornlake/spotline/auth"
)

type applicationRecord struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURI  string `json:"redirect_uri"`
}

// LoadApplication reads application credentials from a JSON document at
// path, falling back to fallbackPath when the primary is unreadable or
// malformed. An empty fallbackPath disables the fallback. Returns an error
// only when every candidate fails; the caller may then construct a Manager
// without an application, turning authenticated operations into no-ops.
func LoadApplication(path, fallbackPath string) (*auth.Application, error) {
	candidates := []string{path}
	if fallbackPath != "" {
		candidates = append(candidates, fallbackPath)
	}

	var lastErr error
	for _, candidate := range candidates {
		app, err := readApplication(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		return app, nil
	}

	return nil, fmt.Errorf("%w: %v", auth.ErrMissingCredentials, lastErr)
}

func readApplication(path string) (*auth.Application, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var rec applicationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	if rec.ClientID == "" || rec.ClientSecret == "" {
		return nil, fmt.Errorf("credentials file %s is missing client_id or client_secret", path)
	}

	return &auth.Application{
		ClientID:     rec.ClientID,
		ClientSecret: rec.ClientSecret,
		RedirectURI:  rec.RedirectURI,
	}, nil
}
