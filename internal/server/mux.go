package server

import "net/http"

// Handler serves one or more routes on the local callback server.
type Handler interface {
	http.Handler
	// Patterns returns the method-qualified mux patterns this handler
	// serves, e.g. "GET /callback".
	Patterns() []string
}

// NewMux builds the callback server's mux. Method filtering comes from the
// method-qualified patterns themselves: a request with the wrong method on
// a registered path gets 405 from the mux.
func NewMux(handlers ...Handler) *http.ServeMux {
	mux := http.NewServeMux()
	for _, h := range handlers {
		for _, pattern := range h.Patterns() {
			mux.Handle(pattern, h)
		}
	}
	return mux
}
