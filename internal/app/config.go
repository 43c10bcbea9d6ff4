package app

import (
	"io"
	"net/http"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Entropy   io.Reader    // seed source; nil means crypto/rand
	ServerURL string       // remote solkit base URL; empty runs services in-process
	HTTP      *http.Client // optional; defaults to http.DefaultClient
}

// Remote reports whether commands should go through a remote server.
func (c Config) Remote() bool { return c.ServerURL != "" }
