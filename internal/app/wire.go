package app

import (
	"net/http"
	"net/url"

	"solkit/internal/api"
	"solkit/internal/client"
	"solkit/internal/domain"
	keypairsvc "solkit/internal/services/keypair"
	mintsvc "solkit/internal/services/mint"
	signingsvc "solkit/internal/services/signing"
)

// Wire bundles the services used by commands and the HTTP handler.
type Wire struct {
	Keypairs domain.KeypairService
	Signing  domain.SigningService
	Mints    domain.MintService
	Remote   *client.HTTP // non-nil when talking to a remote server
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Remote() {
		u, err := url.Parse(cfg.ServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, domain.Errorf(domain.KindInvalidInput, "invalid server URL %q", cfg.ServerURL)
		}
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		rc := client.NewHTTP(cfg.ServerURL, httpClient)
		return &Wire{Keypairs: rc, Signing: rc, Mints: rc, Remote: rc}, nil
	}

	return &Wire{
		Keypairs: keypairsvc.New(cfg.Entropy),
		Signing:  signingsvc.New(),
		Mints:    mintsvc.New(),
	}, nil
}

// Handler returns the HTTP handler serving this wire's services.
func (w *Wire) Handler() *api.Handler {
	return api.NewHandler(w.Keypairs, w.Signing, w.Mints)
}
