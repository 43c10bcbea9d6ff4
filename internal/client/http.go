package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"solkit/internal/domain"
)

// HTTP talks to a solkit server at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil hc means http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *HTTP) GenerateKeypair(ctx context.Context) (domain.KeypairResponse, error) {
	var out domain.KeypairResponse
	return out, c.post(ctx, "/keypair", struct{}{}, &out)
}

func (c *HTTP) SignMessage(ctx context.Context, req domain.SignMessageRequest) (domain.SignMessageResponse, error) {
	var out domain.SignMessageResponse
	return out, c.post(ctx, "/sign", req, &out)
}

func (c *HTTP) VerifyMessage(ctx context.Context, req domain.VerifyMessageRequest) (domain.VerifyMessageResponse, error) {
	var out domain.VerifyMessageResponse
	return out, c.post(ctx, "/verify", req, &out)
}

func (c *HTTP) CreateTokenMint(ctx context.Context, req domain.CreateTokenMintRequest) (domain.CreateTokenMintResponse, error) {
	var out domain.CreateTokenMintResponse
	return out, c.post(ctx, "/token/create", req, &out)
}

// Health reports whether the server answers its health check.
func (c *HTTP) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("solkit get /health: %s", resp.Status)
	}
	return nil
}

func (c *HTTP) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("solkit post %s: %s: decoding response: %w", path, resp.Status, err)
	}
	if !env.Success {
		if resp.StatusCode == http.StatusBadRequest && env.Error != "" {
			return domain.ParseError(env.Error)
		}
		return fmt.Errorf("solkit post %s: %s: %s", path, resp.Status, env.Error)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

var (
	_ domain.KeypairService = (*HTTP)(nil)
	_ domain.SigningService = (*HTTP)(nil)
	_ domain.MintService    = (*HTTP)(nil)
)
