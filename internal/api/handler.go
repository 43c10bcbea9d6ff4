package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"solkit/internal/domain"
)

// Handler maps HTTP requests onto the keypair, signing and mint services.
type Handler struct {
	keypairs domain.KeypairService
	signing  domain.SigningService
	mints    domain.MintService
}

// NewHandler returns a Handler backed by the given services.
func NewHandler(
	keypairs domain.KeypairService,
	signing domain.SigningService,
	mints domain.MintService,
) *Handler {
	return &Handler{keypairs: keypairs, signing: signing, mints: mints}
}

// RegisterRoutes registers the API routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/keypair", h.generateKeypair)
	r.Post("/sign", h.signMessage)
	r.Post("/verify", h.verifyMessage)
	r.Post("/token/create", h.createTokenMint)
}

func (h *Handler) generateKeypair(w http.ResponseWriter, r *http.Request) {
	resp, err := h.keypairs.GenerateKeypair(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, resp)
}

func (h *Handler) signMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.SignMessageRequest
	if err := decodeRequest(r.Body, &req, "message", "privateKey"); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.signing.SignMessage(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, resp)
}

func (h *Handler) verifyMessage(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyMessageRequest
	if err := decodeRequest(r.Body, &req, "message", "signature", "publicKey"); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.signing.VerifyMessage(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, resp)
}

func (h *Handler) createTokenMint(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTokenMintRequest
	if err := decodeRequest(r.Body, &req, "mint", "mintAuthority", "decimals"); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.mints.CreateTokenMint(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, resp)
}
