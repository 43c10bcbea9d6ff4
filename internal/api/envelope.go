package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"solkit/internal/domain"
)

// Response is the envelope wrapped around every API reply.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// writeError answers err with 400. All error kinds share the status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ev := hlog.FromRequest(r).Warn().Str("error", err.Error())
	var derr *domain.Error
	if errors.As(err, &derr) {
		ev = ev.Stringer("kind", derr.Kind)
	}
	ev.Msg("request rejected")

	writeJSON(w, http.StatusBadRequest, Response{Success: false, Error: err.Error()})
}
