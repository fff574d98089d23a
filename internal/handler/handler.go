package handler

import (
	"encoding/json"
	"net/http"

	"github.com/focusnest/focusgate/internal/adaptive"
	"github.com/focusnest/focusgate/internal/bridge"
	"github.com/focusnest/focusgate/internal/economy"
	"github.com/focusnest/focusgate/internal/gate"
	"github.com/focusnest/focusgate/internal/naming"
)

// Handler bundles the services the HTTP surface exposes.
type Handler struct {
	gate     gate.Service
	economy  economy.Service
	adaptive adaptive.Service
	bridge   bridge.Bridge
	names    naming.Resolver
}

// New creates a new Handler
func New(g gate.Service, eco economy.Service, adp adaptive.Service, b bridge.Bridge, names naming.Resolver) *Handler {
	return &Handler{
		gate:     g,
		economy:  eco,
		adaptive: adp,
		bridge:   b,
		names:    names,
	}
}

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return false
	}
	if err := GetValidator().ValidateStruct(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  ErrMsgInvalidRequestError,
			"fields": FormatValidationError(err),
		})
		return false
	}
	return true
}
