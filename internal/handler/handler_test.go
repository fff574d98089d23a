package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/focusnest/focusgate/internal/adaptive"
	"github.com/focusnest/focusgate/internal/bridge"
	"github.com/focusnest/focusgate/internal/challenge"
	"github.com/focusnest/focusgate/internal/clock"
	"github.com/focusnest/focusgate/internal/database"
	"github.com/focusnest/focusgate/internal/database/sqlite"
	"github.com/focusnest/focusgate/internal/economy"
	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/gate"
	"github.com/focusnest/focusgate/internal/naming"
	"github.com/focusnest/focusgate/internal/session"
)

// testEnv wires the full service stack over an in-memory database so the
// HTTP layer is exercised against real behavior, not mocks.
type testEnv struct {
	router  chi.Router
	gate    gate.Service
	economy economy.Service
	clk     *clock.Fake
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	bus := event.NewMemoryBus()
	clk := clock.NewFake(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))

	eco := economy.NewService(sqlite.NewEconomyRepo(db), bus, clk)
	sessions := session.NewService(sqlite.NewSessionRepo(db), session.MustDefaultTierSet(), bus, clk, func() float64 { return 0.5 })
	adp := adaptive.NewService(sqlite.NewAdaptiveRepo(db))

	names, err := naming.NewResolver("")
	require.NoError(t, err)

	gt := gate.NewService(sessions, eco, challenge.NewService(), adp, bus, clk)
	h := New(gt, eco, adp, bridge.NewFake(), names)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/gate/{appID}", func(r chi.Router) {
			r.Get("/", h.HandleGateState)
			r.Post("/tier", h.HandleSelectTier)
			r.Post("/path", h.HandleSwitchPath)
			r.Post("/challenge/answer", h.HandleSubmitAnswer)
			r.Post("/spend", h.HandleSpend)
			r.Post("/session/end", h.HandleEndSession)
		})
		r.Route("/plant", func(r chi.Router) {
			r.Get("/", h.HandlePlantState)
			r.Post("/earn", h.HandleEarn)
			r.Post("/activity", h.HandleEarnActivity)
		})
		r.Get("/adaptive/suggestion", h.HandleAdaptiveSuggestion)
		r.Route("/apps", func(r chi.Router) {
			r.Get("/", h.HandleListApps)
			r.Get("/usage", h.HandleAppUsage)
			r.Put("/locked", h.HandleSetLockedApps)
			r.Get("/permissions", h.HandlePermissions)
			r.Post("/permissions/request", h.HandleRequestPermission)
			r.Post("/lock-service/start", h.HandleStartLockService)
			r.Post("/lock-service/stop", h.HandleStopLockService)
		})
	})
	r.Get("/healthz", HandleHealthz())
	r.Get("/readyz", HandleReadyz(db))
	r.Get("/version", HandleVersion())

	return &testEnv{router: r, gate: gt, economy: eco, clk: clk}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func doPlain(t *testing.T, fn http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	fn(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) gate.State {
	t.Helper()
	var state gate.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}
