package bootstrap

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/focusnest/focusgate/internal/adaptive"
	"github.com/focusnest/focusgate/internal/bridge"
	"github.com/focusnest/focusgate/internal/challenge"
	"github.com/focusnest/focusgate/internal/clock"
	"github.com/focusnest/focusgate/internal/config"
	"github.com/focusnest/focusgate/internal/economy"
	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/gate"
	"github.com/focusnest/focusgate/internal/session"
)

// Services holds the service layer the HTTP surface is built on.
type Services struct {
	Economy  economy.Service
	Sessions session.Service
	Adaptive adaptive.Service
	Gate     gate.Service
	Bridge   bridge.Bridge
}

// InitializeServices wires every service over the shared repositories, bus
// and clock. Tier configuration comes from the configured YAML file when one
// exists, otherwise the built-in defaults apply.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus, clk clock.Clock) (*Services, error) {
	tierConfigs, err := config.LoadTierConfigs(cfg.TiersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tier configuration: %w", err)
	}

	tiers := session.MustDefaultTierSet()
	if tierConfigs != nil {
		tiers, err = session.NewTierSet(tierConfigs)
		if err != nil {
			return nil, fmt.Errorf("invalid tier configuration: %w", err)
		}
		slog.Info(LogMsgTierConfigsLoaded, "path", cfg.TiersPath, "tiers", len(tierConfigs))
	} else {
		slog.Info(LogMsgTierConfigsDefault)
	}

	eco := economy.NewService(repos.Economy, bus, clk)
	sessions := session.NewService(repos.Sessions, tiers, bus, clk, rand.Float64)
	adp := adaptive.NewService(repos.Adaptive)
	challenges := challenge.NewService()
	g := gate.NewService(sessions, eco, challenges, adp, bus, clk)

	var br bridge.Bridge
	if cfg.UseFakeBridge {
		br = bridge.NewFake()
		slog.Info(LogMsgUsingFakeBridge)
	} else {
		br = bridge.Unsupported{}
		slog.Info(LogMsgUsingUnsupportedBridge)
	}

	return &Services{
		Economy:  eco,
		Sessions: sessions,
		Adaptive: adp,
		Gate:     g,
		Bridge:   br,
	}, nil
}
