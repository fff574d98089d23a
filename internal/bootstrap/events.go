package bootstrap

import (
	"log/slog"

	"github.com/focusnest/focusgate/internal/event"
	"github.com/focusnest/focusgate/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers. Today that is the
// metrics collector; everything else observes the bus from inside a service.
func RegisterEventHandlers(bus event.Bus) {
	collector := metrics.NewEventMetricsCollector()
	collector.Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
