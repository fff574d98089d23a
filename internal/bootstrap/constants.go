package bootstrap

// Log messages for application startup
const (
	LogMsgStartingFocusGate          = "Starting FocusGate"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgTierConfigsLoaded          = "Tier configuration loaded from file"
	LogMsgTierConfigsDefault         = "Using built-in tier configuration"
	LogMsgUsingFakeBridge            = "Using fake native bridge"
	LogMsgUsingUnsupportedBridge     = "No native bridge on this platform, app controls disabled"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDatabaseCloseFailed  = "Database close failed"
)
