package config

const (
	// DefaultHost binds the API to loopback only; the native shell is the
	// sole intended client.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the loopback port the bridge dials.
	DefaultPort = 4817
	// DefaultDBPath is the on-device sqlite file.
	DefaultDBPath = "focusgate.db"

	// Configuration file paths
	ConfigPathTiers    = "configs/tiers.yaml"
	ConfigPathAppNames = "configs/app_names.json"
)

// loopbackHosts are the only addresses the unauthenticated API may bind.
var loopbackHosts = map[string]bool{
	"127.0.0.1": true,
	"::1":       true,
	"localhost": true,
}
