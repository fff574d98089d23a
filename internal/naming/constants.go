package naming

// genericSegments are package-ID parts that never name the app itself.
var genericSegments = map[string]bool{
	"com":     true,
	"org":     true,
	"net":     true,
	"io":      true,
	"co":      true,
	"android": true,
	"ios":     true,
	"mobile":  true,
	"app":     true,
	"apps":    true,
	"google":  true,
	"free":    true,
}
