// Package naming maps Android/iOS package identifiers to human-friendly
// app names for the overlay. Names come from three places, in order: the
// runtime registry fed by the native bridge, the overrides file, and a
// heuristic derived from the package ID itself.
package naming

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Resolver turns package identifiers into display names.
type Resolver interface {
	// DisplayName returns the friendly name for a package ID. It always
	// returns something usable; unknown IDs fall back to a derived name.
	DisplayName(appID string) string

	// Register records a name reported by the native bridge. Bridge names
	// win over the overrides file and the heuristic.
	Register(appID, name string)

	// Reload re-reads the overrides file.
	Reload() error
}

type resolver struct {
	mu sync.RWMutex

	// Bridge-reported names, highest priority.
	registered map[string]string

	// Names from the overrides file.
	overrides map[string]string

	overridesPath string
	titler        cases.Caser
}

// NewResolver creates a resolver. overridesPath may be empty; the file may
// also be absent, which just means no overrides.
func NewResolver(overridesPath string) (Resolver, error) {
	r := &resolver{
		registered:    make(map[string]string),
		overrides:     make(map[string]string),
		overridesPath: overridesPath,
		titler:        cases.Title(language.English),
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *resolver) Reload() error {
	if r.overridesPath == "" {
		return nil
	}

	data, err := os.ReadFile(r.overridesPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read name overrides: %w", err)
	}

	overrides := make(map[string]string)
	if err := json.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("failed to parse name overrides: %w", err)
	}

	r.mu.Lock()
	r.overrides = overrides
	r.mu.Unlock()
	return nil
}

func (r *resolver) Register(appID, name string) {
	if appID == "" || name == "" {
		return
	}
	r.mu.Lock()
	r.registered[appID] = name
	r.mu.Unlock()
}

func (r *resolver) DisplayName(appID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.registered[appID]; ok {
		return name
	}
	if name, ok := r.overrides[appID]; ok {
		return name
	}
	return r.derive(appID)
}

// derive guesses a name from the package ID: the most specific segment
// that is not a vendor/platform word, title-cased with separators spaced.
func (r *resolver) derive(appID string) string {
	segments := strings.Split(appID, ".")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" || genericSegments[strings.ToLower(seg)] {
			continue
		}
		seg = strings.NewReplacer("_", " ", "-", " ").Replace(seg)
		return r.titler.String(seg)
	}
	return appID
}
