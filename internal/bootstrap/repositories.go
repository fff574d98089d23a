package bootstrap

import (
	"database/sql"

	"github.com/focusnest/focusgate/internal/database/sqlite"
	"github.com/focusnest/focusgate/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Economy  repository.Economy
	Sessions repository.Sessions
	Adaptive repository.Adaptive
}

// InitializeRepositories creates all repository implementations over the
// shared SQLite handle.
func InitializeRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Economy:  sqlite.NewEconomyRepo(db),
		Sessions: sqlite.NewSessionRepo(db),
		Adaptive: sqlite.NewAdaptiveRepo(db),
	}
}
