// Package bridge is the seam to the platform's usage-stats and overlay
// machinery. The daemon never talks to the OS itself; the native shell
// implements this interface and the gate stays platform-agnostic.
package bridge

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by every call on platforms without a native
// bridge implementation.
var ErrUnsupported = errors.New("native bridge not available on this platform")

// AppUsage is one app's screen time over the reporting window.
type AppUsage struct {
	PackageName string `json:"package_name"`
	AppName     string `json:"app_name"`
	UsageMs     int64  `json:"usage_ms"`
}

// InstalledApp is one launchable app the platform reports.
type InstalledApp struct {
	PackageName string `json:"package_name"`
	AppName     string `json:"app_name"`
	IsSystem    bool   `json:"is_system,omitempty"`
}

// Permissions are the platform grants the lock service needs.
type Permissions struct {
	UsageAccess bool `json:"usage_access"`
	Overlay     bool `json:"overlay"`
}

// Bridge is the native side of the gate: usage stats in, lock list out.
type Bridge interface {
	ScreenTime(ctx context.Context) ([]AppUsage, error)
	InstalledApps(ctx context.Context) ([]InstalledApp, error)
	// SetLockedApps replaces the set of packages the overlay intercepts.
	SetLockedApps(ctx context.Context, packages []string) error
	LockedApps(ctx context.Context) ([]string, error)
	Permissions(ctx context.Context) (Permissions, error)
	// RequestUsagePermission and RequestOverlayPermission open the
	// platform's grant flow; the result lands in a later Permissions call.
	RequestUsagePermission(ctx context.Context) error
	RequestOverlayPermission(ctx context.Context) error
	// StartLockService and StopLockService toggle the overlay service that
	// actually intercepts locked apps.
	StartLockService(ctx context.Context) error
	StopLockService(ctx context.Context) error
}

// Unsupported is the Bridge for platforms without a native shell.
type Unsupported struct{}

func (Unsupported) ScreenTime(context.Context) ([]AppUsage, error) { return nil, ErrUnsupported }
func (Unsupported) InstalledApps(context.Context) ([]InstalledApp, error) {
	return nil, ErrUnsupported
}
func (Unsupported) SetLockedApps(context.Context, []string) error { return ErrUnsupported }
func (Unsupported) LockedApps(context.Context) ([]string, error)  { return nil, ErrUnsupported }
func (Unsupported) Permissions(context.Context) (Permissions, error) {
	return Permissions{}, ErrUnsupported
}
func (Unsupported) RequestUsagePermission(context.Context) error   { return ErrUnsupported }
func (Unsupported) RequestOverlayPermission(context.Context) error { return ErrUnsupported }
func (Unsupported) StartLockService(context.Context) error         { return ErrUnsupported }
func (Unsupported) StopLockService(context.Context) error          { return ErrUnsupported }
