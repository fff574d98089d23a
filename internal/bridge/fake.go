package bridge

import (
	"context"
	"sync"
)

// Fake is an in-memory Bridge for development builds and tests. It ships
// with a small plausible app catalog so the UI has something to render.
type Fake struct {
	mu        sync.Mutex
	usage     []AppUsage
	installed []InstalledApp
	locked    []string
	perms     Permissions
	running   bool
}

// NewFake returns a Fake seeded with the development catalog and all
// permissions granted.
func NewFake() *Fake {
	return &Fake{
		usage: []AppUsage{
			{PackageName: "com.instagram.android", AppName: "Instagram", UsageMs: 5400000},
			{PackageName: "com.google.android.youtube", AppName: "YouTube", UsageMs: 3600000},
			{PackageName: "com.whatsapp", AppName: "WhatsApp", UsageMs: 2700000},
			{PackageName: "com.zhiliaoapp.musically", AppName: "TikTok", UsageMs: 1500000},
			{PackageName: "com.snapchat.android", AppName: "Snapchat", UsageMs: 600000},
		},
		installed: []InstalledApp{
			{PackageName: "com.instagram.android", AppName: "Instagram"},
			{PackageName: "com.google.android.youtube", AppName: "YouTube"},
			{PackageName: "com.whatsapp", AppName: "WhatsApp"},
			{PackageName: "com.twitter.android", AppName: "X (Twitter)"},
			{PackageName: "com.zhiliaoapp.musically", AppName: "TikTok"},
			{PackageName: "com.spotify.music", AppName: "Spotify"},
			{PackageName: "com.snapchat.android", AppName: "Snapchat"},
			{PackageName: "com.discord", AppName: "Discord"},
		},
		perms: Permissions{UsageAccess: true, Overlay: true},
	}
}

func (f *Fake) ScreenTime(context.Context) ([]AppUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]AppUsage, len(f.usage))
	copy(out, f.usage)
	return out, nil
}

func (f *Fake) InstalledApps(context.Context) ([]InstalledApp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]InstalledApp, len(f.installed))
	copy(out, f.installed)
	return out, nil
}

func (f *Fake) SetLockedApps(_ context.Context, packages []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locked = append([]string(nil), packages...)
	return nil
}

func (f *Fake) LockedApps(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.locked...), nil
}

func (f *Fake) Permissions(context.Context) (Permissions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.perms, nil
}

// SetPermissions adjusts the reported grants, for permission-flow tests.
func (f *Fake) SetPermissions(p Permissions) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.perms = p
}

// RequestUsagePermission grants immediately; there is no OS dialog to wait on.
func (f *Fake) RequestUsagePermission(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.perms.UsageAccess = true
	return nil
}

func (f *Fake) RequestOverlayPermission(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.perms.Overlay = true
	return nil
}

func (f *Fake) StartLockService(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = true
	return nil
}

func (f *Fake) StopLockService(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.running = false
	return nil
}

// LockServiceRunning reports the fake service state, for tests.
func (f *Fake) LockServiceRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}
