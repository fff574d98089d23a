package handler

import (
	"errors"
	"net/http"

	"github.com/focusnest/focusgate/internal/bridge"
)

// AppListEntry is an installed app annotated with its lock status.
type AppListEntry struct {
	PackageName string `json:"package_name"`
	DisplayName string `json:"display_name"`
	IsSystem    bool   `json:"is_system,omitempty"`
	Locked      bool   `json:"locked"`
}

// LockedAppsRequest replaces the set of gated packages.
type LockedAppsRequest struct {
	Packages []string `json:"packages" validate:"required"`
}

// HandleListApps lists installed apps
// @Summary Installed apps
// @Description Lists launchable apps with display names and lock status
// @Tags apps
// @Produce json
// @Success 200 {array} AppListEntry
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps [get]
func (h *Handler) HandleListApps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	installed, err := h.bridge.InstalledApps(ctx)
	if err != nil {
		respondBridgeError(w, err)
		return
	}
	locked, err := h.bridge.LockedApps(ctx)
	if err != nil {
		respondBridgeError(w, err)
		return
	}
	lockedSet := make(map[string]struct{}, len(locked))
	for _, pkg := range locked {
		lockedSet[pkg] = struct{}{}
	}

	entries := make([]AppListEntry, 0, len(installed))
	for _, app := range installed {
		_, isLocked := lockedSet[app.PackageName]
		entries = append(entries, AppListEntry{
			PackageName: app.PackageName,
			DisplayName: h.names.DisplayName(app.PackageName),
			IsSystem:    app.IsSystem,
			Locked:      isLocked,
		})
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleAppUsage returns screen time per app
// @Summary Screen time
// @Description Returns per-app usage over the platform's reporting window
// @Tags apps
// @Produce json
// @Success 200 {array} bridge.AppUsage
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps/usage [get]
func (h *Handler) HandleAppUsage(w http.ResponseWriter, r *http.Request) {
	usage, err := h.bridge.ScreenTime(r.Context())
	if err != nil {
		respondBridgeError(w, err)
		return
	}
	for i := range usage {
		if usage[i].AppName == "" {
			usage[i].AppName = h.names.DisplayName(usage[i].PackageName)
		}
	}
	respondJSON(w, http.StatusOK, usage)
}

// HandleSetLockedApps replaces the locked app list
// @Summary Set locked apps
// @Description Replaces the set of packages the gate intercepts
// @Tags apps
// @Accept json
// @Produce json
// @Param request body LockedAppsRequest true "Package identifiers"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps/locked [put]
func (h *Handler) HandleSetLockedApps(w http.ResponseWriter, r *http.Request) {
	var req LockedAppsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.bridge.SetLockedApps(r.Context(), req.Packages); err != nil {
		respondBridgeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Locked apps updated"})
}

// HandlePermissions reports platform permission grants
// @Summary Permission status
// @Description Reports whether usage-access and overlay permissions are granted
// @Tags apps
// @Produce json
// @Success 200 {object} bridge.Permissions
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps/permissions [get]
func (h *Handler) HandlePermissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.bridge.Permissions(r.Context())
	if err != nil {
		respondBridgeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, perms)
}

// PermissionRequest names which platform grant to ask for.
type PermissionRequest struct {
	Permission string `json:"permission" validate:"required,oneof=usage_access overlay"`
}

// HandleRequestPermission opens a platform grant flow
// @Summary Request permission
// @Description Opens the platform's grant flow for usage access or overlay permission
// @Tags apps
// @Accept json
// @Produce json
// @Param request body PermissionRequest true "Permission to request"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps/permissions/request [post]
func (h *Handler) HandleRequestPermission(w http.ResponseWriter, r *http.Request) {
	var req PermissionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var err error
	if req.Permission == "usage_access" {
		err = h.bridge.RequestUsagePermission(r.Context())
	} else {
		err = h.bridge.RequestOverlayPermission(r.Context())
	}
	if err != nil {
		respondBridgeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Permission flow opened"})
}

// HandleStartLockService starts the overlay lock service
// @Summary Start lock service
// @Description Starts the overlay service that intercepts locked apps
// @Tags apps
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps/lock-service/start [post]
func (h *Handler) HandleStartLockService(w http.ResponseWriter, r *http.Request) {
	if err := h.bridge.StartLockService(r.Context()); err != nil {
		respondBridgeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Lock service started"})
}

// HandleStopLockService stops the overlay lock service
// @Summary Stop lock service
// @Description Stops the overlay service that intercepts locked apps
// @Tags apps
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/apps/lock-service/stop [post]
func (h *Handler) HandleStopLockService(w http.ResponseWriter, r *http.Request) {
	if err := h.bridge.StopLockService(r.Context()); err != nil {
		respondBridgeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Lock service stopped"})
}

func respondBridgeError(w http.ResponseWriter, err error) {
	if errors.Is(err, bridge.ErrUnsupported) {
		respondError(w, http.StatusNotImplemented, ErrMsgBridgeUnavailableError)
		return
	}
	respondServiceError(w, err)
}
