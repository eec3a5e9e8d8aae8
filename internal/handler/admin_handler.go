package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/middleware"
	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/response"
	"github.com/jala-youth/jala-web/internal/service"
	"github.com/jala-youth/jala-web/internal/validator"
)

// AdminHandler serves the admin dashboard. Each browser session owns one
// dashboard in the registry, keyed by the session ID of its cookie.
type AdminHandler struct {
	authService  *service.AuthService
	registry     *dashboard.Registry
	cookieSecure bool
	log          zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService *service.AuthService, registry *dashboard.Registry, cookieSecure bool, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		registry:     registry,
		cookieSecure: cookieSecure,
		log:          log.With().Str("component", "admin_handler").Logger(),
	}
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login godoc
// POST /api/v1/admin/login
// Verifies the password against the remote API and opens a cookie session.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	token := ""
	claims := middleware.SessionClaims(c, h.authService)
	if claims == nil {
		var err error
		token, claims, err = h.authService.IssueSession()
		if err != nil {
			h.log.Error().Err(err).Msg("Failed to issue admin session")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	}

	d := h.registry.Get(claims.SessionID())
	err := d.Dispatch(c.Request.Context(), dashboard.Login{Password: req.Password})
	snap := d.Snapshot()
	if snap.Auth != dashboard.Authenticated {
		if token != "" {
			h.registry.Remove(claims.SessionID())
		}
		respondError(c, err)
		return
	}
	if err != nil {
		// Authenticated, but the first stats load failed; the snapshot says so.
		h.log.Warn().Err(err).Msg("Initial stats load failed")
	}

	if token != "" {
		h.setCookie(c, token, int(h.authService.TTL().Seconds()))
	}
	response.Success(c, http.StatusOK, snap)
}

// Logout godoc
// POST /api/v1/admin/logout
func (h *AdminHandler) Logout(c *gin.Context) {
	sid := middleware.GetClaims(c).SessionID()
	if err := h.registry.Get(sid).Dispatch(c.Request.Context(), dashboard.Logout{}); err != nil {
		h.log.Error().Err(err).Msg("Logout failed to clear the admin token")
	}
	h.registry.Remove(sid)
	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Dashboard godoc
// GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, ok := h.authenticated(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, d.Snapshot())
}

// SelectTab godoc
// GET /api/v1/admin/:kind
// Makes the tab active, loading it on first selection.
func (h *AdminHandler) SelectTab(c *gin.Context) {
	tab, err := dashboard.ParseTab(c.Param("kind"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
		return
	}
	d, ok := h.authenticated(c)
	if !ok {
		return
	}
	// A load already in flight is reported through the tab status.
	if err := d.Dispatch(c.Request.Context(), dashboard.SelectTab{Tab: tab}); err != nil && !errors.Is(err, dashboard.ErrBusy) {
		h.fail(c, d, err)
		return
	}
	response.Success(c, http.StatusOK, d.Snapshot())
}

// Refresh godoc
// POST /api/v1/admin/:kind/refresh
func (h *AdminHandler) Refresh(c *gin.Context) {
	tab, err := dashboard.ParseTab(c.Param("kind"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
		return
	}
	d, ok := h.authenticated(c)
	if !ok {
		return
	}
	if err := d.Dispatch(c.Request.Context(), dashboard.Refresh{Tab: tab}); err != nil {
		h.fail(c, d, err)
		return
	}
	response.Success(c, http.StatusOK, d.Snapshot())
}

// RequestDelete godoc
// POST /api/v1/admin/:kind/:id/delete-request
// First step of a delete: records the request and returns the prompt.
func (h *AdminHandler) RequestDelete(c *gin.Context) {
	kind, id, ok := recordParams(c)
	if !ok {
		return
	}
	d, ok := h.authenticated(c)
	if !ok {
		return
	}
	if err := d.Dispatch(c.Request.Context(), dashboard.RequestDelete{Kind: kind, ID: id}); err != nil {
		h.fail(c, d, err)
		return
	}
	response.Success(c, http.StatusOK, d.Snapshot().Pending)
}

// Delete godoc
// DELETE /api/v1/admin/:kind/:id?confirm=true
// Second step of a delete. It must match the pending request.
func (h *AdminHandler) Delete(c *gin.Context) {
	kind, id, ok := recordParams(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		response.Fail(c, http.StatusConflict, response.ErrConfirmationRequired)
		return
	}
	d, ok := h.authenticated(c)
	if !ok {
		return
	}

	err := d.Dispatch(c.Request.Context(), dashboard.ConfirmDelete{Kind: kind, ID: id})
	snap := d.Snapshot()
	if err != nil {
		var gerr *gateway.Error
		if snap.Alert != "" && errors.As(err, &gerr) {
			respondGatewayError(c, gerr, snap.Alert)
			return
		}
		if errors.Is(err, dashboard.ErrNoPendingDelete) || errors.Is(err, dashboard.ErrBusy) || snap.Auth != dashboard.Authenticated {
			h.fail(c, d, err)
			return
		}
		// Deleted; a refetch failed and the tab status carries the error.
		h.log.Warn().Err(err).Msg("Refetch after delete failed")
	}
	response.Success(c, http.StatusOK, snap)
}

// authenticated returns the dashboard of the request's session, resuming it
// when the token outlived the process. It writes the error response itself.
func (h *AdminHandler) authenticated(c *gin.Context) (*dashboard.Dashboard, bool) {
	sid := middleware.GetClaims(c).SessionID()
	d := h.registry.Get(sid)
	if d.Snapshot().Auth == dashboard.Authenticated {
		return d, true
	}
	if err := d.Dispatch(c.Request.Context(), dashboard.Resume{}); err != nil && d.Snapshot().Auth != dashboard.Authenticated {
		h.fail(c, d, err)
		return nil, false
	}
	return d, true
}

// fail writes err, dropping the dashboard once its session is gone.
func (h *AdminHandler) fail(c *gin.Context, d *dashboard.Dashboard, err error) {
	if d.Snapshot().Auth != dashboard.Authenticated {
		h.registry.Remove(middleware.GetClaims(c).SessionID())
		if errors.Is(err, gateway.ErrSessionExpired) || errors.Is(err, dashboard.ErrNotAuthenticated) {
			h.setCookie(c, "", -1)
		}
	}
	respondError(c, err)
}

func (h *AdminHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(service.SessionCookie, value, maxAge, "/", "", h.cookieSecure, true)
}

func recordParams(c *gin.Context) (model.RecordKind, int, bool) {
	kind, err := model.ParseRecordKind(c.Param("kind"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidKind)
		return "", 0, false
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return "", 0, false
	}
	return kind, id, true
}
