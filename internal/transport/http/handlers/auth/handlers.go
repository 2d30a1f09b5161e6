package authhandler

import (
	"encoding/json"
	"net/http"

	"paycalc/internal/domain/auth"
	"paycalc/internal/platform/config"
	"paycalc/internal/transport/http/api"
	"paycalc/internal/transport/http/middleware"
)

type Handler struct {
	cfg config.Config
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{cfg: cfg}
}

type tokenPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func (h *Handler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if h.cfg.JWTSecret == "" || h.cfg.APIPasswordHash == "" {
		api.Fail(w, http.StatusServiceUnavailable, "auth_not_configured", "token auth is not configured", requestID)
		return
	}

	var payload tokenPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	if payload.Username != h.cfg.APIUser || auth.CheckPassword(h.cfg.APIPasswordHash, payload.Password) != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.cfg.JWTSecret, payload.Username, h.cfg.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, tokenResponse{Token: token, ExpiresIn: int64(h.cfg.TokenTTL.Seconds())}, requestID)
}
