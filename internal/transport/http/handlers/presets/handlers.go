package presetshandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"paycalc/internal/domain/presets"
	"paycalc/internal/transport/http/api"
	"paycalc/internal/transport/http/middleware"
	"paycalc/internal/transport/http/shared"
)

type Handler struct {
	store *presets.Store
}

func NewHandler(store *presets.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/presets", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{presetID}", h.handleGet)
		r.Put("/{presetID}", h.handleUpdate)
		r.Delete("/{presetID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.store.List(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	preset, ok := h.store.Get(chi.URLParam(r, "presetID"))
	if !ok {
		api.Fail(w, http.StatusNotFound, "preset_not_found", "preset not found", requestID)
		return
	}
	api.Success(w, preset, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	payload, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	created := h.store.Create(payload)
	api.Created(w, created, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	payload, ok := h.decode(w, r, requestID)
	if !ok {
		return
	}

	updated, err := h.store.Update(chi.URLParam(r, "presetID"), payload)
	if errors.Is(err, presets.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "preset_not_found", "preset not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "preset_update_failed", "failed to update preset", requestID)
		return
	}
	api.Success(w, updated, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.store.Delete(chi.URLParam(r, "presetID"))
	if errors.Is(err, presets.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "preset_not_found", "preset not found", requestID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "preset_delete_failed", "failed to delete preset", requestID)
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, requestID)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, requestID string) (presets.Preset, bool) {
	var payload presets.Preset
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return presets.Preset{}, false
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.NonNegative("monthlyGross", payload.MonthlyGross)
	v.NonNegative("fixedAllowances.conveyance", payload.Allowances.Conveyance)
	v.NonNegative("fixedAllowances.medical", payload.Allowances.Medical)
	v.NonNegative("fixedAllowances.lunch", payload.Allowances.Lunch)
	if v.Reject(w, requestID) {
		return presets.Preset{}, false
	}
	return payload, true
}
