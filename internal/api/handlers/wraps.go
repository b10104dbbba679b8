package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mgarridov/wraps-backend/internal/api/httpx"
	"github.com/mgarridov/wraps-backend/internal/api/validate"
	"github.com/mgarridov/wraps-backend/internal/metrics"
	"github.com/mgarridov/wraps-backend/internal/middleware"
	"github.com/mgarridov/wraps-backend/internal/services"
)

type WrapsHandler struct {
	wraps *services.WrapService
}

func NewWrapsHandler(wraps *services.WrapService) *WrapsHandler {
	return &WrapsHandler{wraps: wraps}
}

func (h *WrapsHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	out, err := h.wraps.List(r.Context(), uid)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *WrapsHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var body struct {
		Title string          `json:"title"`
		Kind  string          `json:"kind"`
		Year  json.RawMessage `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	in, ferrs := validate.WrapCreate(body.Title, body.Kind, body.Year)
	if !ferrs.Empty() {
		httpx.WriteError(w, http.StatusBadRequest, ferrs.Report())
		return
	}

	wrap, err := h.wraps.Create(r.Context(), uid, in.Title, in.Kind, in.Year)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.WrapsCreated.Inc()
	httpx.WriteJSON(w, http.StatusOK, wrap)
}

func (h *WrapsHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	wrapID := chi.URLParam(r, "id")

	// ownership first: a missing or foreign wrap is a 404 before the body
	// is even considered
	if _, err := h.wraps.Get(r.Context(), uid, wrapID); err != nil {
		h.writeWrapErr(w, err)
		return
	}

	var body struct {
		Name  string          `json:"name"`
		Date  string          `json:"date"`
		Notes json.RawMessage `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	in, ferrs := validate.Item(body.Name, body.Date, body.Notes)
	if !ferrs.Empty() {
		httpx.WriteError(w, http.StatusBadRequest, ferrs.Report())
		return
	}

	item, err := h.wraps.AddItem(r.Context(), wrapID, in.Name, in.Date, in.Notes)
	if err != nil {
		h.writeWrapErr(w, err)
		return
	}
	metrics.ItemsCreated.Inc()
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *WrapsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	wrapID := chi.URLParam(r, "id")

	if err := h.wraps.Delete(r.Context(), uid, wrapID); err != nil {
		h.writeWrapErr(w, err)
		return
	}
	metrics.WrapsDeleted.Inc()
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *WrapsHandler) writeWrapErr(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrWrapNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "Wrap no existe")
		return
	}
	httpx.WriteError(w, http.StatusInternalServerError, "internal error")
}
