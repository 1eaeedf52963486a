package suppliers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/suppliermgmt/suppliermgmt/internal/platform/httpx"
	"github.com/suppliermgmt/suppliermgmt/internal/report"
)

// ReportRenderer produces the PDF bytes for a supplier report.
type ReportRenderer interface {
	Render(ctx context.Context, payload report.Payload) ([]byte, error)
}

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *Validator
	renderer  ReportRenderer
}

func NewHandler(logger *slog.Logger, service *Service, validator *Validator, renderer ReportRenderer) *Handler {
	return &Handler{logger: logger, service: service, validator: validator, renderer: renderer}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := ListFilters{
		SortField: r.URL.Query().Get("sortField"),
		SortOrder: r.URL.Query().Get("sortOrder"),
	}

	suppliers, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list suppliers failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if suppliers == nil {
		suppliers = []Supplier{}
	}

	httpx.JSON(w, http.StatusOK, suppliers)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "Invalid supplier ID")
		return
	}

	supplier, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "not_found", "Supplier not found")
			return
		}
		h.logger.Error("get supplier failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, supplier)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	if errs := h.validator.Check(req); errs != nil {
		httpx.ValidationFailed(w, errs)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create supplier failed", "error", err)
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "Invalid supplier ID")
		return
	}

	var req UpdateSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	if errs := h.validator.Check(req); errs != nil {
		httpx.ValidationFailed(w, errs)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "not_found", "Supplier not found")
			return
		}
		h.logger.Error("update supplier failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "Invalid supplier ID")
		return
	}

	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "not_found", "Supplier not found")
			return
		}
		h.logger.Error("delete supplier failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, deleted)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	suppliers, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.Error("search suppliers failed", "error", err, "query", query)
		httpx.RespondError(w, err)
		return
	}
	if suppliers == nil {
		suppliers = []Supplier{}
	}

	httpx.JSON(w, http.StatusOK, suppliers)
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	// A missing or malformed body and an empty selection are the same
	// rejection: nothing to report on.
	var req ReportRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || len(req.UserIDs) == 0 {
		httpx.Error(w, http.StatusBadRequest, "bad_request", "No users selected")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "bad_request", "Invalid supplier ID")
			return
		}
		ids = append(ids, id)
	}

	suppliers, err := h.service.FindByIDs(r.Context(), ids)
	if err != nil {
		h.logger.Error("fetch report suppliers failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "internal", "Error generating report")
		return
	}

	lines := make([]report.Line, 0, len(suppliers))
	for _, s := range suppliers {
		lines = append(lines, report.Line{
			Name:    s.Name,
			Company: s.CompanyName,
			Product: s.ProductName,
			Contact: s.ContactNumber,
			Email:   s.Email,
		})
	}

	pdf, err := h.renderer.Render(r.Context(), report.Payload{
		GeneratedAt: time.Now(),
		Suppliers:   lines,
	})
	if err != nil {
		h.logger.Error("render supplier report failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "internal", "Error generating report")
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+report.FileName)
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
