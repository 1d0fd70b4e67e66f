package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/passgen/internal/export"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// ExportHandler handles HTTP requests for export files and their history.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// HandleExport handles POST /api/v1/export/{format} requests. The response
// body is the export file itself.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}

	var req model.ExportRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	data, rec, err := h.service.Export(r.Context(), format, req.Passwords)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToExport),
			errors.Is(err, service.ErrTooManyPasswords),
			errors.Is(err, export.ErrLineBreak),
			errors.Is(err, export.ErrUnencodable):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("export failed", "format", format, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+rec.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// HandleHistory handles GET /api/v1/exports requests.
func (h *ExportHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.History(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
			return
		}
		slog.Error("listing exports failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, records)
}
