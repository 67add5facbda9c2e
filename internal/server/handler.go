// Package server exposes the converter over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fjacquet/pacs2mt/internal/converter"
	"fjacquet/pacs2mt/internal/logging"
	"fjacquet/pacs2mt/internal/parsererror"

	"github.com/go-chi/chi/v5/middleware"
)

// Error kinds reported by the API besides the conversion failure kinds.
const (
	KindPayloadTooLarge = "PayloadTooLarge"
	KindInternal        = "Internal"
)

// Processor runs one conversion.
type Processor interface {
	Process(ctx context.Context, r io.Reader) (converter.Result, error)
}

// ConvertResponse is the body of a successful conversion.
type ConvertResponse struct {
	ConversionID string `json:"conversionId"`
	MT103        string `json:"mt103"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Handler serves the conversion API.
type Handler struct {
	processor    Processor
	logger       logging.Logger
	maxBodyBytes int64
	version      string
}

// NewHandler creates a Handler. Bodies larger than maxBodyBytes are
// rejected with 413.
func NewHandler(processor Processor, logger logging.Logger, maxBodyBytes int64, version string) *Handler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Handler{
		processor:    processor,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
		version:      version,
	}
}

// Convert handles POST /api/convert. The body is the raw pacs.008 XML.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	log := h.logger.WithField(logging.FieldRequestID, middleware.GetReqID(r.Context()))

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", KindPayloadTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "failed to read request body", parsererror.Kind(parsererror.ErrDecodeFailure))
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		writeError(w, http.StatusBadRequest, "empty request body", parsererror.Kind(parsererror.ErrDecodeFailure))
		return
	}

	res, err := h.processor.Process(r.Context(), bytes.NewReader(data))
	if err != nil {
		status, kind := classify(err)
		if status == http.StatusInternalServerError {
			log.WithError(err).Error("Conversion failed unexpectedly")
		}
		writeError(w, status, err.Error(), kind)
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{ConversionID: res.ConversionID, MT103: res.MT103})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, parsererror.ErrDecodeFailure):
		return http.StatusBadRequest, parsererror.Kind(err)
	case errors.Is(err, parsererror.ErrStructureNotFound), errors.Is(err, parsererror.ErrUnexpectedShape):
		return http.StatusUnprocessableEntity, parsererror.Kind(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, KindInternal
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
