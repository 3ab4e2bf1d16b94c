package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	"github.com/Andydrums87/bookabash-sub001/internal/observability"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP requests.
type Handler struct {
	quotes *domain.QuoteService
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(quotes *domain.QuoteService) *Handler {
	return &Handler{
		quotes: quotes,
	}
}

// HandleQuote prices an offering for the current form state.
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request.
	var req domain.QuoteRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.OfferingID != "" {
		ctx = observability.WithOfferingID(ctx, req.OfferingID)
	}
	logger := observability.FromContext(ctx)

	result, err := h.quotes.Quote(ctx, &req)
	if err != nil {
		logger.Warn("quote failed", observability.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, result)
}

// HandleOfferings ingests a supplier offering.
func (h *Handler) HandleOfferings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var offering pricing.SupplierOffering
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&offering); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	stored, err := h.quotes.Ingest(ctx, &offering)
	if err != nil {
		observability.FromContext(ctx).Warn("offering ingest failed", observability.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	h.writeJSON(w, r, http.StatusCreated, stored)
}

// HandleGetOffering returns a stored offering.
func (h *Handler) HandleGetOffering(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.PathValue("id")
	ctx := observability.WithOfferingID(r.Context(), id)

	offering, err := h.quotes.Get(ctx, id)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	h.writeJSON(w, r, http.StatusOK, offering)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrOfferingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidOffering), errors.Is(err, domain.ErrInvalidQuote):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
