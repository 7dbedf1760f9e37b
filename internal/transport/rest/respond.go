package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

// maxBodyBytes bounds request bodies; dream descriptions are the largest field.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldErrorDTO `json:"fields,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// partialResponse is sent with 207 when an enrichment was computed but not saved.
type partialResponse struct {
	Result  any    `json:"result"`
	Warning string `json:"warning"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode body: trailing data")
	}
	return nil
}

// writeDomainError maps a service error to its HTTP status. Unknown errors
// are logged and reported as a generic 500.
func writeDomainError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrAI):
		log.WarnContext(r.Context(), "ai request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "the AI service could not complete the request, please try again")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writePartial answers 207 with the computed result when err is a
// PartialSuccessError, and reports whether it did.
func writePartial(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, present func(any) any) bool {
	var pe *domain.PartialSuccessError
	if !errors.As(err, &pe) {
		return false
	}
	log.ErrorContext(r.Context(), "enrichment not saved",
		slog.String("op", pe.Op),
		slog.String("error", pe.Err.Error()),
	)
	writeJSON(w, http.StatusMultiStatus, partialResponse{
		Result:  present(pe.Result),
		Warning: "the result was generated but could not be saved; save it again to keep it",
	})
	return true
}
