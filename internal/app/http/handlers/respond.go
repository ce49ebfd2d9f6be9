package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"quotedesk/backend/internal/app/logger"
	"quotedesk/backend/internal/domain/commission"
	"quotedesk/backend/internal/domain/dashboard"
	"quotedesk/backend/internal/domain/quote"
	"quotedesk/backend/internal/domain/wizard"
	"quotedesk/backend/internal/infra/remote"
)

type errorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Missing []string `json:"missing,omitempty"`
}

var errBadJSON = errors.New("invalid JSON body")

// writeJSON encodes v before touching the response, so an unencodable
// value becomes a 500 instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(r.Context()).Error("http: encode response failed",
			zap.String("path", r.URL.Path), zap.Error(err))
		status = http.StatusInternalServerError
		b, _ = json.Marshal(errorResponse{Message: "internal error"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		logger.FromContext(r.Context()).Warn("http: write response failed",
			zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadJSON
	}
	return nil
}

// writeError maps domain and remote failures onto a status code. The
// message is what the dashboard shows.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		stepErr *wizard.StepError
		apiErr  *remote.APIError
		badReq  *badRequestError
	)
	switch {
	case errors.As(err, &stepErr):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Message: stepErr.Alert, Missing: stepErr.Missing})
	case errors.Is(err, wizard.ErrLastStep):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
	case errors.Is(err, errBadJSON),
		errors.As(err, &badReq),
		errors.Is(err, quote.ErrNoRecipient),
		errors.Is(err, commission.ErrPeriodRequired),
		errors.Is(err, dashboard.ErrStatusRequired):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, remote.ErrNotImplemented):
		writeJSON(w, r, http.StatusNotImplemented, errorResponse{Message: err.Error()})
	case errors.As(err, &apiErr):
		writeJSON(w, r, http.StatusBadGateway, errorResponse{Message: apiErr.Message})
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, r, http.StatusGatewayTimeout, errorResponse{Message: "upstream timed out"})
	default:
		logger.FromContext(r.Context()).Error("http: unhandled error",
			zap.String("path", r.URL.Path), zap.Error(err))
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

type badRequestError struct{ msg string }

func (e *badRequestError) Error() string { return e.msg }

func badRequest(msg string) error { return &badRequestError{msg: msg} }

func refresh(r *http.Request) bool {
	v := r.URL.Query().Get("refresh")
	return v == "1" || v == "true"
}
