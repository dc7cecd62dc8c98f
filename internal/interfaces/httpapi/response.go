package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/copa-nordeste/copa-api/internal/domain/championship"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

// errorBody is the uniform error shape: a human message plus optional
// per-field details on validation failures.
type errorBody struct {
	Message string               `json:"message"`
	Errors  []usecase.FieldError `json:"errors,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeMessage(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, messageBody{Message: message})
}

// writeError maps a usecase error onto the wire contract. Internal
// causes never leak; callers log them before handing the error here.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{
			Message: "Invalid data",
			Errors:  validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, championship.ErrDuplicateEntry):
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Message: "Team is already enrolled in this championship"})
	case errors.Is(err, usecase.ErrInvalidInput):
		writeJSON(ctx, w, http.StatusBadRequest, errorBody{Message: "Invalid data"})
	case errors.Is(err, usecase.ErrObjectNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorBody{Message: "Object not found"})
	case errors.Is(err, usecase.ErrNotFound):
		writeJSON(ctx, w, http.StatusNotFound, errorBody{Message: notFoundMessage(err)})
	case errors.Is(err, usecase.ErrUnauthorized):
		writeJSON(ctx, w, http.StatusUnauthorized, errorBody{Message: "Unauthorized"})
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		writeJSON(ctx, w, http.StatusServiceUnavailable, errorBody{Message: "Service temporarily unavailable"})
	default:
		writeInternalError(ctx, w)
	}
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Message: "Internal server error"})
}

// notFoundMessage names the missing resource from the sentinel wrap,
// e.g. "championship=abc" becomes "Championship not found".
func notFoundMessage(err error) string {
	msg := err.Error()
	for _, resource := range [...]struct {
		marker string
		label  string
	}{
		{"championship=", "Championship"},
		{"athlete=", "Athlete"},
		{"referee=", "Referee"},
		{"competition=", "Competition"},
		{"team=", "Team"},
		{"news=", "News"},
		{"match=", "Match"},
	} {
		if strings.Contains(msg, resource.marker) {
			return resource.label + " not found"
		}
	}
	return "Resource not found"
}
