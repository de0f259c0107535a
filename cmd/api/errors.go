package main

import (
	"errors"
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"

	"calendra.dev/internal/models"
)

// handleDomainError translates domain failures into HTTP responses: field
// validation errors become 422s with per-field codes, a clash with an
// existing exception becomes a 409, anything else falls through to the
// shared error mapping.
func (app *Application) handleDomainError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		httptools.FailedValidationResponse(w, r, ve.Fields())
	case errors.Is(err, models.ErrExistException):
		app.writeJSON(w, r, http.StatusConflict, map[string]string{
			"message": err.Error(),
		})
	default:
		httptools.HandleError(w, r, err)
	}
}

func (app *Application) writeJSON(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	data any,
) {
	err := httptools.WriteJSON(w, status, data, nil)
	if err != nil {
		httptools.HandleError(w, r, err)
	}
}
