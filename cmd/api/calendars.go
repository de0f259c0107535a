package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"

	"calendra.dev/internal/dtos"
)

func (app *Application) calendarsRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /api/calendars",
		app.createCalendarHandler,
	)
	mux.HandleFunc(
		"GET /api/calendars",
		app.getCalendarsHandler,
	)
}

func (app *Application) createCalendarHandler(w http.ResponseWriter, r *http.Request) {
	var createCalendarDto dtos.CreateCalendarDto

	err := httptools.ReadJSON(r.Body, &createCalendarDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createCalendarDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	calendar, err := app.services.Calendars.Create(
		r.Context(),
		createCalendarDto.OwnerID,
		createCalendarDto,
	)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, calendar)
}

func (app *Application) getCalendarsHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner")
	if ownerID == "" {
		httptools.FailedValidationResponse(w, r, map[string]string{
			"owner": "must be provided",
		})
		return
	}

	calendars, err := app.services.Calendars.GetAll(r.Context(), ownerID)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, calendars)
}
