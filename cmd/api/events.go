package main

import (
	"net/http"

	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/parse"

	"calendra.dev/internal/dtos"
)

func (app *Application) eventsRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /api/calendars/{calendarId}/events",
		app.createEventHandler,
	)
	mux.HandleFunc(
		"GET /api/calendars/{calendarId}/events",
		app.getOccurrencesHandler,
	)
	mux.HandleFunc(
		"GET /api/events/{id}",
		app.getEventHandler,
	)
	mux.HandleFunc(
		"PUT /api/events/{id}",
		app.updateEventHandler,
	)
	mux.HandleFunc(
		"DELETE /api/events/{id}",
		app.deleteEventHandler,
	)
}

func (app *Application) createEventHandler(w http.ResponseWriter, r *http.Request) {
	calendarID, err := parse.URLParam[string](r, "calendarId", nil)
	if err != nil {
		panic(err)
	}

	var createEventDto dtos.CreateEventDto

	err = httptools.ReadJSON(r.Body, &createEventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := createEventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	event, err := app.services.Events.Create(r.Context(), calendarID, createEventDto)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, event)
}

// getOccurrencesHandler expands every event of the calendar that overlaps
// the requested window into concrete occurrences.
func (app *Application) getOccurrencesHandler(w http.ResponseWriter, r *http.Request) {
	calendarID, err := parse.URLParam[string](r, "calendarId", nil)
	if err != nil {
		panic(err)
	}

	occurrences, err := app.services.Events.GetOccurrences(
		r.Context(),
		calendarID,
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, occurrences)
}

func (app *Application) getEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	event, err := app.services.Events.GetByID(r.Context(), id)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, event)
}

func (app *Application) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var updateEventDto dtos.UpdateEventDto

	err = httptools.ReadJSON(r.Body, &updateEventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := updateEventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	change, affected, err := app.services.Events.Update(r.Context(), id, updateEventDto)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, dtos.UpdatedEventDto{
		Update:        change.Update,
		Create:        change.Create,
		AffectedRange: *affected,
	})
}

func (app *Application) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parse.URLParam[string](r, "id", nil)
	if err != nil {
		panic(err)
	}

	var deleteEventDto dtos.DeleteEventDto

	err = httptools.ReadJSON(r.Body, &deleteEventDto)
	if err != nil {
		httptools.HandleError(w, r, err)
		return
	}

	if ok, errs := deleteEventDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	result, affected, err := app.services.Events.Delete(r.Context(), id, deleteEventDto)
	if err != nil {
		app.handleDomainError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, dtos.DeletedEventDto{
		ID:            result.ID,
		Kind:          result.Kind,
		Event:         result.Event,
		AffectedRange: *affected,
	})
}
