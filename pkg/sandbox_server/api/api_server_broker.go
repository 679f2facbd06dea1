package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/broker"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/reconcile"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
)

func (a *API) validateBrokerOrder(w http.ResponseWriter, r *http.Request) {
	var order model.BrokerOrderMessage
	if !decodeBody(w, r, &order) {
		return
	}

	result, err := a.reconciler.ValidateBrokerOrder(r.Context(), time.Now().Unix(), order)
	writeValidationResult(w, result, err)
}

// writeValidationResult answers 202 on acceptance and 400 with every field
// difference on rejection.
func writeValidationResult(w http.ResponseWriter, result reconcile.ValidationResult, err error) {
	var validationErr *reconcile.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": validationErr.Errors})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, result)
}

func (a *API) createBrokerEvent(w http.ResponseWriter, r *http.Request) {
	var req broker.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := a.events.CreateEvent(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (a *API) seedBrokerEvents(w http.ResponseWriter, r *http.Request) {
	var req broker.SeedEventsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	events, err := a.events.SeedEvents(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, events)
}

func (a *API) listBrokerEvents(w http.ResponseWriter, r *http.Request) {
	req, err := parseListBrokerEventsRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := a.events.ListEvents(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) listNewBrokerEvents(w http.ResponseWriter, r *http.Request) {
	req, err := parseListBrokerEventsRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := a.events.ListNewEvents(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) markBrokerEventProcessed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	processed, err := a.events.MarkEventProcessed(r.Context(), time.Now().Unix(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"processed": processed})
}

func parseListBrokerEventsRequest(r *http.Request) (storage.ListBrokerEventsRequest, error) {
	offset, limit, err := parsePaging(r)
	if err != nil {
		return storage.ListBrokerEventsRequest{}, err
	}

	query := r.URL.Query()
	return storage.ListBrokerEventsRequest{
		Offset:     offset,
		Limit:      limit,
		IDs:        query["id"],
		ShipmentID: query.Get("shipment_id"),
		EventType:  model.BrokerEventType(query.Get("event")),
	}, nil
}
