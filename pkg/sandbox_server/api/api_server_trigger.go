package api

import (
	"net/http"
	"time"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/trigger"
)

func (a *API) triggerShipments(w http.ResponseWriter, r *http.Request) {
	var req trigger.ShipmentTriggerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shipments, err := a.trigger.TriggerShipments(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shipments)
}

func (a *API) triggerEvents(w http.ResponseWriter, r *http.Request) {
	var req trigger.EventTriggerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	events, err := a.trigger.TriggerEvents(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
