package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/storage"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/tms"
)

func (a *API) validateTmsEvent(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["shipment_id"]

	var event model.TmsEvent
	if !decodeBody(w, r, &event) {
		return
	}

	result, err := a.reconciler.ValidateTmsEvent(r.Context(), time.Now().Unix(), shipmentID, event)
	writeValidationResult(w, result, err)
}

func (a *API) createShipment(w http.ResponseWriter, r *http.Request) {
	var req tms.CreateShipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shipment, err := a.shipments.CreateShipment(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shipment)
}

func (a *API) seedShipments(w http.ResponseWriter, r *http.Request) {
	var req tms.SeedShipmentsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shipments, err := a.shipments.SeedShipments(r.Context(), time.Now().Unix(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shipments)
}

func (a *API) listShipments(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePaging(r)
	if err != nil {
		writeError(w, err)
		return
	}

	req := storage.ListShipmentsRequest{
		Offset: offset,
		Limit:  limit,
		IDs:    r.URL.Query()["id"],
	}
	result, err := a.shipments.ListShipments(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getShipment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	shipment, err := a.shipments.GetShipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shipment)
}
