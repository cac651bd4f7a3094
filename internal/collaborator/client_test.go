package collaborator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/dispatch_console/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second)
}

func TestFetchVehicles_NormalizesIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vehicles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"vehicles":[{"id":7,"type":"police","latitude":13.0,"longitude":80.2,"status":"available"}]}`)
	})

	vehicles, err := client.FetchVehicles(context.Background())

	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, models.ID("7"), vehicles[0].ID)
}

func TestFetchActiveDispatches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"dispatches":[{"incident_id":"i1","vehicle":{"id":"v1"},"route":{"geometry":[[1,2],[3,4]],"source":"fallback"}}]}`)
	})

	ds, err := client.FetchActiveDispatches(context.Background())

	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.True(t, ds[0].HasGeometry())
	assert.Equal(t, "fallback", ds[0].Route.Source)
}

func TestCreateIncident_SendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body CreateIncidentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.IncidentMedical, body.Type)
		_, _ = io.WriteString(w, `{"incident":{"id":"i9","type":"medical","hex_id":"h1","status":"new"},"dispatch":{"incident_id":"i9","vehicle":null},"alerts":[]}`)
	})

	res, err := client.CreateIncident(context.Background(), CreateIncidentRequest{Type: models.IncidentMedical, Latitude: 13, Longitude: 80})

	require.NoError(t, err)
	assert.Equal(t, models.ID("i9"), res.Incident.ID)
	assert.Nil(t, res.Dispatch.Vehicle)
}

func TestDeleteVehicle_EscapesPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/vehicles/a%2Fb", r.URL.EscapedPath())
		_, _ = io.WriteString(w, `{"ok":true,"deleted":"a/b"}`)
	})

	require.NoError(t, client.DeleteVehicle(context.Background(), "a/b"))
}

func TestMarkIncidentAttended(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/incidents/i1/attended", r.URL.Path)
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	require.NoError(t, client.MarkIncidentAttended(context.Background(), "i1"))
}

func TestDo_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error":"no vehicle available"}`)
	})

	_, err := client.RunSimulation(context.Background(), models.SimulationConfig{Scenario: "surge"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "no vehicle available")
}

func TestDo_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"cells": 5}`)
	})

	_, err := client.FetchHexGrid(context.Background())

	assert.ErrorIs(t, err, ErrDecode)
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, time.Second)

	_, err := client.FetchIncidents(context.Background())

	assert.ErrorIs(t, err, ErrTransport)
}

func TestResetSimulation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/simulation/reset", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"reset"}`)
	})

	status, err := client.ResetSimulation(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "reset", status)
}
