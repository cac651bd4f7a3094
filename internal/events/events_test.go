package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/dispatch_console/internal/models"
)

func TestDecode_NewIncident(t *testing.T) {
	ev, err := Decode("new_incident", json.RawMessage(`{"id": 17, "type": "fire", "hex_id": "h1", "status": "new"}`))
	require.NoError(t, err)

	ni, ok := ev.(NewIncident)
	require.True(t, ok)
	assert.Equal(t, models.ID("17"), ni.Incident.ID)
	assert.Equal(t, models.IncidentFire, ni.Incident.Type)
	assert.Equal(t, TypeNewIncident, ev.Type())
}

func TestDecode_VehicleDispatched(t *testing.T) {
	raw := `{"incident_id":"i1","vehicle":{"id":3,"type":"ambulance","latitude":1,"longitude":2,"status":"busy"},
		"route":{"geometry":[[1,2],[3,4]],"distance_m":120.5,"source":"osrm"},"green_corridor_hexes":["h1","h2"]}`
	ev, err := Decode("vehicle_dispatched", json.RawMessage(raw))
	require.NoError(t, err)

	vd := ev.(VehicleDispatched)
	assert.Equal(t, models.ID("3"), vd.Dispatch.VehicleID())
	assert.True(t, vd.Dispatch.HasGeometry())
	assert.Equal(t, []string{"h1", "h2"}, vd.Dispatch.GreenCorridorHexes)
}

func TestDecode_Connection(t *testing.T) {
	ev, err := Decode("connect", nil)
	require.NoError(t, err)
	assert.Equal(t, TypeConnect, ev.Type())

	ev, err = Decode("disconnect", nil)
	require.NoError(t, err)
	assert.Equal(t, TypeDisconnect, ev.Type())
}

func TestDecode_Unknown(t *testing.T) {
	_, err := Decode("weather_report", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestDecode_InvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"new_incident":       `{"type":"fire"}`,
		"vehicle_dispatched": `{"vehicle":{"id":1}}`,
		"route_update":       `{"incident_id":"i1"}`,
		"patrol_alert":       `{"message":"x"}`,
		"vehicle_position":   `{"vehicle":{}}`,
		"vehicle_removed":    `{}`,
		"incident_attended":  `{"incident_id":null}`,
		"simulation_update":  `{"scenario":"surge","incidents":[{"type":"fire"}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(name, json.RawMessage(raw))
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode("patrol_alert", json.RawMessage(`{"id":`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = Decode("vehicle_removed", nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecode_RadioComm(t *testing.T) {
	ev, err := Decode("radio_comm", json.RawMessage(`{"role":"control","text":"Unit 4 respond"}`))
	require.NoError(t, err)
	rc := ev.(RadioComm)
	assert.Equal(t, "control", rc.Role)
	assert.Equal(t, "Unit 4 respond", rc.Text)
}
