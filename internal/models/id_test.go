package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want ID
	}{
		{"string", `"abc-1"`, "abc-1"},
		{"integer", `12`, "12"},
		{"numeric string", `"12"`, "12"},
		{"float with zero fraction", `12.0`, "12"},
		{"padded string", `" 7 "`, "7"},
		{"null", `null`, ""},
		{"uuid", `"3f2504e0-4f89-11d3-9a0c-0305e82c3301"`, "3f2504e0-4f89-11d3-9a0c-0305e82c3301"},
		{"exponent number", `1e3`, "1000"},
		{"fractional number", `1.5`, "1.5"},
		{"leading zeros kept in string", `"007"`, "007"},
		{"sign kept in string", `"+7"`, "+7"},
		{"exponent kept in string", `"1e3"`, "1e3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &id))
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
}

func TestID_DistinctStringsStayDistinct(t *testing.T) {
	var a, b Incident
	require.NoError(t, json.Unmarshal([]byte(`{"id": "007"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id": "7"}`), &b))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNormalizeID(t *testing.T) {
	assert.Equal(t, ID("42"), NormalizeID(" 42 "))
	assert.Equal(t, ID("007"), NormalizeID("007"))
	assert.Equal(t, ID(""), NormalizeID("   "))
}

func TestVehicle_NumericAndStringIDMatch(t *testing.T) {
	var a, b Vehicle
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "type": "police"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id": "42", "type": "police"}`), &b))
	assert.Equal(t, a.ID, b.ID)
}

func TestSimulatedIncident_AsIncident(t *testing.T) {
	s := SimulatedIncident{ID: "5", Type: IncidentFire, HexID: "h1", Dispatch: DispatchRecord{Vehicle: &Vehicle{ID: "v9"}}}
	inc := s.AsIncident("2026-01-01T00:00:00Z")
	assert.Equal(t, StatusAssigned, inc.Status)
	assert.Equal(t, ID("v9"), inc.AssignedVehicleID)

	s.Dispatch.Vehicle = nil
	inc = s.AsIncident("")
	assert.Equal(t, StatusNew, inc.Status)
	assert.Empty(t, inc.AssignedVehicleID)
}
