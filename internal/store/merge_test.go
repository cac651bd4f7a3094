package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shenikar/dispatch_console/internal/models"
)

func TestInsertIncident_DoesNotMutateInput(t *testing.T) {
	prev := []models.Incident{{ID: "a"}}

	next, inserted := InsertIncident(prev, models.Incident{ID: "b"})

	assert.True(t, inserted)
	assert.Len(t, prev, 1)
	assert.Equal(t, []models.ID{"b", "a"}, []models.ID{next[0].ID, next[1].ID})
}

func TestInsertIncident_RejectsEmptyID(t *testing.T) {
	next, inserted := InsertIncident(nil, models.Incident{})
	assert.False(t, inserted)
	assert.Empty(t, next)
}

func TestPatchIncident_CopyOnWrite(t *testing.T) {
	prev := []models.Incident{{ID: "a", Status: "new"}}

	next, ok := PatchIncident(prev, "a", markAttended)

	assert.True(t, ok)
	assert.Equal(t, "new", prev[0].Status)
	assert.Equal(t, models.StatusAttended, next[0].Status)
}

func TestPatchIncident_Missing(t *testing.T) {
	prev := []models.Incident{{ID: "a"}}
	next, ok := PatchIncident(prev, "z", markAttended)
	assert.False(t, ok)
	assert.Equal(t, prev, next)
}

func TestIncrementHex_CopyOnWrite(t *testing.T) {
	prev := map[string]models.HexCell{"h1": {HexID: "h1", IncidentCount: 1, IncidentTypes: map[string]int{"fire": 1}}}

	next, ok := IncrementHex(prev, "h1", models.IncidentFire)

	assert.True(t, ok)
	assert.Equal(t, 1, prev["h1"].IncidentCount)
	assert.Equal(t, 1, prev["h1"].IncidentTypes["fire"])
	assert.Equal(t, 2, next["h1"].IncidentCount)
	assert.Equal(t, 2, next["h1"].IncidentTypes["fire"])
}

func TestIncrementHex_Unknown(t *testing.T) {
	prev := map[string]models.HexCell{}
	next, ok := IncrementHex(prev, "h9", "")
	assert.False(t, ok)
	assert.Empty(t, next)
}

func TestRemoveVehicle_CopyOnWrite(t *testing.T) {
	prev := map[models.ID]models.Vehicle{"v1": {ID: "v1"}, "v2": {ID: "v2"}}

	next, ok := RemoveVehicle(prev, "v1")

	assert.True(t, ok)
	assert.Len(t, prev, 2)
	assert.Len(t, next, 1)
}

func TestPrependAlerts_KeepsBatchOrder(t *testing.T) {
	prev := []models.PatrolAlert{{ID: "old"}}

	next, n := PrependAlerts(prev, models.PatrolAlert{ID: "n1"}, models.PatrolAlert{ID: "n2"}, models.PatrolAlert{ID: "old"})

	assert.Equal(t, 2, n)
	assert.Equal(t, []models.ID{"n1", "n2", "old"}, []models.ID{next[0].ID, next[1].ID, next[2].ID})
}

func TestSetAndPruneRoute(t *testing.T) {
	routes := SetRoute(nil, models.ActiveRoute{IncidentID: "a"})
	routes = SetRoute(routes, models.ActiveRoute{IncidentID: "b"})
	routes = SetRoute(routes, models.ActiveRoute{IncidentID: "a", VehicleID: "v2"})

	assert.Len(t, routes, 2)
	assert.Equal(t, models.ID("v2"), routes[1].VehicleID)

	routes, ok := PruneRoute(routes, "b")
	assert.True(t, ok)
	assert.Len(t, routes, 1)

	_, ok = PruneRoute(routes, "b")
	assert.False(t, ok)
}
