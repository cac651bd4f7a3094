package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/service/mocks"
	"github.com/shenikar/dispatch_console/internal/store"
)

var errUnavailable = errors.New("connection refused")

func TestBootstrap_AllSnapshots(t *testing.T) {
	// Подготовка
	api, st, loader := newTestEnv(t)
	ctx := context.Background()

	vehicle := models.Vehicle{ID: "7", Type: models.VehiclePolice, Latitude: 1, Longitude: 1}

	// Ожидания
	api.EXPECT().FetchHexGrid(gomock.Any()).Return(testHexes("h1", "h2"), nil).Times(1)
	api.EXPECT().FetchIncidents(gomock.Any()).Return([]models.Incident{{ID: "i1", HexID: "h1", Status: models.StatusNew}}, nil)
	api.EXPECT().FetchVehicles(gomock.Any()).Return([]models.Vehicle{vehicle}, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return([]models.PatrolAlert{{ID: "a1", HexID: "h2"}}, nil)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return([]models.TrafficSignal{{ID: "s1", Phase: models.PhaseGreen}}, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return([]models.DispatchRecord{
		{IncidentID: "i1", Vehicle: &vehicle, Route: &models.Route{Geometry: line(0, 0, 0, 1)}},
	}, nil)

	// Действие
	report, err := loader.Bootstrap(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 1, report.Replayed)
	assert.Len(t, st.Hexes(), 2)
	assert.Len(t, st.Alerts(0), 1)
	assert.Len(t, st.Signals(), 1)
	require.Len(t, st.ActiveRoutes(), 1)

	inc, ok := st.Incident("i1")
	require.True(t, ok)
	assert.Equal(t, models.ID("7"), inc.AssignedVehicleID)
}

func TestBootstrap_HexGridRetriedOnce(t *testing.T) {
	api, st, loader := newTestEnv(t)

	gomock.InOrder(
		api.EXPECT().FetchHexGrid(gomock.Any()).Return(nil, errUnavailable),
		api.EXPECT().FetchHexGrid(gomock.Any()).Return(testHexes("h1"), nil),
	)
	api.EXPECT().FetchIncidents(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return(nil, nil)

	report, err := loader.Bootstrap(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Failed)
	assert.Len(t, st.Hexes(), 1)
}

func TestBootstrap_HexGridFailsTwice(t *testing.T) {
	api, st, loader := newTestEnv(t)

	api.EXPECT().FetchHexGrid(gomock.Any()).Return(nil, errUnavailable).Times(2)
	api.EXPECT().FetchIncidents(gomock.Any()).Return([]models.Incident{{ID: "i1"}}, nil)
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return(nil, nil)

	report, err := loader.Bootstrap(context.Background())

	require.NoError(t, err, "snapshot failures are never fatal")
	assert.Equal(t, []store.Collection{store.CollectionHexes}, report.Failed)
	assert.Empty(t, st.Hexes())
	assert.Len(t, st.Incidents(), 1, "other collections still load")
}

func TestBootstrap_PartialFailureKeepsPreviousValue(t *testing.T) {
	api, st, loader := newTestEnv(t)
	st.ApplySnapshot(store.AlertSnapshot{{ID: "old"}})

	api.EXPECT().FetchHexGrid(gomock.Any()).Return(testHexes("h1"), nil)
	api.EXPECT().FetchIncidents(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, errUnavailable)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return(nil, errUnavailable)

	report, err := loader.Bootstrap(context.Background())

	require.NoError(t, err)
	assert.ElementsMatch(t, []store.Collection{store.CollectionAlerts, store.CollectionDispatches}, report.Failed)
	require.Len(t, st.Alerts(0), 1)
	assert.Equal(t, models.ID("old"), st.Alerts(0)[0].ID)
	assert.Len(t, st.Hexes(), 1)
}

func TestBootstrap_ReplaysAllDispatchesWithFirstAsHeadline(t *testing.T) {
	api, st, loader := newTestEnv(t)

	v1 := models.Vehicle{ID: "1"}
	v2 := models.Vehicle{ID: "2"}
	first := models.DispatchRecord{IncidentID: "i1", Vehicle: &v1, Route: &models.Route{Geometry: line(0, 0, 0, 1)}, GreenCorridorHexes: []string{"h1"}}
	second := models.DispatchRecord{IncidentID: "i2", Vehicle: &v2, Route: &models.Route{Geometry: line(5, 5, 5, 6, 5, 7)}}

	api.EXPECT().FetchHexGrid(gomock.Any()).Return(testHexes("h1"), nil)
	api.EXPECT().FetchIncidents(gomock.Any()).Return([]models.Incident{{ID: "i1"}, {ID: "i2"}}, nil)
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return([]models.DispatchRecord{first, second}, nil)

	_, err := loader.Bootstrap(context.Background())

	require.NoError(t, err)
	assert.Len(t, st.ActiveRoutes(), 2)
	assert.Equal(t, first.Route.Geometry, st.HeadlineRoute())
	assert.Equal(t, []string{"h1"}, st.GreenCorridor())
	require.NotNil(t, st.LastDispatch())
	assert.Equal(t, models.ID("i1"), st.LastDispatch().IncidentID)
	assert.Len(t, st.Vehicles(), 2)
}

func TestBootstrap_ContextCanceled(t *testing.T) {
	api, _, loader := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	api.EXPECT().FetchHexGrid(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	api.EXPECT().FetchIncidents(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, context.Canceled).AnyTimes()
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return(nil, context.Canceled).AnyTimes()

	_, err := loader.Bootstrap(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHexSummary_CacheHitAndMiss(t *testing.T) {
	api, _, loader := newTestEnv(t)
	cache := mocks.NewMockSummaryCache(gomock.NewController(t))
	loader.UseSummaryCache(cache)
	ctx := context.Background()
	cells := []models.HexCell{{HexID: "h1", IncidentCount: 2}}

	// Промах: запрос к сервису и запись в кэш
	gomock.InOrder(
		cache.EXPECT().GetSummary(ctx).Return(nil, nil),
		api.EXPECT().FetchHexSummary(ctx).Return(cells, nil),
		cache.EXPECT().SetSummary(ctx, cells).Return(nil),
	)
	got, err := loader.HexSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, cells, got)

	// Попадание: сервис не вызывается
	cache.EXPECT().GetSummary(ctx).Return(cells, nil)
	got, err = loader.HexSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, cells, got)
}

func TestHexSummary_CacheErrorFallsBackToService(t *testing.T) {
	api, _, loader := newTestEnv(t)
	cache := mocks.NewMockSummaryCache(gomock.NewController(t))
	loader.UseSummaryCache(cache)
	ctx := context.Background()

	cache.EXPECT().GetSummary(ctx).Return(nil, errUnavailable)
	api.EXPECT().FetchHexSummary(ctx).Return(testHexes("h1"), nil)
	cache.EXPECT().SetSummary(ctx, gomock.Any()).Return(errUnavailable)

	got, err := loader.HexSummary(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRefreshHexes_InvalidatesSummaryCache(t *testing.T) {
	api, st, loader := newTestEnv(t)
	cache := mocks.NewMockSummaryCache(gomock.NewController(t))
	loader.UseSummaryCache(cache)
	ctx := context.Background()

	api.EXPECT().FetchHexGrid(ctx).Return(testHexes("h1"), nil)
	cache.EXPECT().InvalidateSummary(ctx).Return(nil).Times(1)

	require.NoError(t, loader.RefreshHexes(ctx))
	assert.Len(t, st.Hexes(), 1)
}
