package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/dispatch_console/internal/events"
	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/store"
)

type countingBootstrapper struct {
	calls atomic.Int32
}

func (b *countingBootstrapper) Bootstrap(context.Context) (BootstrapReport, error) {
	b.calls.Add(1)
	return BootstrapReport{}, nil
}

func TestResyncer_FirstConnectDoesNotReload(t *testing.T) {
	boot := &countingBootstrapper{}
	r := NewResyncer(boot, newTestLogger())

	started := r.Connected(context.Background())
	r.Wait()

	assert.False(t, started)
	assert.Zero(t, boot.calls.Load())
}

func TestResyncer_ReloadsOnceAfterDisconnect(t *testing.T) {
	boot := &countingBootstrapper{}
	r := NewResyncer(boot, newTestLogger())
	ctx := context.Background()

	r.Disconnected()
	assert.True(t, r.Connected(ctx))
	// Повторный connect без обрыва ничего не запускает
	assert.False(t, r.Connected(ctx))
	r.Wait()

	assert.Equal(t, int32(1), boot.calls.Load())
}

func TestResyncer_ReloadPrunesRouteOfAttendedIncident(t *testing.T) {
	// Подготовка: маршрут активен до обрыва
	api, st, loader := newTestEnv(t)
	st.ApplyEvent(events.NewIncident{Incident: models.Incident{ID: "i1"}})
	st.ApplyEvent(events.VehicleDispatched{Dispatch: models.DispatchRecord{
		IncidentID: "i1",
		Vehicle:    &models.Vehicle{ID: "v1"},
		Route:      &models.Route{Geometry: line(0, 0, 0, 1)},
	}})
	require.Len(t, st.ActiveRoutes(), 1)

	// За время обрыва инцидент обслужен, назначений больше нет
	api.EXPECT().FetchHexGrid(gomock.Any()).Return(testHexes("h1"), nil)
	api.EXPECT().FetchIncidents(gomock.Any()).Return([]models.Incident{{ID: "i1", Attended: true}}, nil)
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return(nil, nil)

	r := NewResyncer(loader, newTestLogger())

	// Действие
	r.Disconnected()
	require.True(t, r.Connected(context.Background()))
	r.Wait()

	// Проверки
	inc, ok := st.Incident("i1")
	require.True(t, ok)
	assert.True(t, inc.Attended)
	assert.Empty(t, st.ActiveRoutes())
}

func TestBootstrap_FailedDispatchFetchKeepsRoutes(t *testing.T) {
	api, st, loader := newTestEnv(t)
	st.ApplySnapshot(store.DispatchSnapshot{{IncidentID: "i1", Vehicle: &models.Vehicle{ID: "v1"}, Route: &models.Route{Geometry: line(0, 0, 0, 1)}}})

	api.EXPECT().FetchHexGrid(gomock.Any()).Return(testHexes("h1"), nil)
	api.EXPECT().FetchIncidents(gomock.Any()).Return(nil, errUnavailable)
	api.EXPECT().FetchVehicles(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchPatrolAlerts(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchTrafficSignals(gomock.Any()).Return(nil, nil)
	api.EXPECT().FetchActiveDispatches(gomock.Any()).Return(nil, errUnavailable)

	_, err := loader.Bootstrap(context.Background())

	require.NoError(t, err)
	assert.Len(t, st.ActiveRoutes(), 1)
}
