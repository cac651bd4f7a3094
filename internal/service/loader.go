package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/store"
)

// BootstrapReport - итог начальной загрузки
type BootstrapReport struct {
	Failed   []store.Collection
	Replayed int
}

// Loader запрашивает снапшоты коллекций и сводит их в хранилище
type Loader struct {
	api         Collaborator
	state       StateStore
	logger      *logrus.Logger
	concurrency int
	cache       SummaryCache
}

func NewLoader(api Collaborator, state StateStore, logger *logrus.Logger, concurrency int) *Loader {
	if concurrency <= 0 {
		concurrency = 6
	}
	return &Loader{
		api:         api,
		state:       state,
		logger:      logger,
		concurrency: concurrency,
	}
}

// UseSummaryCache включает кэширование сводки по ячейкам
func (l *Loader) UseSummaryCache(c SummaryCache) {
	l.cache = c
}

type fetchFunc func(ctx context.Context) (store.Snapshot, error)

// Bootstrap запрашивает все коллекции одновременно и применяет каждую по
// мере получения. Ошибка одной коллекции не мешает остальным: хранилище
// сохраняет прежнее значение. Сетка ячеек при ошибке перезапрашивается
// один раз после всей пачки. Активные назначения проигрываются последними.
func (l *Loader) Bootstrap(ctx context.Context) (BootstrapReport, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service": "loader",
		"method":  "Bootstrap",
	})
	log.Info("Loading initial snapshots")

	var (
		mu         sync.Mutex
		report     BootstrapReport
		dispatches []models.DispatchRecord
		dispatchOK bool
		hexFailed  bool
	)

	fetchers := map[store.Collection]fetchFunc{
		store.CollectionHexes:     l.fetchHexes,
		store.CollectionIncidents: l.fetchIncidents,
		store.CollectionVehicles:  l.fetchVehicles,
		store.CollectionAlerts:    l.fetchAlerts,
		store.CollectionSignals:   l.fetchSignals,
	}

	var g errgroup.Group
	g.SetLimit(l.concurrency)

	for name, fetch := range fetchers {
		g.Go(func() error {
			snap, err := fetch(ctx)
			if err != nil {
				log.WithError(err).WithField("collection", name).Warn("Snapshot request failed, keeping previous value")
				mu.Lock()
				if name == store.CollectionHexes {
					hexFailed = true
				} else {
					report.Failed = append(report.Failed, name)
				}
				mu.Unlock()
				return nil
			}
			l.state.ApplySnapshot(snap)
			return nil
		})
	}

	g.Go(func() error {
		items, err := l.api.FetchActiveDispatches(ctx)
		if err != nil {
			log.WithError(err).Warn("Active dispatch request failed")
			mu.Lock()
			report.Failed = append(report.Failed, store.CollectionDispatches)
			mu.Unlock()
			return nil
		}
		mu.Lock()
		dispatches = items
		dispatchOK = true
		mu.Unlock()
		return nil
	})

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	if hexFailed {
		log.Info("Retrying hex grid snapshot")
		if err := l.RefreshHexes(ctx); err != nil {
			log.WithError(err).Error("Hex grid snapshot failed twice")
			report.Failed = append(report.Failed, store.CollectionHexes)
		}
	}

	// Пустой ответ тоже снапшот: маршрутов, пропущенных за время обрыва, больше нет
	if dispatchOK {
		l.state.ApplySnapshot(store.DispatchSnapshot(dispatches))
		report.Replayed = len(dispatches)
	}

	log.WithFields(logrus.Fields{
		"failed":   report.Failed,
		"replayed": report.Replayed,
	}).Info("Initial snapshots loaded")
	return report, nil
}

// RefreshHexes перечитывает сетку ячеек целиком. Кэш сводки после этого
// считается устаревшим.
func (l *Loader) RefreshHexes(ctx context.Context) error {
	snap, err := l.fetchHexes(ctx)
	if err != nil {
		return err
	}
	l.state.ApplySnapshot(snap)
	if l.cache != nil {
		if err := l.cache.InvalidateSummary(ctx); err != nil {
			l.logger.WithError(err).WithField("service", "loader").Warn("Failed to invalidate hex summary cache")
		}
	}
	return nil
}

// HexSummary возвращает сводку инцидентов по ячейкам. Сводка не хранится в
// хранилище; при включенном кэше сначала читается кэш.
func (l *Loader) HexSummary(ctx context.Context) ([]models.HexCell, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service": "loader",
		"method":  "HexSummary",
	})
	if l.cache != nil {
		cells, err := l.cache.GetSummary(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to read hex summary cache")
		} else if cells != nil {
			return cells, nil
		}
	}

	cells, err := l.api.FetchHexSummary(ctx)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		if err := l.cache.SetSummary(ctx, cells); err != nil {
			log.WithError(err).Warn("Failed to cache hex summary")
		}
	}
	return cells, nil
}

func (l *Loader) fetchHexes(ctx context.Context) (store.Snapshot, error) {
	cells, err := l.api.FetchHexGrid(ctx)
	if err != nil {
		return nil, err
	}
	return store.HexSnapshot(cells), nil
}

func (l *Loader) fetchIncidents(ctx context.Context) (store.Snapshot, error) {
	items, err := l.api.FetchIncidents(ctx)
	if err != nil {
		return nil, err
	}
	return store.IncidentSnapshot(items), nil
}

func (l *Loader) fetchVehicles(ctx context.Context) (store.Snapshot, error) {
	items, err := l.api.FetchVehicles(ctx)
	if err != nil {
		return nil, err
	}
	return store.VehicleSnapshot(items), nil
}

func (l *Loader) fetchAlerts(ctx context.Context) (store.Snapshot, error) {
	items, err := l.api.FetchPatrolAlerts(ctx)
	if err != nil {
		return nil, err
	}
	return store.AlertSnapshot(items), nil
}

func (l *Loader) fetchSignals(ctx context.Context) (store.Snapshot, error) {
	items, err := l.api.FetchTrafficSignals(ctx)
	if err != nil {
		return nil, err
	}
	return store.SignalSnapshot(items), nil
}
