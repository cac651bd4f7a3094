package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/store"
)

// SignalPoller периодически перечитывает фазы светофоров
type SignalPoller struct {
	api      Collaborator
	state    StateStore
	logger   *logrus.Logger
	interval time.Duration
}

func NewSignalPoller(api Collaborator, state StateStore, logger *logrus.Logger, interval time.Duration) *SignalPoller {
	if interval <= 0 {
		interval = time.Second
	}
	return &SignalPoller{api: api, state: state, logger: logger, interval: interval}
}

// Run блокируется до отмены ctx. Ошибки опроса не затирают прежние фазы.
func (p *SignalPoller) Run(ctx context.Context) {
	log := p.logger.WithField("service", "signals")
	log.Info("Starting traffic signal poller...")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping traffic signal poller.")
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll выполняет один опрос
func (p *SignalPoller) Poll(ctx context.Context) bool {
	signals, err := p.api.FetchTrafficSignals(ctx)
	if err != nil {
		p.logger.WithError(err).WithField("service", "signals").Debug("Traffic signal poll failed")
		return false
	}
	p.state.ApplySnapshot(store.SignalSnapshot(signals))
	return true
}
