package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Bootstrapper перечитывает все снапшоты
type Bootstrapper interface {
	Bootstrap(ctx context.Context) (BootstrapReport, error)
}

// Resyncer перечитывает состояние после восстановления push-канала. Первое
// подключение ничего не запускает: начальную загрузку делает main.
type Resyncer struct {
	loader Bootstrapper
	logger *logrus.Logger

	lost atomic.Bool
	// runMu не дает двум перечитываниям применяться вперемешку
	runMu sync.Mutex
	wg    sync.WaitGroup
}

func NewResyncer(loader Bootstrapper, logger *logrus.Logger) *Resyncer {
	return &Resyncer{loader: loader, logger: logger}
}

// Disconnected отмечает обрыв канала
func (r *Resyncer) Disconnected() {
	r.lost.Store(true)
}

// Connected запускает перечитывание в фоне, если перед этим был обрыв.
// Возвращает true, если перечитывание запущено.
func (r *Resyncer) Connected(ctx context.Context) bool {
	if !r.lost.Swap(false) {
		return false
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.runMu.Lock()
		defer r.runMu.Unlock()

		log := r.logger.WithFields(logrus.Fields{
			"service": "resync",
			"method":  "Connected",
		})
		log.Info("Event stream restored, reloading snapshots")
		if _, err := r.loader.Bootstrap(ctx); err != nil {
			log.WithError(err).Warn("Resync after reconnect interrupted")
		}
	}()
	return true
}

// Wait ждет завершения запущенных перечитываний
func (r *Resyncer) Wait() {
	r.wg.Wait()
}
