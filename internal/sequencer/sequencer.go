// Package sequencer проигрывает радио-реплики строго по очереди.
//
// Очередь FIFO общая для реплик из push-канала и локально запущенных
// последовательностей. Единственный потребитель (Run) проигрывает реплику до
// конца или до таймаута и только потом берет следующую. Пока
// воспроизведение выключено, реплики копятся и после включения
// проигрываются в исходном порядке.
package sequencer

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/events"
)

type Role string

const (
	RoleController Role = "controller"
	RoleDispatch   Role = "dispatch"
)

// Источники реплик
const (
	SourceLocal  = "local"
	SourceStream = "stream"
)

type Cue struct {
	ID            string `json:"id"`
	Role          Role   `json:"role"`
	Text          string `json:"text,omitempty"`
	AudioFilename string `json:"audio_filename,omitempty"`
	Source        string `json:"source"`
}

// Player проигрывает реплику. Play должен вернуться после окончания
// воспроизведения; зависший Play обрывается таймаутом секвенсора.
type Player interface {
	Play(ctx context.Context, cue Cue) error
}

type Config struct {
	Enabled        bool
	PlayTimeout    time.Duration
	ControllerGap  time.Duration
	SuppressWindow time.Duration
}

func DefaultConfig() Config {
	return Config{
		PlayTimeout:    30 * time.Second,
		ControllerGap:  2 * time.Second,
		SuppressWindow: 5 * time.Second,
	}
}

type Sequencer struct {
	player Player
	logger *logrus.Logger
	cfg    Config
	now    func() time.Time

	mu            sync.Mutex
	queue         []Cue
	enabled       bool
	suppressUntil time.Time

	wake chan struct{}
}

func New(player Player, logger *logrus.Logger, cfg Config) *Sequencer {
	return &Sequencer{
		player:  player,
		logger:  logger,
		cfg:     cfg,
		now:     time.Now,
		enabled: cfg.Enabled,
		wake:    make(chan struct{}, 1),
	}
}

// NormalizeRole приводит роль из push-канала к известной. "control" и
// "controller" - одна роль.
func NormalizeRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "control", "controller":
		return RoleController, true
	case "dispatch":
		return RoleDispatch, true
	}
	return "", false
}

// Enqueue добавляет реплики в конец очереди одним блоком
func (s *Sequencer) Enqueue(cues ...Cue) {
	if len(cues) == 0 {
		return
	}
	s.mu.Lock()
	for _, c := range cues {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		s.queue = append(s.queue, c)
	}
	s.mu.Unlock()
	s.notify()
}

// EnqueueRadio ставит в очередь реплику из push-канала. В окне после
// локального запуска реплики канала считаются эхом и отбрасываются.
func (s *Sequencer) EnqueueRadio(rc events.RadioComm) bool {
	s.mu.Lock()
	suppressed := s.now().Before(s.suppressUntil)
	s.mu.Unlock()
	if suppressed {
		s.logger.WithFields(logrus.Fields{
			"component": "sequencer",
			"role":      rc.Role,
		}).Debug("Suppressing echoed radio cue")
		return false
	}
	s.Enqueue(Cue{
		Role:          Role(rc.Role),
		Text:          rc.Text,
		AudioFilename: rc.AudioFilename,
		Source:        SourceStream,
	})
	return true
}

// TriggerLocal ставит фиксированную пару controller, dispatch для
// локально созданного инцидента и открывает окно подавления эха. При
// выключенном воспроизведении ничего не делает.
func (s *Sequencer) TriggerLocal() bool {
	s.mu.Lock()
	if !s.enabled {
		s.mu.Unlock()
		return false
	}
	s.suppressUntil = s.now().Add(s.cfg.SuppressWindow)
	s.queue = append(s.queue,
		Cue{ID: uuid.NewString(), Role: RoleController, Source: SourceLocal},
		Cue{ID: uuid.NewString(), Role: RoleDispatch, Source: SourceLocal},
	)
	s.mu.Unlock()
	s.notify()
	return true
}

// Enable включает воспроизведение и запускает разбор накопленной очереди
func (s *Sequencer) Enable() {
	s.mu.Lock()
	s.enabled = true
	s.mu.Unlock()
	s.notify()
}

// Disable выключает воспроизведение; текущая реплика доигрывается
func (s *Sequencer) Disable() {
	s.mu.Lock()
	s.enabled = false
	s.mu.Unlock()
}

func (s *Sequencer) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Pending возвращает число реплик в очереди
func (s *Sequencer) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

func (s *Sequencer) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run - единственный потребитель очереди. Блокируется до отмены ctx.
func (s *Sequencer) Run(ctx context.Context) {
	s.logger.WithField("component", "sequencer").Info("Starting notification sequencer...")
	for {
		s.drain(ctx)
		select {
		case <-ctx.Done():
			s.logger.WithField("component", "sequencer").Info("Stopping notification sequencer.")
			return
		case <-s.wake:
		}
	}
}

func (s *Sequencer) drain(ctx context.Context) {
	for ctx.Err() == nil {
		cue, ok := s.next()
		if !ok {
			return
		}
		s.playCue(ctx, cue)
	}
}

func (s *Sequencer) next() (Cue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || len(s.queue) == 0 {
		return Cue{}, false
	}
	cue := s.queue[0]
	s.queue = s.queue[1:]
	return cue, true
}

func (s *Sequencer) playCue(ctx context.Context, cue Cue) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "sequencer",
		"cue_id":    cue.ID,
		"role":      cue.Role,
		"source":    cue.Source,
	})

	role, ok := NormalizeRole(string(cue.Role))
	if !ok {
		log.Debug("Skipping cue with unknown role")
		return
	}
	cue.Role = role

	if err := s.playWithTimeout(ctx, cue); err != nil {
		log.WithError(err).Warn("Cue playback did not complete")
	}
	if role == RoleController && s.cfg.ControllerGap > 0 {
		wait(ctx, s.cfg.ControllerGap)
	}
}

// playWithTimeout не ждет Player дольше PlayTimeout, даже если он
// игнорирует ctx.
func (s *Sequencer) playWithTimeout(ctx context.Context, cue Cue) error {
	playCtx := ctx
	cancel := func() {}
	if s.cfg.PlayTimeout > 0 {
		playCtx, cancel = context.WithTimeout(ctx, s.cfg.PlayTimeout)
	}
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.player.Play(playCtx, cue) }()

	select {
	case err := <-done:
		return err
	case <-playCtx.Done():
		return playCtx.Err()
	}
}

func wait(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
