// Package audio передает реплики секвенсора внешнему проигрывателю.
package audio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/sequencer"
)

const (
	cueQueueKey      = "audio_cues"
	cueDonePrefix    = "audio_cue_done:"
	defaultWaitLimit = 30 * time.Second
)

var ErrPlaybackTimeout = errors.New("audio: playback was not acknowledged in time")

// queueClient - часть *redis.Client, нужная проигрывателю
type queueClient interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	BLPop(ctx context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd
}

// cueMessage - сообщение для внешнего аудио-воркера
type cueMessage struct {
	sequencer.Cue
	DoneKey  string    `json:"done_key"`
	QueuedAt time.Time `json:"queued_at"`
}

// RedisPlayer кладет реплику в очередь Redis и ждет подтверждения
// окончания воспроизведения в ключе audio_cue_done:<id>.
type RedisPlayer struct {
	client queueClient
	logger *logrus.Logger
	now    func() time.Time
}

func NewRedisPlayer(client *redis.Client, logger *logrus.Logger) *RedisPlayer {
	return newRedisPlayer(client, logger)
}

func newRedisPlayer(client queueClient, logger *logrus.Logger) *RedisPlayer {
	return &RedisPlayer{client: client, logger: logger, now: time.Now}
}

// Play блокируется до подтверждения от воркера или до отмены ctx
func (p *RedisPlayer) Play(ctx context.Context, cue sequencer.Cue) error {
	msg := cueMessage{Cue: cue, DoneKey: cueDonePrefix + cue.ID, QueuedAt: p.now().UTC()}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal audio cue: %w", err)
	}

	if err := p.client.LPush(ctx, cueQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish audio cue to Redis: %w", err)
	}

	log := p.logger.WithFields(logrus.Fields{
		"component": "audio",
		"cue_id":    cue.ID,
		"role":      cue.Role,
	})
	log.Debug("Audio cue queued, waiting for playback")

	res, err := p.client.BLPop(ctx, p.waitLimit(ctx), msg.DoneKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return ErrPlaybackTimeout
	case err != nil:
		return fmt.Errorf("failed to wait for audio cue: %w", err)
	}

	// res[0] - ключ, res[1] - значение
	if len(res) == 2 && res[1] != "" && res[1] != "ok" {
		log.WithField("result", res[1]).Warn("Audio worker reported playback problem")
	}
	return nil
}

// waitLimit - остаток дедлайна ctx, но не меньше секунды: BLPOP
// принимает таймаут в целых секундах.
func (p *RedisPlayer) waitLimit(ctx context.Context) time.Duration {
	deadline, ok := ctx.Deadline()
	if !ok {
		return defaultWaitLimit
	}
	left := deadline.Sub(p.now())
	if left < time.Second {
		return time.Second
	}
	return left
}

// LogPlayer только пишет реплику в лог. Используется без Redis.
type LogPlayer struct {
	logger *logrus.Logger
}

func NewLogPlayer(logger *logrus.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (p *LogPlayer) Play(_ context.Context, cue sequencer.Cue) error {
	p.logger.WithFields(logrus.Fields{
		"component": "audio",
		"cue_id":    cue.ID,
		"role":      cue.Role,
		"source":    cue.Source,
		"file":      cue.AudioFilename,
	}).Info(cue.Text)
	return nil
}
