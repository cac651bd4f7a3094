package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/dispatch_console/internal/sequencer"
)

type fakeQueue struct {
	pushed   []string
	pushErr  error
	popKeys  []string
	popWait  time.Duration
	popValue []string
	popErr   error
}

func (f *fakeQueue) LPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	if f.pushErr != nil {
		return redis.NewIntResult(0, f.pushErr)
	}
	for _, v := range values {
		f.pushed = append(f.pushed, key+" "+string(v.([]byte)))
	}
	return redis.NewIntResult(int64(len(f.pushed)), nil)
}

func (f *fakeQueue) BLPop(_ context.Context, timeout time.Duration, keys ...string) *redis.StringSliceCmd {
	f.popKeys = append(f.popKeys, keys...)
	f.popWait = timeout
	return redis.NewStringSliceResult(f.popValue, f.popErr)
}

func newTestPlayer(q *fakeQueue) *RedisPlayer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return newRedisPlayer(q, logger)
}

func TestRedisPlayer_Play(t *testing.T) {
	// Подготовка
	q := &fakeQueue{popValue: []string{"audio_cue_done:c1", "ok"}}
	p := newTestPlayer(q)
	cue := sequencer.Cue{ID: "c1", Role: sequencer.RoleDispatch, Text: "Unit 4 en route"}

	// Действие
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := p.Play(ctx, cue)

	// Проверки
	require.NoError(t, err)
	require.Len(t, q.pushed, 1)
	assert.Equal(t, []string{"audio_cue_done:c1"}, q.popKeys)
	assert.InDelta(t, float64(10*time.Second), float64(q.popWait), float64(time.Second))

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(q.pushed[0][len(cueQueueKey)+1:]), &msg))
	assert.Equal(t, "c1", msg["id"])
	assert.Equal(t, "dispatch", msg["role"])
	assert.Equal(t, "audio_cue_done:c1", msg["done_key"])
}

func TestRedisPlayer_PlayTimeout(t *testing.T) {
	q := &fakeQueue{popErr: redis.Nil}
	p := newTestPlayer(q)

	err := p.Play(context.Background(), sequencer.Cue{ID: "c2", Role: sequencer.RoleController})

	assert.ErrorIs(t, err, ErrPlaybackTimeout)
	assert.Equal(t, defaultWaitLimit, q.popWait)
}

func TestRedisPlayer_PushError(t *testing.T) {
	q := &fakeQueue{pushErr: errors.New("connection refused")}
	p := newTestPlayer(q)

	err := p.Play(context.Background(), sequencer.Cue{ID: "c3", Role: sequencer.RoleDispatch})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Empty(t, q.popKeys, "must not wait when the cue was not queued")
}

func TestRedisPlayer_ShortDeadline(t *testing.T) {
	q := &fakeQueue{popValue: []string{"k", "ok"}}
	p := newTestPlayer(q)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, p.Play(ctx, sequencer.Cue{ID: "c4", Role: sequencer.RoleDispatch}))
	assert.Equal(t, time.Second, q.popWait)
}

func TestLogPlayer(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	err := NewLogPlayer(logger).Play(context.Background(), sequencer.Cue{ID: "c5", Role: sequencer.RoleController, Text: "Control to all units"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Control to all units")
}
