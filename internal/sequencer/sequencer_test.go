package sequencer

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/dispatch_console/internal/events"
)

type recordingPlayer struct {
	delay time.Duration
	stall bool

	mu     sync.Mutex
	played []string

	active    int32
	maxActive int32
}

func (p *recordingPlayer) Play(ctx context.Context, cue Cue) error {
	n := atomic.AddInt32(&p.active, 1)
	defer atomic.AddInt32(&p.active, -1)
	for {
		old := atomic.LoadInt32(&p.maxActive)
		if n <= old || atomic.CompareAndSwapInt32(&p.maxActive, old, n) {
			break
		}
	}
	if p.stall {
		select {} // зависшее воспроизведение, ctx игнорируется
	}
	time.Sleep(p.delay)
	p.mu.Lock()
	p.played = append(p.played, string(cue.Role)+":"+cue.Text)
	p.mu.Unlock()
	return nil
}

func (p *recordingPlayer) snapshot() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.played...)
}

func newTestSequencer(t *testing.T, player Player, cfg Config) (*Sequencer, context.CancelFunc) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	s := New(player, logger, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)
	t.Cleanup(cancel)
	return s, cancel
}

func waitPlayed(t *testing.T, p *recordingPlayer, n int) []string {
	t.Helper()
	require.Eventually(t, func() bool { return len(p.snapshot()) >= n }, 3*time.Second, 5*time.Millisecond)
	return p.snapshot()
}

func TestSequencer_StrictOrderWithoutInterleaving(t *testing.T) {
	player := &recordingPlayer{delay: 20 * time.Millisecond}
	s, _ := newTestSequencer(t, player, Config{Enabled: true})

	s.Enqueue(Cue{Role: RoleController, Text: "X"})
	s.Enqueue(Cue{Role: RoleDispatch, Text: "X"})
	s.Enqueue(Cue{Role: RoleController, Text: "Y"})
	s.Enqueue(Cue{Role: RoleDispatch, Text: "Y"})

	got := waitPlayed(t, player, 4)
	assert.Equal(t, []string{"controller:X", "dispatch:X", "controller:Y", "dispatch:Y"}, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&player.maxActive), "cues must never play concurrently")
}

func TestSequencer_EnqueueWhileDraining(t *testing.T) {
	player := &recordingPlayer{delay: 30 * time.Millisecond}
	s, _ := newTestSequencer(t, player, Config{Enabled: true})

	s.Enqueue(Cue{Role: RoleDispatch, Text: "1"})
	time.Sleep(10 * time.Millisecond)
	s.Enqueue(Cue{Role: RoleDispatch, Text: "2"}, Cue{Role: RoleDispatch, Text: "3"})

	got := waitPlayed(t, player, 3)
	assert.Equal(t, []string{"dispatch:1", "dispatch:2", "dispatch:3"}, got)
}

func TestSequencer_DisabledAccumulatesBacklog(t *testing.T) {
	player := &recordingPlayer{}
	s, _ := newTestSequencer(t, player, Config{Enabled: false})

	s.EnqueueRadio(events.RadioComm{Role: "control", Text: "a"})
	s.EnqueueRadio(events.RadioComm{Role: "dispatch", Text: "b"})
	time.Sleep(30 * time.Millisecond)

	assert.Empty(t, player.snapshot())
	assert.Equal(t, 2, s.Pending())

	s.Enable()

	got := waitPlayed(t, player, 2)
	assert.Equal(t, []string{"controller:a", "dispatch:b"}, got)
	assert.Equal(t, 0, s.Pending())
}

func TestSequencer_LocalTriggerSuppressesEcho(t *testing.T) {
	player := &recordingPlayer{}
	s, _ := newTestSequencer(t, player, Config{Enabled: true, SuppressWindow: 5 * time.Second})
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.mu.Lock()
	s.now = func() time.Time { return now }
	s.mu.Unlock()

	require.True(t, s.TriggerLocal())
	assert.False(t, s.EnqueueRadio(events.RadioComm{Role: "control", Text: "echo"}))

	got := waitPlayed(t, player, 2)
	assert.Equal(t, []string{"controller:", "dispatch:"}, got)

	s.mu.Lock()
	s.now = func() time.Time { return now.Add(6 * time.Second) }
	s.mu.Unlock()
	assert.True(t, s.EnqueueRadio(events.RadioComm{Role: "dispatch", Text: "later"}))
	got = waitPlayed(t, player, 3)
	assert.Equal(t, "dispatch:later", got[2])
}

func TestSequencer_LocalTriggerWhenDisabledIsNoop(t *testing.T) {
	player := &recordingPlayer{}
	s, _ := newTestSequencer(t, player, Config{Enabled: false, SuppressWindow: time.Minute})

	assert.False(t, s.TriggerLocal())
	assert.Equal(t, 0, s.Pending())
	assert.True(t, s.EnqueueRadio(events.RadioComm{Role: "dispatch"}), "no suppression window without a local trigger")
}

func TestSequencer_StalledPlaybackTimesOut(t *testing.T) {
	stalled := &recordingPlayer{stall: true}
	s, _ := newTestSequencer(t, stalled, Config{Enabled: true, PlayTimeout: 20 * time.Millisecond})

	s.Enqueue(Cue{Role: RoleDispatch}, Cue{Role: RoleDispatch})

	require.Eventually(t, func() bool { return s.Pending() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestSequencer_SkipsUnknownRoles(t *testing.T) {
	player := &recordingPlayer{}
	s, _ := newTestSequencer(t, player, Config{Enabled: true})

	s.Enqueue(Cue{Role: "narrator", Text: "skip"}, Cue{Role: RoleDispatch, Text: "keep"})

	got := waitPlayed(t, player, 1)
	assert.Equal(t, []string{"dispatch:keep"}, got)
}

func TestNormalizeRole(t *testing.T) {
	r, ok := NormalizeRole(" Control ")
	assert.True(t, ok)
	assert.Equal(t, RoleController, r)

	r, ok = NormalizeRole("controller")
	assert.True(t, ok)
	assert.Equal(t, RoleController, r)

	_, ok = NormalizeRole("pilot")
	assert.False(t, ok)
}
