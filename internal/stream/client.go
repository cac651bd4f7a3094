// Package stream держит постоянную подписку на push-канал коллаборатора.
//
// Клиент сам переподключается после обрыва; потеря связи видна только через
// Connected() и синтетические события connect/disconnect. Доставка не
// упорядочена относительно REST-ответов и может повторяться после
// переподключения, поэтому обработчики обязаны быть идемпотентными.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/events"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	writeWait  = 10 * time.Second
)

// Handler получает событие одного типа
type Handler func(events.Event)

type Client struct {
	url     string
	dialer  *websocket.Dialer
	logger  *logrus.Logger
	backoff Backoff

	mu       sync.RWMutex
	handlers map[events.Type]Handler

	connected atomic.Bool
}

// Option настраивает клиент
type Option func(*Client)

func WithBackoff(b Backoff) Option {
	return func(c *Client) { c.backoff = b }
}

func WithDialer(d *websocket.Dialer) Option {
	return func(c *Client) { c.dialer = d }
}

// New создает клиент; подключение начинается только в Run
func New(url string, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		url:      url,
		dialer:   websocket.DefaultDialer,
		logger:   logger,
		backoff:  DefaultBackoff(),
		handlers: make(map[events.Type]Handler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle регистрирует обработчик типа события. На каждый тип приходится
// ровно один обработчик, повторная регистрация заменяет прежний.
func (c *Client) Handle(t events.Type, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[t] = h
}

// Connected сообщает, открыт ли сейчас канал
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Run подключается и читает канал, переподключаясь после обрывов, пока ctx
// не отменен. Ошибки связи в вызывающий код не попадают.
func (c *Client) Run(ctx context.Context) {
	log := c.logger.WithFields(logrus.Fields{"component": "stream", "url": c.url})
	log.Info("Starting event stream client...")

	attempt := 0
	for {
		wasConnected, err := c.session(ctx)
		if ctx.Err() != nil {
			log.Info("Stopping event stream client.")
			return
		}
		if wasConnected {
			attempt = 0
		}
		attempt++
		delay := c.backoff.Next(attempt)
		log.WithError(err).Warnf("Event stream unavailable. Reconnecting in %v", delay)

		select {
		case <-ctx.Done():
			log.Info("Stopping event stream client.")
			return
		case <-time.After(delay):
		}
	}
}

// session выполняет одно подключение. Первое значение - удалось ли
// подключиться вообще.
func (c *Client) session(ctx context.Context) (bool, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return false, fmt.Errorf("dial event stream: %w", err)
	}
	defer conn.Close()

	c.connected.Store(true)
	c.dispatch(events.Connected{})

	var reason string
	defer func() {
		c.connected.Store(false)
		c.dispatch(events.Disconnected{Reason: reason})
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go c.keepAlive(ctx, conn, done)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			reason = err.Error()
			return true, fmt.Errorf("read event stream: %w", err)
		}
		c.deliver(msg)
	}
}

// keepAlive шлет ping и закрывает соединение при отмене ctx, чтобы
// разблокировать ReadMessage.
func (c *Client) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			_ = conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				_ = conn.Close()
				return
			}
		}
	}
}

func (c *Client) deliver(msg []byte) {
	var env events.Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		c.logger.WithField("component", "stream").WithError(err).Warn("Dropping unreadable frame")
		return
	}
	ev, err := events.Decode(env.Event, env.Data)
	if err != nil {
		c.logger.WithField("component", "stream").WithError(err).Warn("Dropping event")
		return
	}
	// connect/disconnect генерируются локально, пришедшие по каналу игнорируем
	if ev.Type() == events.TypeConnect || ev.Type() == events.TypeDisconnect {
		return
	}
	c.dispatch(ev)
}

func (c *Client) dispatch(ev events.Event) {
	c.mu.RLock()
	h := c.handlers[ev.Type()]
	c.mu.RUnlock()
	if h == nil {
		return
	}
	h(ev)
}
