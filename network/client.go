// Package network feeds lifecycle events into the host. Every feed is drained
// from the game goroutine; network reads happen on their own goroutines and
// only ever enqueue.
package network

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	cfg "github.com/automoto/pongview/config"
	"github.com/automoto/pongview/logging"
	"github.com/automoto/pongview/shared/messages"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Feed is a source of lifecycle events.
type Feed interface {
	// Drain returns every event that is due, without blocking.
	Drain() []messages.Event
}

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateClosed
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("ClientState(%d)", int(s))
}

// Client reads lifecycle envelopes from a websocket channel.
// All shared fields are protected by mu.
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error

	url            string
	session        string
	reconnectDelay time.Duration
	dialTimeout    time.Duration
	readLimit      int64
	log            *zap.SugaredLogger

	events chan messages.Event
	cancel context.CancelFunc
	done   chan struct{}
}

var _ Feed = (*Client)(nil)

type ClientOption func(*Client)

func WithClientLogger(log *zap.SugaredLogger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithReconnectDelay sets the pause between a lost connection and the next
// dial.
func WithReconnectDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.reconnectDelay = d }
}

// NewClient creates a client for ws://address+path. Nothing is dialled until
// Start.
func NewClient(address, path string, opts ...ClientOption) *Client {
	c := &Client{
		state:          StateDisconnected,
		session:        uuid.NewString(),
		reconnectDelay: cfg.Network.ReconnectDelay,
		dialTimeout:    cfg.Network.DialTimeout,
		readLimit:      cfg.Network.ReadLimit,
		log:            logging.Nop(),
		events:         make(chan messages.Event, cfg.Network.EventBuffer),
	}
	for _, opt := range opts {
		opt(c)
	}

	u := url.URL{Scheme: "ws", Host: address, Path: path}
	q := u.Query()
	q.Set("session", c.session)
	u.RawQuery = q.Encode()
	c.url = u.String()
	return c
}

// Start connects in a background goroutine and keeps reconnecting until
// Close or ctx is done.
func (c *Client) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go func() {
		defer close(done)
		c.run(ctx)
	}()
}

// Close stops the client and waits for its reader to exit.
func (c *Client) Close() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	c.mu.Lock()
	c.state = StateClosed
	c.mu.Unlock()
}

func (c *Client) URL() string {
	return c.url
}

func (c *Client) Session() string {
	return c.session
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Drain returns all pending events, non-blocking.
func (c *Client) Drain() []messages.Event {
	return drainChan(c.events)
}

func (c *Client) run(ctx context.Context) {
	for {
		mounted := make(map[string]struct{})
		err := c.read(ctx, mounted)

		// Nothing mounted over a lost connection stays mounted.
		for role := range mounted {
			c.enqueue(ctx, messages.Event{Kind: messages.EventDestroy, Role: role})
		}

		if ctx.Err() != nil {
			return
		}
		c.setState(StateDisconnected, err)
		c.log.Warnw("channel lost", "url", c.url, "err", err, "retry", c.reconnectDelay)

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.reconnectDelay):
		}
	}
}

// read runs one connection until it fails. Every role mounted on it is
// recorded in mounted.
func (c *Client) read(ctx context.Context, mounted map[string]struct{}) error {
	c.setState(StateConnecting, nil)

	dialCtx, cancel := context.WithTimeout(ctx, c.dialTimeout)
	conn, _, err := websocket.Dial(dialCtx, c.url, nil)
	cancel()
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.CloseNow()

	conn.SetReadLimit(c.readLimit)
	c.setState(StateConnected, nil)
	c.log.Infow("channel connected", "url", c.url)

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return errors.New("closed by peer")
			}
			return fmt.Errorf("read: %w", err)
		}
		if typ != websocket.MessageText {
			c.log.Debugw("skipping binary message", "size", len(data))
			continue
		}

		ev, err := messages.DecodeEvent(data)
		if err != nil {
			c.log.Warnw("skipping malformed envelope", "err", err)
			continue
		}

		switch ev.Kind {
		case messages.EventMount:
			mounted[ev.Role] = struct{}{}
		case messages.EventDestroy:
			delete(mounted, ev.Role)
		}
		if !c.enqueue(ctx, ev) {
			return ctx.Err()
		}
	}
}

// enqueue blocks while the game goroutine is behind. Events are never dropped.
func (c *Client) enqueue(ctx context.Context, ev messages.Event) bool {
	select {
	case c.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Client) setState(s ClientState, err error) {
	c.mu.Lock()
	c.state = s
	if err != nil {
		c.lastError = err
	}
	c.mu.Unlock()
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
