// Package conn owns the transport lifecycle of the lobby session: dialing,
// retry on drop, and sending. It knows nothing about the protocol beyond
// "text frames in, text frames out".
package conn

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// State is the connection lifecycle state. Failed is always transient: a
// transport error marks Failed, forces the socket closed, and the close
// collapses into Disconnected plus a scheduled retry.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateFailed       State = "failed"
)

// Config holds the transport settings for a Manager.
type Config struct {
	// URL is the full lobby endpoint, {ws|wss}://<host>/ws/<callerId>.
	URL string
	// RetryDelay is the fixed wait before the single reconnect attempt
	// scheduled after a drop.
	RetryDelay time.Duration
	// DialTimeout bounds the websocket handshake.
	DialTimeout time.Duration
	// Clock drives the retry timer. Tests inject a fake clock.
	Clock clockwork.Clock
}

// DefaultConfig returns the production transport settings.
func DefaultConfig(url string) Config {
	return Config{
		URL:         url,
		RetryDelay:  5 * time.Second,
		DialTimeout: 5 * time.Second,
		Clock:       clockwork.NewRealClock(),
	}
}

type eventKind int

const (
	evConnect eventKind = iota
	evOpened
	evDialFailed
	evErrored
	evClosed
	evFrame
)

// transportEvent is one discrete occurrence on the transport. Everything the
// run loop reacts to arrives through the single events channel, so state
// transitions and frame handling never interleave.
type transportEvent struct {
	kind  eventKind
	conn  *websocket.Conn
	frame []byte
	err   error
}

// Manager owns the websocket session. Inbound frames are handed to onFrame
// verbatim, in arrival order; every state transition is reported through
// onState. Both callbacks run on the manager's run loop.
type Manager struct {
	cfg     Config
	clock   clockwork.Clock
	dialer  *websocket.Dialer
	events  chan transportEvent
	onFrame func(frame []byte)
	onState func(state State)

	mu    sync.Mutex
	wmu   sync.Mutex
	state State
	conn  *websocket.Conn
}

// NewManager creates a manager in the Disconnected state. Nothing happens
// until Run is started and Connect is called.
func NewManager(cfg Config, onFrame func([]byte), onState func(State)) *Manager {
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Manager{
		cfg:   cfg,
		clock: clock,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.DialTimeout,
		},
		events:  make(chan transportEvent, 64),
		onFrame: onFrame,
		onState: onState,
		state:   StateDisconnected,
	}
}

// Connect asks the manager to establish a session. It is a no-op when an
// attempt is already in flight or the session is live. An explicit connect
// also cancels any pending retry so only one attempt can ever be scheduled.
func (m *Manager) Connect() {
	m.events <- transportEvent{kind: evConnect}
}

// Send marshals a frame and transmits it if the session is Connected.
// Anything sent while disconnected is silently dropped: commands are not
// queued.
func (m *Manager) Send(v interface{}) {
	m.mu.Lock()
	c := m.conn
	connected := m.state == StateConnected
	m.mu.Unlock()

	if !connected || c == nil {
		log.Debug().Msg("send dropped: not connected")
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Msg("send dropped: marshal failed")
		return
	}

	m.wmu.Lock()
	err = c.WriteMessage(websocket.TextMessage, data)
	m.wmu.Unlock()
	if err != nil {
		log.Warn().Err(err).Msg("write failed")
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Run processes transport events until the context is cancelled. It is the
// single consumer: frame delivery, state transitions and retry scheduling
// all execute here, so downstream handlers never see interleaving.
func (m *Manager) Run(ctx context.Context) {
	log.Info().Str("url", m.cfg.URL).Msg("connection manager started")

	var retry clockwork.Timer
	var retryCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if retry != nil {
				stopAndDrainTimer(retry)
			}
			m.closeConn()
			log.Info().Msg("connection manager stopped")
			return

		case <-retryCh:
			retry, retryCh = nil, nil
			m.dial()

		case ev := <-m.events:
			switch ev.kind {
			case evConnect:
				if retry != nil {
					stopAndDrainTimer(retry)
					retry, retryCh = nil, nil
				}
				m.dial()

			case evOpened:
				m.mu.Lock()
				m.conn = ev.conn
				m.mu.Unlock()
				m.setState(StateConnected)

			case evDialFailed:
				log.Warn().Err(ev.err).Msg("dial failed")
				m.setState(StateDisconnected)
				retry, retryCh = m.scheduleRetry(retry)

			case evErrored:
				log.Warn().Err(ev.err).Msg("transport error")
				m.setState(StateFailed)
				m.closeConn()

			case evClosed:
				m.mu.Lock()
				m.conn = nil
				m.mu.Unlock()
				m.setState(StateDisconnected)
				retry, retryCh = m.scheduleRetry(retry)

			case evFrame:
				if m.onFrame != nil {
					m.onFrame(ev.frame)
				}
			}
		}
	}
}

// scheduleRetry arms the reconnect timer, replacing any pending one so a
// second drop before the retry fires never produces two concurrent attempts.
func (m *Manager) scheduleRetry(prev clockwork.Timer) (clockwork.Timer, <-chan time.Time) {
	if prev != nil {
		stopAndDrainTimer(prev)
		log.Debug().Msg("replaced pending reconnect timer")
	}
	t := m.clock.NewTimer(m.cfg.RetryDelay)
	log.Info().Dur("delay", m.cfg.RetryDelay).Msg("reconnect scheduled")
	return t, t.Chan()
}

// dial starts one connection attempt. Only called from the run loop.
func (m *Manager) dial() {
	m.mu.Lock()
	if m.state == StateConnecting || m.state == StateConnected {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	m.setState(StateConnecting)

	attemptID := uuid.New().String()
	go func() {
		log.Debug().Str("attempt_id", attemptID).Str("url", m.cfg.URL).Msg("dialing lobby server")

		c, resp, err := m.dialer.Dial(m.cfg.URL, nil)
		if err != nil {
			if resp != nil && resp.Body != nil {
				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()
			}
			m.events <- transportEvent{kind: evDialFailed, err: err}
			return
		}

		m.events <- transportEvent{kind: evOpened, conn: c}
		m.read(c, attemptID)
	}()
}

// read pumps inbound frames onto the events channel until the socket dies.
// A clean close reports only evClosed; anything else reports evErrored first
// so the Failed excursion is observable before the retry is scheduled.
func (m *Manager) read(c *websocket.Conn, attemptID string) {
	for {
		_, data, err := c.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Str("attempt_id", attemptID).Msg("server closed connection")
			} else {
				m.events <- transportEvent{kind: evErrored, err: err}
			}
			m.events <- transportEvent{kind: evClosed}
			return
		}
		m.events <- transportEvent{kind: evFrame, frame: data}
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	if m.state == s {
		m.mu.Unlock()
		return
	}
	m.state = s
	m.mu.Unlock()

	log.Info().Str("state", string(s)).Msg("connection state changed")
	if m.onState != nil {
		m.onState(s)
	}
}

func (m *Manager) closeConn() {
	m.mu.Lock()
	c := m.conn
	m.mu.Unlock()
	if c != nil {
		_ = c.Close()
	}
}

// stopAndDrainTimer safely stops a timer and drains its channel, following
// the pattern recommended in the time.Timer.Stop documentation.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
