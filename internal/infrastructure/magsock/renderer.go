// Package magsock implements the Renderer contract against the compositor
// magnifier engine's unix socket. Commands and acknowledgements are
// newline-delimited JSON.
package magsock

import (
	"bufio"
	"encoding/json"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/loupe/internal/application/port"
)

const dialTimeout = time.Second

// command is one engine request.
type command struct {
	Op   string  `json:"op"` // "transform" or "reset"
	Zoom float64 `json:"zoom,omitempty"`
	Left int     `json:"left"`
	Top  int     `json:"top"`
}

// reply is the engine acknowledgement.
type reply struct {
	OK bool `json:"ok"`
}

// Renderer pushes fullscreen transforms to the magnifier engine. When the
// engine cannot be reached at startup every call becomes a logged no-op
// returning false; a failing engine never crashes the tracking loop.
type Renderer struct {
	socketPath string
	log        zerolog.Logger

	mu        sync.Mutex
	conn      net.Conn
	available bool
}

var _ port.Renderer = (*Renderer)(nil)

// New probes the engine socket once. The probe result decides whether the
// renderer is live or a permanent no-op for this process.
func New(socketPath string, log zerolog.Logger) *Renderer {
	r := &Renderer{
		socketPath: socketPath,
		log:        log.With().Str("component", "magsock").Logger(),
	}

	conn, err := net.DialTimeout("unix", socketPath, dialTimeout)
	if err != nil {
		r.log.Warn().Err(err).Str("socket", socketPath).Msg("magnifier engine unavailable")
		return r
	}
	r.conn = conn
	r.available = true
	r.log.Info().Str("socket", socketPath).Msg("magnifier engine connected")
	return r
}

// Available reports whether the startup probe found the engine.
func (r *Renderer) Available() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

// ApplyTransform sets the fullscreen transform.
func (r *Renderer) ApplyTransform(zoom float64, left, top int) bool {
	return r.send(command{Op: "transform", Zoom: zoom, Left: left, Top: top})
}

// Reset restores the unmagnified screen.
func (r *Renderer) Reset() bool {
	return r.send(command{Op: "reset"})
}

// Close drops the engine connection.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	return err
}

func (r *Renderer) send(cmd command) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.available {
		return false
	}

	// One redial attempt covers an engine that restarted since the last
	// command.
	for attempt := 0; attempt < 2; attempt++ {
		if r.conn == nil {
			conn, err := net.DialTimeout("unix", r.socketPath, dialTimeout)
			if err != nil {
				r.log.Warn().Err(err).Msg("failed to reconnect to magnifier engine")
				return false
			}
			r.conn = conn
		}

		ack, err := r.roundTrip(cmd)
		if err != nil {
			_ = r.conn.Close()
			r.conn = nil
			continue
		}
		if !ack.OK {
			r.log.Warn().Str("op", cmd.Op).Msg("magnifier engine rejected command")
		}
		return ack.OK
	}

	r.log.Warn().Str("op", cmd.Op).Msg("magnifier engine did not acknowledge command")
	return false
}

func (r *Renderer) roundTrip(cmd command) (reply, error) {
	_ = r.conn.SetDeadline(time.Now().Add(dialTimeout))

	data, err := json.Marshal(cmd)
	if err != nil {
		return reply{}, err
	}
	if _, err := r.conn.Write(append(data, '\n')); err != nil {
		return reply{}, err
	}

	line, err := bufio.NewReader(r.conn).ReadBytes('\n')
	if err != nil {
		return reply{}, err
	}
	var ack reply
	if err := json.Unmarshal(line, &ack); err != nil {
		return reply{}, err
	}
	return ack, nil
}
