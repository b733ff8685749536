// Package atbridge implements the accessibility position contract against a
// screen-reader bridge socket. The bridge pushes newline-JSON caret events;
// the provider caches the most recent point and serves it to the tracking
// loop without blocking.
package atbridge

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/loupe/internal/application/port"
)

const (
	dialTimeout      = time.Second
	reconnectBackoff = 2 * time.Second
)

// event is one caret update from the bridge. The screen reader sends either
// an exact caret point or the bounding box of the focused object; for a box
// the center is taken, mirroring review-position fallback behavior.
type event struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (e event) point() port.Point {
	if e.Width > 0 || e.Height > 0 {
		return port.Point{X: e.Left + e.Width/2, Y: e.Top + e.Height/2}
	}
	return port.Point{X: e.X, Y: e.Y}
}

// Provider subscribes to the bridge socket and caches the latest caret
// point. While the bridge is down or silent, CaretPosition reports (0,0) —
// a legitimate position, not an error.
type Provider struct {
	socketPath string
	log        zerolog.Logger

	mu   sync.RWMutex
	last port.Point

	done chan struct{}
}

var _ port.AccessibilityReader = (*Provider)(nil)

// New creates a provider for the given bridge socket.
func New(socketPath string, log zerolog.Logger) *Provider {
	return &Provider{
		socketPath: socketPath,
		log:        log.With().Str("component", "atbridge").Logger(),
		done:       make(chan struct{}),
	}
}

// Start launches the subscription loop. It reconnects with backoff until ctx
// is cancelled.
func (p *Provider) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for {
			if ctx.Err() != nil {
				return
			}
			if err := p.consume(ctx); err != nil {
				p.log.Debug().Err(err).Msg("caret bridge connection lost")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectBackoff):
			}
		}
	}()
}

// Done is closed once the subscription loop has exited.
func (p *Provider) Done() <-chan struct{} {
	return p.done
}

// CaretPosition returns the most recently reported caret point.
func (p *Provider) CaretPosition() port.Point {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

func (p *Provider) consume(ctx context.Context) error {
	conn, err := net.DialTimeout("unix", p.socketPath, dialTimeout)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	// Unblock the blocking read when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	p.log.Info().Str("socket", p.socketPath).Msg("caret bridge connected")

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var ev event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			p.log.Debug().Err(err).Str("line", scanner.Text()).Msg("discarding malformed caret event")
			continue
		}
		point := ev.point()
		p.mu.Lock()
		p.last = point
		p.mu.Unlock()
	}
	return scanner.Err()
}
