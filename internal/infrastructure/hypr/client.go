// Package hypr binds the pointer and screen contracts to the Hyprland IPC
// socket. The protocol is one request per connection: write the command,
// read the reply, close.
package hypr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/loupe/internal/application/port"
)

// ErrNoInstance reports that the process is not running under a Hyprland
// session.
var ErrNoInstance = errors.New("HYPRLAND_INSTANCE_SIGNATURE is not set")

const dialTimeout = time.Second

// defaultBounds is what Bounds degrades to when the compositor cannot be
// queried. The tracking loop treats bounds as fresh input each tick, so a
// later successful query simply takes over.
var defaultBounds = port.Bounds{Width: 1920, Height: 1080}

// Client talks to the Hyprland request socket.
type Client struct {
	socketPath string
	log        zerolog.Logger
}

var (
	_ port.PointerDevice = (*Client)(nil)
	_ port.ScreenInfo    = (*Client)(nil)
)

// New resolves the request socket of the current Hyprland instance.
func New(log zerolog.Logger) (*Client, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return nil, ErrNoInstance
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return nil, errors.New("XDG_RUNTIME_DIR is not set")
	}
	return &Client{
		socketPath: filepath.Join(runtimeDir, "hypr", signature, ".socket.sock"),
		log:        log.With().Str("component", "hypr").Logger(),
	}, nil
}

// NewWithSocket creates a client against an explicit socket path.
func NewWithSocket(socketPath string, log zerolog.Logger) *Client {
	return &Client{
		socketPath: socketPath,
		log:        log.With().Str("component", "hypr").Logger(),
	}
}

// request performs one command round-trip on a fresh connection.
func (c *Client) request(command string) ([]byte, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to dial hyprland socket: %w", err)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetDeadline(time.Now().Add(dialTimeout))
	if _, err := conn.Write([]byte(command)); err != nil {
		return nil, fmt.Errorf("failed to send %q: %w", command, err)
	}

	out, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to read reply for %q: %w", command, err)
	}
	return out, nil
}

// Position returns the current cursor position. Faults degrade to (0,0).
func (c *Client) Position() port.Point {
	out, err := c.request("cursorpos")
	if err != nil {
		c.log.Debug().Err(err).Msg("cursorpos query failed")
		return port.Point{}
	}

	// Reply format: "123, 456"
	parts := strings.SplitN(strings.TrimSpace(string(out)), ",", 2)
	if len(parts) != 2 {
		c.log.Debug().Str("reply", string(out)).Msg("unexpected cursorpos reply")
		return port.Point{}
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		c.log.Debug().Str("reply", string(out)).Msg("unexpected cursorpos reply")
		return port.Point{}
	}
	return port.Point{X: x, Y: y}
}

// WarpTo moves the cursor via the movecursor dispatcher. Best effort.
func (c *Client) WarpTo(p port.Point) {
	out, err := c.request(fmt.Sprintf("dispatch movecursor %d %d", p.X, p.Y))
	if err != nil {
		c.log.Debug().Err(err).Msg("movecursor dispatch failed")
		return
	}
	if reply := strings.TrimSpace(string(out)); reply != "ok" {
		c.log.Debug().Str("reply", reply).Msg("movecursor dispatch rejected")
	}
}

type monitor struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Focused bool    `json:"focused"`
	Scale   float64 `json:"scale"`
}

// Bounds returns the pixel size of the focused monitor, falling back to the
// first monitor and then to defaultBounds.
func (c *Client) Bounds() port.Bounds {
	out, err := c.request("j/monitors")
	if err != nil {
		c.log.Debug().Err(err).Msg("monitors query failed")
		return defaultBounds
	}

	var monitors []monitor
	if err := json.Unmarshal(out, &monitors); err != nil || len(monitors) == 0 {
		c.log.Debug().Err(err).Msg("unexpected monitors reply")
		return defaultBounds
	}

	selected := monitors[0]
	for _, m := range monitors {
		if m.Focused {
			selected = m
			break
		}
	}
	if selected.Width < 1 || selected.Height < 1 {
		return defaultBounds
	}
	return port.Bounds{Width: selected.Width, Height: selected.Height}
}
