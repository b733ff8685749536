package hypr

import (
	"net"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/loupe/internal/application/port"
)

// startFakeCompositor answers each connection with handler(command) and
// records the commands it saw.
func startFakeCompositor(t *testing.T, handler func(command string) string) (string, func() []string) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "hypr.sock")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	var mu sync.Mutex
	var seen []string

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer func() { _ = conn.Close() }()
				buf := make([]byte, 4096)
				n, err := conn.Read(buf)
				if err != nil {
					return
				}
				command := string(buf[:n])
				mu.Lock()
				seen = append(seen, command)
				mu.Unlock()
				_, _ = conn.Write([]byte(handler(command)))
			}(conn)
		}
	}()

	return socketPath, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), seen...)
	}
}

func TestPosition(t *testing.T) {
	socketPath, _ := startFakeCompositor(t, func(string) string { return "312, 648" })
	c := NewWithSocket(socketPath, zerolog.Nop())

	assert.Equal(t, port.Point{X: 312, Y: 648}, c.Position())
}

func TestPosition_GarbageReplyDegradesToOrigin(t *testing.T) {
	socketPath, _ := startFakeCompositor(t, func(string) string { return "no cursor" })
	c := NewWithSocket(socketPath, zerolog.Nop())

	assert.Equal(t, port.Point{}, c.Position())
}

func TestPosition_UnreachableSocketDegradesToOrigin(t *testing.T) {
	c := NewWithSocket(filepath.Join(t.TempDir(), "gone.sock"), zerolog.Nop())

	assert.Equal(t, port.Point{}, c.Position())
}

func TestWarpTo(t *testing.T) {
	socketPath, commands := startFakeCompositor(t, func(string) string { return "ok" })
	c := NewWithSocket(socketPath, zerolog.Nop())

	c.WarpTo(port.Point{X: 40, Y: 75})

	require.Len(t, commands(), 1)
	assert.Equal(t, "dispatch movecursor 40 75", commands()[0])
}

func TestBounds_FocusedMonitorWins(t *testing.T) {
	socketPath, _ := startFakeCompositor(t, func(string) string {
		return `[{"name":"DP-1","width":1920,"height":1080,"focused":false},` +
			`{"name":"DP-2","width":2560,"height":1440,"focused":true}]`
	})
	c := NewWithSocket(socketPath, zerolog.Nop())

	assert.Equal(t, port.Bounds{Width: 2560, Height: 1440}, c.Bounds())
}

func TestBounds_NoFocusFallsBackToFirst(t *testing.T) {
	socketPath, _ := startFakeCompositor(t, func(string) string {
		return `[{"name":"DP-1","width":3440,"height":1440,"focused":false}]`
	})
	c := NewWithSocket(socketPath, zerolog.Nop())

	assert.Equal(t, port.Bounds{Width: 3440, Height: 1440}, c.Bounds())
}

func TestBounds_UnreachableSocketFallsBackToDefault(t *testing.T) {
	c := NewWithSocket(filepath.Join(t.TempDir(), "gone.sock"), zerolog.Nop())

	assert.Equal(t, defaultBounds, c.Bounds())
}

func TestBounds_EmptyMonitorListFallsBackToDefault(t *testing.T) {
	socketPath, _ := startFakeCompositor(t, func(string) string { return "[]" })
	c := NewWithSocket(socketPath, zerolog.Nop())

	assert.Equal(t, defaultBounds, c.Bounds())
}

func TestNew_RequiresInstanceSignature(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := New(zerolog.Nop())
	assert.ErrorIs(t, err, ErrNoInstance)
}
