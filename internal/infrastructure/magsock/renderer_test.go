package magsock

import (
	"bufio"
	"encoding/json"
	"net"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine speaks the newline-JSON engine protocol and records every
// command it acknowledges.
type fakeEngine struct {
	t        *testing.T
	listener net.Listener
	ack      bool

	mu   sync.Mutex
	seen []command
}

func startFakeEngine(t *testing.T, ack bool) (*fakeEngine, string) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "mag.sock")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	e := &fakeEngine{t: t, listener: listener, ack: ack}
	t.Cleanup(func() { _ = listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go e.serve(conn)
		}
	}()
	return e, socketPath
}

func (e *fakeEngine) serve(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd command
		if err := json.Unmarshal(scanner.Bytes(), &cmd); err != nil {
			return
		}
		e.mu.Lock()
		e.seen = append(e.seen, cmd)
		e.mu.Unlock()

		ack, _ := json.Marshal(reply{OK: e.ack})
		if _, err := conn.Write(append(ack, '\n')); err != nil {
			return
		}
	}
}

func (e *fakeEngine) commands() []command {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]command(nil), e.seen...)
}

func TestApplyTransform(t *testing.T) {
	engine, socketPath := startFakeEngine(t, true)
	r := New(socketPath, zerolog.Nop())
	defer func() { _ = r.Close() }()

	require.True(t, r.Available())
	assert.True(t, r.ApplyTransform(2.0, 480, 270))

	seen := engine.commands()
	require.Len(t, seen, 1)
	assert.Equal(t, command{Op: "transform", Zoom: 2.0, Left: 480, Top: 270}, seen[0])
}

func TestReset(t *testing.T) {
	engine, socketPath := startFakeEngine(t, true)
	r := New(socketPath, zerolog.Nop())
	defer func() { _ = r.Close() }()

	assert.True(t, r.Reset())

	seen := engine.commands()
	require.Len(t, seen, 1)
	assert.Equal(t, "reset", seen[0].Op)
}

func TestRejectedCommandReturnsFalse(t *testing.T) {
	_, socketPath := startFakeEngine(t, false)
	r := New(socketPath, zerolog.Nop())
	defer func() { _ = r.Close() }()

	assert.False(t, r.ApplyTransform(3.0, 0, 0))
}

func TestUnavailableEngineIsPermanentNoOp(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "absent.sock"), zerolog.Nop())

	assert.False(t, r.Available())
	assert.False(t, r.ApplyTransform(2.0, 0, 0))
	assert.False(t, r.Reset())
}

func TestReconnectAfterEngineRestart(t *testing.T) {
	engine, socketPath := startFakeEngine(t, true)
	r := New(socketPath, zerolog.Nop())
	defer func() { _ = r.Close() }()

	require.True(t, r.ApplyTransform(2.0, 10, 20))

	// Simulate an engine restart: drop the renderer's live connection so the
	// next command has to redial.
	r.mu.Lock()
	_ = r.conn.Close()
	r.conn = nil
	r.mu.Unlock()

	assert.True(t, r.ApplyTransform(2.5, 30, 40))
	assert.Len(t, engine.commands(), 2)
}
