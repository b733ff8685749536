package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/bnema/loupe/internal/config"
	"github.com/bnema/loupe/internal/daemon"
)

const clientTimeout = 3 * time.Second

// sendCommand performs one request round-trip against the daemon's control
// socket.
func sendCommand(cmd string) (daemon.Response, error) {
	if err := config.Init(); err != nil {
		return daemon.Response{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	socketPath, err := config.Get().ControlSocketPath()
	if err != nil {
		return daemon.Response{}, err
	}

	conn, err := net.DialTimeout("unix", socketPath, clientTimeout)
	if err != nil {
		return daemon.Response{}, fmt.Errorf("loupe daemon is not running (start it with: loupe daemon): %w", err)
	}
	defer func() { _ = conn.Close() }()
	_ = conn.SetDeadline(time.Now().Add(clientTimeout))

	data, err := json.Marshal(daemon.Request{Cmd: cmd})
	if err != nil {
		return daemon.Response{}, err
	}
	if _, err := conn.Write(append(data, '\n')); err != nil {
		return daemon.Response{}, fmt.Errorf("failed to send command: %w", err)
	}

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		return daemon.Response{}, fmt.Errorf("failed to read daemon response: %w", err)
	}

	var resp daemon.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return daemon.Response{}, fmt.Errorf("malformed daemon response: %w", err)
	}
	return resp, nil
}

// runCommand sends cmd and prints the daemon's confirmation message.
// Guidance messages for rejected preconditions are normal outcomes, not
// errors.
func runCommand(cmd string) error {
	resp, err := sendCommand(cmd)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	if !resp.OK {
		return fmt.Errorf("daemon rejected command %q", cmd)
	}
	return nil
}
