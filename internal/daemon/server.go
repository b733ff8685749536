package daemon

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/bnema/loupe/internal/magnifier"
)

const connTimeout = 5 * time.Second

// serve accepts control connections until the listener closes.
func (d *Daemon) serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			d.log.Warn().Err(err).Msg("control accept failed")
			continue
		}
		go d.handleConn(conn)
	}
}

// handleConn serves one request on one connection.
func (d *Daemon) handleConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	_ = conn.SetDeadline(time.Now().Add(connTimeout))

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		d.log.Debug().Err(err).Msg("failed to read control request")
		return
	}

	var req Request
	var resp Response
	if err := json.Unmarshal(line, &req); err != nil {
		resp = Response{Message: fmt.Sprintf("malformed request: %v", err)}
	} else {
		resp = d.dispatch(req)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		d.log.Warn().Err(err).Msg("failed to encode control response")
		return
	}
	if _, err := conn.Write(append(data, '\n')); err != nil {
		d.log.Debug().Err(err).Msg("failed to write control response")
	}
}

// dispatch runs the command on the event loop and waits for its outcome.
func (d *Daemon) dispatch(req Request) Response {
	result := make(chan Response, 1)
	d.post(func() {
		result <- d.handle(req)
	})
	select {
	case resp := <-result:
		return resp
	case <-d.ctx.Done():
		return Response{Message: "daemon is shutting down"}
	}
}

// handle executes one command. Runs on the event loop, interleaved between
// ticks, never during one.
func (d *Daemon) handle(req Request) Response {
	s := d.session

	switch req.Cmd {
	case CmdToggle:
		if s.Toggle() {
			return d.ok(fmt.Sprintf("magnifier started in %s mode", s.Mode()))
		}
		return d.ok("magnifier stopped")

	case CmdZoomIn, CmdZoomOut:
		direction := magnifier.ZoomIn
		if req.Cmd == CmdZoomOut {
			direction = magnifier.ZoomOut
		}
		level, err := s.StepZoom(direction)
		if errors.Is(err, magnifier.ErrNotTracking) {
			return d.ok("enable tracking first with: loupe toggle")
		}
		return d.ok(fmt.Sprintf("zoom level %.1f", level))

	case CmdToggleMode:
		mode, err := s.ToggleMode()
		if errors.Is(err, magnifier.ErrNotTracking) {
			return d.ok("enable tracking first with: loupe toggle")
		}
		return d.ok(fmt.Sprintf("follow mode changed to %s", mode))

	case CmdStatus:
		if s.Active() {
			return d.ok(fmt.Sprintf("tracking active, %s mode, zoom %.1f", s.Mode(), s.ZoomLevel()))
		}
		return d.ok("tracking inactive")

	default:
		resp := Response{Message: fmt.Sprintf("unknown command %q", req.Cmd)}
		resp.State = d.state()
		return resp
	}
}

func (d *Daemon) ok(message string) Response {
	return Response{OK: true, Message: message, State: d.state()}
}

func (d *Daemon) state() State {
	return State{
		Active: d.session.Active(),
		Mode:   string(d.session.Mode()),
		Zoom:   d.session.ZoomLevel(),
	}
}
