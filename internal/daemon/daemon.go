// Package daemon wires the magnifier core to its compositor bindings and
// exposes the control socket the CLI talks to.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bnema/loupe/internal/config"
	"github.com/bnema/loupe/internal/infrastructure/atbridge"
	"github.com/bnema/loupe/internal/infrastructure/hypr"
	"github.com/bnema/loupe/internal/infrastructure/magsock"
	"github.com/bnema/loupe/internal/magnifier"
)

// Daemon owns the event loop, the tracking session and the control socket.
type Daemon struct {
	cfg *config.Config
	log zerolog.Logger

	loop     chan func()
	session  *magnifier.Session
	bridge   *atbridge.Provider
	renderer *magsock.Renderer

	controlPath string
	pidPath     string
	pidFile     *os.File

	// ctx is set at the start of Run; posts race against its cancellation
	// instead of blocking a shutting-down loop.
	ctx context.Context
}

// New builds a daemon from configuration. It fails when not running under a
// Hyprland session; an unreachable magnifier engine is tolerated and logged.
func New(cfg *config.Config, log zerolog.Logger) (*Daemon, error) {
	compositor, err := hypr.New(log)
	if err != nil {
		return nil, fmt.Errorf("compositor binding failed: %w", err)
	}

	magPath, err := cfg.MagnifierSocketPath()
	if err != nil {
		return nil, err
	}
	bridgePath, err := cfg.CaretBridgeSocketPath()
	if err != nil {
		return nil, err
	}
	controlPath, err := cfg.ControlSocketPath()
	if err != nil {
		return nil, err
	}
	pidPath, err := config.PidFilePath()
	if err != nil {
		return nil, err
	}

	d := &Daemon{
		cfg:         cfg,
		log:         log,
		loop:        make(chan func(), 16),
		bridge:      atbridge.New(bridgePath, log),
		renderer:    magsock.New(magPath, log),
		controlPath: controlPath,
		pidPath:     pidPath,
	}

	d.session = magnifier.NewSession(
		d.renderer,
		d.bridge,
		compositor,
		compositor,
		newLoopScheduler(d.post),
		log.With().Str("component", "magnifier").Logger(),
		magnifier.Options{
			ZoomMin:      cfg.Zoom.Min,
			ZoomMax:      cfg.Zoom.Max,
			ZoomStep:     cfg.Zoom.Step,
			ZoomInitial:  cfg.Zoom.Initial,
			TickInterval: cfg.Tracking.TickInterval,
			BorderMargin: cfg.Tracking.BorderMargin,
			Mode:         magnifier.Mode(cfg.Tracking.Mode),
		},
	)

	return d, nil
}

// post hands fn to the event loop. Posts arriving after shutdown (a stale
// timer firing) are dropped.
func (d *Daemon) post(fn func()) {
	if d.ctx == nil {
		return
	}
	select {
	case d.loop <- fn:
	case <-d.ctx.Done():
	}
}

// Run serves until ctx is cancelled. On shutdown an active session is
// deactivated so the screen is left unmagnified.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.acquirePidLock(); err != nil {
		return err
	}
	defer d.releasePidLock()

	listener, err := d.listenControl()
	if err != nil {
		return err
	}

	d.bridge.Start(ctx)

	g, ctx := errgroup.WithContext(ctx)
	d.ctx = ctx

	g.Go(func() error {
		<-ctx.Done()
		return listener.Close()
	})

	g.Go(func() error {
		return d.serve(listener)
	})

	g.Go(func() error {
		d.runLoop(ctx)
		return nil
	})

	d.log.Info().Str("socket", d.controlPath).Msg("loupe daemon ready")

	err = g.Wait()
	if errors.Is(err, net.ErrClosed) {
		err = nil
	}
	_ = d.renderer.Close()
	return err
}

// runLoop executes posted closures one at a time. This is the only goroutine
// that touches the session, which is what makes the core single-threaded.
func (d *Daemon) runLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			// Leave the screen unmagnified on the way out.
			if d.session.Active() {
				d.session.Toggle()
			}
			return
		case fn := <-d.loop:
			fn()
		}
	}
}

func (d *Daemon) listenControl() (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(d.controlPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}
	// A previous daemon that crashed leaves a stale socket file behind.
	if err := os.Remove(d.controlPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove stale control socket: %w", err)
	}

	listener, err := net.Listen("unix", d.controlPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on control socket: %w", err)
	}
	return listener, nil
}

// acquirePidLock takes an exclusive flock on the pidfile so only one daemon
// runs per session.
func (d *Daemon) acquirePidLock() error {
	if err := os.MkdirAll(filepath.Dir(d.pidPath), 0700); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	f, err := os.OpenFile(d.pidPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("failed to open pidfile: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = f.Close()
		return fmt.Errorf("another loupe daemon is already running (pidfile %s): %w", d.pidPath, err)
	}

	if err := f.Truncate(0); err == nil {
		_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
	}

	d.pidFile = f
	return nil
}

func (d *Daemon) releasePidLock() {
	if d.pidFile == nil {
		return
	}
	_ = unix.Flock(int(d.pidFile.Fd()), unix.LOCK_UN)
	_ = d.pidFile.Close()
	_ = os.Remove(d.pidPath)
	d.pidFile = nil
}
