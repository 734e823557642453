// Package ptydriver runs the claude CLI to completion inside a
// pseudo-terminal. claude exposes no structured usage API, so the driver
// speaks its interactive terminal protocol: launch, let the banner settle,
// type a command, and watch the byte stream until the output of interest
// has appeared.
package ptydriver

import (
	"bytes"
	goerrors "errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/sirupsen/logrus"

	"github.com/claude-tools/claude-statusbar/internal/errors"
)

// Console is the controlling side of the pseudo-terminal pair. os.File
// (as returned by pty.Start) satisfies it; tests substitute an in-memory
// implementation.
type Console interface {
	io.Reader
	io.Writer
	Close() error
	SetReadDeadline(t time.Time) error
}

// Process is the child process handle. Wait must reap the child; an
// exited-but-unreaped child is a zombie that still answers signals, so
// exit detection has to go through Wait, not liveness probes.
type Process interface {
	Signal(sig os.Signal) error
	Kill() error
	Wait() error
}

// Spawner launches the external program attached to a pseudo-terminal.
// Injecting it keeps the polling protocol testable without spawning real
// processes.
type Spawner interface {
	Start(argv []string, env []string) (Console, Process, error)
}

// PTYSpawner is the production Spawner backed by creack/pty.
type PTYSpawner struct{}

// Start launches argv with its standard streams attached to a new pty.
func (PTYSpawner) Start(argv []string, env []string) (Console, Process, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return nil, nil, err
	}
	return ptmx, cmdProcess{cmd}, nil
}

// cmdProcess adapts *exec.Cmd to the Process interface. Wait goes
// through the Cmd so the child is reaped.
type cmdProcess struct {
	cmd *exec.Cmd
}

func (p cmdProcess) Signal(sig os.Signal) error { return p.cmd.Process.Signal(sig) }

func (p cmdProcess) Kill() error { return p.cmd.Process.Kill() }

func (p cmdProcess) Wait() error { return p.cmd.Wait() }

// Options configure one scrape session.
type Options struct {
	// Argv launches the external program; Argv[0] is the binary.
	Argv []string

	// Command is written to the terminal once the program has settled.
	Command string

	// QuitCommand is written before terminating the child.
	QuitCommand string

	// Complete decides, against the accumulated decoded text, whether
	// enough output has arrived to stop polling.
	Complete func(text string) bool

	// Timeout bounds the whole session.
	Timeout time.Duration

	// SettleDelay is the pause after launch and after sending Command.
	SettleDelay time.Duration

	// PollInterval is the per-read deadline of the capture loop.
	PollInterval time.Duration

	Spawner Spawner
	Logger  *logrus.Entry
}

func (o *Options) withDefaults() {
	if o.Command == "" {
		o.Command = "/usage"
	}
	if o.QuitCommand == "" {
		o.QuitCommand = "/exit"
	}
	if o.Timeout == 0 {
		o.Timeout = 20 * time.Second
	}
	if o.SettleDelay == 0 {
		o.SettleDelay = 2 * time.Second
	}
	if o.PollInterval == 0 {
		o.PollInterval = 500 * time.Millisecond
	}
	if o.Spawner == nil {
		o.Spawner = PTYSpawner{}
	}
	if o.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.Logger = logrus.NewEntry(discard)
	}
}

// Run drives one session: launch, settle, drain the banner, send the
// command, poll until Complete or the deadline, drain trailing output,
// then quit and reap the child. Termination and descriptor release happen
// on every exit path.
//
// On timeout the partial capture is returned alongside the typed error;
// partial data (a session section without the week section, say) is still
// worth parsing. All failures come back as typed errors, never raw
// syscall errors.
func Run(opts Options) (string, error) {
	opts.withDefaults()
	deadline := time.Now().Add(opts.Timeout)

	env := append(os.Environ(), "TERM=xterm-256color")
	console, proc, err := opts.Spawner.Start(opts.Argv, env)
	if err != nil {
		return "", classifyStartError(err)
	}
	defer terminate(console, proc, opts)

	opts.Logger.WithField("argv", opts.Argv).Debug("claude launched on pty")

	// Let the program draw its banner, then throw the banner away so the
	// capture holds only output provoked by the command.
	time.Sleep(opts.SettleDelay)
	discard(console, opts.PollInterval)

	if _, err := console.Write([]byte(opts.Command + "\n")); err != nil {
		return "", errors.ScrapeIO(err)
	}
	opts.Logger.WithField("command", opts.Command).Debug("command sent")
	time.Sleep(opts.SettleDelay)

	var buf bytes.Buffer
	tmp := make([]byte, 4096)
	for {
		if !time.Now().Before(deadline) {
			return Decode(buf.Bytes()), errors.ScrapeTimeout(opts.Timeout)
		}

		_ = console.SetReadDeadline(time.Now().Add(opts.PollInterval))
		n, err := console.Read(tmp)
		if n > 0 {
			buf.Write(tmp[:n])
			if opts.Complete != nil && opts.Complete(Decode(buf.Bytes())) {
				opts.Logger.Debug("completion predicate satisfied")
				drainInto(console, &buf, opts.PollInterval)
				return Decode(buf.Bytes()), nil
			}
		}
		if err != nil {
			if os.IsTimeout(err) {
				continue
			}
			if readClosed(err) {
				// Child exited on its own; hand back whatever arrived.
				return Decode(buf.Bytes()), nil
			}
			return Decode(buf.Bytes()), errors.ScrapeIO(err)
		}
	}
}

// discard reads and drops whatever is immediately available.
func discard(console Console, window time.Duration) {
	var sink bytes.Buffer
	drainInto(console, &sink, window)
}

// drainInto keeps reading until one read window passes with no data.
func drainInto(console Console, buf *bytes.Buffer, window time.Duration) {
	tmp := make([]byte, 4096)
	for {
		_ = console.SetReadDeadline(time.Now().Add(window))
		n, err := console.Read(tmp)
		if n > 0 {
			buf.Write(tmp[:n])
		}
		if err != nil {
			return
		}
	}
}

const (
	// quitGrace is how long the child gets to honor the quit command.
	quitGrace = 300 * time.Millisecond
	// termGrace is how long the child gets to honor SIGTERM before
	// being killed.
	termGrace = 2 * time.Second
)

// terminate asks the child to quit, escalating to SIGTERM and finally
// SIGKILL, and always reaps the child and releases the terminal
// descriptor. Exit is observed through Wait on a channel; an exited
// child is a zombie until reaped and would still answer signals.
func terminate(console Console, proc Process, opts Options) {
	_, _ = console.Write([]byte(opts.QuitCommand + "\n"))

	if proc != nil {
		done := make(chan error, 1)
		go func() { done <- proc.Wait() }()

		select {
		case <-done:
		case <-time.After(quitGrace):
			_ = proc.Signal(syscall.SIGTERM)
			select {
			case <-done:
			case <-time.After(termGrace):
				opts.Logger.Debug("claude ignored SIGTERM, killing")
				_ = proc.Kill()
				<-done
			}
		}
	}
	_ = console.Close()
}

func classifyStartError(err error) error {
	if isPTYUnavailable(err) {
		return errors.PTYUnsupported(err)
	}
	if isNotFound(err) {
		return errors.ClaudeNotFound()
	}
	return errors.ScrapeIO(err)
}

func isNotFound(err error) bool {
	return goerrors.Is(err, exec.ErrNotFound) || goerrors.Is(err, os.ErrNotExist)
}

func isPTYUnavailable(err error) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	// Failing to open the multiplexer device means no pty facility.
	var pathErr *os.PathError
	if goerrors.As(err, &pathErr) {
		return pathErr.Path == "/dev/ptmx"
	}
	return false
}

// readClosed reports whether a read error means the slave side is gone.
// Linux ptys return EIO once the child has exited.
func readClosed(err error) bool {
	return goerrors.Is(err, io.EOF) || goerrors.Is(err, syscall.EIO)
}
