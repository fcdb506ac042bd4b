// Package launcher starts editor processes in the background.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/google/uuid"
)

// EventKind is the type of a task event.
type EventKind int

// Task event kinds.
const (
	EventStderr EventKind = iota
	EventExited
)

// Event is reported by a running task. Stderr events carry one chunk of the
// child's error output; the Exited event is always the last one for a task.
type Event struct {
	TaskID  string
	Command string
	Kind    EventKind
	Data    string
	Err     error
}

// Task is one spawned process.
type Task struct {
	ID        string
	Command   string
	Args      []string
	StartedAt time.Time

	cmd  *exec.Cmd
	done chan struct{}
}

// Done is closed once the process has exited.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Launcher spawns processes without waiting for them. All tasks report on
// the same events channel; nothing else is shared between them.
type Launcher struct {
	events chan Event
}

// New creates a launcher whose events channel holds buffer pending events.
func New(buffer int) *Launcher {
	return &Launcher{events: make(chan Event, buffer)}
}

// Events returns the channel tasks report on. It must be drained.
func (l *Launcher) Events() <-chan Event {
	return l.events
}

// Spawn starts command with args and returns its task ID.
func (l *Launcher) Spawn(command string, args ...string) (string, error) {
	t, err := l.Start(command, args...)
	if err != nil {
		return "", err
	}
	return t.ID, nil
}

// Start starts command with args and returns the running task.
func (l *Launcher) Start(command string, args ...string) (*Task, error) {
	cmd := exec.Command(command, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open stderr of %s: %w", command, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", command, err)
	}

	t := &Task{
		ID:        uuid.New().String(),
		Command:   command,
		Args:      args,
		StartedAt: time.Now().UTC(),
		cmd:       cmd,
		done:      make(chan struct{}),
	}
	log.Printf("[launcher] Started %s %v (task %s, pid %d)", command, args, t.ID, cmd.Process.Pid)

	go l.readLoop(t, stderr)

	return t, nil
}

// readLoop forwards stderr chunks until EOF, then reaps the process.
func (l *Launcher) readLoop(t *Task, stderr io.Reader) {
	buf := make([]byte, 4*1024)
	for {
		n, err := stderr.Read(buf)
		if n > 0 {
			l.events <- Event{TaskID: t.ID, Command: t.Command, Kind: EventStderr, Data: string(buf[:n])}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("[launcher] Reading stderr of task %s: %v", t.ID, err)
			}
			break
		}
	}

	err := t.cmd.Wait()
	l.events <- Event{TaskID: t.ID, Command: t.Command, Kind: EventExited, Err: err}
	close(t.done)
}

// Detach starts command and lets it run on its own; its output goes nowhere.
func Detach(command string, args ...string) error {
	cmd := exec.Command(command, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", command, err)
	}
	return cmd.Process.Release()
}
