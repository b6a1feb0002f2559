// Copyright 2026 The platformrun Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Spawns and supervises external toolchain commands.
package proc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/golang/glog"
)

// DefaultPollInterval is how often background supervision observes the
// cancellation token and the child's exit state.
const DefaultPollInterval = 100 * time.Millisecond

// sh reports a missing command with this exit status.
const shellNotFoundStatus = 127

//go:generate mockgen -destination=../mocks/proc.go -package=mocks github.com/mageec/platformrun/proc RunnerInterface,HandleInterface
type RunnerInterface interface {
	// Foreground spawns the command and blocks until it exits. There is
	// no timeout: a hung tool hangs the call. A nonzero exit is
	// returned as *ExitError; interpretation is the caller's.
	Foreground(cmdline string) error
	// Background spawns the command and returns a handle the caller can
	// use to terminate it.
	Background(cmdline string) (HandleInterface, error)
}

// HandleInterface terminates a background command.
type HandleInterface interface {
	// Cancel signals the supervising task to kill the child and returns
	// once the child has been reaped. Safe to call more than once, and
	// after the process has already exited on its own. The token is
	// observed once per poll interval, so termination can lag the call
	// by up to one interval.
	Cancel()
}

// SpawnError means the command could not be started at all: the shell
// is missing, or the tool itself was not found.
type SpawnError struct {
	Cmd string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawning %q: %v", e.Cmd, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError means the command ran and exited nonzero.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%q exited with status %d", e.Cmd, e.Code)
}

// Runner spawns command lines through the shell, so toolchain command
// lines may use quoting and substitution.
type Runner struct {
	// Verbose streams child stdout/stderr through the parent's.
	// Otherwise output is discarded.
	Verbose bool
	// PollInterval for background supervision. Zero means
	// DefaultPollInterval.
	PollInterval time.Duration
}

func NewRunner(verbose bool) *Runner {
	return &Runner{Verbose: verbose, PollInterval: DefaultPollInterval}
}

func (r *Runner) command(cmdline string) *exec.Cmd {
	cmd := exec.Command("/bin/sh", "-c", cmdline)
	if r.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}
	return cmd
}

// classifyExit maps a cmd.Wait error onto the runner's error taxonomy.
func classifyExit(cmdline string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == shellNotFoundStatus {
			return &SpawnError{Cmd: cmdline, Err: err}
		}
		return &ExitError{Cmd: cmdline, Code: code}
	}
	return &SpawnError{Cmd: cmdline, Err: err}
}

func (r *Runner) Foreground(cmdline string) error {
	glog.V(1).Infof("Starting foreground proc: %q", cmdline)
	cmd := r.command(cmdline)
	if err := cmd.Start(); err != nil {
		return &SpawnError{Cmd: cmdline, Err: err}
	}
	err := classifyExit(cmdline, cmd.Wait())
	glog.V(1).Infof("Foreground proc finished: %q (err: %v)", cmdline, err)
	return err
}

// Handle supervises one background child.
type Handle struct {
	cmdline string
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
}

func (h *Handle) Cancel() {
	h.once.Do(func() {
		glog.V(1).Infof("Cancelling background proc: %q", h.cmdline)
	})
	h.cancel()
	<-h.done
}

func (r *Runner) Background(cmdline string) (HandleInterface, error) {
	glog.V(1).Infof("Starting background proc: %q", cmdline)
	cmd := r.command(cmdline)
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Cmd: cmdline, Err: err}
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{
		cmdline: cmdline,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	interval := r.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case err := <-exited:
				glog.V(1).Infof("Background proc exited on its own: %q (err: %v)",
					cmdline, classifyExit(cmdline, err))
				return
			case <-ticker.C:
				// The cancellation token is only observed here, once
				// per tick.
				if ctx.Err() != nil {
					glog.V(1).Infof("Killing background proc: %q", cmdline)
					cmd.Process.Kill()
					<-exited
					return
				}
			}
		}
	}()
	return h, nil
}
