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

package proc_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mageec/platformrun/proc"
)

func TestForegroundImmediateExit(t *testing.T) {
	r := proc.NewRunner(false)
	if err := r.Foreground("true"); err != nil {
		t.Errorf("Foreground failed: %v", err)
	}
}

func TestForegroundWaitsForDelayedExit(t *testing.T) {
	r := proc.NewRunner(false)
	start := time.Now()
	if err := r.Foreground("sleep 0.3"); err != nil {
		t.Errorf("Foreground failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 250*time.Millisecond {
		t.Errorf("Foreground returned before child exit (%v)", elapsed)
	}
}

func TestForegroundReportsExitStatus(t *testing.T) {
	r := proc.NewRunner(false)
	err := r.Foreground("exit 3")
	var exitErr *proc.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected ExitError, got: %v", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Unexpected exit code: %d", exitErr.Code)
	}
}

func TestForegroundMissingToolIsSpawnError(t *testing.T) {
	r := proc.NewRunner(false)
	err := r.Foreground("platformrun-no-such-tool --version")
	var spawnErr *proc.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("Expected SpawnError, got: %v", err)
	}
}

func TestBackgroundCancelTerminatesChild(t *testing.T) {
	r := proc.NewRunner(false)
	r.PollInterval = 20 * time.Millisecond

	h, err := r.Background("sleep 60")
	if err != nil {
		t.Fatalf("Background failed: %v", err)
	}
	start := time.Now()
	h.Cancel()
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Cancel took %v; child was not terminated promptly", elapsed)
	}
}

func TestBackgroundCancelSafeAfterNaturalExit(t *testing.T) {
	r := proc.NewRunner(false)
	r.PollInterval = 10 * time.Millisecond

	h, err := r.Background("true")
	if err != nil {
		t.Fatalf("Background failed: %v", err)
	}
	// Give the child time to exit on its own before cancelling.
	time.Sleep(200 * time.Millisecond)
	h.Cancel()
	h.Cancel()
}

func TestBackgroundMissingShellCommandStillSpawns(t *testing.T) {
	// Through the shell the spawn itself succeeds; the failure shows up
	// as the child exiting. Cancel must still be safe.
	r := proc.NewRunner(false)
	r.PollInterval = 10 * time.Millisecond

	h, err := r.Background("platformrun-no-such-tool")
	if err != nil {
		t.Fatalf("Background failed: %v", err)
	}
	time.Sleep(100 * time.Millisecond)
	h.Cancel()
}
