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

package platformrun

import (
	"context"
	"fmt"

	"github.com/mageec/platformrun/energymon"

	"github.com/golang/glog"
)

// stm32Driver runs ARM discovery boards through the debug-server
// sequence: st-util serves gdb remote on a local port, and a batch gdb
// script resets the target, loads the image, and detects termination by
// a breakpoint on the exit routines. The target executable must reach
// exit or _exit for the script to return.
type stm32Driver struct {
	base
	port   int
	chipID string
}

func (d *stm32Driver) Run(ctx context.Context, executable string) (energymon.Measurement, error) {
	var m energymon.Measurement

	s, err := d.session()
	if err != nil {
		return m, err
	}
	defer s.Close()

	server, err := d.runner.Background(fmt.Sprintf("%s -p %d -c %s -v0",
		d.tools.StUtil, d.port, d.chipID))
	if err != nil {
		return m, err
	}

	err = d.runTool(gdbScript(d.tools.ArmGdb, d.port, executable, d.opts.Debug))
	// The debug server has no further purpose once the script returns,
	// on the error path included.
	server.Cancel()
	if err != nil {
		return m, err
	}

	glog.V(1).Infof("Target programmed, waiting for measurement")
	return s.Await(ctx)
}

func gdbScript(gdb string, port int, executable string, debug bool) string {
	silence := "-batch-silent"
	if debug {
		silence = "-batch"
	}
	return fmt.Sprintf(`%s %s -ex "set confirm off" `+
		`-ex "tar ext :%d" `+
		`-ex "monitor reset halt" `+
		`-ex "load" `+
		`-ex "delete breakpoints" `+
		`-ex "break exit" `+
		`-ex "break _exit" `+
		`-ex "continue" `+
		`-ex "quit" %s`, gdb, silence, port, executable)
}
