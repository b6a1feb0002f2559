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

// mspDriver flashes MSP430 LaunchPads with mspdebug, which leaves the
// target powered and running the loaded program after it exits. The
// two boards differ only in the mspdebug transport driver.
type mspDriver struct {
	base
	mspDriver string // tilib for the F5529 board, rf2500 for the FR5739
}

func (d *mspDriver) Run(ctx context.Context, executable string) (energymon.Measurement, error) {
	var m energymon.Measurement

	s, err := d.session()
	if err != nil {
		return m, err
	}
	defer s.Close()

	cmdline := fmt.Sprintf(`%s %s -q "prog %s"`, d.tools.MspDebug, d.mspDriver, executable)
	if err = d.runTool(cmdline); err != nil {
		return m, err
	}

	glog.V(1).Infof("Target programmed, waiting for measurement")
	return s.Await(ctx)
}
