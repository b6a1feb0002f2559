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
	"os"

	"github.com/mageec/platformrun/energymon"

	"github.com/golang/glog"
)

// pic32Driver programs a PIC32 with pic32prog, which leaves power
// applied so the target runs immediately. The hex conversion happens
// before the session opens; the measurement point is armed between
// conversion and programming so the run is caught from power-on.
type pic32Driver struct {
	base
}

func (d *pic32Driver) Run(ctx context.Context, executable string) (energymon.Measurement, error) {
	var m energymon.Measurement

	hexFile, err := d.objcopyToHex(d.tools.Pic32Objcopy, executable)
	if err != nil {
		return m, err
	}
	defer os.Remove(hexFile)

	s, err := d.session()
	if err != nil {
		return m, err
	}
	defer s.Close()

	if err = d.runTool(fmt.Sprintf("%s -p %s", d.tools.Pic32Prog, hexFile)); err != nil {
		return m, err
	}

	glog.V(1).Infof("Target programmed, waiting for measurement")
	return s.Await(ctx)
}
