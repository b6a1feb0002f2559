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

// avrDriver flashes an ATmega328P over its serial bootloader. The
// executable is first converted to Intel hex; avrdude then writes it
// through the programmer attached at the configured serial device id.
// The measurement point is armed before flashing so the boot-time draw
// is captured.
type avrDriver struct {
	base
}

func (d *avrDriver) Run(ctx context.Context, executable string) (energymon.Measurement, error) {
	var m energymon.Measurement

	s, err := d.session()
	if err != nil {
		return m, err
	}
	defer s.Close()

	hexFile, err := d.objcopyToHex(d.tools.AvrObjcopy, executable)
	if err != nil {
		return m, err
	}
	defer os.Remove(hexFile)

	cmdline := fmt.Sprintf("%s -F -V -c arduino -p atmega328p -e "+
		"-P `readlink -m /dev/serial/by-id/%s` -b 115200 -U flash:w:%s",
		d.tools.Avrdude, d.cfg.SerialDevID, hexFile)
	if err = d.runTool(cmdline); err != nil {
		return m, err
	}

	glog.V(1).Infof("Target programmed, waiting for measurement")
	return s.Await(ctx)
}
