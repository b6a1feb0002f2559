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

// Provides the low-level USB interface for the energy monitor board.
// All traffic goes over vendor control transfers on the default
// interface.
package energymon

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

const (
	monitorVid = 0xf539
	monitorPid = 0xf539
)

//go:generate stringer -type Request
type Request uint8

const (
	ReqVersion      Request = 0x01
	ReqEnablePoint  Request = 0x02
	ReqDisablePoint Request = 0x03
	ReqSetTrigger   Request = 0x04
	ReqClearRuns    Request = 0x06
	ReqCompleted    Request = 0x07
	ReqMeasurement  Request = 0x08
)

const (
	rTypeControlIn  uint8 = gousb.ControlIn | gousb.ControlVendor | gousb.ControlInterface
	rTypeControlOut uint8 = gousb.ControlOut | gousb.ControlVendor | gousb.ControlInterface
)

// Analog front-end constants used to convert raw accumulators into
// physical units.
const (
	adcVref      = 3.0
	adcRange     = 4096.0
	voltageScale = 2.0   // resistive divider on the voltage channel
	currentGain  = 50.0  // shunt amplifier gain
	tickPeriod   = 2e-6  // seconds per timer tick
	samplePeriod = 5e-4  // seconds per accumulator sample
)

// Encapsulates the monitor's USB resources. Implements DeviceInterface.
type UsbDevice struct {
	ctx *gousb.Context
	// dev also implements the control endpoint.
	dev       *gousb.Device
	intf      *gousb.Interface
	intf_done func()
	// Shunt values are applied host-side: the board reports raw
	// accumulators and the conversion needs the resistor per point.
	resistors map[int]float64
}

// OpenUsbDevice connects to the monitor whose serial number matches
// monitor. An empty monitor string matches the first board found.
func OpenUsbDevice(monitor string) (DeviceInterface, error) {
	d := &UsbDevice{resistors: map[int]float64{}}
	d.ctx = gousb.NewContext()

	devs, err := d.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == monitorVid && desc.Product == monitorPid
	})
	if err != nil {
		for _, dev := range devs {
			dev.Close()
		}
		d.Close()
		return nil, fmt.Errorf("Enumerating monitor devices: %v", err)
	}

	for _, dev := range devs {
		if d.dev == nil {
			serial, err := dev.SerialNumber()
			if err == nil && (monitor == "" || strings.EqualFold(serial, monitor)) {
				d.dev = dev
				continue
			}
		}
		dev.Close()
	}
	if d.dev == nil {
		d.Close()
		return nil, fmt.Errorf("Energy monitor %q not found", monitor)
	}

	// The default interface is always #0 alt #0 in the currently active
	// config.
	d.intf, d.intf_done, err = d.dev.DefaultInterface()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("Claiming default interface: %v", err)
	}

	ver := struct{ Major, Minor uint8 }{}
	if err = d.controlIn(ReqVersion, 0, &ver); err != nil {
		d.Close()
		return nil, fmt.Errorf("Failed reading monitor version: %v", err)
	}
	glog.V(1).Infof("Connected to energy monitor %q (fw %d.%d)", monitor, ver.Major, ver.Minor)
	return d, nil
}

func (d *UsbDevice) Close() error {
	glog.V(1).Infof("Closing USB device")
	if d.intf_done != nil {
		d.intf_done()
		d.intf_done = nil
	}
	if d.intf != nil {
		d.intf.Close()
		d.intf = nil
	}
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
	if d.ctx != nil {
		d.ctx.Close()
		d.ctx = nil
	}
	return nil
}

func (d *UsbDevice) controlIn(request Request, val uint16, data interface{}) error {
	if binary.Size(data) == -1 {
		return fmt.Errorf("Failed to get data size")
	}
	buf := make([]byte, binary.Size(data))
	n, err := d.dev.Control(rTypeControlIn, uint8(request), val, 0, buf)
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != len(buf) {
		return fmt.Errorf("Failed to read entire buffer %v vs %v", n, len(buf))
	}
	r := bytes.NewReader(buf)
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("binary.Read failed: %v", err)
	}
	glog.V(2).Infof("[usb-ctrl IN]: request = %v, val = %x, data =\n%s",
		request, val, hex.Dump(buf))
	return nil
}

func (d *UsbDevice) controlOut(request Request, val uint16, data interface{}) error {
	var err error
	buf := new(bytes.Buffer)
	if data != nil {
		if err = binary.Write(buf, binary.LittleEndian, data); err != nil {
			return fmt.Errorf("binary.Write failed: %v", err)
		}
	}
	n, err := d.dev.Control(rTypeControlOut, uint8(request), val, 0, buf.Bytes())
	if err != nil {
		return fmt.Errorf("dev.Control failed %v", err)
	}
	if n != buf.Len() {
		return fmt.Errorf("Failed to write entire buffer %v vs %v", n, buf.Len())
	}
	glog.V(2).Infof("[usb-ctrl OUT]: request = %v, val = %x, data =\n%s",
		request, val, hex.Dump(buf.Bytes()))
	return nil
}

func (d *UsbDevice) EnableMeasurementPoint(point int) error {
	return d.controlOut(ReqEnablePoint, uint16(point), nil)
}

func (d *UsbDevice) ClearNumberOfRuns(point int) error {
	return d.controlOut(ReqClearRuns, uint16(point), nil)
}

func (d *UsbDevice) SetResistor(point int, ohms float64) error {
	if ohms <= 0 {
		return fmt.Errorf("Invalid shunt resistor value %v", ohms)
	}
	d.resistors[point] = ohms
	return nil
}

// parseTriggerPin splits a pin name like "PA0" into its port letter
// and pin number.
func parseTriggerPin(pin string) (port byte, num uint8, err error) {
	if len(pin) < 3 || pin[0] != 'P' || pin[1] < 'A' || pin[1] > 'H' {
		return 0, 0, fmt.Errorf("Malformed trigger pin %q", pin)
	}
	var n int
	if _, err = fmt.Sscanf(pin[2:], "%d", &n); err != nil || n < 0 || n > 15 {
		return 0, 0, fmt.Errorf("Malformed trigger pin %q", pin)
	}
	return pin[1], uint8(n), nil
}

func (d *UsbDevice) SetTrigger(pin string, point int) error {
	port, num, err := parseTriggerPin(pin)
	if err != nil {
		return err
	}
	val := uint16(port-'A')<<8 | uint16(num)
	return d.controlOut(ReqSetTrigger, val, uint8(point))
}

func (d *UsbDevice) MeasurementCompleted(point int) (bool, error) {
	var completed uint8
	if err := d.controlIn(ReqCompleted, uint16(point), &completed); err != nil {
		return false, err
	}
	return completed != 0, nil
}

// Raw accumulators as reported by the board.
type rawMeasurement struct {
	EnergyAccum  uint64
	ElapsedTicks uint64
	CurrentAccum uint64
	VoltageAccum uint64
	SampleCount  uint32
	NumRuns      uint32
}

func (d *UsbDevice) GetMeasurement(point int) (Measurement, error) {
	var m Measurement
	resistor, ok := d.resistors[point]
	if !ok {
		return m, fmt.Errorf("No shunt resistor configured for point %d", point)
	}

	raw := rawMeasurement{}
	if err := d.controlIn(ReqMeasurement, uint16(point), &raw); err != nil {
		return m, err
	}
	if raw.SampleCount == 0 {
		return m, fmt.Errorf("Measurement for point %d has no samples", point)
	}
	glog.V(2).Infof("[measurement]: point = %d, raw = %+v", point, raw)

	samples := float64(raw.SampleCount)
	m.AvgVoltage = float64(raw.VoltageAccum) / samples * adcVref / adcRange * voltageScale
	m.AvgCurrent = float64(raw.CurrentAccum) / samples * adcVref / adcRange / (currentGain * resistor)
	m.Energy = float64(raw.EnergyAccum) * samplePeriod *
		adcVref * adcVref / (adcRange * adcRange) * voltageScale / (currentGain * resistor)
	m.Time = float64(raw.ElapsedTicks) * tickPeriod
	return m, nil
}
