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

// Measurement sessions against the energy monitor board.
package energymon

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
)

// DefaultPollInterval between measurement-completion queries.
const DefaultPollInterval = 100 * time.Millisecond

// Measurement is the result of one completed run. Immutable; values
// are always read back from the device, never synthesized.
type Measurement struct {
	Energy     float64 `json:"energy"`      // J
	Time       float64 `json:"time"`        // s
	AvgCurrent float64 `json:"avg_current"` // A
	AvgVoltage float64 `json:"avg_voltage"` // V
}

// DeviceInterface is the narrow contract against the energy monitor.
//
//go:generate mockgen -destination=../mocks/energymon.go -package=mocks github.com/mageec/platformrun/energymon DeviceInterface
type DeviceInterface interface {
	EnableMeasurementPoint(point int) error
	ClearNumberOfRuns(point int) error
	SetResistor(point int, ohms float64) error
	SetTrigger(pin string, point int) error
	MeasurementCompleted(point int) (bool, error)
	GetMeasurement(point int) (Measurement, error)
	io.Closer
}

// Opener connects to the energy monitor named by the configuration.
type Opener func(monitor string) (DeviceInterface, error)

// DeviceError reports a connect/arm/read failure on the instrument.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("energy monitor: %s: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Config binds a session to one measurement point.
type Config struct {
	Monitor    string
	Point      int
	Resistor   float64
	TriggerPin string
	// PollInterval between completion queries. Zero means
	// DefaultPollInterval.
	PollInterval time.Duration
}

// Session is an exclusive, armed hold on one measurement point. One
// session per run; Close exactly once, on every path.
type Session struct {
	dev      DeviceInterface
	point    int
	interval time.Duration
	closed   bool
}

// Open connects to the monitor and arms the measurement point: the
// point is enabled, its run counter cleared, the shunt resistor value
// applied and the trigger pin configured. The target must not start
// executing the workload before Open returns.
func Open(open Opener, cfg Config) (*Session, error) {
	dev, err := open(cfg.Monitor)
	if err != nil {
		return nil, &DeviceError{Op: "connect", Err: err}
	}

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	s := &Session{dev: dev, point: cfg.Point, interval: interval}
	if err = s.arm(cfg); err != nil {
		s.Close()
		return nil, err
	}
	glog.V(1).Infof("Armed measurement point %d on monitor %q", cfg.Point, cfg.Monitor)
	return s, nil
}

func (s *Session) arm(cfg Config) error {
	if err := s.dev.EnableMeasurementPoint(s.point); err != nil {
		return &DeviceError{Op: "enable measurement point", Err: err}
	}
	if err := s.dev.ClearNumberOfRuns(s.point); err != nil {
		return &DeviceError{Op: "clear run counter", Err: err}
	}
	if err := s.dev.SetResistor(s.point, cfg.Resistor); err != nil {
		return &DeviceError{Op: "set resistor", Err: err}
	}
	if err := s.dev.SetTrigger(cfg.TriggerPin, s.point); err != nil {
		return &DeviceError{Op: "set trigger", Err: err}
	}
	return nil
}

// Await polls the device until it reports the measurement complete,
// then fetches the result. The device is never read before it reports
// completion. The wait has no upper bound of its own; pass a
// cancellable or deadline context to bound it.
func (s *Session) Await(ctx context.Context) (Measurement, error) {
	var m Measurement
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		completed, err := s.dev.MeasurementCompleted(s.point)
		if err != nil {
			return m, &DeviceError{Op: "query completion", Err: err}
		}
		if completed {
			break
		}
		select {
		case <-ctx.Done():
			return m, &DeviceError{Op: "await completion", Err: ctx.Err()}
		case <-ticker.C:
		}
	}

	m, err := s.dev.GetMeasurement(s.point)
	if err != nil {
		return m, &DeviceError{Op: "fetch measurement", Err: err}
	}
	return m, nil
}

// Close disconnects from the monitor. Safe to call more than once;
// only the first call reaches the device.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	glog.V(1).Infof("Releasing measurement point %d", s.point)
	return s.dev.Close()
}
