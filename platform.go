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

// Platform drivers and the registry that maps platform names to them.
package platformrun

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/mageec/platformrun/energymon"
	"github.com/mageec/platformrun/proc"
	"github.com/mageec/platformrun/util"

	"github.com/golang/glog"
)

// Driver flashes an executable onto one hardware platform and collects
// the measurement for that run.
type Driver interface {
	Name() string
	// Run performs one measured run. The wait for measurement completion
	// has no upper bound; pass a cancellable or deadline context to
	// bound it.
	Run(ctx context.Context, executable string) (energymon.Measurement, error)
}

// Options tune driver behavior.
type Options struct {
	// Debug lets toolchain commands print their own output (gdb runs
	// with -batch instead of -batch-silent).
	Debug bool
	// PollInterval overrides the measurement-completion poll interval.
	// Zero means the default (100ms).
	PollInterval time.Duration
}

// Registry resolves platform names to drivers. Construction has no side
// effects; nothing is spawned or connected until a driver's Run is
// invoked.
type Registry struct {
	drivers map[string]Driver
}

type driverFactory func(base) Driver

var factories = map[string]driverFactory{
	"stm32f0discovery": func(b base) Driver {
		return &stm32Driver{base: b, port: 2001, chipID: "0x0bb11477"}
	},
	"stm32vldiscovery": func(b base) Driver {
		return &stm32Driver{base: b, port: 2002, chipID: "0x1ba01477"}
	},
	"atmega328p": func(b base) Driver {
		return &avrDriver{base: b}
	},
	"msp-exp430f5529": func(b base) Driver {
		return &mspDriver{base: b, mspDriver: "tilib"}
	},
	"msp-exp430fr5739": func(b base) Driver {
		return &mspDriver{base: b, mspDriver: "rf2500"}
	},
	"pic32mx250f128b": func(b base) Driver {
		return &pic32Driver{base: b}
	},
}

// SupportedPlatforms lists every platform name this build knows how to
// drive, sorted.
func SupportedPlatforms() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewRegistry(cfg *Config, runner proc.RunnerInterface, open energymon.Opener, opts Options) *Registry {
	r := &Registry{drivers: map[string]Driver{}}
	for name, factory := range factories {
		pc, ok := cfg.Platforms[name]
		if !ok {
			continue
		}
		r.drivers[name] = factory(base{
			name:   name,
			cfg:    pc,
			tools:  cfg.Tools,
			runner: runner,
			open:   open,
			opts:   opts,
		})
	}
	return r
}

// Lookup resolves a platform name. Unknown and unconfigured names both
// yield a ConfigError.
func (r *Registry) Lookup(name string) (Driver, error) {
	if d, ok := r.drivers[name]; ok {
		return d, nil
	}
	if _, known := factories[name]; known {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("platform %q is not present in the configuration", name),
		}
	}
	return nil, &ConfigError{
		Reason: fmt.Sprintf("unknown platform %q (supported: %v)", name, SupportedPlatforms()),
	}
}

// base carries the collaborators shared by every driver.
type base struct {
	name   string
	cfg    PlatformConfig
	tools  Tools
	runner proc.RunnerInterface
	open   energymon.Opener
	opts   Options
}

func (b *base) Name() string { return b.name }

// session connects to the platform's energy monitor and arms its
// measurement point.
func (b *base) session() (*energymon.Session, error) {
	return energymon.Open(b.open, energymon.Config{
		Monitor:      b.cfg.EnergyMonitor,
		Point:        b.cfg.MeasurementPoint,
		Resistor:     b.cfg.Resistor,
		TriggerPin:   b.cfg.TriggerPin,
		PollInterval: b.opts.PollInterval,
	})
}

// runTool runs a flashing/debugging command in the foreground. A
// nonzero exit is logged and tolerated: a crashed toolchain does not
// always mean the target failed to run, so the measurement is still
// collected. Spawn failures remain fatal.
func (b *base) runTool(cmdline string) error {
	err := b.runner.Foreground(cmdline)
	var exitErr *proc.ExitError
	if errors.As(err, &exitErr) {
		glog.Warningf("Tool exited with status %d: %q", exitErr.Code, exitErr.Cmd)
		return nil
	}
	return err
}

// objcopyToHex converts the executable into Intel hex in a fresh
// temporary file and verifies the result parses. The caller owns the
// returned path and must remove it.
func (b *base) objcopyToHex(objcopy, executable string) (string, error) {
	tmp, err := os.CreateTemp("", "platformrun-*.hex")
	if err != nil {
		return "", fmt.Errorf("Creating temporary hex file: %v", err)
	}
	tmp.Close()

	cmdline := fmt.Sprintf("%s -O ihex %s %s", objcopy, executable, tmp.Name())
	if err = b.runTool(cmdline); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if _, err = util.LoadIntelHexFile(tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("Converted image is not valid Intel hex: %v", err)
	}
	return tmp.Name(), nil
}
