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

// Measurement configuration loading.
package platformrun

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PlatformConfig is one platform's entry in the measurement configuration.
// Immutable once loaded.
type PlatformConfig struct {
	// EnergyMonitor is the serial identifier of the energy monitor board
	// the platform is wired to.
	EnergyMonitor string `json:"energy-monitor"`
	// MeasurementPoint is the monitor channel connected to the platform.
	MeasurementPoint int `json:"measurement-point"`
	// Resistor is the shunt resistor value in ohms.
	Resistor float64 `json:"resistor"`
	// TriggerPin is the monitor GPIO wired to the platform's trigger line.
	TriggerPin string `json:"trigger-pin"`
	// SerialDevID identifies a USB-attached programmer under
	// /dev/serial/by-id. Only used by platforms flashed over a serial
	// bootloader.
	SerialDevID string `json:"serial-dev-id,omitempty"`
}

// Tools holds the external toolchain command names. Entries default to
// the bare tool name; a "tools" block in the configuration file
// overrides individual entries with absolute paths.
type Tools struct {
	StUtil       string `json:"st-util,omitempty"`
	ArmGdb       string `json:"arm-gdb,omitempty"`
	Avrdude      string `json:"avrdude,omitempty"`
	AvrObjcopy   string `json:"avr-objcopy,omitempty"`
	Pic32Objcopy string `json:"pic32-objcopy,omitempty"`
	Pic32Prog    string `json:"pic32prog,omitempty"`
	MspDebug     string `json:"mspdebug,omitempty"`
}

func DefaultTools() Tools {
	return Tools{
		StUtil:       "st-util",
		ArmGdb:       "arm-none-eabi-gdb",
		Avrdude:      "avrdude",
		AvrObjcopy:   "avr-objcopy",
		Pic32Objcopy: "pic32-objcopy",
		Pic32Prog:    "pic32prog",
		MspDebug:     "mspdebug",
	}
}

// Config is the full measurement configuration: one PlatformConfig per
// wired platform, plus toolchain overrides.
type Config struct {
	Platforms map[string]PlatformConfig
	Tools     Tools
}

// Exported for testing.
func LoadConfigIo(src io.Reader) (*Config, error) {
	var raw map[string]json.RawMessage
	decoder := json.NewDecoder(src)
	if err := decoder.Decode(&raw); err != nil {
		return nil, &ConfigError{Reason: "malformed configuration", Err: err}
	}

	cfg := &Config{
		Platforms: map[string]PlatformConfig{},
		Tools:     DefaultTools(),
	}
	for name, msg := range raw {
		if name == "tools" {
			if err := json.Unmarshal(msg, &cfg.Tools); err != nil {
				return nil, &ConfigError{Reason: "malformed tools block", Err: err}
			}
			continue
		}
		var pc PlatformConfig
		if err := json.Unmarshal(msg, &pc); err != nil {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("malformed entry for platform %q", name),
				Err:    err,
			}
		}
		if pc.EnergyMonitor == "" {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("platform %q is missing an energy-monitor id", name),
			}
		}
		cfg.Platforms[name] = pc
	}
	return cfg, nil
}

// Loads configuration from file. Called once per invocation, before any
// platform logic runs.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &ConfigError{Reason: "cannot open configuration file", Err: err}
	}
	defer f.Close()
	return LoadConfigIo(f)
}
