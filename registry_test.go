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

package platformrun_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/mageec/platformrun"
	"github.com/mageec/platformrun/mocks"

	"github.com/golang/mock/gomock"
)

func TestSupportedPlatforms(t *testing.T) {
	names := platformrun.SupportedPlatforms()
	if len(names) != 6 {
		t.Errorf("Unexpected platform count: %v", names)
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Platform names are not sorted: %v", names)
	}
}

func TestLookupResolvesEverySupportedPlatform(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// No expectations: resolving must have no side effects.
	runner := mocks.NewMockRunnerInterface(mockCtrl)
	dev := mocks.NewMockDeviceInterface(mockCtrl)

	registry := platformrun.NewRegistry(testConfig(), runner, fixedOpener(dev), platformrun.Options{})
	for _, name := range platformrun.SupportedPlatforms() {
		driver, err := registry.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)
			continue
		}
		if driver.Name() != name {
			t.Errorf("Lookup(%q) resolved to driver %q", name, driver.Name())
		}
	}
}

func TestLookupUnknownPlatform(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	// No expectations: nothing may be spawned or connected.
	runner := mocks.NewMockRunnerInterface(mockCtrl)
	dev := mocks.NewMockDeviceInterface(mockCtrl)

	registry := platformrun.NewRegistry(testConfig(), runner, fixedOpener(dev), platformrun.Options{})
	_, err := registry.Lookup("z80-trainer")
	var cfgErr *platformrun.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigError, got: %v", err)
	}
}

func TestLookupUnconfiguredPlatform(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	runner := mocks.NewMockRunnerInterface(mockCtrl)
	dev := mocks.NewMockDeviceInterface(mockCtrl)

	cfg := testConfig()
	delete(cfg.Platforms, "msp-exp430fr5739")

	registry := platformrun.NewRegistry(cfg, runner, fixedOpener(dev), platformrun.Options{})
	_, err := registry.Lookup("msp-exp430fr5739")
	var cfgErr *platformrun.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigError, got: %v", err)
	}
}
