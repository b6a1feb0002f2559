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

package util_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mageec/platformrun/util"
)

const hexFixture = ":10010000214601360121470136007EFE09D2190140\n" +
	":00000001FF\n"

func TestLoadIntelHexIo(t *testing.T) {
	segments, err := util.LoadIntelHexIo(strings.NewReader(hexFixture))
	if err != nil {
		t.Fatalf("LoadIntelHexIo failed: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segments))
	}
	if segments[0].Address != 0x0100 {
		t.Errorf("Unexpected segment address: %#x", segments[0].Address)
	}
	if len(segments[0].Data) != 16 {
		t.Errorf("Unexpected segment size: %d", len(segments[0].Data))
	}
}

func TestLoadIntelHexIoRejectsGarbage(t *testing.T) {
	if _, err := util.LoadIntelHexIo(strings.NewReader("not a hex image\n")); err == nil {
		t.Error("LoadIntelHexIo accepted garbage input")
	}
}

func TestLoadIntelHexFileRejectsEmptyFile(t *testing.T) {
	// An empty file is what objcopy leaves behind when it bails out early.
	name := filepath.Join(t.TempDir(), "empty.hex")
	if err := os.WriteFile(name, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := util.LoadIntelHexFile(name); err == nil {
		t.Error("LoadIntelHexFile accepted an empty image")
	}
}
