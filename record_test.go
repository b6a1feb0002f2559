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
	"bytes"
	"testing"
	"time"

	"github.com/mageec/platformrun"
	"github.com/mageec/platformrun/energymon"

	"github.com/google/go-cmp/cmp"
)

func testRecord() *platformrun.RunRecord {
	return &platformrun.RunRecord{
		Platform:   "atmega328p",
		Executable: "benchmarks/crc32.elf",
		Timestamp:  time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Measurements: []energymon.Measurement{
			{Energy: 1.5, Time: 0.02, AvgCurrent: 0.03, AvgVoltage: 3.3},
		},
	}
}

func TestRecordSaveLoadRoundTrip(t *testing.T) {
	r1 := testRecord()

	buf := bytes.Buffer{}
	if err := r1.SaveIo(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	r2, err := platformrun.LoadRecordIo(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("Loaded record did not match original (-want +got):\n%s", diff)
	}
}

func TestRecordSaveToDirectory(t *testing.T) {
	dir := t.TempDir()
	r1 := testRecord()

	path, err := r1.Save(dir)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	r2, err := platformrun.LoadRecord(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Errorf("Loaded record did not match original (-want +got):\n%s", diff)
	}
}
