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

// Saved run records, browsable with the viewer.
package platformrun

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mageec/platformrun/energymon"
)

const RecordExt = ".json"

// RunRecord is one completed measured run.
type RunRecord struct {
	Platform     string                  `json:"platform"`
	Executable   string                  `json:"executable"`
	Timestamp    time.Time               `json:"timestamp"`
	Measurements []energymon.Measurement `json:"measurements"`
}

// Exported for testing.
func (r *RunRecord) SaveIo(dst io.Writer) error {
	encoder := json.NewEncoder(dst)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("JSON encoder failed %v", err)
	}
	return nil
}

// Save writes the record into dir under a timestamped name and returns
// the path. The directory is created if missing.
func (r *RunRecord) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("Error creating records directory: %v", err)
	}
	name := fmt.Sprintf("%s-%s%s", r.Platform,
		r.Timestamp.Format("20060102-150405"), RecordExt)
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("Error creating record file: %v", err)
	}
	defer f.Close()
	return path, r.SaveIo(f)
}

// Exported for testing.
func LoadRecordIo(src io.Reader) (*RunRecord, error) {
	var r RunRecord
	decoder := json.NewDecoder(src)
	if err := decoder.Decode(&r); err != nil {
		return nil, fmt.Errorf("JSON decoder failed %v", err)
	}
	return &r, nil
}

// Loads a record from file.
func LoadRecord(filename string) (*RunRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Error opening record file: %v", err)
	}
	defer f.Close()
	return LoadRecordIo(f)
}
