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

package util

import (
	"fmt"
	"io"
	"os"

	"github.com/marcinbor85/gohex"
)

type Segment struct {
	Address uint32
	Data    []byte
}

// Exported for testing.
func LoadIntelHexIo(src io.Reader) ([]Segment, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(src); err != nil {
		return nil, err
	}

	raw := mem.GetDataSegments()
	if len(raw) == 0 {
		return nil, fmt.Errorf("Image has no data segments")
	}
	segments := make([]Segment, len(raw))
	for i, s := range raw {
		segments[i] = Segment{s.Address, s.Data}
	}
	return segments, nil
}

// LoadIntelHexFile parses an Intel-hex image, as produced by objcopy,
// into its data segments. Used to sanity-check a converted image
// before it is handed to a flasher.
func LoadIntelHexFile(filename string) ([]Segment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadIntelHexIo(file)
}
