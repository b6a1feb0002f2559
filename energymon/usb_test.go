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

package energymon

import "testing"

func TestParseTriggerPin(t *testing.T) {
	port, num, err := parseTriggerPin("PA0")
	if err != nil {
		t.Fatalf("parseTriggerPin failed: %v", err)
	}
	if port != 'A' || num != 0 {
		t.Errorf("Unexpected pin: port=%c num=%d", port, num)
	}

	port, num, err = parseTriggerPin("PH15")
	if err != nil {
		t.Fatalf("parseTriggerPin failed: %v", err)
	}
	if port != 'H' || num != 15 {
		t.Errorf("Unexpected pin: port=%c num=%d", port, num)
	}
}

func TestParseTriggerPinRejectsMalformedNames(t *testing.T) {
	for _, pin := range []string{"", "PA", "A0", "PZ1", "PA16", "PAx"} {
		if _, _, err := parseTriggerPin(pin); err == nil {
			t.Errorf("parseTriggerPin accepted %q", pin)
		}
	}
}
