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

import "fmt"

// siPrefixes in descending magnitude, stepping by one-thousandth.
var siPrefixes = []string{"", "m", "u", "n", "p"}

// Format renders v with three decimals and the largest SI magnitude
// prefix (none, milli, micro, nano, pico) at which the scaled value
// reaches 1.0. A value of exactly 1.0 stays at its magnitude. Values
// that never reach 1.0 render at pico, the floor. Pure function.
func Format(v float64) string {
	for i, prefix := range siPrefixes {
		if v >= 1.0 || i == len(siPrefixes)-1 {
			return fmt.Sprintf("%8.3f %s", v, prefix)
		}
		v *= 1000.0
	}
	// Unreachable: the loop always returns at the last prefix.
	return fmt.Sprintf("%8.3f %s", v, siPrefixes[len(siPrefixes)-1])
}
