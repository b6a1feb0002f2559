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

package platformrun

import (
	"fmt"
	"io"

	"github.com/mageec/platformrun/energymon"
	"github.com/mageec/platformrun/util"
)

// WriteReport renders a measurement as the four human-readable result
// lines, each value SI-prefix-scaled.
func WriteReport(w io.Writer, m energymon.Measurement) {
	fmt.Fprintf(w, "Energy:          %sJ\n", util.Format(m.Energy))
	fmt.Fprintf(w, "Time:            %ss\n", util.Format(m.Time))
	fmt.Fprintf(w, "Average current: %sA\n", util.Format(m.AvgCurrent))
	fmt.Fprintf(w, "Average voltage: %sV\n", util.Format(m.AvgVoltage))
}

// WriteSummary renders the aggregate of a repeated run.
func WriteSummary(w io.Writer, s util.Summary) {
	fmt.Fprintf(w, "Runs:            %8d\n", s.Runs)
	fmt.Fprintf(w, "Energy:          %sJ (stddev %sJ)\n",
		util.Format(s.Energy.Mean), util.Format(s.Energy.StdDev))
	fmt.Fprintf(w, "Time:            %ss (stddev %ss)\n",
		util.Format(s.Time.Mean), util.Format(s.Time.StdDev))
	fmt.Fprintf(w, "Average current: %sA (stddev %sA)\n",
		util.Format(s.AvgCurrent.Mean), util.Format(s.AvgCurrent.StdDev))
	fmt.Fprintf(w, "Average voltage: %sV (stddev %sV)\n",
		util.Format(s.AvgVoltage.Mean), util.Format(s.AvgVoltage.StdDev))
}
