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

// Aggregates over repeated measurement runs.
package util

import (
	"github.com/mageec/platformrun/energymon"

	"gonum.org/v1/gonum/stat"
)

type RunStat struct {
	Mean   float64
	StdDev float64
}

// Summary over a set of runs, per measured quantity.
type Summary struct {
	Runs       int
	Energy     RunStat
	Time       RunStat
	AvgCurrent RunStat
	AvgVoltage RunStat
}

func runStat(xs []float64) RunStat {
	s := RunStat{Mean: stat.Mean(xs, nil)}
	// StdDev of a single sample divides by zero; report zero spread.
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s
}

// Summarize computes mean and standard deviation for each quantity
// across the given runs.
func Summarize(ms []energymon.Measurement) Summary {
	energy := make([]float64, len(ms))
	elapsed := make([]float64, len(ms))
	current := make([]float64, len(ms))
	voltage := make([]float64, len(ms))
	for i, m := range ms {
		energy[i] = m.Energy
		elapsed[i] = m.Time
		current[i] = m.AvgCurrent
		voltage[i] = m.AvgVoltage
	}
	return Summary{
		Runs:       len(ms),
		Energy:     runStat(energy),
		Time:       runStat(elapsed),
		AvgCurrent: runStat(current),
		AvgVoltage: runStat(voltage),
	}
}
