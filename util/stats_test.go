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
	"math"
	"testing"

	"github.com/mageec/platformrun/energymon"
	"github.com/mageec/platformrun/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTwoRuns(t *testing.T) {
	s := util.Summarize([]energymon.Measurement{
		{Energy: 1.0, Time: 0.1, AvgCurrent: 0.02, AvgVoltage: 3.2},
		{Energy: 3.0, Time: 0.3, AvgCurrent: 0.04, AvgVoltage: 3.4},
	})
	require.Equal(t, 2, s.Runs)
	assert.InDelta(t, 2.0, s.Energy.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt2, s.Energy.StdDev, 1e-12)
	assert.InDelta(t, 0.2, s.Time.Mean, 1e-12)
	assert.InDelta(t, 0.03, s.AvgCurrent.Mean, 1e-12)
	assert.InDelta(t, 3.3, s.AvgVoltage.Mean, 1e-12)
}

func TestSummarizeSingleRunHasZeroSpread(t *testing.T) {
	s := util.Summarize([]energymon.Measurement{
		{Energy: 1.5, Time: 0.02, AvgCurrent: 0.03, AvgVoltage: 3.3},
	})
	require.Equal(t, 1, s.Runs)
	assert.Equal(t, 1.5, s.Energy.Mean)
	assert.Zero(t, s.Energy.StdDev)
	assert.Zero(t, s.Time.StdDev)
}
