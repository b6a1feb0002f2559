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

// Runs an executable on an embedded platform and reports its measured
// energy consumption.
package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/mageec/platformrun"
	"github.com/mageec/platformrun/energymon"
	"github.com/mageec/platformrun/proc"
	"github.com/mageec/platformrun/util"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbosity  int
	repeat     int
	saveDir    string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platformrun PLATFORM EXECUTABLE",
		Short: "Run an executable on an embedded platform and measure its energy",
		Long: "platformrun flashes EXECUTABLE onto PLATFORM via the platform's\n" +
			"toolchain and reports energy, time, average current and average\n" +
			"voltage measured by the attached energy monitor.\n\n" +
			"Available platforms:\n  " +
			fmt.Sprintln(platformrun.SupportedPlatforms()),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "measurement.json",
		"measurement configuration to load")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v",
		"be verbose (repeat to also stream toolchain output)")
	cmd.Flags().IntVar(&repeat, "repeat", 1,
		"number of measured runs to perform")
	cmd.Flags().StringVar(&saveDir, "save", "",
		"directory to save the run record into")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	platform, executable := args[0], args[1]

	goflag.Set("logtostderr", "true")
	if verbosity > 0 {
		goflag.Set("v", strconv.Itoa(verbosity))
	}

	if repeat < 1 {
		repeat = 1
	}

	cfg, err := platformrun.LoadConfig(configPath)
	if err != nil {
		return err
	}

	runner := proc.NewRunner(verbosity >= 2)
	registry := platformrun.NewRegistry(cfg, runner, energymon.OpenUsbDevice,
		platformrun.Options{Debug: verbosity >= 2})

	driver, err := registry.Lookup(platform)
	if err != nil {
		return err
	}

	// Ctrl-C cancels the otherwise unbounded measurement wait.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var measurements []energymon.Measurement
	for i := 0; i < repeat; i++ {
		glog.V(1).Infof("Run %d/%d on %s", i+1, repeat, platform)
		m, err := driver.Run(ctx, executable)
		if err != nil {
			return err
		}
		measurements = append(measurements, m)
	}

	if repeat > 1 {
		platformrun.WriteSummary(os.Stdout, util.Summarize(measurements))
	} else {
		platformrun.WriteReport(os.Stdout, measurements[0])
	}

	if saveDir != "" {
		record := &platformrun.RunRecord{
			Platform:     platform,
			Executable:   executable,
			Timestamp:    time.Now(),
			Measurements: measurements,
		}
		path, err := record.Save(saveDir)
		if err != nil {
			return err
		}
		glog.V(1).Infof("Saved run record to %s", path)
	}
	return nil
}

func main() {
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "platformrun: %v\n", err)
		var cfgErr *platformrun.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
