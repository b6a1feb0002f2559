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

// Serves saved run records over HTTP. Clients can long-poll /runs to
// pick up new records as platformrun --save writes them.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mageec/platformrun"
	"github.com/mageec/platformrun/util"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/labstack/echo"
)

var (
	portFlag = flag.Int("port", 8080, "Server HTTP port number")
	dirFlag  = flag.String("dir", "results", "Records directory to display")
)

// A go-routine that waits for directory changes.
// Notifies changes by publishing a message via broker.
func watchDirectoryChanges(broker *util.Broker) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		glog.Errorf("NewWatcher failed: %v", err)
		return
	}
	defer watcher.Close()

	if err = watcher.Add(*dirFlag); err != nil {
		glog.Errorf("watcher.Add failed: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				glog.Warning("watcher.Events is not ok. Aborting")
				return
			}
			glog.V(1).Infof("Watcher event: %v", event)
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename {
				if strings.HasSuffix(event.Name, platformrun.RecordExt) {
					broker.Publish(event)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				glog.Warning("watcher.Errors is not ok. Aborting")
				return
			}
			glog.Warningf("Watcher error: %v", err)
		}
	}
}

// waitForRecords blocks the request until the records directory
// changes, the client goes away, or the long-poll times out.
func waitForRecords(c echo.Context, watcher *util.Broker) {
	var wg sync.WaitGroup
	timedOut := time.NewTimer(5 * time.Minute)
	defer timedOut.Stop()

	wg.Add(1)
	go func() {
		defer wg.Done()
		dirChanged := watcher.Subscribe()
		defer watcher.Unsubscribe(dirChanged)

		select {
		case <-timedOut.C:
			glog.V(1).Infof("Timed out")
		case <-c.Request().Context().Done():
			glog.V(1).Infof("Client disconnected")
		case <-dirChanged:
			glog.V(1).Infof("Received dir notification from broker")
		}
	}()

	wg.Wait()
}

func listRecords() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(*dirFlag, "*"+platformrun.RecordExt))
	if err != nil {
		return nil, err
	}
	for i, f := range files {
		files[i] = strings.TrimSuffix(filepath.Base(f), platformrun.RecordExt)
	}
	return files, nil
}

func loadRecord(name string) (*platformrun.RunRecord, error) {
	return platformrun.LoadRecord(filepath.Join(*dirFlag, name+platformrun.RecordExt))
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>platformrun results</title></head>
<body>
<h1>platformrun results</h1>
<ul id="runs"></ul>
<script>
async function refresh(wait) {
  const resp = await fetch("/runs" + (wait ? "" : "?wait=false"));
  const runs = await resp.json();
  const ul = document.getElementById("runs");
  ul.innerHTML = "";
  for (const r of runs) {
    const li = document.createElement("li");
    const a = document.createElement("a");
    a.href = "/runs/" + r;
    a.textContent = r;
    li.appendChild(a);
    ul.appendChild(li);
  }
  refresh(true);
}
refresh(false);
</script>
</body>
</html>
`

func main() {
	flag.Parse()
	defer glog.Flush()

	watchBroker := util.NewBroker()
	go watchBroker.Start()
	go watchDirectoryChanges(watchBroker)

	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, indexPage)
	})

	// Returns the list of saved records; long-polls unless wait=false.
	e.GET("/runs", func(c echo.Context) error {
		if c.QueryParam("wait") != "false" {
			waitForRecords(c, watchBroker)
		}
		files, err := listRecords()
		if err != nil {
			glog.Errorf("Glob failed: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, files)
	})

	// Returns a single record.
	e.GET("/runs/:run", func(c echo.Context) error {
		record, err := loadRecord(c.Param("run"))
		if err != nil {
			glog.Errorf("Error loading record file: %v", err)
			return c.String(http.StatusNotFound, "Unknown run")
		}
		return c.JSON(http.StatusOK, record)
	})

	glog.Fatal(e.Start(fmt.Sprintf(":%d", *portFlag)))
}
