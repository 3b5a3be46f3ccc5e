// Command profdemo is a small places API that shows the profiler at work:
// every request is profiled, its SQL is recorded, and the results are
// served under /profiler.
//
//	profdemo -config profdemo.yaml
//
// Without a config file it runs on an in-memory SQLite database. Settings
// can be overridden with PROFDEMO_* environment variables.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kroma-labs/sentinel-profiler/cmd/profdemo/internal/config"
	"go.uber.org/fx"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fx.New(app(cfg, os.Stdout)).Run()
}
