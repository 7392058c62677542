package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChristopherRabotin/lapsim"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

// This only reads the scenario, runs the configuration search and reports the fastest configuration.

var (
	scenario  string
	exportDir string
	verbose   bool
)

func init() {
	pflag.StringVarP(&scenario, "config", "c", "", "TOML scenario file (defaults to the reference track and roster)")
	pflag.String("mode", lapsim.Resistive.String(), "dynamics model: resistive or frictionless")
	pflag.Int("samples", lapsim.DefaultSamples, "number of samples per segment")
	pflag.Int("workers", 0, "number of search workers (0 for one per CPU)")
	pflag.StringVar(&exportDir, "export", "", "directory where the results and the best lap are written as CSV")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log every evaluated configuration")
}

func main() {
	pflag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	conf, err := loadConfig()
	if err != nil {
		level.Error(logger).Log("subsys", "config", "err", err)
		os.Exit(1)
	}

	dynamics := conf.Dynamics()
	opts := lapsim.SearchOptions{Workers: conf.Workers, BoostFactor: conf.BoostFactor, Logger: logger}
	report, err := lapsim.Search(dynamics, conf.Vehicles, conf.Track, opts)
	if err != nil {
		level.Error(logger).Log("subsys", "search", "err", err)
		os.Exit(1)
	}
	fmt.Printf("best: %s\n", report.Best)
	fmt.Printf("summary: %s\n", report.Summary)

	if exportDir != "" {
		if err := export(dynamics, conf, report); err != nil {
			level.Error(logger).Log("subsys", "export", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("subsys", "export", "dir", exportDir)
	}
}

func loadConfig() (lapsim.Config, error) {
	v, err := lapsim.LoadViper(scenario)
	if err != nil {
		return lapsim.Config{}, err
	}
	for key, flag := range map[string]string{
		"simulation.mode":    "mode",
		"simulation.samples": "samples",
		"simulation.workers": "workers",
	} {
		if err := v.BindPFlag(key, pflag.Lookup(flag)); err != nil {
			return lapsim.Config{}, err
		}
	}
	return lapsim.ConfigFromViper(v)
}

// export writes the result set, and replays the best configuration to write its trajectories.
func export(dynamics lapsim.Dynamics, conf lapsim.Config, report *lapsim.SearchReport) error {
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(exportDir, "results.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	if err := lapsim.WriteResultsCSV(f, report.Results); err != nil {
		return err
	}

	opts := lapsim.SearchOptions{BoostFactor: conf.BoostFactor}
	lap, err := lapsim.RunConfiguration(dynamics, report.Best.Configuration, conf.Track, opts)
	if err != nil {
		return err
	}
	fl, err := os.Create(filepath.Join(exportDir, "best-lap.csv"))
	if err != nil {
		return err
	}
	defer fl.Close()
	return lapsim.WriteLapCSV(fl, lap)
}
