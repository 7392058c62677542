package lapsim

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Configuration is one point of the search space.
type Configuration struct {
	Vehicle VehicleSpec
	Boost   Phase
	Wing    bool
	Skirt   bool
}

func (c Configuration) String() string {
	return fmt.Sprintf("%s boost=%s wing=%v skirt=%v", c.Vehicle.Name, c.Boost, c.Wing, c.Skirt)
}

// Configurations enumerates every booster phase, rear wing and side skirt combination
// for each vehicle of the roster, in that nesting order.
func Configurations(roster []VehicleSpec) []Configuration {
	configs := make([]Configuration, 0, len(Phases)*4*len(roster))
	for _, boost := range Phases {
		for _, wing := range []bool{false, true} {
			for _, skirt := range []bool{false, true} {
				for _, spec := range roster {
					configs = append(configs, Configuration{Vehicle: spec, Boost: boost, Wing: wing, Skirt: skirt})
				}
			}
		}
	}
	return configs
}

// Result is the outcome of the evaluation of one configuration.
// Err is set if the lap could not be completed, in which case Time is +Inf.
type Result struct {
	Time    float64    // s
	Splits  [4]float64 // s, in Segments order
	Vehicle string
	Boost   Phase
	Wing    bool
	Skirt   bool
	Err     error

	Configuration Configuration // evaluated configuration, for replays
}

// OK returns whether the lap was completed.
func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) String() string {
	if !r.OK() {
		return fmt.Sprintf("%s boost=%s wing=%v skirt=%v: %s", r.Vehicle, r.Boost, r.Wing, r.Skirt, r.Err)
	}
	return fmt.Sprintf("%s boost=%s wing=%v skirt=%v: %.4fs", r.Vehicle, r.Boost, r.Wing, r.Skirt, r.Time)
}

// SearchOptions tunes the configuration search.
type SearchOptions struct {
	Workers     int     // defaults to the number of CPUs
	BoostFactor float64 // defaults to DefaultBoostFactor
	Logger      kitlog.Logger
}

func (o SearchOptions) withDefaults() SearchOptions {
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.BoostFactor == 0 {
		o.BoostFactor = DefaultBoostFactor
	}
	if o.Logger == nil {
		o.Logger = kitlog.NewNopLogger()
	}
	return o
}

// RunConfiguration builds a fresh vehicle for the configuration and drives one lap with it.
func RunConfiguration(d Dynamics, cfg Configuration, track Track, opts SearchOptions) (*Lap, error) {
	opts = opts.withDefaults()
	v, err := NewVehicle(cfg.Vehicle, cfg.Wing, cfg.Skirt, cfg.Boost, WithLogger(opts.Logger), WithBoostFactor(opts.BoostFactor))
	if err != nil {
		return nil, err
	}
	return RunLap(d, v, track)
}

// Evaluate drives one lap with the configuration and summarizes it.
func Evaluate(d Dynamics, cfg Configuration, track Track, opts SearchOptions) Result {
	rslt := Result{Time: math.Inf(1), Vehicle: cfg.Vehicle.Name, Boost: cfg.Boost, Wing: cfg.Wing, Skirt: cfg.Skirt, Configuration: cfg}
	lap, err := RunConfiguration(d, cfg, track, opts)
	if err != nil {
		rslt.Err = err
		return rslt
	}
	rslt.Time = lap.Total
	rslt.Splits = lap.Splits
	return rslt
}

// Summary gives statistics over the completed laps of a search.
type Summary struct {
	Evaluated int
	Failed    int
	Mean      float64 // s
	StdDev    float64 // s
	Worst     float64 // s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d evaluated, %d failed, mean %.4fs, σ %.4fs, worst %.4fs", s.Evaluated, s.Failed, s.Mean, s.StdDev, s.Worst)
}

// SearchReport holds the best configuration and every evaluated result.
type SearchReport struct {
	Best    Result
	Results []Result // in Configurations order
	Summary Summary
}

// Search evaluates every configuration of the roster on the track and returns the fastest.
// Configurations are spread over the workers; each evaluation owns its vehicle, and the
// reduction happens once all of them are done so the report does not depend on the number
// of workers. Failed configurations are kept in the results. If none completes the lap,
// the report is returned along with ErrNoFeasibleConfiguration.
func Search(d Dynamics, roster []VehicleSpec, track Track, opts SearchOptions) (*SearchReport, error) {
	opts = opts.withDefaults()
	if err := track.Validate(); err != nil {
		return nil, err
	}
	configs := Configurations(roster)
	results := make([]Result, len(configs))
	level.Info(opts.Logger).Log("subsys", "search", "dynamics", d.Name(), "configurations", len(configs), "workers", opts.Workers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			logger := kitlog.With(opts.Logger, "worker", worker)
			wOpts := opts
			wOpts.Logger = logger
			for i := range jobs {
				results[i] = Evaluate(d, configs[i], track, wOpts)
				if results[i].OK() {
					level.Debug(logger).Log("subsys", "search", "config", configs[i], "time(s)", results[i].Time)
				} else {
					level.Warn(logger).Log("subsys", "search", "config", configs[i], "err", results[i].Err)
				}
			}
		}(w)
	}
	for i := range configs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	report := &SearchReport{Best: Result{Time: math.Inf(1)}, Results: results}
	found := false
	times := make([]float64, 0, len(results))
	for _, rslt := range results {
		if !rslt.OK() {
			report.Summary.Failed++
			continue
		}
		times = append(times, rslt.Time)
		if rslt.Time < report.Best.Time {
			report.Best = rslt
			found = true
		}
	}
	report.Summary.Evaluated = len(results)
	if len(times) > 0 {
		report.Summary.Mean = stat.Mean(times, nil)
		report.Summary.Worst = floats.Max(times)
	}
	if len(times) > 1 {
		report.Summary.StdDev = stat.StdDev(times, nil)
	}
	if !found {
		err := fmt.Errorf("%w: %d configurations failed", ErrNoFeasibleConfiguration, report.Summary.Failed)
		report.Best.Err = err
		return report, err
	}
	level.Info(opts.Logger).Log("subsys", "search", "status", "finished", "best", report.Best, "summary", report.Summary)
	return report, nil
}
