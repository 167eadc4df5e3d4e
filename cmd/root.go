package cmd

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/sched-sim/sched-sim/sim"
	"github.com/sched-sim/sched-sim/sim/trace"
	"github.com/sched-sim/sched-sim/sim/workload"
)

var (
	logLevel     string // Log verbosity level
	scenarioPath string // Optional yaml scenario file overriding the built-in three runs

	// CLI flags for synthetic input generation
	genOutput        string // File the generated process set is written to
	genSeed          int64  // Seed for random process generation
	genCount         int    // Number of processes
	genArrivalSpread int64  // Max arrival time
	genBurstMean     int64  // Average total CPU time
	genBurstStdev    int64  // Stddev total CPU time
	genBurstMin      int64  // Min total CPU time
	genBurstMax      int64  // Max total CPU time
	genIOFreq        int64  // I/O frequency (0 = no I/O)
	genIODur         int64  // I/O duration (0 = no I/O)
	genQuantum       int64  // Round-robin quantum (0 = no preemption)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "sched-sim",
	Short: "Discrete-event simulator for CPU scheduling policies",
}

// setupLogging parses and applies the --log flag.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd executes the scenario: one independent simulation per policy
// run, each reading its own input file and writing its own trace file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation scenario",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		scenario := DefaultScenario()
		if scenarioPath != "" {
			loaded, err := LoadScenario(scenarioPath)
			if err != nil {
				logrus.Fatalf("Could not load scenario: %v", err)
			}
			scenario = loaded
		}

		for _, run := range scenario.Runs {
			policy, err := sim.ParsePolicy(run.Policy)
			if err != nil {
				logrus.Fatalf("Run %s: %v", run.Name, err)
			}

			procs, err := workload.ParseFile(run.Input)
			if err != nil && !errors.Is(err, workload.ErrTruncatedInput) {
				logrus.Fatalf("Run %s: unable to read input %s: %v", run.Name, run.Input, err)
			}
			if err != nil {
				logrus.Warnf("Run %s: %v; simulating the %d processes parsed so far", run.Name, err, len(procs))
			}

			s := sim.NewSimulator(policy, procs)
			s.Run()

			if err := trace.WriteFile(run.Output, policy.Title(), s.Trace); err != nil {
				logrus.Fatalf("Run %s: unable to write trace %s: %v", run.Name, run.Output, err)
			}
			s.Metrics.Print(policy)
			logrus.Infof("%s simulation trace written to: %s", policy, run.Output)
		}
	},
}

// genCmd writes a synthetic process set in the comma-separated input
// format, for experimenting beyond the hand-written sample files.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic process input file",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		procs := workload.Generate(workload.GenConfig{
			Count:         genCount,
			Seed:          genSeed,
			ArrivalSpread: genArrivalSpread,
			BurstMean:     genBurstMean,
			BurstStdDev:   genBurstStdev,
			BurstMin:      genBurstMin,
			BurstMax:      genBurstMax,
			IOFreq:        genIOFreq,
			IODur:         genIODur,
			Quantum:       genQuantum,
		})

		f, err := os.Create(genOutput)
		if err != nil {
			logrus.Fatalf("Unable to create %s: %v", genOutput, err)
		}
		defer f.Close()
		if err := workload.WriteInput(f, procs); err != nil {
			logrus.Fatalf("Unable to write %s: %v", genOutput, err)
		}
		logrus.Infof("Wrote %d processes to %s", len(procs), genOutput)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a yaml scenario file (default: built-in fcfs/sjf/srtf scenario)")

	genCmd.Flags().StringVar(&genOutput, "output", "generated.txt", "File to write the generated process set to")
	genCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random process generation")
	genCmd.Flags().IntVar(&genCount, "count", 10, "Number of processes")
	genCmd.Flags().Int64Var(&genArrivalSpread, "arrival-spread", 50, "Arrivals are drawn uniformly from [0, arrival-spread]")
	genCmd.Flags().Int64Var(&genBurstMean, "burst", 20, "Average total CPU time")
	genCmd.Flags().Int64Var(&genBurstStdev, "burst-stdev", 8, "Stddev total CPU time")
	genCmd.Flags().Int64Var(&genBurstMin, "burst-min", 1, "Min total CPU time")
	genCmd.Flags().Int64Var(&genBurstMax, "burst-max", 60, "Max total CPU time")
	genCmd.Flags().Int64Var(&genIOFreq, "io-freq", 5, "CPU time between I/O waits (0 = no I/O)")
	genCmd.Flags().Int64Var(&genIODur, "io-dur", 1, "Duration of each I/O wait (0 = no I/O)")
	genCmd.Flags().Int64Var(&genQuantum, "quantum", 2, "Round-robin quantum (0 = no preemption)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
}
