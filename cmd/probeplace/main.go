package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/probeplace/placement"
	"github.com/katalvlaran/probeplace/probeio"
)

var log = logrus.New()

type config struct {
	inPath     string
	jsonInput  bool
	verbose    bool
	noBound    bool
	profileDir string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("probeplace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.inPath, "in", "", "input file path (default stdin)")
	fs.BoolVar(&cfg.jsonInput, "json", false, "read the instance as JSON")
	fs.BoolVar(&cfg.verbose, "v", false, "log search statistics and the placement")
	fs.BoolVar(&cfg.noBound, "no-bound", false, "disable pruning (diagnostic)")
	fs.StringVar(&cfg.profileDir, "profile", "", "write a CPU profile into this directory")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupLogging(cfg *config, stderr io.Writer) {
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logLevel := logrus.InfoLevel
	if cfg.verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
}

func readInstance(cfg *config, stdin io.Reader) (*probeio.Instance, error) {
	in := stdin
	if cfg.inPath != "" {
		f, err := os.Open(cfg.inPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	if !cfg.jsonInput {
		return probeio.Parse(in)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	return probeio.ParseJSON(data)
}

// run is main without the process exit, returning the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	setupLogging(cfg, stderr)

	if cfg.profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.profileDir), profile.Quiet).Stop()
	}

	inst, err := readInstance(cfg, stdin)
	if err != nil {
		entry := log.WithError(err)
		if stage := probeio.Stage(err); stage != "" {
			entry = entry.WithField("stage", stage)
		}
		entry.Error("unable to read instance")
		return 1
	}
	if inst.DeclaredProbes >= 0 && inst.DeclaredProbes != len(inst.Ranges) {
		log.WithFields(logrus.Fields{
			"declared": inst.DeclaredProbes,
			"listed":   len(inst.Ranges),
		}).Warn("probe count disagrees with probe list, using the list")
	}
	log.WithFields(logrus.Fields{
		"width":  inst.Grid.Width,
		"height": inst.Grid.Height,
		"probes": inst.Ranges,
	}).Debug("instance")

	opts := []placement.Option{}
	if cfg.noBound {
		opts = append(opts, placement.WithBound(placement.NoBound))
	}
	if cfg.verbose {
		opts = append(opts, placement.WithOnImprove(func(r placement.Result) {
			log.WithFields(logrus.Fields{
				"peaks":    r.Peaks,
				"sum":      r.AltitudeSum,
				"placed":   r.PlacedAltitude,
				"expanded": r.Stats.Expanded,
			}).Debug("incumbent improved")
		}))
	}

	res, err := placement.Solve(inst.Grid, inst.Ranges, opts...)
	if err != nil {
		log.WithError(err).WithField("stage", "search").Error("unable to solve")
		return 1
	}

	log.WithFields(logrus.Fields{
		"expanded":  res.Stats.Expanded,
		"pushed":    res.Stats.Pushed,
		"pruned":    res.Stats.Pruned,
		"terminals": res.Stats.Terminals,
	}).Debug("search finished")
	for i, p := range res.Placement {
		log.WithFields(logrus.Fields{
			"probe":    i,
			"range":    p.Range,
			"x":        p.X,
			"y":        p.Y,
			"altitude": p.Altitude,
		}).Debug("placed")
	}

	if err := probeio.Format(stdout, res.Outcome); err != nil {
		log.WithError(err).Error("unable to write result")
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
