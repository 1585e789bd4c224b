// Command demokit runs the built-in demonstration units and reports
// per-unit status.
//
// Exit codes: 0 when every unit succeeded (or nothing ran), 1 when at
// least one unit failed, 2 for usage or configuration errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/skillsenselab/demokit/config"
	"github.com/skillsenselab/demokit/demo"
	"github.com/skillsenselab/demokit/logger"
	"github.com/skillsenselab/demokit/report"
	"github.com/skillsenselab/demokit/units"
	"github.com/skillsenselab/demokit/version"
)

const exitUsage = 2

func main() {
	code, err := run(os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	os.Exit(code)
}

// run holds the whole program so tests can drive it with their own
// writers and arguments. It returns the process exit code; an error
// means a usage or configuration problem, not a unit failure.
func run(stdout, stderr io.Writer, args []string) (int, error) {
	fs := flag.NewFlagSet("demokit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configFile  = fs.String("config", "", "path to config.yml (optional)")
		only        = fs.String("only", "", "comma-separated unit names to run")
		list        = fs.Bool("list", false, "list registered units and exit")
		showVersion = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}
	if fs.NArg() > 0 {
		return exitUsage, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.Get().String())
		return report.ExitSuccess, nil
	}

	var loadOpts []config.LoaderOption
	if *configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(*configFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return exitUsage, err
	}
	logger.Init(cfg.Logging)
	log := logger.Get("demokit")

	reg := demo.NewRegistry()
	if err := units.Register(reg); err != nil {
		return exitUsage, err
	}

	if *list {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return report.ExitSuccess, nil
	}

	out := stdout
	if cfg.Runner.Output == "stderr" {
		out = stderr
	}

	selection := cfg.Runner.Only
	if *only != "" {
		selection = splitNames(*only)
	}

	startedAt := time.Now()
	var results []demo.RunResult
	if len(selection) > 0 {
		results, err = reg.RunOnly(context.Background(), out, selection...)
		if err != nil {
			return exitUsage, err
		}
	} else {
		results = reg.RunAll(context.Background(), out)
	}

	rep := report.New(results, startedAt)
	if err := rep.Render(out); err != nil {
		return exitUsage, fmt.Errorf("rendering report: %w", err)
	}

	log.Info("run complete", logger.Fields(
		logger.FieldRunID, rep.ID.String(),
		logger.FieldCount, len(results),
		logger.FieldStatus, fmt.Sprintf("%d/%d succeeded", rep.Summary.Succeeded, len(results)),
	))
	return rep.ExitCode(), nil
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
