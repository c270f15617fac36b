//The bankshot tool finds the launch angle which lands the projectile at the
//target distance behind the screen and in front of the wall.
//
//	bankshot -input inputs.txt [-method euler|rk4|both] [-plots DIR] [-json]
//	bankshot -default -input inputs.txt
//
//The exit status is 1 on failure and 2 when the angle search did not converge.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gehtsoft-usa/go_bankshot"
	"github.com/gehtsoft-usa/go_bankshot/diagram"
	"github.com/gehtsoft-usa/go_bankshot/input"
	"github.com/gehtsoft-usa/go_bankshot/logging"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitNotConverged = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	inputPath     string
	createDefault bool
	method        string
	plots         string
	json          bool
	maxIterations int
	maxSteps      int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("bankshot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.inputPath, "input", "inputs.txt", "Path to the parameter file")
	fs.BoolVar(&o.createDefault, "default", false, "Write the default parameter file to -input and exit")
	fs.StringVar(&o.method, "method", "both", "Integration scheme: euler, rk4 or both")
	fs.StringVar(&o.plots, "plots", "", "Directory to save one plot per bisection iteration")
	fs.BoolVar(&o.json, "json", false, "Print the results as JSON")
	fs.IntVar(&o.maxIterations, "max-iterations", 100, "Maximum number of bisection iterations")
	fs.IntVar(&o.maxSteps, "max-steps", 1000000, "Maximum number of integration steps of one shot")
	err := fs.Parse(args)
	return o, err
}

func steppersFor(method string) ([]go_bankshot.Stepper, error) {
	if method == "both" {
		return []go_bankshot.Stepper{go_bankshot.CreateEulerStepper(), go_bankshot.CreateRK4Stepper()}, nil
	}
	stepper, err := go_bankshot.StepperByName(method)
	if err != nil {
		return nil, err
	}
	return []go_bankshot.Stepper{stepper}, nil
}

func solve(config go_bankshot.PhysicalConfig, stepper go_bankshot.Stepper, o options, logger *slog.Logger) (go_bankshot.SolverResult, error) {
	calc := go_bankshot.CreateTrajectoryCalculator(config, stepper)
	calc.SetMaximumSteps(o.maxSteps)

	solver := go_bankshot.CreateShootingSolver(calc)
	solver.SetMaximumIterations(o.maxIterations)
	solver.SetLogger(logger)

	if o.plots != "" {
		observer, err := diagram.IterationObserver(o.plots, stepper.Name()+"_", config.Screen(), config.Wall(), logger)
		if err != nil {
			return go_bankshot.SolverResult{}, err
		}
		solver.SetObserver(observer)
	}

	result, err := solver.Solve()
	if err != nil && !errors.Is(err, go_bankshot.ErrNotConverged) {
		return result, err
	}

	if o.plots != "" {
		path := filepath.Join(o.plots, stepper.Name()+"_final.png")
		title := fmt.Sprintf("%s: %s", stepper.Name(), result.Angle())
		if perr := diagram.SaveTrajectory(path, title, result.Shot().Trajectory(), config.Screen(), config.Wall()); perr != nil {
			logger.Warn("cannot save final plot", "path", path, "error", perr)
		}
	}
	return result, err
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	} else if err != nil {
		return exitFailure
	}
	logger := logging.NewLogger(stderr)

	if o.createDefault {
		if err := input.Save(o.inputPath, go_bankshot.CreateDefaultPhysicalConfig()); err != nil {
			logger.Error("failed to create default parameter file", "input", o.inputPath, "error", err)
			return exitFailure
		}
		logger.Info("created default parameter file", "input", o.inputPath)
		return exitOK
	}

	config, err := input.Load(o.inputPath)
	if err != nil {
		logger.Error("failed to load parameters", "error", err)
		return exitFailure
	}
	steppers, err := steppersFor(o.method)
	if err != nil {
		logger.Error("invalid method", "method", o.method, "error", err)
		return exitFailure
	}

	status := exitOK
	reports := make([]methodReport, 0, len(steppers))
	for _, stepper := range steppers {
		methodLogger := logger.With("method", stepper.Name())
		result, err := solve(config, stepper, o, methodLogger)
		if errors.Is(err, go_bankshot.ErrNotConverged) {
			methodLogger.Warn("angle search did not converge", "error", err)
			status = exitNotConverged
		} else if err != nil {
			methodLogger.Error("angle search failed", "error", logging.WrapError(err, "solving with %s", stepper.Name()))
			return exitFailure
		}
		reports = append(reports, newMethodReport(stepper.Name(), config, result))
	}

	if o.json {
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(reports); err != nil {
			logger.Error("failed to write results", "error", err)
			return exitFailure
		}
	} else {
		fmt.Fprintln(stdout, renderReport(config, reports))
	}
	return status
}
