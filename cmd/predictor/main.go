// Command predictor runs placeholder predictions from the command line or serves them over HTTP.
//
//	predictor predict [-json] v1 v2 ...
//	predictor static -horizon N [-json] [-plot out.html] [-interval 1m] v1 v2 ...
//	predictor serve [-config config.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aouyang1/go-predictor"
	"github.com/aouyang1/go-predictor/binding"
	"github.com/aouyang1/go-predictor/config"
	"github.com/aouyang1/go-predictor/logger"
	"github.com/aouyang1/go-predictor/server"
	"github.com/aouyang1/go-predictor/timedataset"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

var errUsage = errors.New("usage: predictor <predict|static|serve> [flags] [values...]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		fmt.Fprintln(stderr, errUsage)
		return errUsage
	}

	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", os.Getenv("PREDICTOR_CONFIG"), "path to a yaml config file")

	var err error
	switch cmd {
	case "predict":
		asJSON := fs.Bool("json", false, "write the result as json")
		if err := fs.Parse(args); err != nil {
			return err
		}
		log, _, lerr := setup(*configPath, stderr)
		if lerr != nil {
			return lerr
		}
		err = runPredict(fs.Args(), *asJSON, stdout)
		logResult(log, cmd, err)
	case "static":
		asJSON := fs.Bool("json", false, "write the result as json")
		horizon := fs.Int("horizon", 0, "number of future values to predict")
		plotPath := fs.String("plot", "", "write an html plot of the history and prediction to this path")
		interval := fs.Duration("interval", 0, "time between values when plotting, defaults to plot.interval from config")
		if err := fs.Parse(args); err != nil {
			return err
		}
		log, cfg, lerr := setup(*configPath, stderr)
		if lerr != nil {
			return lerr
		}
		if *interval <= 0 {
			*interval = cfg.Plot.Interval
		}
		err = runStatic(fs.Args(), *horizon, *asJSON, *plotPath, *interval, stdout)
		logResult(log, cmd, err)
	case "serve":
		if err := fs.Parse(args); err != nil {
			return err
		}
		log, cfg, lerr := setup(*configPath, stderr)
		if lerr != nil {
			return lerr
		}
		caller := binding.Default(binding.WithMaxHorizon(cfg.Server.MaxHorizon))
		err = server.New(cfg, log, caller).Run(ctx)
		logResult(log, cmd, err)
	default:
		fmt.Fprintln(stderr, errUsage)
		return errUsage
	}
	return err
}

func setup(configPath string, stderr io.Writer) (zerolog.Logger, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return zerolog.Nop(), nil, err
	}
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return zerolog.Nop(), nil, err
	}
	return log, cfg, nil
}

func logResult(log zerolog.Logger, cmd string, err error) {
	if err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		return
	}
	log.Debug().Str("command", cmd).Msg("command finished")
}

func parseValues(args []string) ([]float64, error) {
	vals := make([]float64, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			val, err := cast.ToFloat64E(field)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q, %w", field, err)
			}
			vals = append(vals, val)
		}
	}
	return vals, nil
}

func runPredict(args []string, asJSON bool, w io.Writer) error {
	input, err := parseValues(args)
	if err != nil {
		return err
	}
	res, err := predictor.Predict(input)
	if err != nil {
		return err
	}
	return writeResult(w, res, asJSON)
}

func runStatic(args []string, horizon int, asJSON bool, plotPath string, interval time.Duration, w io.Writer) error {
	data, err := parseValues(args)
	if err != nil {
		return err
	}
	res, err := predictor.PredictStatic(data, horizon)
	if err != nil {
		return err
	}

	if plotPath != "" {
		if err := plotStatic(plotPath, data, horizon, interval); err != nil {
			return err
		}
	}
	return writeResult(w, res, asJSON)
}

func plotStatic(path string, data []float64, horizon int, interval time.Duration) error {
	t := timedataset.GenerateT(len(data), interval, time.Now)
	series, err := predictor.PredictSeriesWithInterval(t, data, horizon, interval)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create plot file, %w", err)
	}
	defer file.Close()
	return predictor.PlotPrediction(file, t, data, series)
}

func writeResult(w io.Writer, res []float64, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(&binding.Response{Result: res})
	}
	strs := make([]string, len(res))
	for i, val := range res {
		strs[i] = cast.ToString(val)
	}
	_, err := fmt.Fprintln(w, strings.Join(strs, " "))
	return err
}
