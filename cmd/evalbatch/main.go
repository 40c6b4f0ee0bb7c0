package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

type Settings struct {
	InputPath  string
	ResultPath string
	Threads    int
	Hash       int
}

func main() {
	var settings Settings
	var cpuProfile string
	flag.StringVar(&settings.InputPath, "input", "", "epd or fen file, one position per line")
	flag.StringVar(&settings.ResultPath, "output", "evals.csv", "result file")
	flag.IntVar(&settings.Threads, "threads", runtime.NumCPU(), "number of evaluation workers")
	flag.IntVar(&settings.Hash, "hash", 16, "position cache size in megabytes")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile into this folder")
	flag.Parse()

	var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	if cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.Quiet).Stop()
	}

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var err = run(ctx, settings, logger)
	if err != nil {
		logger.Error().Err(err).Msg("evalbatch failed")
	}
}
