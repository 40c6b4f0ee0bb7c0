package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/counterchess/valuecore/pkg/common"
	"github.com/counterchess/valuecore/pkg/engine"
	eval "github.com/counterchess/valuecore/pkg/eval/material"
	"github.com/counterchess/valuecore/pkg/value"
	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var errEmptyLine = errors.New("empty line")

type EvalResult struct {
	fen   string
	value value.Value
}

func run(ctx context.Context, settings Settings, logger zerolog.Logger) error {
	if settings.InputPath == "" {
		return errors.New("input path is required")
	}
	var options = engine.NewOptions()
	options.Hash = settings.Hash
	options.Threads = common.Max(1, settings.Threads)

	var start = time.Now()
	logger.Info().
		Str("input", settings.InputPath).
		Str("output", settings.ResultPath).
		Int("threads", options.Threads).
		Msg("evaluation started")

	var band = options.MateBand()
	var tt = engine.NewTransTable(options)
	var evaluate = engine.EvalCacheDecorator(eval.NewEvaluationService().Evaluate)

	g, ctx := errgroup.WithContext(ctx)

	var fens = make(chan string, 128)
	var results = make(chan EvalResult, 128)

	g.Go(func() error {
		defer close(fens)
		return loadFens(ctx, settings.InputPath, fens)
	})

	var count int
	g.Go(func() error {
		var err error
		count, err = saveResults(ctx, results, settings.ResultPath, band)
		return err
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < options.Threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return evaluateFens(ctx, fens, results, tt, evaluate, logger)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var err = g.Wait()
	if err != nil {
		return err
	}
	logger.Info().
		Int("positions", count).
		Dur("elapsed", time.Since(start)).
		Msg("evaluation finished")
	return nil
}

func loadFens(ctx context.Context, path string, fens chan<- string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fens <- line:
		}
	}
	return scanner.Err()
}

func evaluateFens(
	ctx context.Context,
	fens <-chan string,
	results chan<- EvalResult,
	tt *engine.TransTable,
	evaluate engine.EvaluateFunc,
	logger zerolog.Logger,
) error {
	for line := range fens {
		var fen, err = parseEpdLine(line)
		if err != nil {
			logger.Warn().Err(err).Str("line", line).Msg("skip line")
			continue
		}
		opt, err := chess.FEN(fen)
		if err != nil {
			logger.Warn().Err(err).Str("fen", fen).Msg("skip position")
			continue
		}
		var p = chess.NewGame(opt).Position()
		var key = engine.PositionKey(p)
		var v value.Value
		if entry, ok := tt.Read(key, 0); ok && value.IsEval(entry.Bound) {
			v = entry.Eval
		} else {
			v = evaluate(p)
			tt.StoreEval(key, v)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- EvalResult{fen: fen, value: v}:
		}
	}
	return nil
}

// parseEpdLine keeps the board, side, castling and en passant fields.
// Move counters are taken from the line when present.
func parseEpdLine(line string) (string, error) {
	var fields = strings.Fields(line)
	if len(fields) == 0 {
		return "", errEmptyLine
	}
	if len(fields) < 4 {
		return "", fmt.Errorf("too few fields: %v", len(fields))
	}
	var counters = []string{"0", "1"}
	if len(fields) >= 6 && isNumber(fields[4]) && isNumber(fields[5]) {
		counters = fields[4:6]
	}
	return strings.Join(append(fields[:4:4], counters...), " "), nil
}

func isNumber(s string) bool {
	var _, err = strconv.Atoi(s)
	return err == nil
}

func saveResults(
	ctx context.Context,
	results <-chan EvalResult,
	path string,
	band value.MateBand,
) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var w = bufio.NewWriter(file)
	var count int
	for result := range results {
		var score = band.UciScore(result.value)
		fmt.Fprintf(w, "%v;%v;%v\n", result.fen, score.Centipawns, band.Format(result.value))
		count++
	}
	if err := w.Flush(); err != nil {
		return count, err
	}
	return count, ctx.Err()
}
