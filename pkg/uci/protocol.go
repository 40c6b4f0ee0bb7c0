package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/counterchess/valuecore/pkg/common"
	"github.com/counterchess/valuecore/pkg/engine"
	eval "github.com/counterchess/valuecore/pkg/eval/material"
	"github.com/counterchess/valuecore/pkg/value"
	"github.com/notnil/chess"
)

var errCommandNotFound = errors.New("command not found")

type Evaluator interface {
	Evaluate(p *chess.Position) value.Value
	Trace(p *chess.Position) []eval.Term
}

type Protocol struct {
	name      string
	author    string
	version   string
	out       io.Writer
	options   engine.Options
	band      value.MateBand
	evaluator Evaluator
	evaluate  engine.EvaluateFunc
	tt        *engine.TransTable
	game      *chess.Game
}

func New(name, author, version string, out io.Writer,
	options engine.Options, evaluator Evaluator) *Protocol {
	var uci = &Protocol{
		name:      name,
		author:    author,
		version:   version,
		out:       out,
		evaluator: evaluator,
		evaluate:  engine.EvalCacheDecorator(evaluator.Evaluate),
		game:      newGame(nil),
	}
	uci.setOptions(options)
	return uci
}

func newGame(fen func(*chess.Game)) *chess.Game {
	if fen == nil {
		return chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	}
	return chess.NewGame(fen, chess.UseNotation(chess.UCINotation{}))
}

func (uci *Protocol) setOptions(options engine.Options) {
	uci.options = options
	uci.band = options.MateBand()
	uci.tt = engine.NewTransTable(options)
}

func (uci *Protocol) Handle(ctx context.Context, commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "eval":
		h = uci.evalCommand
	case "trace":
		h = uci.traceCommand
	case "value":
		h = uci.valueCommand
	}

	if h == nil {
		return fmt.Errorf("%w: %v", errCommandNotFound, commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.out, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.out, "id author %s\n", uci.author)
	fmt.Fprintf(uci.out, "option name Hash type spin default %v min 1 max 65536\n", uci.tt.Size())
	fmt.Fprintln(uci.out, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 {
		return errors.New("invalid setoption arguments")
	}
	var name, v = fields[1], fields[3]
	if !strings.EqualFold(name, "Hash") {
		return errors.New("unhandled option")
	}
	var hash, err = strconv.Atoi(v)
	if err != nil {
		return err
	}
	var options = uci.options
	options.Hash = common.Max(1, common.Min(hash, 1<<16))
	uci.setOptions(options)
	return nil
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	fmt.Fprintln(uci.out, "readyok")
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.tt.Clear()
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("unknown position command")
	}
	var args = fields
	var token = args[0]
	var movesIndex = findIndexString(args, "moves")
	var game *chess.Game
	if token == "startpos" {
		game = newGame(nil)
	} else if token == "fen" {
		var fen string
		if movesIndex == -1 {
			fen = strings.Join(args[1:], " ")
		} else {
			fen = strings.Join(args[1:movesIndex], " ")
		}
		var opt, err = chess.FEN(fen)
		if err != nil {
			return fmt.Errorf("parse fen %q: %w", fen, err)
		}
		game = newGame(opt)
	} else {
		return errors.New("unknown position command")
	}
	if movesIndex >= 0 && movesIndex+1 < len(args) {
		for _, smove := range args[movesIndex+1:] {
			if err := game.MoveStr(smove); err != nil {
				return fmt.Errorf("parse move %v: %w", smove, err)
			}
		}
	}
	uci.game = game
	uci.tt.IncDate()
	return nil
}

func (uci *Protocol) evalCommand(fields []string) error {
	var p = uci.game.Position()
	var key = engine.PositionKey(p)
	var v value.Value
	if entry, ok := uci.tt.Read(key, 0); ok && value.IsEval(entry.Bound) {
		v = entry.Eval
	} else {
		v = uci.evaluate(p)
		uci.tt.StoreEval(key, v)
	}
	fmt.Fprintln(uci.out, SearchInfoToUci(common.SearchInfo{
		Score: uci.band.UciScore(v),
	}, uci.band.Format(v)))
	return nil
}

func (uci *Protocol) traceCommand(fields []string) error {
	var p = uci.game.Position()
	var total value.Score
	for _, term := range uci.evaluator.Trace(p) {
		total.Add(term.Score)
		fmt.Fprintf(uci.out, "%v %v %v\n", term.Square, term.Piece, term.Score)
	}
	fmt.Fprintf(uci.out, "total %v\n", total)
	return nil
}

// value <v> prints how a raw engine value is reported.
func (uci *Protocol) valueCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("value expected")
	}
	var n, err = strconv.Atoi(fields[0])
	if err != nil {
		return err
	}
	var v = value.Value(n)
	fmt.Fprintf(uci.out, "info string value %v score %v (%v)\n",
		v, uci.band.UciString(v), uci.band.Format(v))
	return nil
}

func SearchInfoToUci(si common.SearchInfo, text string) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	if si.Nodes != 0 {
		var nps = si.Nodes * 1000 / (si.Time + 1)
		fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, si.Time, nps)
	}
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv %v", strings.Join(si.MainLine, " "))
	}
	if text != "" {
		fmt.Fprintf(sb, " string %v", text)
	}
	return sb.String()
}

func findIndexString(slice []string, s string) int {
	for p, v := range slice {
		if v == s {
			return p
		}
	}
	return -1
}
