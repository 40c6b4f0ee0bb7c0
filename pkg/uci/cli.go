package uci

import (
	"bufio"
	"context"
	"io"
	"log"
)

type CommandHandler interface {
	Handle(ctx context.Context, command string) error
}

// RunCli feeds handler one command per line until "quit", EOF or ctx is done.
func RunCli(ctx context.Context, logger *log.Logger, in io.Reader, handler CommandHandler) error {
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return nil
		}
		var err = handler.Handle(ctx, commandLine)
		if err != nil {
			logger.Println(err)
		}
	}
	return scanner.Err()
}
