package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docsite/cmd/docsite/commands"
	"git.home.luguber.info/inful/docsite/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	cli, err := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
