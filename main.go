package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"bloglist/app/config"
	"bloglist/app/logger"
	"bloglist/cli"
)

const cliVersion = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes one command and returns the process exit code
func run(args []string, in io.Reader, out io.Writer) int {
	if len(args) < 1 {
		printHelp(out)
		return 1
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "help":
		printHelp(out)
		return 0
	case "version":
		fmt.Fprintf(out, "bloglist version %s\n", cliVersion)
		return 0
	case "serve", "db":
	default:
		fmt.Fprintf(out, "Unknown command: %s\n\n", args[0])
		printHelp(out)
		return 1
	}

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	log := logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Pretty)
	runner := &cli.Runner{Config: cfg, Log: log, In: in, Out: out}

	if cmd == "serve" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runner.Serve(ctx); err != nil {
			log.Error().Err(err).Msg("server stopped")
			return 1
		}
		return 0
	}

	if err := runner.HandleDB(args[1:]); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			log.Error().Err(err).Msg("db command failed")
		}
		return 1
	}
	return 0
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `Usage: bloglist <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the blog list API server.
  db <command>         Manage the database (backup, restore, clean).

Configuration is read from config.yaml, .env and the environment
(e.g. SERVER_PORT, DATABASE_PATH, AUTH_SECRET).`)
}
