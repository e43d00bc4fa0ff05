// Command mincut finds the global minimum cut of an undirected weighted
// graph and generates clustered test graphs.
//
//	mincut solve input.txt
//	mincut solve --format triples < edges.txt
//	mincut generate --clusters 3 --cluster-size 10 --bridges 2 --seed 7
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/mincut/internal/config"
	"github.com/katalvlaran/mincut/internal/logger"
)

type cli struct {
	Config  string `help:"YAML config file" type:"path" placeholder:"FILE"`
	Verbose bool   `help:"Log every phase at debug level" short:"v"`

	Solve    solveCmd    `cmd:"" help:"Compute the global minimum cut of a graph"`
	Generate generateCmd `cmd:"" help:"Write a random graph as weighted edge triples"`
}

// app carries the resolved configuration and streams into every command.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("mincut"),
		kong.Description("Stoer-Wagner global minimum cut"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintln(stderr, "mincut:", err)
		return 2
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, "mincut:", err)
		return 2
	}

	var opts []config.LoaderOption
	if params.Config != "" {
		opts = append(opts, config.WithFile(params.Config))
	}
	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		fmt.Fprintln(stderr, "mincut:", err)
		return 1
	}
	if params.Verbose {
		cfg.Log.Level = "debug"
	}

	log, closer, err := logger.Open(logger.Config(cfg.Log), stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "mincut:", err)
		return 1
	}
	defer closer.Close()

	if err := ctx.Run(&app{cfg: cfg, log: log, stdin: stdin, stdout: stdout}); err != nil {
		log.Error("command failed", "command", ctx.Command(), "error", err)
		fmt.Fprintln(stderr, "mincut:", err)
		return 1
	}

	return 0
}
