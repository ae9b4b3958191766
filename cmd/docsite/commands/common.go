package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/icon"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/version"
)

// LogLevelEnv overrides the log level when --verbose is not given.
const LogLevelEnv = "DOCSITE_LOG_LEVEL"

// Global carries per-invocation state shared by all subcommands.
type Global struct {
	Context  context.Context
	Logger   *slog.Logger
	BuildID  string
	Recorder metrics.Recorder
	Stdout   io.Writer
}

// Loader returns a config loader wired to this invocation's logger and recorder.
func (g *Global) Loader() *config.Loader {
	return config.NewLoader(config.WithLogger(g.Logger), config.WithRecorder(g.Recorder))
}

func (g *Global) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.Stdout, format, args...)
}

// CLI definition & global flags.
type CLI struct {
	Config      string           `short:"c" help:"Site declaration file (yaml, toml or json)" default:"docsite.yaml" env:"DOCSITE_CONFIG"`
	Verbose     bool             `short:"v" help:"Enable verbose logging"`
	MetricsFile string           `name:"metrics-file" help:"Write Prometheus metrics to this file (textfile collector format) on exit"`
	Version     kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Load and validate the site declaration"`
	Generate GenerateCmd `cmd:"" help:"Write the Hugo configuration for the site declaration"`
	Icon     IconCmd     `cmd:"" help:"Render an icon as SVG markup"`
	Init     InitCmd     `cmd:"" help:"Write an example site declaration"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate the Hugo configuration whenever the declaration changes"`
}

// Execute parses args and runs the selected command. The returned CLI carries
// the parsed global flags even when err is non-nil, so callers can honour --verbose.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) (*CLI, error) {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsite"),
		kong.Description("Assemble a documentation site declaration and hand it to Hugo."),
		kong.Vars{
			"version": version.String(),
			"icons":   strings.Join(icon.Names(), ","),
		},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return cli, err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return cli, err
	}

	g := newGlobal(ctx, cli, stdout, stderr)
	runErr := kctx.Run(g, cli)
	if err := cli.writeMetrics(g); err != nil && runErr == nil {
		runErr = err
	}
	return cli, runErr
}

func newGlobal(ctx context.Context, cli *CLI, stdout, stderr io.Writer) *Global {
	buildID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cli.logLevel()})).
		With(logfields.BuildID(buildID))
	slog.SetDefault(logger)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	if cli.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(nil)
	}
	return &Global{Context: ctx, Logger: logger, BuildID: buildID, Recorder: recorder, Stdout: stdout}
}

func (c *CLI) logLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	var level slog.Level
	if raw := os.Getenv(LogLevelEnv); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err == nil {
			return level
		}
	}
	return slog.LevelInfo
}

func (c *CLI) writeMetrics(g *Global) error {
	pr, ok := g.Recorder.(*metrics.PrometheusRecorder)
	if !ok {
		return nil
	}
	if err := pr.WriteTextfile(c.MetricsFile); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	g.Logger.Debug("Wrote metrics", logfields.Path(c.MetricsFile))
	return nil
}
