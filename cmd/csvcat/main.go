package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

// Exit codes
const (
	exitOK    = 0
	exitUsage = 1 // bad flags or expressions
	exitFile  = 2 // input file missing or unreadable
)

const noneValue = "(none)"

var (
	errMissingFile = errors.New("missing --file argument")
	errReadFile    = errors.New("cannot read input file")
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout, stderr)
	if err := cmd.Run(ctx, args); err != nil {
		return reportError(stderr, err)
	}
	return exitOK
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "csvcat",
		Usage:     "filter and aggregate a CSV file",
		UsageText: "csvcat --file <path> [--where <expr>] [--aggregate <expr>]",
		Description: "Examples:\n" +
			"  csvcat -f data.csv\n" +
			"  csvcat -f data.csv -w \"age>30\"\n" +
			"  csvcat -f data.csv -w \"salary>50000\" -a \"age=avg\"\n" +
			"  csvcat -f data.parquet -a \"salary=max\"",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "path to the input file (.csv, .csv.gz, .csv.zst or .parquet)",
				Sources: cli.EnvVars("CSVCAT_FILE"),
			},
			&cli.StringFlag{
				Name:    "where",
				Aliases: []string{"w"},
				Usage:   "filter condition, e.g. \"age>30\" (operators: >= <= != > < =)",
				Sources: cli.EnvVars("CSVCAT_WHERE"),
			},
			&cli.StringFlag{
				Name:    "aggregate",
				Aliases: []string{"a"},
				Usage:   "aggregation, e.g. \"age=avg\" (functions: avg, min, max)",
				Sources: cli.EnvVars("CSVCAT_AGGREGATE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   zerolog.LevelWarnValue,
				Usage:   "diagnostic log level: trace, debug, info, warn, error, disabled",
				Sources: cli.EnvVars("CSVCAT_LOG_LEVEL"),
			},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(stderr, cmd.String("log-level"))
			if err != nil {
				return err
			}
			return process(logger.WithContext(ctx), cmd, stdout)
		},
	}
}

// newLogger builds the diagnostic logger. Each invocation gets its own run id.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger(), nil
}

// process loads the file, runs the pipeline and prints the result.
func process(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	filename := cmd.String("file")
	where := cmd.String("where")
	aggregate := cmd.String("aggregate")

	logger := zerolog.Ctx(ctx).With().
		Str("function", "process").
		Str("file", filename).
		Logger()

	if filename == "" {
		return errMissingFile
	}
	if !reader.Exists(filename) {
		return fmt.Errorf("%w: %s", reader.ErrFileNotFound, filename)
	}

	fmt.Fprintf(stdout, "Input file: %s\n", filename)
	fmt.Fprintf(stdout, "Filter: %s\n", orNone(where))
	fmt.Fprintf(stdout, "Aggregate: %s\n", orNone(aggregate))

	// Expressions are parsed before the file is read so a bad expression
	// never produces partial output.
	pipeline, err := query.BuildPipeline(where, aggregate)
	if err != nil {
		return err
	}

	tbl, err := reader.Load(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", errReadFile, err)
	}
	logger.Debug().Int("rows", tbl.Len()).Strs("columns", tbl.Columns()).Msg("file loaded")

	result, err := pipeline.Run(ctx, tbl)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	formatter := output.NewTableFormatter(stdout)
	if err := formatter.Format(result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	logger.Debug().Int("rows", result.Len()).Msg("done")
	return nil
}

// reportError prints err for the user and returns the matching exit code.
func reportError(stderr io.Writer, err error) int {
	var condErr *query.ConditionError

	switch {
	case errors.Is(err, reader.ErrFileNotFound):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		return exitFile
	case errors.As(err, &condErr):
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		if condErr.Kind == query.KUnknownFunction {
			fmt.Fprintf(stderr, "Supported functions: avg, min, max\n")
		} else {
			fmt.Fprintf(stderr, "Filter format: <column><op><value>, op is one of >= <= != > < =\n")
			fmt.Fprintf(stderr, "Aggregate format: <column>=<avg|min|max>\n")
		}
		fmt.Fprintf(stderr, "Example: csvcat -f data.csv -w \"age>30\" -a \"salary=avg\"\n")
		return exitUsage
	case errors.Is(err, errReadFile):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFile
	case errors.Is(err, errMissingFile):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Usage: csvcat --file <path> [--where <expr>] [--aggregate <expr>]\n")
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
}

func orNone(s string) string {
	if s == "" {
		return noneValue
	}
	return s
}
