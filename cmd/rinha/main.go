package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rinha/interpreter-go/pkg/ast"
	"rinha/interpreter-go/pkg/driver"
	"rinha/interpreter-go/pkg/interpreter"
)

const cliToolVersion = "0.1.0-dev"

// errAlreadyReported marks failures whose diagnostic was printed where it
// happened; the top level only maps them to a nonzero exit.
var errAlreadyReported = errors.New("already reported")

type config struct {
	maxDepth int
	debug    bool
	noColor  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errAlreadyReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "rinha [file.json]",
		Short: "rinha tree-walking interpreter",
		Long: `rinha executes programs that were parsed externally into a JSON AST
document. It loads the tree, evaluates it directly, writes print output to
stdout, and reports the first runtime failure with its source location.`,
		Example: `  # Run a pre-parsed program
  rinha fib.rinha.json

  # Read the AST document from stdin
  cat fib.rinha.json | rinha -

  # Run the entry named by rinha.yml in the current directory
  rinha`,
		Args:          cobra.MaximumNArgs(1),
		Version:       cliToolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.debug, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&cfg.noColor, "no-color", false, "disable colored diagnostics")
	rootCmd.Flags().IntVar(&cfg.maxDepth, "max-depth", interpreter.DefaultMaxDepth, "language call-depth limit")

	runCmd := &cobra.Command{
		Use:   "run [file.json]",
		Short: "Run an AST document (same as the bare invocation)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	runCmd.Flags().IntVar(&cfg.maxDepth, "max-depth", interpreter.DefaultMaxDepth, "language call-depth limit")
	rootCmd.AddCommand(runCmd)

	checkCmd := &cobra.Command{
		Use:   "check [file.json]",
		Short: "Load and validate an AST document without evaluating it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

func runProgram(cfg *config, args []string, stdout, stderr io.Writer) error {
	setupLogging(cfg)

	file, err := loadTarget(args)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return errAlreadyReported
	}

	interp := interpreter.NewWithOptions(interpreter.Options{
		MaxDepth: cfg.maxDepth,
		Stdout:   stdout,
	})
	if _, err := interp.Run(file); err != nil {
		fmt.Fprintln(stderr, interpreter.BuildRuntimeDiagnostic(err).Describe())
		return errAlreadyReported
	}
	return nil
}

func runCheck(cfg *config, args []string, stdout, stderr io.Writer) error {
	setupLogging(cfg)

	file, err := loadTarget(args)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load program: %v\n", err)
		return errAlreadyReported
	}
	name := file.Name
	if name == "" {
		name = "<program>"
	}
	fmt.Fprintf(stdout, "check: ok (%s)\n", name)
	return nil
}

// loadTarget resolves the AST document from the argument, stdin, or the
// project manifest.
func loadTarget(args []string) (*ast.File, error) {
	if len(args) == 1 {
		if args[0] == "-" {
			return decodeStdin(os.Stdin)
		}
		slog.Debug("loading program", "path", args[0])
		return driver.Load(args[0])
	}

	manifest, err := driver.FindManifest(".")
	if err != nil {
		if errors.Is(err, driver.ErrManifestNotFound) {
			return nil, fmt.Errorf("no program given and %s", err)
		}
		return nil, err
	}
	entry, err := manifest.EntryPath()
	if err != nil {
		return nil, err
	}
	slog.Debug("loading manifest entry", "manifest", manifest.Path, "entry", entry)
	return driver.Load(entry)
}

func decodeStdin(stdin io.Reader) (*ast.File, error) {
	slog.Debug("reading program from stdin")
	return driver.Decode(stdin)
}

func setupLogging(cfg *config) {
	if cfg.noColor {
		color.NoColor = true
	}
	level := slog.LevelInfo
	if cfg.debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
