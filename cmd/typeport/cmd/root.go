// Package cmd implements the typeport CLI. It is a thin shim: read
// source, call transform.Transform, write the result. Everything
// interesting happens in the library packages.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/typeport/typeport/config"
	"github.com/typeport/typeport/emit"
	"github.com/typeport/typeport/errors"
	"github.com/typeport/typeport/logger"
	"github.com/typeport/typeport/transform"
)

var (
	flagDialect string
	flagOutput  string
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "typeport [file]",
	Short: "Translate Go struct declarations to TypeScript or Flow",
	Long: `typeport translates Go-style struct type declarations into
equivalent definitions for a structural type system, keeping
cross-language data contracts in sync without hand-maintained
duplicates.

Reads from the given file, or from stdin when no file (or "-") is
given.

Examples:
  typeport types.go                    # TypeScript interfaces to stdout
  typeport --dialect flow types.go     # Flow type aliases
  typeport -o types.ts types.go        # Write to a file
  cat types.go | typeport -            # Read from stdin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
	// The shim prints diagnostics itself; cobra should not repeat them.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg, err := config.Load()
	if err != nil {
		// Broken config files should not brick --help; fall back to
		// built-in defaults and let the run report it.
		cfg = &config.Config{Dialect: "typescript"}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	rootCmd.Flags().StringVarP(&flagDialect, "dialect", "d", cfg.Dialect, "Target dialect: typescript, flow")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", cfg.Output, "Output file (default: stdout)")
	rootCmd.Flags().BoolVar(&flagJSON, "json-logs", cfg.JSONLogs, "Log as structured JSON")

	rootCmd.AddCommand(versionCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	if err := logger.Initialize(flagJSON); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	defer logger.Cleanup()

	dialect, err := emit.ParseDialect(flagDialect)
	if err != nil {
		return err
	}

	source, name, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	logger.Debugw("transforming source", "input", name, "dialect", dialect.String())

	rendered, err := transform.Transform(source, dialect)
	if err != nil {
		if diags, ok := transform.AsDiagnostics(err); ok {
			for _, line := range diags {
				fmt.Fprintln(os.Stderr, pterm.Red(line))
			}
			return errors.Newf("%s: %d error(s)", name, len(diags))
		}
		return err
	}

	return writeResult(rendered)
}

func readSource(cmd *cobra.Command, args []string) (source, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", errors.Wrap(err, "failed to read stdin")
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", errors.Wrapf(err, "failed to read %s", args[0])
	}
	return string(data), args[0], nil
}

func writeResult(rendered string) error {
	if flagOutput == "" {
		fmt.Print(rendered)
		return nil
	}
	if err := os.WriteFile(flagOutput, []byte(rendered), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", flagOutput)
	}
	logger.Infow("wrote generated types", "output", flagOutput, "bytes", len(rendered))
	return nil
}
