package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/rawgroundbeef/x402check"
)

// errInvalid marks a validation that completed but failed, so the
// process exits 1 instead of 2.
var errInvalid = errors.New("document is invalid")

var (
	flagStrict bool
	flagFormat string
	flagQuiet  bool
	flagJSON   string
)

var rootCmd = &cobra.Command{
	Use:   "x402check [file]",
	Short: "Validate x402 payment configuration documents",
	Long: `x402check checks x402 payment requirements documents for malformed
amounts, unknown networks and corrupted addresses before they cost
anybody money.

The document is read from the file argument, from --json, or from
standard input. Exit status is 0 for a valid document, 1 for an
invalid one, and 2 when the document could not be read at all.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := readDocument(args)
		if err != nil {
			return err
		}
		result := x402check.Validate(document, validateOptions()...)
		return report(cmd.OutOrStdout(), result)
	},
}

func init() {
	rootCmd.Version = x402check.Version
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "treat warnings as errors")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", `output format, "text" or "json"`)
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only report errors and the verdict")
	rootCmd.Flags().StringVar(&flagJSON, "json", "", "validate this document instead of reading a file")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errInvalid) {
			return 1
		}
		fmt.Fprintln(os.Stderr, aurora.Red(fmt.Sprintf("x402check: %v", err)))
		return 2
	}
	return 0
}

func validateOptions() []x402check.Option {
	var opts []x402check.Option
	if flagStrict {
		opts = append(opts, x402check.WithStrict())
	}
	return opts
}

// readDocument picks the input source: --json wins, then the file
// argument, then piped standard input.
func readDocument(args []string) ([]byte, error) {
	if flagJSON != "" {
		return []byte(flagJSON), nil
	}
	if len(args) == 1 {
		document, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return document, nil
	}

	info, err := os.Stdin.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice != 0 {
		return nil, errors.New("no document given: pass a file, --json, or pipe one to stdin")
	}
	document, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return document, nil
}

// report renders the result and converts an invalid verdict into
// errInvalid.
func report(w io.Writer, result x402check.ValidationResult) error {
	switch flagFormat {
	case "json":
		if err := renderJSON(w, result); err != nil {
			return err
		}
	case "text":
		renderText(w, result, flagQuiet)
	default:
		return fmt.Errorf("unknown output format %q", flagFormat)
	}

	if !result.Valid {
		return errInvalid
	}
	return nil
}
