// idrfmt formats and parses Indonesian-style numeric text from the command
// line, either one value at a time or as a batch defined in a YAML file.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netng/idr-formatting/internal/batch"
	"github.com/netng/idr-formatting/internal/config"
	"github.com/netng/idr-formatting/internal/output"
	"github.com/netng/idr-formatting/pkg/idr"
)

// stdLogger adapts the standard library logger to the batch.Logger interface.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (stdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (stdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (stdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "idrfmt",
		Short: "Indonesian-style numeric formatting and parsing",
		Long: "idrfmt converts between Indonesian-style display text " +
			"(thousands separated by '.', decimals marked by ',') and numeric values.",
		SilenceUsage: true,
	}
	root.AddCommand(newFormatCmd(), newParseCmd(), newBatchCmd())
	return root
}

func newFormatCmd() *cobra.Command {
	var decimals int
	var padZeros bool

	cmd := &cobra.Command{
		Use:   "format [flags] [--] VALUE",
		Short: "Render a value as Indonesian-style display text",
		Long: "Render a value as Indonesian-style display text.\n\n" +
			"A value with a leading minus must follow a \"--\" terminator so it is\n" +
			"not read as a flag.",
		Example: "  idrfmt format 1050,32\n" +
			"  idrfmt format --decimals 2 999,99\n" +
			"  idrfmt format -- -1050,5",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &idr.FormatOptions{PadZeros: padZeros}
			if cmd.Flags().Changed("decimals") {
				if decimals < 0 {
					return fmt.Errorf("decimals must not be negative, got %d", decimals)
				}
				opts.Decimals = &decimals
			}
			fmt.Fprintln(cmd.OutOrStdout(), idr.Format(args[0], opts))
			return nil
		},
	}
	cmd.Flags().IntVar(&decimals, "decimals", 0, "force exactly this many decimal digits (default: preserve as typed)")
	cmd.Flags().BoolVar(&padZeros, "pad-zeros", false, "pad a present decimal part to two digits")
	return cmd
}

func newParseCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "parse [flags] [--] VALUE",
		Short: "Parse Indonesian-style text into a numeric value",
		Long: "Parse Indonesian-style text into a numeric value.\n\n" +
			"A value with a leading minus must follow a \"--\" terminator so it is\n" +
			"not read as a flag.",
		Example: "  idrfmt parse 1.050,5\n" +
			"  idrfmt parse --exact 1.050,50\n" +
			"  idrfmt parse -- -1.050,5",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exact {
				v, ok := idr.ParseExact(args[0])
				if !ok {
					return fmt.Errorf("no numeric value in %q", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (sign=%+d scale=%d unscaled=%s)\n",
					v.String(), v.Sign(), v.Scale(), v.UnscaledString())
				return nil
			}
			f, ok := idr.Parse(args[0])
			if !ok {
				return fmt.Errorf("no numeric value in %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatApprox(f))
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "parse losslessly into an exact fixed-point value")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var formatName string
	var toFile bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Run the conversions defined in a YAML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			b, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := batch.NewEngine()
			if verbose {
				engine.SetLogger(stdLogger{})
			}
			results := engine.Run(b.ToJobs())

			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown output format %q (available: %s)",
					formatName, strings.Join(output.AvailableFormatterNames(), ", "))
			}
			if toFile {
				ext := formatter.Name()
				if ext == "console" {
					ext = "txt"
				}
				filename, err := output.WriteFormatted(formatter, results, ext)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", filename)
				return nil
			}
			data, err := formatter.Format(results)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&formatName, "output", "console", "output format: console, csv or json")
	cmd.Flags().BoolVar(&toFile, "write", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log each conversion")
	return cmd
}
