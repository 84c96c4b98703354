// Package cli contains Cobra CLI commands for the yyid binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	logpkg "github.com/rzbill/yyid/pkg/log"
	"github.com/rzbill/yyid/pkg/yyid"
)

// NewRootCommand constructs the yyid root command and its subcommands.
func NewRootCommand(logger *logpkg.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yyid",
		Short: "YYID generator CLI",
		Long:  "yyid generates 128-bit random identifiers and renders them in their canonical text forms.",
	}
	rootCmd.AddCommand(newNewCommand(logger))
	rootCmd.AddCommand(newFmtCommand(logger))
	return rootCmd
}

// encoder is the caller-buffer encode surface shared by the four views.
type encoder interface {
	EncodeLower([]byte) []byte
	EncodeUpper([]byte) []byte
}

// viewFor selects the encoded view for format and its fixed output length.
func viewFor(id yyid.YYID, format string) (encoder, int, error) {
	switch format {
	case "simple":
		return id.Simple(), yyid.SimpleLength, nil
	case "hyphenated", "":
		return id.Hyphenated(), yyid.HyphenatedLength, nil
	case "braced":
		return id.Braced(), yyid.BracedLength, nil
	case "urn":
		return id.URN(), yyid.URNLength, nil
	}
	return nil, 0, fmt.Errorf("invalid --format %q; use simple|hyphenated|braced|urn", format)
}

func render(id yyid.YYID, format string, upper bool) (string, error) {
	v, n, err := viewFor(id, format)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if upper {
		return string(v.EncodeUpper(buf)), nil
	}
	return string(v.EncodeLower(buf)), nil
}

// newNewCommand constructs the `new` subcommand.
func newNewCommand(logger *logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate fresh identifiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			format, _ := cmd.Flags().GetString("format")
			upper, _ := cmd.Flags().GetBool("upper")
			if count < 1 {
				return fmt.Errorf("invalid --count %d; must be at least 1", count)
			}
			for i := 0; i < count; i++ {
				s, err := render(yyid.New(), format, upper)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			logger.Debug("generated identifiers",
				logpkg.Int("count", count), logpkg.Str("format", format))
			return nil
		},
	}
	cmd.Flags().Int("count", 1, "Number of identifiers to generate")
	cmd.Flags().String("format", "hyphenated", "Output format: simple|hyphenated|braced|urn")
	cmd.Flags().Bool("upper", false, "Use upper-case hex digits")
	return cmd
}

// newFmtCommand constructs the `fmt` subcommand.
func newFmtCommand(logger *logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <id> [<id> ...]",
		Short: "Re-render identifiers in another format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			upper, _ := cmd.Flags().GetBool("upper")
			for _, arg := range args {
				id, err := yyid.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				s, err := render(id, format, upper)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			logger.Debug("reformatted identifiers",
				logpkg.Int("count", len(args)), logpkg.Str("format", format))
			return nil
		},
	}
	cmd.Flags().String("format", "hyphenated", "Output format: simple|hyphenated|braced|urn")
	cmd.Flags().Bool("upper", false, "Use upper-case hex digits")
	return cmd
}
