// Package cmd implements the grammarkit command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grammarkit/grammarkit/grammar"
	"github.com/grammarkit/grammarkit/grammar/jsonschema"
	"github.com/grammarkit/grammarkit/version"
)

func CompileHandler(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	g := grammar.New()
	if err := jsonschema.Generate(g, data); err != nil {
		return fmt.Errorf("generate grammar: %w", err)
	}

	out, err := g.Compile(format)
	if err != nil {
		var unknown *grammar.UnknownFormatError
		if errors.As(err, &unknown) {
			return fmt.Errorf("%w (known formats: %s)", err, strings.Join(grammar.Formats(), ", "))
		}
		return err
	}

	slog.Debug("compiled schema", "rules", len(g.Rules()), "format", format)
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func FormatsHandler(cmd *cobra.Command, _ []string) error {
	for _, name := range grammar.Formats() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "grammarkit",
		Short:        "Compile JSON schemas into constraint grammars",
		Version:      version.Version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	compileCmd := &cobra.Command{
		Use:   "compile SCHEMA",
		Short: "Compile a JSON schema file (or - for stdin) to grammar text",
		Args:  cobra.ExactArgs(1),
		RunE:  CompileHandler,
	}
	compileCmd.Flags().String("format", "gbnf", "Output grammar format")

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "List registered output formats",
		Args:  cobra.ExactArgs(0),
		RunE:  FormatsHandler,
	}

	rootCmd.AddCommand(compileCmd, formatsCmd)
	return rootCmd
}
