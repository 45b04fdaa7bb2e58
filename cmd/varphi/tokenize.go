package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"varphi/internal/compiler"
	"varphi/internal/diag"
	"varphi/internal/diagfmt"
	"varphi/internal/lexer"
	"varphi/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.vp",
	Short: "Tokenize a Varphi source file",
	Long:  `Tokenize breaks down a Varphi source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(filePath)
	if err != nil {
		opts := reportOpts{format: cli.format, color: cli.color.enabledFor(stderrFile(cmd))}
		if rerr := reportErrors(cmd.ErrOrStderr(), fs, []*compiler.Error{compiler.LoadError(filePath, err)}, opts); rerr != nil {
			return rerr
		}
		return errReported
	}

	// лексер не останавливается на ошибках, поэтому собираем их все
	bag := diag.NewBag(100)
	tokens := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()

	if bag.Len() > 0 {
		bag.Sort()
		bag.Dedup()
		opts := diagfmt.PrettyOpts{
			Color:     cli.color.enabledFor(stderrFile(cmd)),
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
		}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, opts); err != nil {
			return err
		}
	}

	if format == "json" {
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	} else {
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, fs)
	}
	if err != nil {
		return err
	}
	if bag.HasErrors() {
		return errReported
	}
	return nil
}
