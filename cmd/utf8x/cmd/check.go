package cmd

import (
	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
	"github.com/msto63/utf8x/foundation/utils/utf8x"
	"github.com/spf13/cobra"
)

func (a *app) normalizeCmd() *cobra.Command {
	var form string
	var strict bool

	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Apply canonical normalization (NFC or NFD)",
		Long: `Apply canonical normalization (NFC or NFD).

Without normalization support the text is printed unchanged, unless
--strict is given.`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			f, err := utf8x.ParseForm(form)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if strict {
				out, err := a.util.NormalizeStrict(text, f)
				if err != nil {
					return err
				}
				printLine(cmd, out)
				return nil
			}
			printLine(cmd, a.util.Normalize(text, f))
			return nil
		}),
	}

	cmd.Flags().StringVar(&form, "form", "NFC", "normalization form (NFC or NFD)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when normalization is unavailable")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Report well-formedness and multibyte content",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			wellFormed := a.util.IsWellFormed(text)
			printLine(cmd, "well-formed:", yesNo(wellFormed))
			printLine(cmd, "multibyte:  ", yesNo(a.util.ContainsMultibyte(text)))
			printLine(cmd, "4-byte:     ", yesNo(a.util.StripFourByteSequences(text) != text))

			if strict && !wellFormed {
				return mdwerrors.NewErrorBuilder(mdwerrors.ModuleUtf8x).
					Operation("check_encoding").
					Message("input is not well-formed UTF-8").
					Code(mdwerrors.CodeUtf8xEncodingError).
					Detail("bytes", len(text)).
					Build()
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on ill-formed input")
	return cmd
}

func (a *app) stripCmd() *cobra.Command {
	var replacement string

	cmd := &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove 4-byte sequences such as emoji",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			printLine(cmd, a.util.StripFourByteSequences(text, replacement))
			return nil
		}),
	}

	cmd.Flags().StringVar(&replacement, "replacement", "", "text inserted for every removed sequence")
	return cmd
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
