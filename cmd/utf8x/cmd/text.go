package cmd

import (
	"github.com/spf13/cobra"
)

// mapCmd builds a command printing fn applied to the input
func (a *app) mapCmd(use, short string, fn func(u string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text...]",
		Short: short,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			printLine(cmd, fn(text))
			return nil
		}),
	}
}

func (a *app) upperCmd() *cobra.Command {
	return a.mapCmd("upper", "Convert to upper case", func(s string) string {
		return a.util.ToUpper(s)
	})
}

func (a *app) lowerCmd() *cobra.Command {
	return a.mapCmd("lower", "Convert to lower case", func(s string) string {
		return a.util.ToLower(s)
	})
}

func (a *app) ucfirstCmd() *cobra.Command {
	return a.mapCmd("ucfirst", "Upper-case the first character", func(s string) string {
		return a.util.UpperFirst(s)
	})
}

func (a *app) titleCmd() *cobra.Command {
	return a.mapCmd("title", "Upper-case the first character of every word", func(s string) string {
		return a.util.TitleCase(s)
	})
}

func (a *app) foldCmd() *cobra.Command {
	return a.mapCmd("fold", "Remove accents and other combining marks", func(s string) string {
		return a.util.Fold(s)
	})
}

func (a *app) lenCmd() *cobra.Command {
	var bytes bool

	cmd := &cobra.Command{
		Use:   "len [text...]",
		Short: "Count scalar values",
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if bytes {
				printLine(cmd, len(text))
				return nil
			}
			printLine(cmd, a.util.Length(text))
			return nil
		}),
	}

	cmd.Flags().BoolVar(&bytes, "bytes", false, "count bytes instead")
	return cmd
}

func (a *app) substrCmd() *cobra.Command {
	var start, length int

	cmd := &cobra.Command{
		Use:   "substr [text...]",
		Short: "Extract a substring by scalar position",
		Long: `Extract a substring by scalar position.

A negative --start counts from the end. Without --length the substring
runs to the end; a negative --length stops that many scalars before it.`,
		Example: `  utf8x substr --start 2 --length 3 iñtërnâtiônàlizætiøn
  utf8x substr --start=-4 iñtërnâtiônàlizætiøn`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("length") {
				printLine(cmd, a.util.Substring(text, start, length))
				return nil
			}
			printLine(cmd, a.util.Substring(text, start))
			return nil
		}),
	}

	cmd.Flags().IntVar(&start, "start", 0, "first scalar, negative counts from the end")
	cmd.Flags().IntVar(&length, "length", 0, "number of scalars, negative stops before the end")
	return cmd
}
