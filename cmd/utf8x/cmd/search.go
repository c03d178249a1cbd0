package cmd

import (
	"github.com/spf13/cobra"
)

func (a *app) indexCmd() *cobra.Command {
	return a.searchCmd("index", "Position of the first occurrence of needle", false)
}

func (a *app) rindexCmd() *cobra.Command {
	return a.searchCmd("rindex", "Position of the last occurrence of needle", true)
}

// searchCmd builds index and rindex. A missing needle prints -1.
func (a *app) searchCmd(use, short string, last bool) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   use + " <needle> [text...]",
		Short: short,
		Long: short + `.

Positions count scalar values from 0. --offset starts the search at that
scalar; a negative offset counts from the end of the text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			if last {
				printLine(cmd, a.util.IndexOfLast(text, args[0], offset))
			} else {
				printLine(cmd, a.util.IndexOfFirst(text, args[0], offset))
			}
			return nil
		}),
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "scalar offset, negative counts from the end")
	return cmd
}
